// Package service defines the contracts the use cases need from the outside
// world: the remote catalog API, session state and image sources.
package service

import (
	"context"

	"adminpanel/internal/domain/entity"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginResult is what a successful POST /auth/login yields.
type LoginResult struct {
	Token   string
	Profile *entity.Profile
}

// AuthAPI covers the /auth endpoints.
type AuthAPI interface {
	Login(ctx context.Context, phoneNumber, password string) (*LoginResult, error)
	Profile(ctx context.Context) (*entity.Profile, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}

// AdminRequest is the body of admin create/update. A nil Password leaves the
// stored password untouched and is omitted from the JSON entirely.
type AdminRequest struct {
	FullName    string  `json:"fullName"`
	PhoneNumber string  `json:"phoneNumber"`
	Password    *string `json:"password,omitempty"`
}

// AdminAPI covers the /admin endpoints.
type AdminAPI interface {
	ListAdmins(ctx context.Context) ([]entity.Admin, error)
	GetAdmin(ctx context.Context, id primitive.ObjectID) (*entity.Admin, error)
	CreateAdmin(ctx context.Context, req AdminRequest) (*entity.Admin, error)
	UpdateAdmin(ctx context.Context, id primitive.ObjectID, req AdminRequest) (*entity.Admin, error)
	DeleteAdmin(ctx context.Context, id primitive.ObjectID) error
}

// Attachment is one image file to upload with a product.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// ProductRequest is the multipart body of product create/update.
type ProductRequest struct {
	TitleUz       string
	TitleRu       string
	DescriptionUz string
	DescriptionRu string
	Category      entity.Category
	Price         decimal.Decimal
	StockQuantity *int // nil sends an empty field and lets the server keep or default it
	Sizes         []string
	Colors        []string
	Images        []Attachment
}

// ProductQuery holds the server-side list filters. Empty fields are not sent.
type ProductQuery struct {
	Search   string
	Category entity.Category
}

// ProductAPI covers the /products endpoints.
type ProductAPI interface {
	ListProducts(ctx context.Context, query ProductQuery) ([]entity.Product, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*entity.Product, error)
	CreateProduct(ctx context.Context, req ProductRequest) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, req ProductRequest) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
	UpdateInventory(ctx context.Context, id primitive.ObjectID, stockQuantity int) (*entity.Product, error)
	ProductCategories(ctx context.Context) ([]entity.CategoryOption, error)
}

// OrderStatusRequest is the body of PUT /orders/:id/status.
type OrderStatusRequest struct {
	Status        entity.OrderStatus `json:"status"`
	InternalNotes string             `json:"internalNotes,omitempty"`
}

// OrderAPI covers the /orders endpoints.
type OrderAPI interface {
	ListOrders(ctx context.Context) ([]entity.Order, error)
	GetOrder(ctx context.Context, id primitive.ObjectID) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, req OrderStatusRequest) (*entity.Order, error)
	CancelOrder(ctx context.Context, id primitive.ObjectID, reason string) (*entity.Order, error)
}

// UnauthorizedHandler is notified whenever any API call comes back 401.
// rejectedToken is the credential the failed request carried.
type UnauthorizedHandler func(ctx context.Context, rejectedToken string)

// ImageURLResolver turns a stored image reference into a fetchable URL.
type ImageURLResolver interface {
	ResolveImageURL(ref string) string
}

// CatalogAPI is the whole remote API as one client.
type CatalogAPI interface {
	AuthAPI
	AdminAPI
	ProductAPI
	OrderAPI
	ImageURLResolver

	// OnUnauthorized registers a handler for authorization failures.
	OnUnauthorized(handler UnauthorizedHandler)
}
