package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is a console operator account. The password is write-only and is
// never part of a response.
type Admin struct {
	ID          primitive.ObjectID `json:"_id"`
	FullName    string             `json:"fullName"`
	PhoneNumber string             `json:"phoneNumber"`
	Role        Role               `json:"role"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// Profile is the signed-in operator as returned by /auth/profile.
type Profile struct {
	ID          primitive.ObjectID `json:"_id"`
	FullName    string             `json:"fullName"`
	PhoneNumber string             `json:"phoneNumber"`
	Role        Role               `json:"role"`
}
