package impl

import (
	"io"
	"log/slog"
	"time"

	"adminpanel/internal/domain/entity"
	"adminpanel/internal/infra/validator"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestValidator() *validator.Validator {
	return validator.New()
}

func newTestProfile() *entity.Profile {
	return &entity.Profile{
		ID:          primitive.NewObjectID(),
		FullName:    "Malika Yusupova",
		PhoneNumber: "+998901234567",
		Role:        entity.RoleAdmin,
	}
}

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

var noExpiry = time.Time{}
