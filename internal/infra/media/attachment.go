// Package media checks product images before upload and loads them from
// local paths or blob storage for the CLI.
package media

import (
	"fmt"
	"path/filepath"
	"strings"

	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/util"

	"github.com/gabriel-vasile/mimetype"
)

// ImagesField is the form field image failures are reported under.
const ImagesField = "images"

// NewAttachment sniffs data and accepts it only when it is an image no
// larger than maxSize bytes. The declared content type of an upload is
// ignored.
func NewAttachment(name string, data []byte, maxSize int64) (*service.Attachment, error) {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) {
		name = "image"
	}

	if len(data) == 0 {
		return nil, domainerrors.NewValidationError(ImagesField, fmt.Sprintf("%s is empty", name))
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return nil, domainerrors.NewValidationError(ImagesField,
			fmt.Sprintf("%s is larger than %s", name, util.FormatBytes(maxSize)))
	}

	detected := mimetype.Detect(data)
	if !isImage(detected) {
		return nil, domainerrors.NewValidationError(ImagesField,
			fmt.Sprintf("%s is not an image (%s)", name, detected.String()))
	}

	if filepath.Ext(name) == "" {
		name += detected.Extension()
	}

	return &service.Attachment{
		Name:        name,
		ContentType: detected.String(),
		Data:        data,
	}, nil
}

func isImage(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return true
		}
	}

	return false
}

// inspector adapts NewAttachment to service.ImageInspector.
type inspector struct {
	maxSize int64
}

// NewInspector returns an ImageInspector enforcing maxSize bytes per image.
func NewInspector(maxSize int64) service.ImageInspector {
	return &inspector{maxSize: maxSize}
}

func (i *inspector) Inspect(name string, data []byte) (*service.Attachment, error) {
	return NewAttachment(name, data, i.maxSize)
}
