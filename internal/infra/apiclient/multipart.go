package apiclient

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"

	"adminpanel/internal/domain/service"

	"github.com/pkg/errors"
)

// multipartBody is an encoded multipart/form-data payload.
type multipartBody struct {
	contentType string
	data        []byte
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeProduct lays out a product the way the API's upload middleware
// expects: scalar fields, repeated sizes[] / colors[] fields, then one
// "images" part per file.
func encodeProduct(req service.ProductRequest) (*multipartBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"title_uz", req.TitleUz},
		{"title_ru", req.TitleRu},
		{"description_uz", req.DescriptionUz},
		{"description_ru", req.DescriptionRu},
		{"category", req.Category.String()},
		{"price", req.Price.String()},
	}
	// no stock means the stored inventory is left alone
	if req.StockQuantity != nil {
		fields = append(fields, struct{ name, value string }{"stockQuantity", strconv.Itoa(*req.StockQuantity)})
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	for _, size := range req.Sizes {
		if err := w.WriteField("sizes[]", size); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	for _, color := range req.Colors {
		if err := w.WriteField("colors[]", color); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	for _, img := range req.Images {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="images"; filename="%s"`, quoteEscaper.Replace(img.Name)))
		contentType := img.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	return &multipartBody{contentType: w.FormDataContentType(), data: buf.Bytes()}, nil
}
