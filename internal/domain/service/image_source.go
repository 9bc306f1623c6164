package service

import "context"

// ImageSource loads product images named by a local path or a blob URL
// (file://, s3://, gs://).
type ImageSource interface {
	Load(ctx context.Context, ref string) (*Attachment, error)
}

// ImageInspector accepts an uploaded file as a product image or rejects it
// with a validation error.
type ImageInspector interface {
	Inspect(name string, data []byte) (*Attachment, error)
}
