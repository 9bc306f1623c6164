package media

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/util"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// blobSource loads images through gocloud blob buckets. Plain paths are
// served from the local filesystem.
type blobSource struct {
	maxSize int64
}

// NewBlobSource is the constructor for blobSource.
func NewBlobSource(maxSize int64) service.ImageSource {
	return &blobSource{maxSize: maxSize}
}

// Load reads ref, which is a local path or a bucket URL such as
// file:///srv/img/a.jpg, s3://bucket/a.jpg?region=eu-central-1 or
// gs://bucket/dir/a.jpg.
func (s *blobSource) Load(ctx context.Context, ref string) (*service.Attachment, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domainerrors.NewValidationError(ImagesField, "image reference is empty")
	}

	bucket, key, err := s.open(ctx, ref)
	if err != nil {
		return nil, err
	}
	defer bucket.Close()

	attrs, err := bucket.Attributes(ctx, key)
	if err != nil {
		return nil, s.loadError(ref, err)
	}
	if s.maxSize > 0 && attrs.Size > s.maxSize {
		return nil, domainerrors.NewValidationError(ImagesField,
			fmt.Sprintf("%s is larger than %s", path.Base(key), util.FormatBytes(s.maxSize)))
	}

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, s.loadError(ref, err)
	}

	return NewAttachment(path.Base(key), data, s.maxSize)
}

func (s *blobSource) open(ctx context.Context, ref string) (*blob.Bucket, string, error) {
	if !strings.Contains(ref, "://") {
		abs, err := filepath.Abs(ref)
		if err != nil {
			return nil, "", errors.Wrapf(err, "resolve %s", ref)
		}
		bucket, err := fileblob.OpenBucket(filepath.Dir(abs), nil)
		if err != nil {
			return nil, "", s.loadError(ref, err)
		}

		return bucket, filepath.Base(abs), nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return nil, "", domainerrors.NewValidationError(ImagesField, fmt.Sprintf("malformed image URL %s", ref))
	}

	var bucketURL, key string
	if u.Scheme == fileblob.Scheme {
		dir, file := path.Split(u.Path)
		bucketURL = (&url.URL{Scheme: u.Scheme, Path: dir, RawQuery: u.RawQuery}).String()
		key = file
	} else {
		bucketURL = (&url.URL{Scheme: u.Scheme, Host: u.Host, RawQuery: u.RawQuery}).String()
		key = strings.TrimPrefix(u.Path, "/")
	}
	if key == "" {
		return nil, "", domainerrors.NewValidationError(ImagesField, fmt.Sprintf("%s does not name a file", ref))
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, "", errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return bucket, key, nil
}

func (s *blobSource) loadError(ref string, err error) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return domainerrors.NewValidationError(ImagesField, fmt.Sprintf("%s not found", ref))
	}

	return errors.Wrapf(err, "load image %s", ref)
}
