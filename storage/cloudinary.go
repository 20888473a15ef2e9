package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage stores images in Cloudinary. Configured from a
// CLOUDINARY_URL connection string.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(cloudURL string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStorage{cld: cld, folder: "storefront"}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, url string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicIDFromURL(url, s.folder)})
	return err
}

// publicIDFromURL recovers the Cloudinary public id (folder/name, no
// extension) from a delivery URL.
func publicIDFromURL(url, folder string) string {
	base := path.Base(url)
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return folder + "/" + base
}
