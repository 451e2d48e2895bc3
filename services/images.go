package services

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

// MaxImageWidth is the width uploaded product images are scaled down to
const MaxImageWidth = 800

// ImageUpload is an image file submitted with a product form
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// ImageStore writes product images into a public directory
type ImageStore struct {
	Dir       string
	URLPrefix string
}

// NewImageStore stores files in dir, served under urlPrefix
func NewImageStore(dir, urlPrefix string) *ImageStore {
	return &ImageStore{Dir: dir, URLPrefix: strings.TrimSuffix(urlPrefix, "/") + "/"}
}

// Save decodes a PNG or JPEG upload, resizes it and writes it as JPEG.
// It returns the public URL of the stored file.
func (s *ImageStore) Save(upload ImageUpload) (string, error) {
	var img image.Image
	var err error

	switch strings.ToLower(filepath.Ext(upload.Filename)) {
	case ".png":
		img, err = png.Decode(upload.Content)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(upload.Content)
	default:
		return "", fmt.Errorf("%w: only PNG, JPG and JPEG are allowed", ErrInvalidImage)
	}
	if err != nil {
		return "", fmt.Errorf("%w: failed to decode image", ErrInvalidImage)
	}

	if img.Bounds().Dx() > MaxImageWidth {
		img = resize.Resize(MaxImageWidth, 0, img, resize.Lanczos3)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	filename := fmt.Sprintf("%s.jpg", uuid.New().String())
	dest := filepath.Join(s.Dir, filename)
	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("saving image: %w", err)
	}

	err = jpeg.Encode(out, img, &jpeg.Options{Quality: 80})
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("encoding image: %w", err)
	}
	return s.URLPrefix + filename, nil
}

// Remove deletes a file previously returned by Save. URLs outside the prefix are ignored.
func (s *ImageStore) Remove(url string) error {
	name, ok := strings.CutPrefix(url, s.URLPrefix)
	if !ok || name == "" || strings.ContainsAny(name, `/\`) {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
