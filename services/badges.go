package services

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// BadgeCacheControl is sent with every badge image
const BadgeCacheControl = "private, max-age=3600"

// BadgeImages serves customer-uploaded badge artwork from a private directory
type BadgeImages struct {
	Dir string
}

// ValidBadgeFilename reports whether name is a badge upload that cannot escape the directory
func ValidBadgeFilename(name string) bool {
	return strings.HasPrefix(name, "badge_") &&
		!strings.Contains(name, "..") &&
		!strings.ContainsAny(name, `/\`)
}

// BadgeContentType maps a filename extension to its MIME type
func BadgeContentType(name string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

// Read returns the image bytes and their content type
func (b *BadgeImages) Read(name string) ([]byte, string, error) {
	if !ValidBadgeFilename(name) {
		return nil, "", ErrInvalidFilename
	}

	data, err := os.ReadFile(filepath.Join(b.Dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	return data, BadgeContentType(name), nil
}
