// Package upload stores multipart file uploads on local disk under a fixed
// directory and hands back the public URL path recorded on articles.
package upload

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// MaxFileSize is the maximum allowed upload size (5 MB).
	MaxFileSize = 5 << 20

	// URLPrefix is the public path uploads are served under.
	URLPrefix = "/uploads/"
)

// Errors surfaced to the route layer as structured client errors.
var (
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// allowedTypes defines MIME types accepted for upload, detected by
// content sniffing rather than trusting the client.
var allowedTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// Saver writes uploads into a directory on local disk. Files are buffered
// to durable storage synchronously before the route handler proceeds.
type Saver struct {
	dir     string
	maxSize int64
}

// NewSaver creates a Saver rooted at dir, creating the directory if needed.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Saver{dir: dir, maxSize: MaxFileSize}, nil
}

// Save validates and stores an uploaded file, returning its public URL
// path. Names combine a millisecond timestamp with a random suffix and
// the original extension, so collisions are not a practical concern.
func (s *Saver) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > s.maxSize {
		return "", ErrTooLarge
	}

	// Sniff the real content type from the first 512 bytes.
	sniff := make([]byte, 512)
	n, err := file.Read(sniff)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if !allowedTypes[baseType(http.DetectContentType(sniff[:n]))] {
		return "", ErrUnsupportedType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	name, err := generateName(header.Filename)
	if err != nil {
		return "", fmt.Errorf("name upload: %w", err)
	}

	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, s.maxSize)); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}

	return URLPrefix + name, nil
}

// Dir returns the directory uploads are written to.
func (s *Saver) Dir() string {
	return s.dir
}

// generateName builds a collision-resistant filename:
// <unix-millis>-<random hex><original extension>.
func generateName(original string) (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(suffix), ext), nil
}

// baseType strips any parameters from a MIME type ("text/html; charset=utf-8").
func baseType(ct string) string {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}
