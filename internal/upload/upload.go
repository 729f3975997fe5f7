package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lkcs/lkcs-backend/internal/storage"
)

// Typed failures surfaced to routers. None of them carry filesystem paths.
var (
	ErrFileTooLarge    = errors.New("file too large")
	ErrTooManyFiles    = errors.New("too many files")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrNoFile          = errors.New("no file provided")
)

// Descriptor is what a router persists after an accepted upload.
type Descriptor struct {
	Path         string
	OriginalName string
	Size         int64
	MimeType     string
}

// Policy validates and stores a single uploaded file. Separate instances exist
// for resumes and gallery images.
type Policy struct {
	Store       storage.Saver
	MaxSize     int64
	MaxFiles    int
	AllowedMIME []string
	AllowedExt  []string // lower-case, with leading dot
}

func (p *Policy) mimeAllowed(mime string) bool {
	mime = strings.ToLower(strings.TrimSpace(mime))
	// strip parameters like "; charset=..."
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	for _, m := range p.AllowedMIME {
		if mime == m {
			return true
		}
	}
	return false
}

func (p *Policy) extAllowed(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range p.AllowedExt {
		if ext == e {
			return true
		}
	}
	return false
}

// GenerateName builds a collision-resistant stored filename, preserving the
// original extension: unix millis + short random suffix.
func GenerateName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

// FromMultipart accepts at most one file under the given form field, validates
// it against the policy, and persists it. The form may be nil when the request
// carried no multipart body.
func (p *Policy) FromMultipart(ctx context.Context, form *multipart.Form, field string) (*Descriptor, error) {
	if form == nil || len(form.File[field]) == 0 {
		return nil, ErrNoFile
	}
	headers := form.File[field]
	if p.MaxFiles > 0 && len(headers) > p.MaxFiles {
		return nil, ErrTooManyFiles
	}
	fh := headers[0]

	if p.MaxSize > 0 && fh.Size > p.MaxSize {
		return nil, ErrFileTooLarge
	}

	declared := fh.Header.Get("Content-Type")
	if !p.mimeAllowed(declared) || !p.extAllowed(fh.Filename) {
		return nil, ErrUnsupportedType
	}

	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	stored, err := p.Store.Save(ctx, GenerateName(fh.Filename), src)
	if err != nil {
		return nil, err
	}

	return &Descriptor{
		Path:         stored,
		OriginalName: fh.Filename,
		Size:         fh.Size,
		MimeType:     declared,
	}, nil
}

// FromBytes accepts raw bytes with a declared MIME type, applying the same
// validation as the multipart path minus the file-count check. Used by the
// base64 gallery submission.
func (p *Policy) FromBytes(ctx context.Context, originalName, declaredMIME string, data []byte) (*Descriptor, error) {
	if len(data) == 0 {
		return nil, ErrNoFile
	}
	if p.MaxSize > 0 && int64(len(data)) > p.MaxSize {
		return nil, ErrFileTooLarge
	}
	if !p.mimeAllowed(declaredMIME) || !p.extAllowed(originalName) {
		return nil, ErrUnsupportedType
	}

	stored, err := p.Store.Save(ctx, GenerateName(originalName), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return &Descriptor{
		Path:         stored,
		OriginalName: originalName,
		Size:         int64(len(data)),
		MimeType:     declaredMIME,
	}, nil
}

// ResumePolicy matches the hiring form: pdf/doc/docx up to 5MB, one file.
func ResumePolicy(store storage.Saver) *Policy {
	return &Policy{
		Store:    store,
		MaxSize:  5 << 20,
		MaxFiles: 1,
		AllowedMIME: []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
		AllowedExt: []string{".pdf", ".doc", ".docx"},
	}
}

// ImagePolicy matches gallery uploads: common image types up to 50MB, one file.
func ImagePolicy(store storage.Saver) *Policy {
	return &Policy{
		Store:    store,
		MaxSize:  50 << 20,
		MaxFiles: 1,
		AllowedMIME: []string{
			"image/jpeg",
			"image/jpg",
			"image/png",
			"image/gif",
			"image/webp",
		},
		AllowedExt: []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
	}
}
