package upload

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lkcs/lkcs-backend/internal/storage"
)

func newImagePolicy(t *testing.T) (*Policy, *storage.DiskStore) {
	t.Helper()
	store, err := storage.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("disk store: %v", err)
	}
	return ImagePolicy(store), store
}

func multipartForm(t *testing.T, field, filename, contentType string, payload []byte, copies int) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for i := 0; i < copies; i++ {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(payload); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(64 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form
}

func TestFromMultipartAccepts(t *testing.T) {
	p, _ := newImagePolicy(t)
	form := multipartForm(t, "image", "photo one.png", "image/png", []byte("png-bytes"), 1)

	desc, err := p.FromMultipart(context.Background(), form, "image")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if desc.OriginalName != "photo one.png" || desc.MimeType != "image/png" || desc.Size != 9 {
		t.Fatalf("bad descriptor: %+v", desc)
	}
	data, err := os.ReadFile(desc.Path)
	if err != nil || string(data) != "png-bytes" {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if filepath.Ext(desc.Path) != ".png" {
		t.Fatalf("extension not preserved: %s", desc.Path)
	}
}

func TestFromMultipartMissingFile(t *testing.T) {
	p, _ := newImagePolicy(t)
	if _, err := p.FromMultipart(context.Background(), nil, "image"); !errors.Is(err, ErrNoFile) {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}
}

func TestFromMultipartRejectsMIME(t *testing.T) {
	p, _ := newImagePolicy(t)
	form := multipartForm(t, "image", "evil.png", "application/x-sh", []byte("#!"), 1)
	if _, err := p.FromMultipart(context.Background(), form, "image"); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestFromMultipartRejectsExtension(t *testing.T) {
	p, _ := newImagePolicy(t)
	form := multipartForm(t, "image", "evil.exe", "image/png", []byte("x"), 1)
	if _, err := p.FromMultipart(context.Background(), form, "image"); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestFromMultipartRejectsCount(t *testing.T) {
	p, _ := newImagePolicy(t)
	form := multipartForm(t, "image", "a.png", "image/png", []byte("x"), 2)
	if _, err := p.FromMultipart(context.Background(), form, "image"); !errors.Is(err, ErrTooManyFiles) {
		t.Fatalf("expected ErrTooManyFiles, got %v", err)
	}
}

func TestFromBytesSizeCeiling(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("disk store: %v", err)
	}
	p := ResumePolicy(store)

	big := bytes.Repeat([]byte("a"), (5<<20)+1)
	if _, err := p.FromBytes(context.Background(), "cv.pdf", "application/pdf", big); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	ok := []byte("%PDF-1.4")
	desc, err := p.FromBytes(context.Background(), "cv.pdf", "application/pdf", ok)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if !store.Exists(desc.Path) {
		t.Fatal("stored file missing")
	}
}

func TestGenerateName(t *testing.T) {
	a := GenerateName("My Resume.PDF")
	b := GenerateName("My Resume.PDF")
	if a == b {
		t.Fatal("names collide")
	}
	if !strings.HasSuffix(a, ".pdf") {
		t.Fatalf("extension not preserved: %s", a)
	}
	if strings.ContainsAny(a, " /") {
		t.Fatalf("unsafe characters in %s", a)
	}
}
