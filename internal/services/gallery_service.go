package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lkcs/lkcs-backend/internal/models"
	mongorepo "github.com/lkcs/lkcs-backend/internal/repositories/mongo"
	"github.com/lkcs/lkcs-backend/internal/storage"
	"github.com/lkcs/lkcs-backend/internal/upload"
	"github.com/lkcs/lkcs-backend/internal/utils"
)

// dataURIRe matches "data:image/<subtype>;base64,<payload>".
var dataURIRe = regexp.MustCompile(`^data:(image/[\w.+-]+);base64,(.+)$`)

const uploadsPrefix = "/uploads/"

// GalleryJSONInput is the JSON submission shape: either a youtube entry or a
// base64 data-URI image.
type GalleryJSONInput struct {
	Type string `json:"type"`
	Name string `json:"name"`
	YtID string `json:"ytId"`
	URL  string `json:"url"`
	Src  string `json:"src"`
}

type GalleryService interface {
	List(ctx context.Context) ([]models.GalleryItem, error)
	// CreateImage persists a gallery document for an already-accepted upload.
	CreateImage(ctx context.Context, name string, img *upload.Descriptor) (*models.GalleryItem, error)
	// CreateFromJSON dispatches on the payload shape: base64 image, youtube
	// metadata, or invalid.
	CreateFromJSON(ctx context.Context, in GalleryJSONInput) (*models.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}

type galleryService struct {
	repo   mongorepo.GalleryRepository
	images *upload.Policy
	store  storage.Saver
	dir    string // on-disk directory backing the /uploads/images prefix
	log    logrus.FieldLogger
}

func NewGalleryService(repo mongorepo.GalleryRepository, images *upload.Policy, store storage.Saver, imagesDir string, log logrus.FieldLogger) GalleryService {
	return &galleryService{repo: repo, images: images, store: store, dir: imagesDir, log: log}
}

func (s *galleryService) List(ctx context.Context) ([]models.GalleryItem, error) {
	const op = "GalleryService.List"

	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to fetch gallery items", err)
	}
	return out, nil
}

// relSrc converts a stored path into the public path under the uploads prefix.
func relSrc(storedPath string) string {
	return uploadsPrefix + "images/" + path.Base(storedPath)
}

func (s *galleryService) CreateImage(ctx context.Context, name string, img *upload.Descriptor) (*models.GalleryItem, error) {
	const op = "GalleryService.CreateImage"

	if img == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "No file uploaded", nil)
	}

	if name == "" {
		name = img.OriginalName
	}
	if name == "" {
		name = "Image"
	}

	item := &models.GalleryItem{
		Type: models.GalleryTypeImage,
		Name: name,
		Src:  relSrc(img.Path),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		if rmErr := s.store.Remove(ctx, img.Path); rmErr != nil {
			s.log.WithError(rmErr).Warn("failed to remove orphaned gallery upload")
		}
		return nil, utils.E(utils.CodeInternal, op, "Upload failed", err)
	}
	return item, nil
}

func (s *galleryService) CreateFromJSON(ctx context.Context, in GalleryJSONInput) (*models.GalleryItem, error) {
	const op = "GalleryService.CreateFromJSON"

	switch {
	case in.Type == models.GalleryTypeImage && strings.HasPrefix(in.Src, "data:image/"):
		return s.createFromDataURI(ctx, in.Name, in.Src)

	case in.Type == models.GalleryTypeYouTube && in.YtID != "":
		name := in.Name
		if name == "" {
			name = fmt.Sprintf("YouTube Video (%s)", in.YtID)
		}
		url := in.URL
		if url == "" {
			url = "https://www.youtube.com/watch?v=" + in.YtID
		}

		item := &models.GalleryItem{
			Type: models.GalleryTypeYouTube,
			Name: name,
			YtID: in.YtID,
			URL:  url,
		}
		if err := s.repo.Create(ctx, item); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "Upload failed", err)
		}
		return item, nil

	default:
		return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid payload", nil)
	}
}

func (s *galleryService) createFromDataURI(ctx context.Context, name, src string) (*models.GalleryItem, error) {
	const op = "GalleryService.CreateFromJSON"

	m := dataURIRe.FindStringSubmatch(src)
	if m == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid image data", nil)
	}
	mime := m[1]

	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid image data", err)
	}

	ext := strings.ToLower(strings.TrimPrefix(mime, "image/"))
	base := strings.ReplaceAll(strings.TrimSpace(name), " ", "-")
	if base == "" {
		base = "upload"
	}

	desc, err := s.images.FromBytes(ctx, base+"."+ext, mime, data)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrFileTooLarge):
			return nil, utils.E(utils.CodePayloadTooLarge, op, "File too large", err)
		case errors.Is(err, upload.ErrUnsupportedType):
			return nil, utils.E(utils.CodeUnsupportedMedia, op, "Unsupported file type", err)
		default:
			return nil, utils.E(utils.CodeInternal, op, "Upload failed", err)
		}
	}

	itemName := name
	if itemName == "" {
		itemName = path.Base(desc.Path)
	}
	return s.CreateImage(ctx, itemName, desc)
}

func (s *galleryService) Delete(ctx context.Context, id string) error {
	const op = "GalleryService.Delete"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.E(utils.CodeNotFound, op, "Not found", err)
	}

	item, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Delete failed", err)
	}

	if item.Type == models.GalleryTypeImage && strings.HasPrefix(item.Src, uploadsPrefix) {
		diskPath := filepath.Join(s.dir, path.Base(item.Src))
		if err := s.store.Remove(ctx, diskPath); err != nil {
			s.log.WithError(err).WithField("src", item.Src).Warn("failed to remove gallery file")
		}
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Delete failed", err)
	}
	return nil
}
