package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lkcs/lkcs-backend/internal/models"
	mongorepo "github.com/lkcs/lkcs-backend/internal/repositories/mongo"
	"github.com/lkcs/lkcs-backend/internal/storage"
	"github.com/lkcs/lkcs-backend/internal/upload"
	"github.com/lkcs/lkcs-backend/internal/utils"
	"github.com/lkcs/lkcs-backend/internal/validate"
)

type ApplicationService interface {
	List(ctx context.Context) ([]models.Application, error)
	// Create persists a validated application. On any failure after the resume
	// was written to disk, the file is removed so rejected submissions leave no
	// orphans behind.
	Create(ctx context.Context, in validate.ApplicationInput, resume *upload.Descriptor) (*models.Application, error)
	// Resume resolves an application id to the stored file path and the
	// download name to present to the client.
	Resume(ctx context.Context, id string) (path, downloadName string, err error)
	Delete(ctx context.Context, id string) error
}

type applicationService struct {
	repo  mongorepo.ApplicationRepository
	store storage.Saver
	log   logrus.FieldLogger
}

func NewApplicationService(repo mongorepo.ApplicationRepository, store storage.Saver, log logrus.FieldLogger) ApplicationService {
	return &applicationService{repo: repo, store: store, log: log}
}

func (s *applicationService) List(ctx context.Context) ([]models.Application, error) {
	const op = "ApplicationService.List"

	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch applications", err)
	}
	return out, nil
}

// discard removes an uploaded file after a rejected submission. Failure to
// remove is logged, never surfaced.
func (s *applicationService) discard(ctx context.Context, resume *upload.Descriptor) {
	if resume == nil {
		return
	}
	if err := s.store.Remove(ctx, resume.Path); err != nil {
		s.log.WithError(err).Warn("failed to remove orphaned resume upload")
	}
}

func (s *applicationService) Create(ctx context.Context, in validate.ApplicationInput, resume *upload.Descriptor) (*models.Application, error) {
	const op = "ApplicationService.Create"

	in = validate.NormalizeApplication(in)
	if details := validate.Application(in); len(details) > 0 {
		s.discard(ctx, resume)
		return nil, utils.EV(op, "Validation failed", details)
	}

	if resume == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Resume file is required", nil)
	}

	app := &models.Application{
		Name:               in.Name,
		Email:              in.Email,
		Phone:              in.Phone,
		Position:           in.Position,
		Message:            in.Message,
		ResumeOriginalName: resume.OriginalName,
		ResumePath:         resume.Path,
		Status:             models.StatusPending,
	}

	if err := s.repo.Create(ctx, app); err != nil {
		s.discard(ctx, resume)
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeConflict, op, "An application with this email already exists", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Failed to submit application", err)
	}
	return app, nil
}

func (s *applicationService) Resume(ctx context.Context, id string) (string, string, error) {
	const op = "ApplicationService.Resume"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", "", utils.E(utils.CodeInvalidArgument, op, "Invalid application ID format", err)
	}

	app, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", "", utils.E(utils.CodeNotFound, op, "Application not found", err)
		}
		return "", "", utils.E(utils.CodeInternal, op, "Failed to download resume", err)
	}

	// Three distinct not-found causes, same status for the client.
	if app.ResumePath == "" {
		return "", "", utils.E(utils.CodeNotFound, op, "Resume file not found", nil)
	}
	if !s.store.Exists(app.ResumePath) {
		s.log.WithField("application_id", id).Warn("resume file missing on disk")
		return "", "", utils.E(utils.CodeNotFound, op, "Resume file does not exist on server", nil)
	}

	name := app.ResumeOriginalName
	if name == "" {
		name = "resume"
	}
	return app.ResumePath, name, nil
}

func (s *applicationService) Delete(ctx context.Context, id string) error {
	const op = "ApplicationService.Delete"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "Invalid application ID format", err)
	}

	app, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Application not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Failed to delete application", err)
	}

	// Best effort; a stuck file never blocks document deletion.
	if app.ResumePath != "" {
		if err := s.store.Remove(ctx, app.ResumePath); err != nil {
			s.log.WithError(err).WithField("application_id", id).Warn("failed to remove resume file")
		}
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Application not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Failed to delete application", err)
	}
	return nil
}
