package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lkcs/lkcs-backend/internal/models"
	mongorepo "github.com/lkcs/lkcs-backend/internal/repositories/mongo"
	"github.com/lkcs/lkcs-backend/internal/utils"
)

type EventService interface {
	List(ctx context.Context) ([]models.Event, error)
	// Create stores title/desc/date as given. Events carry no field rules.
	Create(ctx context.Context, title, desc, date string) (*models.Event, error)
	Update(ctx context.Context, id, title, desc, date string) (*models.Event, error)
	// Delete is idempotent: removing an absent event succeeds.
	Delete(ctx context.Context, id string) error
}

type eventService struct {
	repo mongorepo.EventRepository
}

func NewEventService(repo mongorepo.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	const op = "EventService.List"

	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to fetch events", err)
	}
	return out, nil
}

func (s *eventService) Create(ctx context.Context, title, desc, date string) (*models.Event, error) {
	const op = "EventService.Create"

	e := &models.Event{Title: title, Desc: desc, Date: date}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to create event", err)
	}
	return e, nil
}

func (s *eventService) Update(ctx context.Context, id, title, desc, date string) (*models.Event, error) {
	const op = "EventService.Update"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "Not found", err)
	}

	e, err := s.repo.Update(ctx, oid, title, desc, date)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Failed to update event", err)
	}
	return e, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	const op = "EventService.Delete"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// nothing stored under a malformed id; deletion is still a success
		return nil
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		return utils.E(utils.CodeInternal, op, "Failed to delete event", err)
	}
	return nil
}
