package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lkcs/lkcs-backend/internal/models"
	mongorepo "github.com/lkcs/lkcs-backend/internal/repositories/mongo"
	"github.com/lkcs/lkcs-backend/internal/utils"
	"github.com/lkcs/lkcs-backend/internal/validate"
)

const (
	enquiryDefaultLimit = 50
	enquiryMaxLimit     = 200
)

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type EnquiryService interface {
	// List clamps page to >=1 and limit into [1,200] (0 means the default).
	List(ctx context.Context, page, limit int) ([]models.Enquiry, Pagination, error)
	Create(ctx context.Context, in validate.EnquiryInput) (*models.Enquiry, error)
	Delete(ctx context.Context, id string) error
}

type enquiryService struct {
	repo mongorepo.EnquiryRepository
}

func NewEnquiryService(repo mongorepo.EnquiryRepository) EnquiryService {
	return &enquiryService{repo: repo}
}

func clampEnquiryPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit == 0 {
		limit = enquiryDefaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > enquiryMaxLimit {
		limit = enquiryMaxLimit
	}
	return page, limit
}

func (s *enquiryService) List(ctx context.Context, page, limit int) ([]models.Enquiry, Pagination, error) {
	const op = "EnquiryService.List"

	page, limit = clampEnquiryPage(page, limit)

	items, total, err := s.repo.Page(ctx, page, limit)
	if err != nil {
		return nil, Pagination{}, utils.E(utils.CodeInternal, op, "Failed to fetch enquiries", err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return items, Pagination{Total: total, Page: page, Limit: limit, Pages: pages}, nil
}

func (s *enquiryService) Create(ctx context.Context, in validate.EnquiryInput) (*models.Enquiry, error) {
	const op = "EnquiryService.Create"

	in = validate.NormalizeEnquiry(in)
	if details := validate.Enquiry(in); len(details) > 0 {
		return nil, utils.EV(op, "Validation failed", details)
	}

	e := &models.Enquiry{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to submit enquiry", err)
	}
	return e, nil
}

func (s *enquiryService) Delete(ctx context.Context, id string) error {
	const op = "EnquiryService.Delete"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "Invalid enquiry ID", err)
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Enquiry not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Failed to delete enquiry", err)
	}
	return nil
}
