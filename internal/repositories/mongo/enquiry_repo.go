package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lkcs/lkcs-backend/internal/models"
	"github.com/lkcs/lkcs-backend/internal/utils"
)

type EnquiryRepository interface {
	// Page returns one page of enquiries, newest first, plus the total count.
	Page(ctx context.Context, page, limit int) ([]models.Enquiry, int64, error)
	Create(ctx context.Context, e *models.Enquiry) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type enquiryRepo struct {
	col *mongo.Collection
}

func NewEnquiryRepo(db *mongo.Database) EnquiryRepository {
	return &enquiryRepo{col: db.Collection("enquiries")}
}

func (r *enquiryRepo) Page(ctx context.Context, page, limit int) ([]models.Enquiry, int64, error) {
	skip := int64(page-1) * int64(limit)

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	items := []models.Enquiry{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *enquiryRepo) Create(ctx context.Context, e *models.Enquiry) error {
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return nil
}

func (r *enquiryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
