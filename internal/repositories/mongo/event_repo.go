package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lkcs/lkcs-backend/internal/models"
	"github.com/lkcs/lkcs-backend/internal/utils"
)

type EventRepository interface {
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, e *models.Event) error
	// Update replaces title/desc/date only and returns the updated document.
	Update(ctx context.Context, id primitive.ObjectID, title, desc, date string) (*models.Event, error)
	// Delete succeeds whether or not the document exists.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type eventRepo struct {
	col *mongo.Collection
}

func NewEventRepo(db *mongo.Database) EventRepository {
	return &eventRepo{col: db.Collection("events")}
}

func (r *eventRepo) List(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Event{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *eventRepo) Create(ctx context.Context, e *models.Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return nil
}

func (r *eventRepo) Update(ctx context.Context, id primitive.ObjectID, title, desc, date string) (*models.Event, error) {
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var e models.Event
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"title": title, "desc": desc, "date": date}},
		opts,
	).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
