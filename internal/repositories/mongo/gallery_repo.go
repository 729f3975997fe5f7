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

type GalleryRepository interface {
	List(ctx context.Context) ([]models.GalleryItem, error)
	Create(ctx context.Context, item *models.GalleryItem) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.GalleryItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type galleryRepo struct {
	col *mongo.Collection
}

func NewGalleryRepo(db *mongo.Database) GalleryRepository {
	return &galleryRepo{col: db.Collection("gallery_items")}
}

func (r *galleryRepo) List(ctx context.Context) ([]models.GalleryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.GalleryItem{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *galleryRepo) Create(ctx context.Context, item *models.GalleryItem) error {
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

func (r *galleryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.GalleryItem, error) {
	var item models.GalleryItem
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *galleryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
