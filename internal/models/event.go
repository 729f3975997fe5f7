package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title string             `bson:"title" json:"title"`
	Desc  string             `bson:"desc" json:"desc"`
	Date  string             `bson:"date" json:"date"` // free-form, e.g. "2025-08-15"

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
