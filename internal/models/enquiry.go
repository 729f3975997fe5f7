package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Enquiry struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"` // stored lower-case, not unique
	Message string             `bson:"message" json:"message"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
