package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending     = "pending"
	StatusReviewed    = "reviewed"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
)

type Application struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"` // unique, stored lower-case
	Phone    string             `bson:"phone" json:"phone"`
	Position string             `bson:"position" json:"position"`
	Message  string             `bson:"message" json:"message"`

	ResumeOriginalName string `bson:"resumeOriginalName" json:"resumeOriginalName"`
	ResumePath         string `bson:"resumePath" json:"resumePath"`

	Status string `bson:"status" json:"status"` // pending|reviewed|shortlisted|rejected

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
