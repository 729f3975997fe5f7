package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	GalleryTypeImage   = "image"
	GalleryTypeYouTube = "youtube"
)

// GalleryItem is polymorphic over image and youtube entries. Image items carry
// Src (relative path under the uploads prefix); youtube items carry YtID and URL.
type GalleryItem struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Type string             `bson:"type" json:"type"`
	Name string             `bson:"name" json:"name"`

	Src  string `bson:"src,omitempty" json:"src,omitempty"`
	YtID string `bson:"ytId,omitempty" json:"ytId,omitempty"`
	URL  string `bson:"url,omitempty" json:"url,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
