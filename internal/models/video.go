package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video is the metadata document describing one uploaded video. The binary
// itself lives in the blob store under StorageKey; StreamURL is derived from
// the serving request and never persisted.
type Video struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Publisher  string             `bson:"publisher" json:"publisher"`
	Producer   string             `bson:"producer" json:"producer"`
	Genre      string             `bson:"genre,omitempty" json:"genre,omitempty"`
	AgeRating  string             `bson:"age_rating,omitempty" json:"ageRating,omitempty"`
	StorageKey string             `bson:"storage_key" json:"storageKey"`
	CreatorID  primitive.ObjectID `bson:"creator,omitempty" json:"creatorId,omitempty"`
	Size       int64              `bson:"size,omitempty" json:"size,omitempty"`
	MimeType   string             `bson:"mime_type,omitempty" json:"mimeType,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	StreamURL  string             `bson:"-" json:"streamUrl,omitempty"`
}

// Creator is the limited projection of a user shown next to a video in
// listings (username and email only, resolved at query time).
type Creator struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Username string             `bson:"username" json:"username,omitempty"`
	Email    string             `bson:"email" json:"email,omitempty"`
}

// VideoWithCreator is a catalog listing entry.
type VideoWithCreator struct {
	Video   `bson:",inline"`
	Creator *Creator `bson:"creator_doc,omitempty" json:"creator,omitempty"`
}
