package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostDocument is the BSON shape of a post in the 'posts' collection.
type PostDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Kind         string             `bson:"kind"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Category     string             `bson:"category"`
	District     string             `bson:"district"`
	GPS          string             `bson:"gps"`
	ImageURLs    []string           `bson:"image_urls,omitempty"`
	ContactPhone string             `bson:"contact_phone,omitempty"`
	AuthorID     string             `bson:"author_id"`
	AuthorEmail  string             `bson:"author_email"`
	Resolved     bool               `bson:"resolved"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// UserDocument is the BSON shape of a user in the 'users' collection. The identity subject is the _id.
type UserDocument struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Name      string    `bson:"name"`
	GPS       string    `bson:"gps,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
