// Package entity contains the core business objects of the project.
package entity

import "time"

// PostKind tells whether a post reports a lost or a found item.
type PostKind string

const (
	PostKindLost  PostKind = "lost"
	PostKindFound PostKind = "found"
)

// Valid reports whether the kind is one of the known values.
func (k PostKind) Valid() bool {
	return k == PostKindLost || k == PostKindFound
}

// Post is a lost or found report.
type Post struct {
	ID           string    `json:"id"`           // Hex ObjectID assigned by the store.
	Kind         PostKind  `json:"kind"`         // lost or found.
	Title        string    `json:"title"`        // Short item name, e.g. "Black wallet".
	Description  string    `json:"description"`  // Free-text details.
	Category     string    `json:"category"`     // Item category, e.g. "Wallets".
	District     string    `json:"district"`     // Human-readable district or place label.
	GPS          string    `json:"gps"`          // "lat,lng" as captured by the client; may be empty.
	ImageURLs    []string  `json:"imageUrls"`    // Hosted image links.
	ContactPhone string    `json:"contactPhone"` // Optional phone number shown on the post.
	AuthorID     string    `json:"authorId"`     // Identity provider subject of the author.
	AuthorEmail  string    `json:"authorEmail"`  // Author contact email.
	Resolved     bool      `json:"resolved"`     // Set once the item is returned to its owner.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CandidateID implements proximity.Candidate.
func (p *Post) CandidateID() string {
	return p.ID
}

// CandidateGPS implements proximity.Candidate.
func (p *Post) CandidateGPS() string {
	return p.GPS
}

// Author is the identity acting on a post.
type Author struct {
	ID    string
	Email string
}
