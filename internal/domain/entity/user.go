package entity

import "time"

// User is a community member as known to this service. Identity itself lives with
// the external provider; only the subject id, contact and last known location are kept.
type User struct {
	ID        string    `json:"id"`    // Identity provider subject.
	Email     string    `json:"email"` // Primary contact email.
	Name      string    `json:"name"`  // Display name.
	GPS       string    `json:"gps"`   // Last known "lat,lng"; empty when the user never shared one.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CandidateID implements proximity.Candidate.
func (u *User) CandidateID() string {
	return u.ID
}

// CandidateGPS implements proximity.Candidate.
func (u *User) CandidateGPS() string {
	return u.GPS
}
