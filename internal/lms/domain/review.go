package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5

	// NoCourse is recorded when the reviewer has no course on file.
	NoCourse = "N/A"
)

// Review snapshots the author's name and email at creation time.
type Review struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Course    string
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReviewAuthor is the author as currently stored.
type ReviewAuthor struct {
	FirstName string
	LastName  string
	Email     string
}

// DeletedAuthor stands in for authors that no longer exist.
var DeletedAuthor = ReviewAuthor{FirstName: "Deleted", LastName: "User"}

// ReviewWithAuthor is a review joined with its author's live record.
type ReviewWithAuthor struct {
	Review
	Author ReviewAuthor
}
