package db

import "github.com/pkg/errors"

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrReviewNotFound   = errors.New("review not found")
	// ErrReviewExists means the user already reviewed the business.
	ErrReviewExists = errors.New("review already exists")
)

type Business struct {
	ID            int64  `db:"business_id"`
	OwnerID       int64  `db:"owner_id"`
	Name          string `db:"name"`
	StreetAddress string `db:"street_address"`
	City          string `db:"city"`
	State         string `db:"state"`
	ZipCode       int64  `db:"zip_code"`
}

type Review struct {
	ID         int64   `db:"review_id"`
	UserID     int64   `db:"user_id"`
	BusinessID int64   `db:"business_id"`
	Stars      int64   `db:"stars"`
	ReviewText *string `db:"review_text"` // nullable column
}

// ReviewUpdate is the editable part of a review. When SetText is false the
// stored review_text is kept; otherwise it becomes ReviewText, and nil stores NULL.
type ReviewUpdate struct {
	Stars      int64
	SetText    bool
	ReviewText *string
}
