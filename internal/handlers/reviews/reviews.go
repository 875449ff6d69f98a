package reviews

import (
	"context"

	"github.com/Jeomhps/business-reviews/internal/db"
	"github.com/Jeomhps/business-reviews/internal/handlers/common"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Package reviews provides review management HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type, its store contract and response shaping.
// The HTTP methods are implemented in dedicated files:
// - create.go: Handler.Create
// - get.go:    Handler.Get
// - update.go: Handler.Update
// - delete.go: Handler.Delete
// - user.go:   Handler.ListByUser

// Store is the slice of the data store the review endpoints need.
type Store interface {
	CreateReview(ctx context.Context, r db.Review) (int64, error)
	GetReview(ctx context.Context, id int64) (db.Review, error)
	UpdateReview(ctx context.Context, id int64, u db.ReviewUpdate) (db.Review, error)
	DeleteReview(ctx context.Context, id int64) (bool, error)
	ListReviewsByUser(ctx context.Context, userID int64) ([]db.Review, error)
}

// Handler wires review endpoints to the data store.
type Handler struct {
	db      Store
	baseURL string
	log     logrus.FieldLogger
}

// New returns a new reviews handler. baseURL may be empty, in which case
// links are built from the incoming request.
func New(s Store, baseURL string, log logrus.FieldLogger) *Handler {
	return &Handler{db: s, baseURL: baseURL, log: log}
}

// toJSON shapes a review: business_id becomes a business link.
func toJSON(r db.Review, base string) gin.H {
	return gin.H{
		"id":          r.ID,
		"user_id":     r.UserID,
		"business":    common.BusinessURL(base, r.BusinessID),
		"stars":       r.Stars,
		"review_text": r.ReviewText,
		"self":        common.ReviewURL(base, r.ID),
	}
}
