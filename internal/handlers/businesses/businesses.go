package businesses

import (
	"context"
	"net/http"

	"github.com/Jeomhps/business-reviews/internal/db"
	"github.com/Jeomhps/business-reviews/internal/handlers/common"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Package businesses provides business management HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type, its store contract and response shaping.
// The HTTP methods are split into dedicated, focused files:
// - create.go: Handler.Create
// - get.go:    Handler.Get
// - list.go:   Handler.List
// - owner.go:  Handler.ListByOwner
// - update.go: Handler.Update
// - delete.go: Handler.Delete

// Store is the slice of the data store the business endpoints need.
type Store interface {
	CreateBusiness(ctx context.Context, b db.Business) (int64, error)
	GetBusiness(ctx context.Context, id int64) (db.Business, error)
	ListBusinesses(ctx context.Context, limit, offset int) ([]db.Business, error)
	ListBusinessesByOwner(ctx context.Context, ownerID int64) ([]db.Business, error)
	UpdateBusiness(ctx context.Context, b db.Business) error
	DeleteBusiness(ctx context.Context, id int64) (bool, error)
}

// Handler wires business endpoints to the data store.
type Handler struct {
	db      Store
	baseURL string
	log     logrus.FieldLogger
}

// New returns a new businesses handler. baseURL may be empty, in which case
// links are built from the incoming request.
func New(s Store, baseURL string, log logrus.FieldLogger) *Handler {
	return &Handler{db: s, baseURL: baseURL, log: log}
}

// input is the create/update payload. Pointers distinguish absent keys.
type input struct {
	OwnerID       *int64  `json:"owner_id"`
	Name          *string `json:"name"`
	StreetAddress *string `json:"street_address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	ZipCode       *int64  `json:"zip_code"`
}

func (in input) complete() bool {
	return in.OwnerID != nil && in.Name != nil && in.StreetAddress != nil &&
		in.City != nil && in.State != nil && in.ZipCode != nil
}

func (in input) business(id int64) db.Business {
	return db.Business{
		ID:            id,
		OwnerID:       *in.OwnerID,
		Name:          *in.Name,
		StreetAddress: *in.StreetAddress,
		City:          *in.City,
		State:         *in.State,
		ZipCode:       *in.ZipCode,
	}
}

// bind decodes the body and reports whether every required key is present.
// It writes the 400 response itself when not.
func bind(c *gin.Context) (input, bool) {
	var in input
	if err := c.ShouldBindJSON(&in); err != nil || !in.complete() {
		common.Error(c, http.StatusBadRequest, common.MsgMissingAttributes)
		return in, false
	}
	return in, true
}

func toJSON(b db.Business, base string) gin.H {
	return gin.H{
		"id":             b.ID,
		"owner_id":       b.OwnerID,
		"name":           b.Name,
		"street_address": b.StreetAddress,
		"city":           b.City,
		"state":          b.State,
		"zip_code":       b.ZipCode,
		"self":           common.BusinessURL(base, b.ID),
	}
}

func listJSON(bs []db.Business, base string) []gin.H {
	out := make([]gin.H, 0, len(bs))
	for _, b := range bs {
		out = append(out, toJSON(b, base))
	}
	return out
}
