package reviews

import (
	"net/http"

	"github.com/Jeomhps/business-reviews/internal/db"
	"github.com/Jeomhps/business-reviews/internal/handlers/common"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Create adds a review of a business by a user.
// KISS flow:
// 1) Validate payload (user_id, business_id, stars; review_text defaults to "")
// 2) Store checks the business exists (404) and the user has no review of it yet (409)
// 3) Insert and return the review with business and self links
func (h *Handler) Create(c *gin.Context) {
	var in struct {
		UserID     *int64  `json:"user_id"`
		BusinessID *int64  `json:"business_id"`
		Stars      *int64  `json:"stars"`
		ReviewText *string `json:"review_text"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.UserID == nil || in.BusinessID == nil || in.Stars == nil {
		common.Error(c, http.StatusBadRequest, common.MsgMissingAttributes)
		return
	}
	text := ""
	if in.ReviewText != nil {
		text = *in.ReviewText
	}

	r := db.Review{UserID: *in.UserID, BusinessID: *in.BusinessID, Stars: *in.Stars, ReviewText: &text}
	id, err := h.db.CreateReview(c.Request.Context(), r)
	switch {
	case errors.Is(err, db.ErrBusinessNotFound):
		common.Error(c, http.StatusNotFound, common.MsgBusinessNotFound)
		return
	case errors.Is(err, db.ErrReviewExists):
		common.Error(c, http.StatusConflict, common.MsgReviewExists)
		return
	case err != nil:
		common.Log(c, h.log).Errorf("create review: %+v", err)
		common.Error(c, http.StatusInternalServerError, common.MsgCreateFailed)
		return
	}
	r.ID = id

	c.JSON(http.StatusCreated, toJSON(r, common.BaseURL(c, h.baseURL)))
}
