package reviews

import (
	"encoding/json"
	"net/http"

	"github.com/Jeomhps/business-reviews/internal/db"
	"github.com/Jeomhps/business-reviews/internal/handlers/common"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// optionalText records whether review_text was present in the body at all,
// so an explicit null can be told apart from a missing key.
type optionalText struct {
	set bool
	val *string
}

func (o *optionalText) UnmarshalJSON(b []byte) error {
	o.set = true
	if string(b) == "null" {
		o.val = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.val = &s
	return nil
}

// Update changes a review's stars and, when given, its text.
// - stars is required
// - review_text left out keeps the stored text; null clears it
// - user_id and business are always the stored ones
func (h *Handler) Update(c *gin.Context) {
	var in struct {
		Stars      *int64       `json:"stars"`
		ReviewText optionalText `json:"review_text"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.Stars == nil {
		common.Error(c, http.StatusBadRequest, common.MsgMissingAttributes)
		return
	}
	id, ok := common.ParamID(c, "id")
	if !ok {
		common.Error(c, http.StatusNotFound, common.MsgReviewNotFound)
		return
	}

	u := db.ReviewUpdate{Stars: *in.Stars, SetText: in.ReviewText.set, ReviewText: in.ReviewText.val}
	r, err := h.db.UpdateReview(c.Request.Context(), id, u)
	switch {
	case errors.Is(err, db.ErrReviewNotFound):
		common.Error(c, http.StatusNotFound, common.MsgReviewNotFound)
		return
	case err != nil:
		common.Log(c, h.log).Errorf("update review %d: %+v", id, err)
		common.Error(c, http.StatusInternalServerError, "Unable to update review")
		return
	}

	c.JSON(http.StatusOK, toJSON(r, common.BaseURL(c, h.baseURL)))
}
