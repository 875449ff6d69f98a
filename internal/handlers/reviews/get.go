package reviews

import (
	"net/http"

	"github.com/Jeomhps/business-reviews/internal/db"
	"github.com/Jeomhps/business-reviews/internal/handlers/common"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Get returns a single review by id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := common.ParamID(c, "id")
	if !ok {
		common.Error(c, http.StatusNotFound, common.MsgReviewNotFound)
		return
	}

	r, err := h.db.GetReview(c.Request.Context(), id)
	switch {
	case errors.Is(err, db.ErrReviewNotFound):
		common.Error(c, http.StatusNotFound, common.MsgReviewNotFound)
		return
	case err != nil:
		common.Log(c, h.log).Errorf("get review %d: %+v", id, err)
		common.Error(c, http.StatusInternalServerError, "Unable to get review")
		return
	}

	c.JSON(http.StatusOK, toJSON(r, common.BaseURL(c, h.baseURL)))
}
