package reviews

import (
	"net/http"

	"github.com/Jeomhps/business-reviews/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Delete removes a review by id: 204 when a row went away, 404 otherwise.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := common.ParamID(c, "id")
	if !ok {
		common.Error(c, http.StatusNotFound, common.MsgReviewNotFound)
		return
	}

	deleted, err := h.db.DeleteReview(c.Request.Context(), id)
	if err != nil {
		common.Log(c, h.log).Errorf("delete review %d: %+v", id, err)
		common.Error(c, http.StatusInternalServerError, "Unable to delete review")
		return
	}
	if !deleted {
		common.Error(c, http.StatusNotFound, common.MsgReviewNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
