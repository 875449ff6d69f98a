package reviews

import (
	"net/http"

	"github.com/Jeomhps/business-reviews/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// ListByUser returns every review written by a user, unpaginated.
func (h *Handler) ListByUser(c *gin.Context) {
	userID, ok := common.ParamID(c, "user_id")
	if !ok {
		common.Error(c, http.StatusNotFound, common.MsgNotFound)
		return
	}

	rs, err := h.db.ListReviewsByUser(c.Request.Context(), userID)
	if err != nil {
		common.Log(c, h.log).Errorf("list reviews for user %d: %+v", userID, err)
		common.Error(c, http.StatusInternalServerError, "Unable to list reviews")
		return
	}

	base := common.BaseURL(c, h.baseURL)
	out := make([]gin.H, 0, len(rs))
	for _, r := range rs {
		out = append(out, toJSON(r, base))
	}
	c.JSON(http.StatusOK, out)
}
