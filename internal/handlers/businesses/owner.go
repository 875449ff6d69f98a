package businesses

import (
	"net/http"

	"github.com/Jeomhps/business-reviews/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// ListByOwner returns every business of an owner, unpaginated.
// An owner with no businesses gets an empty array, not a 404.
func (h *Handler) ListByOwner(c *gin.Context) {
	ownerID, ok := common.ParamID(c, "owner_id")
	if !ok {
		common.Error(c, http.StatusNotFound, common.MsgNotFound)
		return
	}

	bs, err := h.db.ListBusinessesByOwner(c.Request.Context(), ownerID)
	if err != nil {
		common.Log(c, h.log).Errorf("list businesses for owner %d: %+v", ownerID, err)
		common.Error(c, http.StatusInternalServerError, "Unable to list businesses")
		return
	}

	c.JSON(http.StatusOK, listJSON(bs, common.BaseURL(c, h.baseURL)))
}
