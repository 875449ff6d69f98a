package businesses

import (
	"net/http"

	"github.com/Jeomhps/business-reviews/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Delete removes a business by id; its reviews go with it.
// KISS flow:
// 1) Attempt deletion
// 2) If no row was removed -> not_found
// 3) Otherwise -> 204 with an empty body
func (h *Handler) Delete(c *gin.Context) {
	id, ok := common.ParamID(c, "id")
	if !ok {
		common.Error(c, http.StatusNotFound, common.MsgBusinessNotFound)
		return
	}

	deleted, err := h.db.DeleteBusiness(c.Request.Context(), id)
	if err != nil {
		common.Log(c, h.log).Errorf("delete business %d: %+v", id, err)
		common.Error(c, http.StatusInternalServerError, "Unable to delete business")
		return
	}
	if !deleted {
		common.Error(c, http.StatusNotFound, common.MsgBusinessNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
