package businesses

import (
	"net/http"

	"github.com/Jeomhps/business-reviews/internal/db"
	"github.com/Jeomhps/business-reviews/internal/handlers/common"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Update replaces every attribute of a business.
// Payload validation runs before the existence check, so an incomplete body
// on an unknown id is a 400.
func (h *Handler) Update(c *gin.Context) {
	in, ok := bind(c)
	if !ok {
		return
	}
	id, ok := common.ParamID(c, "id")
	if !ok {
		common.Error(c, http.StatusNotFound, common.MsgBusinessNotFound)
		return
	}

	b := in.business(id)
	err := h.db.UpdateBusiness(c.Request.Context(), b)
	switch {
	case errors.Is(err, db.ErrBusinessNotFound):
		common.Error(c, http.StatusNotFound, common.MsgBusinessNotFound)
		return
	case err != nil:
		common.Log(c, h.log).Errorf("update business %d: %+v", id, err)
		common.Error(c, http.StatusInternalServerError, "Unable to update business")
		return
	}

	c.JSON(http.StatusOK, toJSON(b, common.BaseURL(c, h.baseURL)))
}
