package businesses

import (
	"net/http"

	"github.com/Jeomhps/business-reviews/internal/db"
	"github.com/Jeomhps/business-reviews/internal/handlers/common"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Get returns a single business by id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := common.ParamID(c, "id")
	if !ok {
		common.Error(c, http.StatusNotFound, common.MsgBusinessNotFound)
		return
	}

	b, err := h.db.GetBusiness(c.Request.Context(), id)
	switch {
	case errors.Is(err, db.ErrBusinessNotFound):
		common.Error(c, http.StatusNotFound, common.MsgBusinessNotFound)
		return
	case err != nil:
		common.Log(c, h.log).Errorf("get business %d: %+v", id, err)
		common.Error(c, http.StatusInternalServerError, "Unable to get business")
		return
	}

	c.JSON(http.StatusOK, toJSON(b, common.BaseURL(c, h.baseURL)))
}
