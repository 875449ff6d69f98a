package businesses

import (
	"net/http"

	"github.com/Jeomhps/business-reviews/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Create registers a new business.
// KISS flow:
// 1) Validate payload (every attribute required)
// 2) Insert and read back the generated id in one transaction
// 3) Return the stored record with its self link
func (h *Handler) Create(c *gin.Context) {
	in, ok := bind(c)
	if !ok {
		return
	}

	b := in.business(0)
	id, err := h.db.CreateBusiness(c.Request.Context(), b)
	if err != nil {
		common.Log(c, h.log).Errorf("create business: %+v", err)
		common.Error(c, http.StatusInternalServerError, common.MsgCreateFailed)
		return
	}
	b.ID = id

	c.JSON(http.StatusCreated, toJSON(b, common.BaseURL(c, h.baseURL)))
}
