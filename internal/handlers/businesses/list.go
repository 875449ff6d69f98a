package businesses

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Jeomhps/business-reviews/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

const (
	defaultOffset = 0
	defaultLimit  = 3
)

// List returns one page of businesses ordered by id.
//   - Query params: offset (default 0), limit (default 3)
//   - next is null once a page comes back short; it does not prove there is
//     nothing after a full page.
func (h *Handler) List(c *gin.Context) {
	offset, err1 := intQuery(c, "offset", defaultOffset)
	limit, err2 := intQuery(c, "limit", defaultLimit)
	if err1 != nil || err2 != nil {
		common.Error(c, http.StatusBadRequest, "offset and limit must be integers")
		return
	}

	bs, err := h.db.ListBusinesses(c.Request.Context(), limit, offset)
	if err != nil {
		common.Log(c, h.log).Errorf("list businesses: %+v", err)
		common.Error(c, http.StatusInternalServerError, "Unable to list businesses")
		return
	}

	base := common.BaseURL(c, h.baseURL)
	var next any
	if len(bs) >= limit {
		next = fmt.Sprintf("%s/%s?limit=%d&offset=%d", base, common.Businesses, limit, offset+limit)
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": listJSON(bs, base),
		"next":    next,
	})
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	v, ok := c.GetQuery(key)
	if !ok {
		return def, nil
	}
	return strconv.Atoi(v)
}
