package api

import (
	"net/http"
	"strconv"

	"roomescape/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const InvalidIDMessage = "올바르지 않은 식별자입니다."

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, InvalidIDMessage)
		return 0, false
	}
	return id, true
}
