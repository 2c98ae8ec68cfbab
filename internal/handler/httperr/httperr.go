package httperr

import (
	"net/http"

	"roomescape/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const InternalErrorMessage = "서버 내부 오류가 발생했습니다."

type Response struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithUseCaseError renders business errors as 400 with their own
// message and anything else as 500.
func AbortWithUseCaseError(c *gin.Context, err error) {
	if de, ok := errs.AsDomain(err); ok {
		AbortWithError(c, http.StatusBadRequest, err, de.Message)
		return
	}
	AbortWithError(c, http.StatusInternalServerError, err, InternalErrorMessage)
}
