package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-boundedqueue/pkg/common/apperr"
)

const (
	CodeSuccess = 2000
	MsgSuccess  = "success"
)

// Response is the envelope for every API reply.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResponse writes data with status 200.
func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: MsgSuccess,
		Data:    data,
	})
}

// ErrorResponse writes err using the code and status of its AppError.
func ErrorResponse(c *gin.Context, err error) {
	appErr := apperr.As(err)
	c.AbortWithStatusJSON(appErr.HTTPStatus, Response{
		Code:    appErr.Code,
		Message: appErr.Error(),
	})
}
