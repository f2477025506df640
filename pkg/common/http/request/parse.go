package request

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-boundedqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-boundedqueue/pkg/common/http/response"
	"github.com/huynhanx03/go-boundedqueue/pkg/common/http/validation"
)

// ParseRequest binds the JSON body into T and validates it. On failure the
// error response is already written and ok is false. An empty body binds
// to the zero value.
func ParseRequest[T any](c *gin.Context) (*T, bool) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.ErrorResponse(c, apperr.New(apperr.CodeParamInvalid, err.Error(), http.StatusBadRequest, err))
		return nil, false
	}

	if ok, msg := validation.IsRequestValid(req); !ok {
		response.ErrorResponse(c, apperr.New(apperr.CodeParamInvalid, msg, http.StatusBadRequest, nil))
		return nil, false
	}

	return &req, true
}
