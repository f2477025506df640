package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-boundedqueue/pkg/common/http/request"
	"github.com/huynhanx03/go-boundedqueue/pkg/common/http/response"
)

// HandlerFunc is the generic function signature
type HandlerFunc[T any, R any] func(context.Context, *T) (R, error)

// Wrap converts a generic handler to a Gin handler
func Wrap[T any, R any](h HandlerFunc[T, R]) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := request.ParseRequest[T](c)
		if !ok {
			return
		}

		res, err := h(c.Request.Context(), req)
		if err != nil {
			response.ErrorResponse(c, err)
			return
		}

		response.SuccessResponse(c, res)
	}
}

// WrapNoBody converts a handler that takes no request body to a Gin handler
func WrapNoBody[R any](h func(context.Context) (R, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := h(c.Request.Context())
		if err != nil {
			response.ErrorResponse(c, err)
			return
		}

		response.SuccessResponse(c, res)
	}
}
