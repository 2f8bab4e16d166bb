package middleware

import (
	"errors"
	"net/http"

	"recipe-transformer/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// DebugKey is the context key holding whether error details are exposed.
const DebugKey = "debug"

// AbortWithError writes the error envelope for err and stops the chain.
func AbortWithError(c *gin.Context, err error) {
	ce := common.AsCustomError(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(ce.Status, ce.Response(c.GetBool(DebugKey)))
}

// BindJSON decodes the request body into v. On failure it writes a 413 for
// oversized bodies or a 400 otherwise and reports false.
func BindJSON(c *gin.Context, v interface{}) bool {
	err := c.ShouldBindJSON(v)
	if err == nil {
		return true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		AbortWithError(c, common.ErrRequestTooLarge)
		return false
	}
	AbortWithError(c, common.NewInvalidArgument(common.ErrInvalidRequest.Message, err))
	return false
}
