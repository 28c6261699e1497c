// Package handlers contains the gin HTTP handlers for the FilingDesk API.
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/FilingDesk/pkg/errors"
	"github.com/turtacn/FilingDesk/pkg/types/common"
)

// respond writes the standard success envelope.
func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, common.APIResponse[interface{}]{
		Success:   true,
		Data:      data,
		RequestID: requestID(c),
		Timestamp: time.Now().UTC(),
	})
}

// respondError maps an application error onto the envelope, using the code
// tables to choose the status and masking server-side detail.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)

	message := err.Error()
	if errors.IsServerError(code) {
		message = errors.DefaultMessageForCode(code)
	}

	c.JSON(status, common.APIResponse[interface{}]{
		Success: false,
		Error: &common.ErrorDetail{
			Code:    code.String(),
			Message: message,
		},
		RequestID: requestID(c),
		Timestamp: time.Now().UTC(),
	})
}

func requestID(c *gin.Context) string {
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return string(common.NewID())
}

// parsePagination extracts offset/limit query parameters with bounds.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset = 0
	limit = 50
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	return offset, limit
}

// parseIndex extracts a list index path parameter.
func parseIndex(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n < 0 {
		respondError(c, errors.New(errors.ErrCodeEntryIndexOutOfRange,
			"index must be a non-negative integer"))
		return 0, false
	}
	return n, true
}

// noContent is the empty success reply for deletes.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
