package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response defines the common response envelope
type Response struct {
	Code   int         `json:"code"`
	Mess   string      `json:"mess"`
	Data   interface{} `json:"data,omitempty"`
	Errors []string    `json:"errors,omitempty"`
}

// Success returns a successful response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

// SuccessWithErrors returns a 200 response whose body carries the per-item
// failure messages of a batch next to the resulting data. Soft failures are
// informational, not an error status.
func SuccessWithErrors(c *gin.Context, data interface{}, errs []string) {
	c.JSON(http.StatusOK, Response{
		Code:   1,
		Mess:   "Success",
		Data:   data,
		Errors: errs,
	})
}

// Error returns an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: code,
		Mess: message,
	})
}

// ServerError returns a server error response
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Server error",
	})
}

// Unauthorized returns an unauthenticated response
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Unauthenticated",
	})
}

// Forbidden returns a no-permission response
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Permission denied",
	})
}

// NotFound returns a not-found response
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Not found",
	})
}

// NotFoundWithMessage returns a not-found response with a custom message
func NotFoundWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

// ValidationError returns a validation error response
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// BadRequest returns a bad request response
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict returns a conflict response (409)
func Conflict(c *gin.Context) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: "Data conflict",
	})
}
