package response

import "github.com/gin-gonic/gin"

const (
	CodeInvalidID   = "INVALID_ID"
	CodeInvalidJSON = "INVALID_JSON"
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeNoWarehouse = "NO_WAREHOUSE"
	CodeInternal    = "INTERNAL_ERROR"
	CodeBadRequest  = "BAD_REQUEST"
	CodeUnavailable = "SERVICE_UNAVAILABLE"
)

// ErrorBody is the envelope every failed request answers with.
type ErrorBody struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// JSON writes data as the bare response body.
func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{
		Error: ErrorDetail{Code: code, Message: message},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details map[string]string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{
		Error: ErrorDetail{Code: code, Message: message, Details: details},
	})
}
