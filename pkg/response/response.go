package response

import "github.com/gin-gonic/gin"

// ErrorBody is the wire shape of every error response
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON sends a successful response with the payload as-is
func JSON(c *gin.Context, data interface{}) {
	c.JSON(200, data)
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// NotFound sends a 404 not found response
func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

// InternalError sends a 500 internal server error response
func InternalError(c *gin.Context, message string) {
	Error(c, 500, message)
}
