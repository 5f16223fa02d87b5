package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alexdata/portfolio/internal/logger"
)

// Response is the JSON envelope of the /api endpoints.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// renderError answers an HTML request with the error fragment.
func renderError(c *gin.Context, code int, message string) {
	c.HTML(code, "error", gin.H{"Code": code, "Message": message})
	c.Abort()
}

// InternalServerError logs err and answers with a generic message.
func InternalServerError(c *gin.Context, err error) {
	logger.Log.Error("internal server error",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Error(err),
	)
	Error(c, http.StatusInternalServerError, "internal server error")
}
