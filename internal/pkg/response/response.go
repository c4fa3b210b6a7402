package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers in the same envelope: {success,data} on the happy
// path, {success,error:{code,message}} otherwise. The static front end
// branches on success before touching anything else.

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ValidationFailed is the booking-form contract: a 400 whose details map
// each failing field to the message the form renders under that input.
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Please fix the highlighted fields",
			"details": fields,
		},
	})
}
