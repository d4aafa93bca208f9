package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Skipped reports the deliberate non-persistence outcome of the lead gate.
// It is a success response, not an error.
func Skipped(c *gin.Context, statusCode int) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    gin.H{"skipped": true},
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
