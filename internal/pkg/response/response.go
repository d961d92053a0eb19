package response

import "github.com/gin-gonic/gin"

// Message writes the {"message": ...} body the submit contract uses for
// acknowledgements and internal failures.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
	})
}

// Error writes the {"error": ...} body used for client-side faults.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": message,
	})
}

// Success writes the envelope used by non-contract endpoints.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}
