package utils

import "github.com/gin-gonic/gin"

// OK writes a success envelope; extra fields ride alongside "ok".
func OK(c *gin.Context, payload gin.H) {
	body := gin.H{"ok": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(200, body)
}

// Fail writes a structured failure with the given client status.
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"ok": false, "message": msg})
}
