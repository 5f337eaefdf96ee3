package auth

import "github.com/gin-gonic/gin"

// GetTeacherUsername returns the authenticated teacher's username or empty
// string when the request did not pass TeacherRequired.
func GetTeacherUsername(c *gin.Context) string {
	if v, ok := c.Get("teacherUsername"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
