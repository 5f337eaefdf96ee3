package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusware/school-backend/internal/teacher"
)

// TeacherRequired is a Gin middleware that resolves the teacher_username
// query parameter against the teacher directory. Existence of the entry is
// the sole authentication signal; no credential is verified. The response
// for a missing or unknown username is a uniform 401 so nothing about the
// directory leaks.
func TeacherRequired(teachers teacher.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Query("teacher_username")
		if username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		if _, err := teachers.GetByUsername(c.Request.Context(), username); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		// Store the verified username for later handlers.
		c.Set("teacherUsername", username)

		c.Next()
	}
}
