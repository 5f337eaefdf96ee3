package http

import (
	"time"

	"github.com/campusware/school-backend/internal/teacher"
)

type Response struct {
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewResponse(t *teacher.Teacher) Response {
	return Response{
		Username:    t.Username,
		DisplayName: t.DisplayName,
		CreatedAt:   t.CreatedAt,
	}
}

type RegisterBody struct {
	Username    string  `json:"username" binding:"required"`
	DisplayName *string `json:"display_name"`
}
