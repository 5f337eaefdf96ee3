package http

import (
	"github.com/campusware/school-backend/internal/announcement"
)

// Response is the wire form of an announcement. Dates are YYYY-MM-DD
// strings; start_date is null when the announcement has no start bound.
type Response struct {
	ID             string  `json:"id"`
	Message        string  `json:"message"`
	StartDate      *string `json:"start_date"`
	ExpirationDate string  `json:"expiration_date"`
	CreatedBy      string  `json:"created_by"`
}

func NewResponse(a *announcement.Announcement) Response {
	return Response{
		ID:             a.ID,
		Message:        a.Message,
		StartDate:      a.StartDate,
		ExpirationDate: a.ExpirationDate,
		CreatedBy:      a.CreatedBy,
	}
}

func newListResponse(list []*announcement.Announcement) []Response {
	items := make([]Response, len(list))
	for i, a := range list {
		items[i] = NewResponse(a)
	}
	return items
}

type CreateBody struct {
	Message        string  `json:"message" binding:"required"`
	ExpirationDate string  `json:"expiration_date" binding:"required"`
	StartDate      *string `json:"start_date"`
}

type UpdateBody struct {
	Message        string  `json:"message" binding:"required"`
	ExpirationDate string  `json:"expiration_date" binding:"required"`
	StartDate      *string `json:"start_date"`
}
