package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusware/school-backend/internal/announcement"
	"github.com/campusware/school-backend/internal/auth"
	"github.com/campusware/school-backend/internal/pkg/apperror"
	"github.com/campusware/school-backend/internal/pkg/request"
	"github.com/campusware/school-backend/internal/pkg/response"
)

type Handler struct {
	service announcement.Service
}

func NewHandler(service announcement.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListActive(c *gin.Context) {
	list, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newListResponse(list))
}

func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context(), auth.GetTeacherUsername(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newListResponse(list))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := announcement.CreateRequest{
		Message:         body.Message,
		ExpirationDate:  body.ExpirationDate,
		StartDate:       body.StartDate,
		TeacherUsername: auth.GetTeacherUsername(c),
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewResponse(a))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid announcement id"})
		return
	}

	var body UpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := announcement.UpdateRequest{
		Message:         body.Message,
		ExpirationDate:  body.ExpirationDate,
		StartDate:       body.StartDate,
		TeacherUsername: auth.GetTeacherUsername(c),
	}

	a, err := h.service.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(a))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid announcement id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetTeacherUsername(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "announcement deleted successfully"})
}

// respondError maps domain sentinels onto status codes. Messages stay
// static; underlying store errors fall through to the generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, announcement.ErrUnknownTeacher):
		response.Error(c, apperror.Wrap(err, http.StatusUnauthorized, "authentication required"))
	case errors.Is(err, announcement.ErrInvalidDate),
		errors.Is(err, announcement.ErrMessageRequired):
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, err.Error()))
	case errors.Is(err, announcement.ErrNotFound):
		response.Error(c, apperror.Wrap(err, http.StatusNotFound, "announcement not found"))
	case errors.Is(err, announcement.ErrUpdateFailed):
		response.Error(c, apperror.Wrap(err, http.StatusInternalServerError, "failed to update announcement"))
	default:
		response.Error(c, err)
	}
}
