package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusware/school-backend/internal/pkg/apperror"
	"github.com/campusware/school-backend/internal/pkg/response"
	"github.com/campusware/school-backend/internal/teacher"
)

type Handler struct {
	service teacher.Service
}

func NewHandler(service teacher.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]Response, len(list))
	for i, t := range list {
		items[i] = NewResponse(t)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	username := c.Param("username")

	t, err := h.service.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, teacher.ErrNotFound) {
			response.Error(c, apperror.Wrap(err, http.StatusNotFound, "teacher not found"))
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(t))
}

func (h *Handler) Register(c *gin.Context) {
	var body RegisterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := teacher.RegisterRequest{
		Username:    body.Username,
		DisplayName: body.DisplayName,
	}

	t, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, teacher.ErrUsernameRequired):
			response.Error(c, apperror.Wrap(err, http.StatusBadRequest, err.Error()))
		case errors.Is(err, teacher.ErrUsernameTaken):
			response.Error(c, apperror.Wrap(err, http.StatusConflict, err.Error()))
		default:
			response.Error(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, NewResponse(t))
}
