package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/amirlan/photobooking/internal/logger"
	"github.com/amirlan/photobooking/internal/model"
	"github.com/amirlan/photobooking/internal/service"
)

type ClientRequest struct {
	ID    uint   `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type ClientHandler struct {
	log       *logger.Logger
	validator *validator.Validate
	catalog   *service.CatalogService
}

func NewClientHandler(catalog *service.CatalogService, v *validator.Validate, log *logger.Logger) *ClientHandler {
	return &ClientHandler{
		log:       log.With("handler", "ClientHandler"),
		validator: v,
		catalog:   catalog,
	}
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.catalog.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondList(c, clients)
}

func (h *ClientHandler) Find(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	client, err := h.catalog.GetClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Add(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "malformed body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	client := model.Client{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := h.catalog.CreateClient(c.Request.Context(), &client); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "malformed body")
		return
	}
	if req.ID != id {
		respondValidation(c, "id in path and body do not match")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	client := model.Client{ID: id, Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := h.catalog.UpdateClient(c.Request.Context(), &client); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteClient(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
