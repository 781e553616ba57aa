package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/amirlan/photobooking/internal/logger"
	"github.com/amirlan/photobooking/internal/model"
	"github.com/amirlan/photobooking/internal/service"
)

type PhotographerRequest struct {
	ID        uint   `json:"id"`
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty" validate:"required"`
}

type PhotographerHandler struct {
	log       *logger.Logger
	validator *validator.Validate
	catalog   *service.CatalogService
}

func NewPhotographerHandler(catalog *service.CatalogService, v *validator.Validate, log *logger.Logger) *PhotographerHandler {
	return &PhotographerHandler{
		log:       log.With("handler", "PhotographerHandler"),
		validator: v,
		catalog:   catalog,
	}
}

func (h *PhotographerHandler) List(c *gin.Context) {
	photographers, err := h.catalog.ListPhotographers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondList(c, photographers)
}

func (h *PhotographerHandler) Find(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	p, err := h.catalog.GetPhotographer(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PhotographerHandler) Add(c *gin.Context) {
	var req PhotographerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "malformed body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	p := model.Photographer{Name: req.Name, Specialty: req.Specialty}
	if err := h.catalog.CreatePhotographer(c.Request.Context(), &p); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PhotographerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req PhotographerRequest
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

	p := model.Photographer{ID: id, Name: req.Name, Specialty: req.Specialty}
	if err := h.catalog.UpdatePhotographer(c.Request.Context(), &p); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PhotographerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeletePhotographer(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
