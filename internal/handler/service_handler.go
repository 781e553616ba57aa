package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/amirlan/photobooking/internal/logger"
	"github.com/amirlan/photobooking/internal/model"
	"github.com/amirlan/photobooking/internal/service"
)

type ServiceRequest struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

type ServiceHandler struct {
	log       *logger.Logger
	validator *validator.Validate
	catalog   *service.CatalogService
	bookings  *service.BookingService
}

func NewServiceHandler(catalog *service.CatalogService, bookings *service.BookingService, v *validator.Validate, log *logger.Logger) *ServiceHandler {
	return &ServiceHandler{
		log:       log.With("handler", "ServiceHandler"),
		validator: v,
		catalog:   catalog,
		bookings:  bookings,
	}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondList(c, services)
}

func (h *ServiceHandler) Find(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	svc, err := h.catalog.GetService(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Add(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "malformed body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	svc := model.Service{Name: req.Name, Price: req.Price}
	if err := h.catalog.CreateService(c.Request.Context(), &svc); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ServiceRequest
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

	svc := model.Service{ID: id, Name: req.Name, Price: req.Price}
	if err := h.catalog.UpdateService(c.Request.Context(), &svc); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteService(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBookingsByService — сводки бронирований, включающих услугу.
func (h *ServiceHandler) ListBookingsByService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	summaries, err := h.bookings.ListByService(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondList(c, summaries)
}
