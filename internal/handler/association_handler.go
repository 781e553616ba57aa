package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/amirlan/photobooking/internal/logger"
	"github.com/amirlan/photobooking/internal/service"
)

type AssociationRequest struct {
	BookingID uint `json:"booking_id" validate:"required,gt=0"`
	ServiceID uint `json:"service_id" validate:"required,gt=0"`
}

// AssociationHandler обслуживает строки booking_services как ресурс с
// составным ключом в пути.
type AssociationHandler struct {
	log          *logger.Logger
	validator    *validator.Validate
	associations *service.AssociationService
}

func NewAssociationHandler(associations *service.AssociationService, v *validator.Validate, log *logger.Logger) *AssociationHandler {
	return &AssociationHandler{
		log:          log.With("handler", "AssociationHandler"),
		validator:    v,
		associations: associations,
	}
}

func (h *AssociationHandler) List(c *gin.Context) {
	rows, err := h.associations.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondList(c, rows)
}

func (h *AssociationHandler) Find(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "bookingId")
	if !ok {
		return
	}
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}
	bs, err := h.associations.Get(c.Request.Context(), bookingID, serviceID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, bs)
}

func (h *AssociationHandler) Add(c *gin.Context) {
	var req AssociationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "malformed body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, err.Error())
		return
	}
	bs, err := h.associations.Create(c.Request.Context(), req.BookingID, req.ServiceID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, bs)
}

func (h *AssociationHandler) Delete(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "bookingId")
	if !ok {
		return
	}
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}
	if err := h.associations.Delete(c.Request.Context(), bookingID, serviceID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
