package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/amirlan/photobooking/internal/logger"
	"github.com/amirlan/photobooking/internal/service"
	"github.com/amirlan/photobooking/internal/utils"
)

// Бронирования нельзя растягивать выборкой дат без предела.
const maxPhotographerWindow = 366 * 24 * time.Hour

type BookingRequest struct {
	ID             uint      `json:"id"`
	ClientID       uint      `json:"client_id" validate:"required,gt=0"`
	PhotographerID uint      `json:"photographer_id" validate:"required,gt=0"`
	Date           time.Time `json:"date" validate:"required"`
	Location       *string   `json:"location,omitempty"`
	ServiceIDs     []uint    `json:"service_ids" validate:"dive,gt=0"`
}

type BookingHandler struct {
	log       *logger.Logger
	validator *validator.Validate
	bookings  *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService, v *validator.Validate, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		log:       log.With("handler", "BookingHandler"),
		validator: v,
		bookings:  bookings,
	}
}

func (h *BookingHandler) List(c *gin.Context) {
	details, err := h.bookings.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondList(c, details)
}

func (h *BookingHandler) Find(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.bookings.GetDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *BookingHandler) Add(c *gin.Context) {
	req, ok := h.bindBooking(c)
	if !ok {
		return
	}
	detail, err := h.bookings.Create(c.Request.Context(), bookingInput(req))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	req, ok := h.bindBooking(c)
	if !ok {
		return
	}
	if req.ID != id {
		respondValidation(c, "id in path and body do not match")
		return
	}
	if err := h.bookings.Update(c.Request.Context(), id, bookingInput(req)); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.bookings.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ForPhotographer — сводки бронирований фотографа; необязательные
// query-параметры from/to (RFC 3339) сужают выборку по дате. Каждая
// граница опциональна сама по себе; заданные обе нормализуются и
// ограничиваются годовым окном.
func (h *BookingHandler) ForPhotographer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var from, to time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondValidation(c, "invalid from")
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondValidation(c, "invalid to")
			return
		}
		to = parsed
	}
	if !from.IsZero() && !to.IsZero() {
		tr, err := utils.NormalizeTimeRange(from, to, time.UTC, maxPhotographerWindow)
		if err != nil {
			respondValidation(c, "invalid date range")
			return
		}
		from, to = tr.Start, tr.End
	}

	summaries, err := h.bookings.ListByPhotographer(c.Request.Context(), id, from, to)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondList(c, summaries)
}

func (h *BookingHandler) ForService(c *gin.Context) {
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

func (h *BookingHandler) ServicesForBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	services, err := h.bookings.ServicesForBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondList(c, services)
}

// History — события аудита бронирования, включая уже удалённые.
func (h *BookingHandler) History(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	events, err := h.bookings.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondList(c, events)
}

func (h *BookingHandler) bindBooking(c *gin.Context) (BookingRequest, bool) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "malformed body")
		return req, false
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, err.Error())
		return req, false
	}
	return req, true
}

func bookingInput(req BookingRequest) service.BookingInput {
	return service.BookingInput{
		ClientID:       req.ClientID,
		PhotographerID: req.PhotographerID,
		Date:           req.Date,
		Location:       req.Location,
		ServiceIDs:     req.ServiceIDs,
	}
}
