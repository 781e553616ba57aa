package service

import "time"

// Подстановки для мягко потерянных ссылок: клиент или фотограф могли
// быть удалены в обход бронирований, сводка при этом обязана собраться.
const (
	UnknownClientName       = "Unknown Client"
	UnknownPhotographerName = "Unknown Photographer"
)

type ServiceDTO struct {
	ServiceID uint    `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// BookingSummary — плоская сводка для списков. Услуги отдаются
// количеством, а не списком: это сознательное сокращение ответа.
type BookingSummary struct {
	BookingID        uint      `json:"booking_id"`
	Date             time.Time `json:"date"`
	Location         string    `json:"location"`
	ClientName       string    `json:"client_name"`
	PhotographerName string    `json:"photographer_name"`
	ServiceCount     int       `json:"service_count"`
}

// BookingDetail — сводка плюс полный упорядоченный список услуг.
type BookingDetail struct {
	BookingSummary
	ClientID       uint         `json:"client_id"`
	PhotographerID uint         `json:"photographer_id"`
	Services       []ServiceDTO `json:"services"`
}

// BookingInput — данные создания/полной замены бронирования.
// Дубликаты в ServiceIDs не схлопываются: они доходят до составного
// ключа и возвращаются вызывающему как конфликт.
type BookingInput struct {
	ClientID       uint      `json:"client_id"`
	PhotographerID uint      `json:"photographer_id"`
	Date           time.Time `json:"date"`
	Location       *string   `json:"location,omitempty"`
	ServiceIDs     []uint    `json:"service_ids"`
}
