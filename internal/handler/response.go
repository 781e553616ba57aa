package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirlan/photobooking/internal/logger"
	"github.com/amirlan/photobooking/internal/pagination"
	"github.com/amirlan/photobooking/internal/repository"
)

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

// respondError переводит ошибки нижних слоёв в HTTP-статусы:
// NotFound — 404, Conflict — 409, всё остальное — 500.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, errorEnvelope{Error: apiError{Message: err.Error(), Code: "not_found"}})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, errorEnvelope{Error: apiError{Message: err.Error(), Code: "conflict"}})
	default:
		log.Error("internal error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, errorEnvelope{Error: apiError{Message: "internal error", Code: "internal"}})
	}
}

// respondValidation — 400 на битое тело, несовпадение ID в пути и теле
// и прочие ошибки входа.
func respondValidation(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorEnvelope{Error: apiError{Message: msg, Code: "validation"}})
}

// respondList отдаёт список как есть либо постранично, если задан
// query-параметр page. Нечисловые page/page_size — 400, как и любой
// другой битый вход.
func respondList[T any](c *gin.Context, items []T) {
	if pageRaw := c.Query("page"); pageRaw != "" {
		page, err := strconv.Atoi(pageRaw)
		if err != nil || page < 1 {
			respondValidation(c, "invalid page")
			return
		}
		size, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
		if err != nil || size < 1 {
			respondValidation(c, "invalid page_size")
			return
		}
		c.JSON(http.StatusOK, pagination.Paginate(items, page, size))
		return
	}
	c.JSON(http.StatusOK, items)
}

// parseIDParam читает целочисленный параметр пути.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		respondValidation(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
