package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"d23_web/internal/service"
	"d23_web/internal/viewstate"
)

// respondError 把服務層的錯誤對應到 HTTP 狀態碼
func respondError(c *gin.Context, err error) {
	var verr *viewstate.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return
	case errors.Is(err, service.ErrUnknownPage),
		errors.Is(err, service.ErrUnknownAction),
		errors.Is(err, service.ErrUnknownSelector),
		errors.Is(err, viewstate.ErrUnknownOverlay),
		errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, viewstate.ErrActionPending),
		errors.Is(err, viewstate.ErrOverlayClosed):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidPayload),
		errors.Is(err, viewstate.ErrUnknownField),
		errors.Is(err, service.ErrUnknownRoute):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
