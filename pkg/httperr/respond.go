package httperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"roastlog/pkg/apperr"
)

// Respond maps the service error taxonomy onto HTTP answers. Every
// controller funnels failures through here so the kinds stay
// distinguishable at the boundary.
func Respond(c echo.Context, err error) error {
	var vErr *apperr.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation failed",
			"fields": vErr.Fields,
		})
	}
	var nfErr *apperr.NotFoundError
	if errors.As(err, &nfErr) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": nfErr.Error()})
	}
	var isErr *apperr.InsufficientStockError
	if errors.As(err, &isErr) {
		return c.JSON(http.StatusConflict, map[string]any{
			"error":        "insufficient stock",
			"bean_id":      isErr.BeanID,
			"requested_kg": isErr.RequestedKG,
			"available_kg": isErr.AvailableKG,
		})
	}
	var stErr *apperr.StorageError
	if errors.As(err, &stErr) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "storage failure, retry later"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
