package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/azamatp047/shukrona-backend/pkg/resp"
	"github.com/azamatp047/shukrona-backend/services"

	"github.com/gin-gonic/gin"
)

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// dateWindow reads optional ?start=YYYY-MM-DD&end=YYYY-MM-DD query
// params. Both dates are calendar days: start opens at its midnight, end
// is inclusive, so the exclusive bound handed to the repos is end+24h.
func dateWindow(c *gin.Context) (start, end *time.Time, ok bool) {
	ok = true
	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			resp.BadRequest(c, "start must be YYYY-MM-DD")
			return nil, nil, false
		}
		start = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			resp.BadRequest(c, "end must be YYYY-MM-DD")
			return nil, nil, false
		}
		t = t.Add(24 * time.Hour)
		end = &t
	}
	return start, end, ok
}

// writeServiceError maps the service failure taxonomy onto HTTP codes.
func writeServiceError(c *gin.Context, err error) {
	var stockErr *services.InsufficientStockError

	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCourierNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrExpenseNotFound):
		resp.NotFound(c, err.Error())

	case errors.Is(err, services.ErrUnauthorized):
		resp.Forbidden(c, err.Error())

	case errors.As(err, &stockErr),
		errors.Is(err, services.ErrTooManyActiveOrders),
		errors.Is(err, services.ErrOrderNotPending),
		errors.Is(err, services.ErrOrderNotWithCourier),
		errors.Is(err, services.ErrOrderNotDelivered),
		errors.Is(err, services.ErrPriceLocked),
		errors.Is(err, services.ErrPriceNotLocked),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrEmptyOrder):
		resp.BadRequest(c, err.Error())

	default:
		resp.ServerError(c, err)
	}
}
