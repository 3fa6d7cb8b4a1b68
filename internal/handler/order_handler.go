package handler

import (
	"net/http"
	"time"

	"cornerstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// orderDate は日付だけでも日時でもよい（時刻は無視される）
var orderDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders", h.list)
	e.GET("/orders/:id", h.detail)
	e.DELETE("/orders/:id", h.delete)
}

func (h *OrderHandler) list(c echo.Context) error {
	var paidOn *time.Time
	if v := c.QueryParam("orderDate"); v != "" {
		tm, ok := parseOrderDate(v)
		if !ok {
			return badRequest(c, "invalid orderDate")
		}
		paidOn = &tm
	}

	out, err := h.uc.ListOrders(c.Request().Context(), paidOn)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}

	out, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseOrderDate(v string) (time.Time, bool) {
	for _, layout := range orderDateLayouts {
		if tm, err := time.Parse(layout, v); err == nil {
			return tm, true
		}
	}
	return time.Time{}, false
}
