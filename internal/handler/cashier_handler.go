package handler

import (
	"fmt"
	"net/http"

	"cornerstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CashierRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type CashierHandler struct {
	uc *usecase.CashierUsecase
}

func NewCashierHandler(uc *usecase.CashierUsecase) *CashierHandler {
	return &CashierHandler{uc: uc}
}

func (h *CashierHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cashiers/:id", h.detail)
	e.POST("/cashiers", h.create)
}

func (h *CashierHandler) detail(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}

	out, err := h.uc.GetCashier(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CashierHandler) create(c echo.Context) error {
	var req CashierRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.CreateCashier(c.Request().Context(), usecase.CreateCashierInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/cashiers/%d", out.ID))
	return c.JSON(http.StatusCreated, out)
}
