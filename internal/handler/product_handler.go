package handler

import (
	"fmt"
	"net/http"

	"cornerstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// POST / PUT 共通。PUT は4項目すべて必須（部分更新なし）
type ProductRequest struct {
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Brand       string          `json:"brand"`
	CategoryID  int64           `json:"categoryId"`
}

func (r ProductRequest) input() usecase.ProductInput {
	return usecase.ProductInput{
		ProductName: r.ProductName,
		Price:       r.Price,
		Brand:       r.Brand,
		CategoryID:  r.CategoryID,
	}
}

// /products
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.POST("/products", h.create)
	e.PUT("/products/:id", h.update)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.ListProducts(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.CreateProduct(c.Request().Context(), req.input())
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/products/%d", out.ID))
	return c.JSON(http.StatusCreated, out)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.uc.UpdateProduct(c.Request().Context(), id, req.input()); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
