package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/catalogo/catalog-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the caller's products.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List returns the caller's products.
//
// @Summary      List own products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   productResponse
// @Failure      401  {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context(), callerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}

// Get returns one of the caller's products.
//
// @Summary      Get an own product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetByID(c.Request().Context(), callerID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Create adds a product owned by the caller.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product"
// @Success      201   {object}  productResponse
// @Header       201   {string}  Location  "URL of the new product"
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}

	product := req.toDomain()
	product.ID = ""
	if err := h.service.Add(c.Request().Context(), callerID(c), product); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/products/"+product.ID)
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update replaces one of the caller's products.
//
// @Summary      Update an own product
// @Tags         products
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string          true  "Product id"
// @Param        body  body  productRequest  true  "Product"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}

	id := c.Param("id")
	if req.ID != "" && req.ID != id {
		return echo.NewHTTPError(http.StatusBadRequest, "id in path and body do not match")
	}
	req.ID = id

	if err := h.service.Update(c.Request().Context(), callerID(c), req.toDomain()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes one of the caller's products.
//
// @Summary      Remove an own product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Remove(c.Request().Context(), callerID(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
