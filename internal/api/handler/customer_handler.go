package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/catalogo/catalog-api/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer accounts. Business
// errors are returned as-is and rendered by the central error handler.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

func errInvalidPayload() error {
	return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
}

// Create registers a new customer.
//
// @Summary      Register a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      customerRequest  true  "Customer"
// @Success      201   {object}  customerResponse
// @Header       201   {string}  Location  "URL of the new customer"
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}

	customer := req.toDomain()
	customer.ID = ""
	if err := h.service.Add(c.Request().Context(), customer); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/customers/"+customer.ID)
	return c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

// List returns every customer.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   customerResponse
// @Failure      401  {object}  errorResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponses(customers))
}

// Get returns a customer by id.
//
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Customer id"
// @Success      200  {object}  customerResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// GetByEmail returns a customer by email.
//
// @Summary      Get a customer by email
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Email"
// @Success      200    {object}  customerResponse
// @Failure      404    {object}  errorResponse
// @Router       /customers/email/{email} [get]
func (h *CustomerHandler) GetByEmail(c echo.Context) error {
	customer, err := h.service.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// GetByTaxID returns a customer by tax id.
//
// @Summary      Get a customer by tax id
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        taxId  path      string  true  "Tax id (11 or 14 digits)"
// @Success      200    {object}  customerResponse
// @Failure      404    {object}  errorResponse
// @Router       /customers/tax-id/{taxId} [get]
func (h *CustomerHandler) GetByTaxID(c echo.Context) error {
	customer, err := h.service.GetByTaxID(c.Request().Context(), c.Param("taxId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Update replaces a customer's profile. A body id, when present, must match
// the path id.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string           true  "Customer id"
// @Param        body  body  customerRequest  true  "Customer"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}

	id := c.Param("id")
	if req.ID != "" && req.ID != id {
		return echo.NewHTTPError(http.StatusBadRequest, "id in path and body do not match")
	}
	req.ID = id

	if err := h.service.Update(c.Request().Context(), req.toDomain()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a customer.
//
// @Summary      Remove a customer
// @Tags         customers
// @Security     BearerAuth
// @Param        id  path  string  true  "Customer id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.service.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
