package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/catalogo/catalog-api/internal/api/middleware"
	"github.com/catalogo/catalog-api/internal/core/domain"
	"github.com/catalogo/catalog-api/internal/infrastructure/validation"
)

// ---------------------------------------------------------------------------
// Customer service stub
// ---------------------------------------------------------------------------

type stubCustomerService struct {
	customers map[string]*domain.Customer
	err       error

	added      *domain.Customer
	addedID    string
	updated    *domain.Customer
	removedID  string
	loginEmail string
	logoutTok  string
	token      string
}

func (s *stubCustomerService) GetAll(context.Context) ([]*domain.Customer, error) {
	out := make([]*domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c)
	}
	return out, s.err
}

func (s *stubCustomerService) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	return s.find(func(c *domain.Customer) bool { return c.ID == id })
}

func (s *stubCustomerService) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	return s.find(func(c *domain.Customer) bool { return c.Email == email })
}

func (s *stubCustomerService) GetByTaxID(_ context.Context, taxID string) (*domain.Customer, error) {
	return s.find(func(c *domain.Customer) bool { return c.TaxID == taxID })
}

func (s *stubCustomerService) find(match func(*domain.Customer) bool) (*domain.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, c := range s.customers {
		if match(c) {
			return c, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (s *stubCustomerService) Add(_ context.Context, c *domain.Customer) error {
	if s.err != nil {
		return s.err
	}
	s.addedID = c.ID
	c.ID = "c-new"
	s.added = c
	return nil
}

func (s *stubCustomerService) Update(_ context.Context, c *domain.Customer) error {
	s.updated = c
	return s.err
}

func (s *stubCustomerService) Remove(_ context.Context, id string) error {
	s.removedID = id
	return s.err
}

func (s *stubCustomerService) Login(_ context.Context, email, _ string) (string, error) {
	s.loginEmail = email
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

func (s *stubCustomerService) Logout(_ context.Context, token string) error {
	s.logoutTok = token
	return s.err
}

// ---------------------------------------------------------------------------
// Product service stub
// ---------------------------------------------------------------------------

type stubProductService struct {
	products []*domain.Product
	err      error

	caller  string
	added   *domain.Product
	updated *domain.Product
	removed string
}

func (s *stubProductService) List(_ context.Context, callerID string) ([]*domain.Product, error) {
	s.caller = callerID
	return s.products, s.err
}

func (s *stubProductService) GetByID(_ context.Context, callerID, id string) (*domain.Product, error) {
	s.caller = callerID
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.products {
		if p.ID == id && p.OwnerID == callerID {
			return p, nil
		}
	}
	return nil, domain.ErrProductAccessDenied
}

func (s *stubProductService) Add(_ context.Context, callerID string, p *domain.Product) error {
	s.caller = callerID
	if s.err != nil {
		return s.err
	}
	p.ID = "p-new"
	p.OwnerID = callerID
	s.added = p
	return nil
}

func (s *stubProductService) Update(_ context.Context, callerID string, p *domain.Product) error {
	s.caller = callerID
	s.updated = p
	return s.err
}

func (s *stubProductService) Remove(_ context.Context, callerID, id string) error {
	s.caller = callerID
	s.removed = id
	return s.err
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator(validation.New())
	return e
}

// newContext builds an echo context for method/target with an optional JSON
// body, path params as name/value pairs and an authenticated caller id.
func newContext(e *echo.Echo, method, target, body, caller string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if len(params) > 0 {
		var names, values []string
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if caller != "" {
		c.Set(middleware.ContextCustomerID, caller)
	}
	return c, rec
}
