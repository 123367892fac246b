package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

const caller = "a1111111-1111-4111-8111-111111111111"

func seededProducts() *stubProductService {
	return &stubProductService{products: []*domain.Product{
		{ID: "p-1", OwnerID: caller, Name: "Widget", Price: decimal.RequireFromString("9.99"), Quantity: 5},
	}}
}

func TestProductHandler_List_PassesCaller(t *testing.T) {
	e := newEcho()
	stub := seededProducts()
	h := NewProductHandler(stub)

	c, rec := newContext(e, http.MethodGet, "/products", "", caller)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.caller != caller {
		t.Fatalf("caller not forwarded: %q", stub.caller)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || len(resp) != 1 {
		t.Fatalf("unexpected body: %v %s", err, rec.Body.String())
	}
	if resp[0]["price"] != "9.99" {
		t.Fatalf("price should be rendered exactly, got %v", resp[0]["price"])
	}
}

func TestProductHandler_List_Unauthenticated(t *testing.T) {
	e := newEcho()
	h := NewProductHandler(&stubProductService{err: domain.ErrNotAuthenticated})

	c, _ := newContext(e, http.MethodGet, "/products", "", "")
	if err := h.List(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated error, got %v", err)
	}
}

func TestProductHandler_Get(t *testing.T) {
	e := newEcho()
	h := NewProductHandler(seededProducts())

	c, rec := newContext(e, http.MethodGet, "/products/p-1", "", caller, "id", "p-1")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newContext(e, http.MethodGet, "/products/p-1", "", "b2222222-2222-4222-8222-222222222222", "id", "p-1")
	if err := h.Get(c); err != domain.ErrProductAccessDenied {
		t.Fatalf("foreign caller: expected ErrProductAccessDenied, got %v", err)
	}
}

func TestProductHandler_Create(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{}
	h := NewProductHandler(stub)

	body := `{"id":"client-chosen","name":"Gadget","price":"12.345","quantity":2,"expires_at":"2027-01-31T00:00:00Z"}`
	c, rec := newContext(e, http.MethodPost, "/products", body, caller)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/products/p-new" {
		t.Fatalf("unexpected location %q", loc)
	}
	if !stub.added.Price.Equal(decimal.RequireFromString("12.345")) || stub.added.ExpiresAt == nil {
		t.Fatalf("request not mapped: %+v", stub.added)
	}
	if stub.caller != caller {
		t.Fatalf("caller not forwarded")
	}
}

func TestProductHandler_Create_NumericPrice(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{}
	h := NewProductHandler(stub)

	c, _ := newContext(e, http.MethodPost, "/products", `{"name":"Gadget","price":7.5,"quantity":1}`, caller)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !stub.added.Price.Equal(decimal.RequireFromString("7.5")) {
		t.Fatalf("numeric price not accepted: %s", stub.added.Price)
	}
}

func TestProductHandler_Update(t *testing.T) {
	e := newEcho()
	stub := seededProducts()
	h := NewProductHandler(stub)

	c, rec := newContext(e, http.MethodPut, "/products/p-1", `{"name":"Widget","price":"9.99","quantity":6}`, caller, "id", "p-1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || stub.updated.ID != "p-1" || stub.updated.Quantity != 6 {
		t.Fatalf("unexpected update: %d %+v", rec.Code, stub.updated)
	}

	c, _ = newContext(e, http.MethodPut, "/products/p-1", `{"id":"p-2","name":"Widget"}`, caller, "id", "p-1")
	expectHTTPError(t, h.Update(c), http.StatusBadRequest)
}

func TestProductHandler_Update_NoOp(t *testing.T) {
	e := newEcho()
	h := NewProductHandler(&stubProductService{err: domain.ErrProductUnchanged})

	c, _ := newContext(e, http.MethodPut, "/products/p-1", `{"name":"WIDGET"}`, caller, "id", "p-1")
	if err := h.Update(c); !errors.Is(err, domain.ErrNoOpUpdate) {
		t.Fatalf("expected no-op error, got %v", err)
	}
}

func TestProductHandler_Delete(t *testing.T) {
	e := newEcho()
	stub := seededProducts()
	h := NewProductHandler(stub)

	c, rec := newContext(e, http.MethodDelete, "/products/p-1", "", caller, "id", "p-1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || stub.removed != "p-1" {
		t.Fatalf("expected 204 and removal, got %d %q", rec.Code, stub.removed)
	}
}
