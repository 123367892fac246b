package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

func seededCustomers() *stubCustomerService {
	return &stubCustomerService{customers: map[string]*domain.Customer{
		"c-1": {ID: "c-1", Name: "Ana Souza", TaxID: "12345678901", Phone: "11987654321", Email: "ana@example.com", Role: domain.RoleAdmin, PasswordHash: "secret-hash"},
	}}
}

func expectHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != code {
		t.Fatalf("expected HTTPError %d, got %v", code, err)
	}
}

func TestCustomerHandler_Create_Success(t *testing.T) {
	e := newEcho()
	stub := seededCustomers()
	h := NewCustomerHandler(stub)

	body := `{"name":"Bruno Lima","tax_id":"98765432100","phone":"11912345678","email":"bruno@example.com","password":"abc123","role":"user"}`
	c, rec := newContext(e, http.MethodPost, "/customers", body, "")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/customers/c-new" {
		t.Fatalf("unexpected location %q", loc)
	}
	if stub.added == nil || stub.added.Password != "abc123" || stub.added.TaxID != "98765432100" {
		t.Fatalf("request not mapped: %+v", stub.added)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("password must not be echoed back")
	}
	if resp["id"] != "c-new" || resp["email"] != "bruno@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCustomerHandler_Create_DropsClientID(t *testing.T) {
	e := newEcho()
	stub := seededCustomers()
	h := NewCustomerHandler(stub)

	body := `{"id":"not-a-uuid","name":"Bruno Lima","tax_id":"98765432100","phone":"11912345678","email":"bruno@example.com","password":"abc123","role":"user"}`
	c, _ := newContext(e, http.MethodPost, "/customers", body, "")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.addedID != "" {
		t.Fatalf("client-supplied id must not reach the service, got %q", stub.addedID)
	}
}

func TestCustomerHandler_Create_BusinessError(t *testing.T) {
	e := newEcho()
	stub := &stubCustomerService{err: domain.ErrTaxIDRegistered}
	h := NewCustomerHandler(stub)

	c, _ := newContext(e, http.MethodPost, "/customers", `{"name":"Bruno"}`, "")
	if err := h.Create(c); err != domain.ErrTaxIDRegistered {
		t.Fatalf("expected service error to be returned, got %v", err)
	}
}

func TestCustomerHandler_Create_InvalidJSON(t *testing.T) {
	e := newEcho()
	h := NewCustomerHandler(&stubCustomerService{})

	c, _ := newContext(e, http.MethodPost, "/customers", `{"name":`, "")
	expectHTTPError(t, h.Create(c), http.StatusBadRequest)
}

func TestCustomerHandler_Lookups(t *testing.T) {
	e := newEcho()
	h := NewCustomerHandler(seededCustomers())

	cases := []struct {
		name   string
		call   func(echo.Context) error
		params []string
	}{
		{"by id", h.Get, []string{"id", "c-1"}},
		{"by email", h.GetByEmail, []string{"email", "ana@example.com"}},
		{"by tax id", h.GetByTaxID, []string{"taxId", "12345678901"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newContext(e, http.MethodGet, "/", "", "c-1", tc.params...)
			if err := tc.call(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			var resp customerResponse
			_ = json.Unmarshal(rec.Body.Bytes(), &resp)
			if resp.ID != "c-1" {
				t.Fatalf("unexpected customer %+v", resp)
			}
		})
	}
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	h := NewCustomerHandler(seededCustomers())

	c, _ := newContext(e, http.MethodGet, "/customers/zzz", "", "c-1", "id", "zzz")
	if err := h.Get(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCustomerHandler_List(t *testing.T) {
	e := newEcho()
	h := NewCustomerHandler(seededCustomers())

	c, rec := newContext(e, http.MethodGet, "/customers", "", "c-1")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp []customerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || len(resp) != 1 {
		t.Fatalf("unexpected list: %v %s", err, rec.Body.String())
	}
}

func TestCustomerHandler_Update_UsesPathID(t *testing.T) {
	e := newEcho()
	stub := seededCustomers()
	h := NewCustomerHandler(stub)

	c, rec := newContext(e, http.MethodPut, "/customers/c-1", `{"name":"Ana Maria"}`, "c-1", "id", "c-1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if stub.updated == nil || stub.updated.ID != "c-1" || stub.updated.Name != "Ana Maria" {
		t.Fatalf("unexpected update %+v", stub.updated)
	}
}

func TestCustomerHandler_Update_IDMismatch(t *testing.T) {
	e := newEcho()
	stub := seededCustomers()
	h := NewCustomerHandler(stub)

	c, _ := newContext(e, http.MethodPut, "/customers/c-1", `{"id":"c-2","name":"Ana"}`, "c-1", "id", "c-1")
	expectHTTPError(t, h.Update(c), http.StatusBadRequest)
	if stub.updated != nil {
		t.Fatalf("service must not be called on id mismatch")
	}
}

func TestCustomerHandler_Update_NoOp(t *testing.T) {
	e := newEcho()
	h := NewCustomerHandler(&stubCustomerService{err: domain.ErrCustomerUnchanged})

	c, _ := newContext(e, http.MethodPut, "/customers/c-1", `{"name":"Ana"}`, "c-1", "id", "c-1")
	if err := h.Update(c); !errors.Is(err, domain.ErrNoOpUpdate) {
		t.Fatalf("expected no-op error, got %v", err)
	}
}

func TestCustomerHandler_Delete(t *testing.T) {
	e := newEcho()
	stub := seededCustomers()
	h := NewCustomerHandler(stub)

	c, rec := newContext(e, http.MethodDelete, "/customers/c-1", "", "c-1", "id", "c-1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || stub.removedID != "c-1" {
		t.Fatalf("expected 204 and removal of c-1, got %d %q", rec.Code, stub.removedID)
	}
}

func TestCustomerHandler_Delete_NotAdmin(t *testing.T) {
	e := newEcho()
	h := NewCustomerHandler(&stubCustomerService{err: domain.ErrAdminRequired})

	c, _ := newContext(e, http.MethodDelete, "/customers/c-2", "", "c-1", "id", "c-2")
	if err := h.Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}
