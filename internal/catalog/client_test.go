package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopadmin/internal/models"
)

func TestList_RequestShapeAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/devshop/admin/products" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "tok-1" {
			t.Errorf("Authorization = %q, want tok-1", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"products": []models.Product{
				{ID: "a", Title: "Mug"},
				{ID: "b", Title: "Lamp"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "devshop")
	products, err := c.List(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(products) != 2 || products[0].ID != "a" || products[1].Title != "Lamp" {
		t.Errorf("products = %+v", products)
	}
}

func TestCreate_SendsDataEnvelope(t *testing.T) {
	var got struct {
		Data models.Product `json:"data"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/devshop/admin/product" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "devshop")
	p := models.Product{Title: "Widget", Price: 100, OriginPrice: 150, ImagesURL: []string{}}
	if err := c.Create(context.Background(), "tok", p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.Data.Title != "Widget" || got.Data.Price != 100 || got.Data.OriginPrice != 150 {
		t.Errorf("payload = %+v", got.Data)
	}
}

func TestUpdate_RequiresID(t *testing.T) {
	c := New("http://unused", "devshop")
	if err := c.Update(context.Background(), "tok", models.Product{Title: "NoID"}); err == nil {
		t.Error("expected error for update without id")
	}
}

func TestUpdate_PutsToRecordPath(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.Method != http.MethodPut || r.URL.Path != "/api/devshop/admin/product/p7" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "devshop")
	if err := c.Update(context.Background(), "tok", models.Product{ID: "p7", Title: "Lamp"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !called {
		t.Error("no request made")
	}
}

func TestDelete_UsesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/devshop/admin/product/7" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "devshop")
	if err := c.Delete(context.Background(), "tok", "7"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "devshop")
	_, err := c.List(context.Background(), "stale")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("List() error = %v, want ErrUnauthorized", err)
	}
}

func TestSignin_ParsesTokenAndExpiry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/admin/signin" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["username"] != "user" || req["password"] != "pass" {
			t.Errorf("credentials = %v", req)
		}
		w.Write([]byte(`{"success":true,"token":"tok-xyz","expired":1700000000000}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "devshop")
	token, expired, err := c.Signin(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("Signin() error = %v", err)
	}
	if token != "tok-xyz" {
		t.Errorf("token = %q", token)
	}
	if expired.UnixMilli() != 1700000000000 {
		t.Errorf("expired = %v", expired)
	}
}

func TestSignin_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "devshop")
	if _, _, err := c.Signin(context.Background(), "user", "wrong"); err == nil {
		t.Error("expected error for rejected signin")
	}
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/user/check" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") == "good" {
			w.Write([]byte(`{"success":true}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "devshop")
	if err := c.Check(context.Background(), "good"); err != nil {
		t.Errorf("Check(good) error = %v", err)
	}
	if err := c.Check(context.Background(), "bad"); err == nil {
		t.Error("Check(bad) expected error")
	}
}
