package devapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"shopadmin/internal/models"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := NewStore(MustOpen(filepath.Join(t.TempDir(), "devapi_test.db")))
	if err := store.EnsureAdmin("admin@example.com", "password"); err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, NewJWTManager("test-secret"), "devshop", logger)
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signin(t *testing.T, r http.Handler, username, password string) (string, int) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/admin/signin", "", map[string]string{
		"username": username,
		"password": password,
	})
	var resp struct {
		Token   string `json:"token"`
		Expired int64  `json:"expired"`
	}
	json.NewDecoder(w.Body).Decode(&resp)
	if w.Code == http.StatusOK && resp.Expired == 0 {
		t.Error("signin response missing expired")
	}
	return resp.Token, w.Code
}

func TestSignin(t *testing.T) {
	r := newTestServer(t).Router()

	if _, code := signin(t, r, "admin@example.com", "wrong"); code != http.StatusUnauthorized {
		t.Errorf("wrong password: status = %d, want 401", code)
	}
	if _, code := signin(t, r, "nobody@example.com", "password"); code != http.StatusUnauthorized {
		t.Errorf("unknown user: status = %d, want 401", code)
	}

	token, code := signin(t, r, "admin@example.com", "password")
	if code != http.StatusOK || token == "" {
		t.Fatalf("valid signin: status = %d, token = %q", code, token)
	}

	if w := doJSON(t, r, http.MethodPost, "/api/user/check", token, nil); w.Code != http.StatusOK {
		t.Errorf("check with fresh token: status = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/user/check", "garbage", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("check with bad token: status = %d, want 401", w.Code)
	}
}

func TestProductCRUDRoundTrip(t *testing.T) {
	r := newTestServer(t).Router()
	token, _ := signin(t, r, "admin@example.com", "password")

	// unauthenticated and wrong-tenant requests bounce
	if w := doJSON(t, r, http.MethodGet, "/api/devshop/admin/products", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/othershop/admin/products", token, nil); w.Code != http.StatusNotFound {
		t.Errorf("wrong tenant: status = %d, want 404", w.Code)
	}

	// create
	p := models.Product{
		Title: "Widget", Category: "Tools", Unit: "pc",
		OriginPrice: 150, Price: 100,
		ImageURL:  "https://img/x.jpg",
		ImagesURL: []string{"https://img/a.jpg", "https://img/b.jpg"},
		IsEnabled: 1,
	}
	w := doJSON(t, r, http.MethodPost, "/api/devshop/admin/product", token, map[string]any{"data": p})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status = %d, body = %s", w.Code, w.Body)
	}

	// list
	w = doJSON(t, r, http.MethodGet, "/api/devshop/admin/products", token, nil)
	var listResp struct {
		Products []models.Product `json:"products"`
	}
	json.NewDecoder(w.Body).Decode(&listResp)
	if len(listResp.Products) != 1 {
		t.Fatalf("list: got %d products", len(listResp.Products))
	}
	got := listResp.Products[0]
	if got.ID == "" {
		t.Error("created product has no id")
	}
	if got.Title != "Widget" || got.Price != 100 || got.OriginPrice != 150 {
		t.Errorf("listed product = %+v", got)
	}
	if len(got.ImagesURL) != 2 || got.ImagesURL[0] != "https://img/a.jpg" {
		t.Errorf("ImagesURL = %v", got.ImagesURL)
	}

	// update
	got.Title = "Widget v2"
	got.IsEnabled = 0
	w = doJSON(t, r, http.MethodPut, "/api/devshop/admin/product/"+got.ID, token, map[string]any{"data": got})
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/devshop/admin/products", token, nil)
	listResp.Products = nil
	json.NewDecoder(w.Body).Decode(&listResp)
	if listResp.Products[0].Title != "Widget v2" || listResp.Products[0].IsEnabled != 0 {
		t.Errorf("after update: %+v", listResp.Products[0])
	}

	// delete
	w = doJSON(t, r, http.MethodDelete, "/api/devshop/admin/product/"+got.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/devshop/admin/product/"+got.ID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete twice: status = %d, want 404", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/devshop/admin/products", token, nil)
	listResp.Products = nil
	json.NewDecoder(w.Body).Decode(&listResp)
	if len(listResp.Products) != 0 {
		t.Errorf("list after delete: %+v", listResp.Products)
	}
}

func TestCreateRequiresTitle(t *testing.T) {
	r := newTestServer(t).Router()
	token, _ := signin(t, r, "admin@example.com", "password")

	w := doJSON(t, r, http.MethodPost, "/api/devshop/admin/product", token, map[string]any{
		"data": models.Product{Price: 10},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("create without title: status = %d, want 400", w.Code)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := newTestServer(t)
	if err := s.Seed(); err != nil {
		t.Fatal(err)
	}
	n1, err := s.store.CountProducts()
	if err != nil {
		t.Fatal(err)
	}
	if n1 == 0 {
		t.Fatal("seed created no products")
	}
	if err := s.Seed(); err != nil {
		t.Fatal(err)
	}
	n2, _ := s.store.CountProducts()
	if n2 != n1 {
		t.Errorf("second seed changed count: %d -> %d", n1, n2)
	}
}

func TestJWTManager_RejectsForeignSignature(t *testing.T) {
	a := NewJWTManager("secret-a")
	b := NewJWTManager("secret-b")

	token, _, err := a.Issue("admin@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Verify(token); err != nil {
		t.Errorf("own token rejected: %v", err)
	}
	if err := b.Verify(token); err == nil {
		t.Error("foreign token accepted")
	}
}
