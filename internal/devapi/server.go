// Package devapi is a local stand-in for the remote catalog API: the
// same six endpoints the console consumes, backed by SQLite, so the
// console can be developed and tested without the hosted service.
package devapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopadmin/internal/models"
)

// Server serves the devapi routes.
type Server struct {
	store   *Store
	jwt     *JWTManager
	apiPath string
	logger  *slog.Logger
}

// New creates a devapi server for one tenant path segment.
func New(store *Store, jwt *JWTManager, apiPath string, logger *slog.Logger) *Server {
	return &Server{store: store, jwt: jwt, apiPath: apiPath, logger: logger}
}

// Router builds the gin engine with the published route shape.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/admin/signin", s.signin)
	r.POST("/api/user/check", s.requireToken(), s.check)

	admin := r.Group("/api/:apiPath/admin", s.requireTenant(), s.requireToken())
	{
		admin.GET("/products", s.listProducts)
		admin.POST("/product", s.createProduct)
		admin.PUT("/product/:id", s.updateProduct)
		admin.DELETE("/product/:id", s.deleteProduct)
	}

	return r
}

func (s *Server) signin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "bad request"})
		return
	}
	if !s.store.Authenticate(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
		return
	}
	token, expires, err := s.jwt.Issue(req.Username)
	if err != nil {
		s.logger.Error("issuing token failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "token error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "signed in",
		"token":   token,
		"expired": expires.UnixMilli(),
	})
}

func (s *Server) check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// requireToken reads the raw token from the Authorization header (the
// console sends it without a Bearer prefix, as the original API takes it).
func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" || s.jwt.Verify(token) != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
			return
		}
		c.Next()
	}
}

// requireTenant rejects paths for a tenant this instance does not serve.
func (s *Server) requireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param("apiPath") != s.apiPath {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "message": "unknown api path"})
			return
		}
		c.Next()
	}
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.store.ListProducts()
	if err != nil {
		s.logger.Error("listing products failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

type productPayload struct {
	Data models.Product `json:"data"`
}

func (s *Server) createProduct(c *gin.Context) {
	var req productPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "bad request"})
		return
	}
	if req.Data.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "title is required"})
		return
	}
	id := uuid.NewString()
	if err := s.store.CreateProduct(id, req.Data); err != nil {
		s.logger.Error("creating product failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "created", "id": id})
}

func (s *Server) updateProduct(c *gin.Context) {
	var req productPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "bad request"})
		return
	}
	if err := s.store.UpdateProduct(c.Param("id"), req.Data); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "not found"})
			return
		}
		s.logger.Error("updating product failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "updated"})
}

func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.store.DeleteProduct(c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "not found"})
			return
		}
		s.logger.Error("deleting product failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "deleted"})
}

// Seed inserts a small demo catalog when the table is empty.
func (s *Server) Seed() error {
	n, err := s.store.CountProducts()
	if err != nil || n > 0 {
		return err
	}
	demo := []models.Product{
		{
			Title: "Drip Coffee Set", Category: "Kitchen", Unit: "set",
			OriginPrice: 1800, Price: 1480,
			Description: "Hand-drip kettle, dripper and carafe.",
			Content:     "Stainless kettle, ceramic dripper, 600ml carafe.",
			ImageURL:    "https://images.example.com/coffee-set.jpg",
			ImagesURL:   []string{"https://images.example.com/coffee-set-2.jpg"},
			IsEnabled:   1,
		},
		{
			Title: "Linen Tote", Category: "Accessories", Unit: "pc",
			OriginPrice: 900, Price: 690,
			Description: "Washed linen, inner pocket.",
			ImageURL:    "https://images.example.com/tote.jpg",
			IsEnabled:   1,
		},
		{
			Title: "Desk Lamp", Category: "Lighting", Unit: "pc",
			OriginPrice: 2200, Price: 1990,
			Description: "Warm white, three brightness steps.",
			ImageURL:    "https://images.example.com/lamp.jpg",
			IsEnabled:   0,
		},
	}
	for _, p := range demo {
		if err := s.store.CreateProduct(uuid.NewString(), p); err != nil {
			return err
		}
	}
	return nil
}
