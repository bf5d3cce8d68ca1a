// Package webui renders the console: the login page when no session is
// live, otherwise the product dashboard with its two dialogs. Handlers
// are thin: they move the session, the modal controller and the draft,
// call the catalog client, and redirect back to "/".
package webui

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"shopadmin/internal/catalog"
	"shopadmin/internal/config"
	"shopadmin/internal/session"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ViewData is the bag of values handed to a template.
type ViewData map[string]any

// Server wires the console routes.
type Server struct {
	cfg     *config.Config
	client  *catalog.Client
	session *session.Manager
	logger  *slog.Logger
}

// New creates the console server.
func New(cfg *config.Config, client *catalog.Client, mgr *session.Manager, logger *slog.Logger) *Server {
	return &Server{cfg: cfg, client: client, session: mgr, logger: logger}
}

// Router builds the gin engine: session middleware, templates, routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(s.cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("admin_ui", store))

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"price": func(v float64) string { return fmt.Sprintf("%.0f", v) },
		"add":   func(a, b int) int { return a + b },
	}).ParseFS(templateFS, "templates/*.tmpl"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.GET("/", s.home)
	r.POST("/login", s.login)
	r.POST("/logout", s.logout)

	p := r.Group("/products", s.mustSession())
	{
		p.POST("/modal/create", s.openCreateModal)
		p.POST("/modal/edit/:id", s.openEditModal)
		p.POST("/modal/close", s.closeProductModal)
		p.POST("/draft/images/add", s.addImageSlot)
		p.POST("/draft/images/remove", s.removeImageSlot)
		p.POST("/save", s.saveProduct)
		p.POST("/delete/open/:id", s.openDeleteModal)
		p.POST("/delete/close", s.closeDeleteModal)
		p.POST("/delete/confirm", s.confirmDelete)
	}

	return r
}

// mustSession gates the mutation routes on a stored token being
// present. The token itself is judged by the remote service when the
// call is made.
func (s *Server) mustSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.session.Token(c.Request) == "" {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
