package webui

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"shopadmin/internal/form"
	"shopadmin/internal/modal"
	"shopadmin/internal/models"
)

// Fixed user-facing messages, one per operation.
const (
	msgLoginFailed  = "Login failed"
	msgCreated      = "Product created"
	msgUpdated      = "Product updated"
	msgDeleted      = "Product deleted"
	msgCreateFailed = "Create product failed"
	msgSaveFailed   = "Save product failed"
	msgDeleteFailed = "Delete product failed"
)

// home renders the login page, or the dashboard when the stored token
// still checks out. A stale token is the quiet path: it gets cleared
// and the login page comes back with no error shown.
func (s *Server) home(c *gin.Context) {
	sess := sessions.Default(c)
	st := loadState(sess)

	token, ok := s.session.Check(c.Request.Context(), c.Writer, c.Request)
	if !ok {
		c.HTML(http.StatusOK, "login.tmpl", ViewData{
			"Username": st.LoginUser,
			"Flash":    takeFlash(sess),
		})
		return
	}

	products, err := s.client.List(c.Request.Context(), token)
	if err != nil {
		// "no products" and "fetch failed" render the same
		s.logger.Info("listing products failed", "error", err)
		products = nil
	}

	data := ViewData{
		"Products": products,
		"Count":    len(products),
		"Flash":    takeFlash(sess),
		"ShowForm": st.Modal.FormVisible(),
		"ShowDel":  st.Modal.DeleteVisible(),
		"Mode":     string(st.Modal.FormMode),
	}
	if st.Draft != nil {
		data["Draft"] = st.Draft.Product
	}
	if st.Modal.Target != nil {
		data["Target"] = *st.Modal.Target
	}
	c.HTML(http.StatusOK, "dashboard.tmpl", data)
}

func (s *Server) login(c *gin.Context) {
	sess := sessions.Default(c)
	st := loadState(sess)

	username := c.PostForm("username")
	password := c.PostForm("password")

	if err := s.session.Login(c.Request.Context(), c.Writer, username, password); err != nil {
		s.logger.Info("login rejected", "username", username, "error", err)
		st.LoginUser = username
		_ = saveState(sess, st)
		setFlash(sess, msgLoginFailed)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	st.LoginUser = ""
	_ = saveState(sess, st)
	c.Redirect(http.StatusSeeOther, "/")
}

// logout drops the token cookie, the pending modal target and the
// draft; the next render is the login page over an empty product list.
func (s *Server) logout(c *gin.Context) {
	sess := sessions.Default(c)
	st := loadState(sess)

	s.session.Logout(c.Writer)
	st.Modal.Reset()
	st.Draft = nil
	_ = saveState(sess, st)

	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) openCreateModal(c *gin.Context) {
	sess := sessions.Default(c)
	st := loadState(sess)

	st.Modal.PrepareCreate()
	st.Draft = form.NewCreate()
	if err := st.Modal.Show(modal.LaneForm); err != nil {
		s.logger.Error("show create modal", "error", err)
	}
	_ = saveState(sess, st)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) openEditModal(c *gin.Context) {
	sess := sessions.Default(c)
	st := loadState(sess)

	p, ok := s.findProduct(c, c.Param("id"))
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	st.Modal.PrepareEdit(p)
	st.Draft = form.NewEdit(p)
	if err := st.Modal.Show(modal.LaneForm); err != nil {
		s.logger.Error("show edit modal", "error", err)
	}
	_ = saveState(sess, st)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) closeProductModal(c *gin.Context) {
	sess := sessions.Default(c)
	st := loadState(sess)
	st.Modal.Close(modal.LaneForm)
	_ = saveState(sess, st)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) addImageSlot(c *gin.Context) {
	sess := sessions.Default(c)
	st := loadState(sess)
	if st.Draft == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	s.captureDraft(c, st)
	st.Draft.AddImageURLSlot()
	_ = saveState(sess, st)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) removeImageSlot(c *gin.Context) {
	sess := sessions.Default(c)
	st := loadState(sess)
	if st.Draft == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	s.captureDraft(c, st)
	if index, err := strconv.Atoi(c.PostForm("index")); err == nil {
		st.Draft.RemoveImageURLAt(index)
	}
	_ = saveState(sess, st)
	c.Redirect(http.StatusSeeOther, "/")
}

// saveProduct submits the cleaned draft through the workflow the form
// lane was opened with. On failure the dialog stays open and the draft
// is kept, so the user can retry or cancel.
func (s *Server) saveProduct(c *gin.Context) {
	sess := sessions.Default(c)
	st := loadState(sess)
	if st.Draft == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	s.captureDraft(c, st)

	token := s.session.Token(c.Request)
	cleaned := st.Draft.Cleaned()

	var err error
	if st.Modal.FormMode == modal.ModeCreate {
		err = s.client.Create(c.Request.Context(), token, cleaned)
	} else {
		err = s.client.Update(c.Request.Context(), token, cleaned)
	}
	if err != nil {
		s.logger.Info("saving product failed", "mode", st.Modal.FormMode, "error", err)
		if st.Modal.FormMode == modal.ModeCreate {
			setFlash(sess, msgCreateFailed)
		} else {
			setFlash(sess, msgSaveFailed)
		}
		_ = saveState(sess, st)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	st.Modal.Close(modal.LaneForm)
	_ = saveState(sess, st)
	if st.Modal.FormMode == modal.ModeCreate {
		setFlash(sess, msgCreated)
	} else {
		setFlash(sess, msgUpdated)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) openDeleteModal(c *gin.Context) {
	sess := sessions.Default(c)
	st := loadState(sess)

	p, ok := s.findProduct(c, c.Param("id"))
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	st.Modal.PrepareDelete(p)
	if err := st.Modal.Show(modal.LaneDelete); err != nil {
		s.logger.Error("show delete modal", "error", err)
	}
	_ = saveState(sess, st)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) closeDeleteModal(c *gin.Context) {
	sess := sessions.Default(c)
	st := loadState(sess)
	st.Modal.Close(modal.LaneDelete)
	_ = saveState(sess, st)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) confirmDelete(c *gin.Context) {
	sess := sessions.Default(c)
	st := loadState(sess)
	if st.Modal.Target == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	token := s.session.Token(c.Request)
	if err := s.client.Delete(c.Request.Context(), token, st.Modal.Target.ID); err != nil {
		s.logger.Info("deleting product failed", "id", st.Modal.Target.ID, "error", err)
		setFlash(sess, msgDeleteFailed)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	st.Modal.Close(modal.LaneDelete)
	st.Modal.Target = nil
	_ = saveState(sess, st)
	setFlash(sess, msgDeleted)
	c.Redirect(http.StatusSeeOther, "/")
}

// captureDraft pulls the submitted form into the draft: schema fields
// first, then the secondary image slots by position.
func (s *Server) captureDraft(c *gin.Context, st *uiState) {
	for _, f := range form.Schema {
		if err := st.Draft.Apply(f.Name, c.PostForm(f.Name)); err != nil {
			s.logger.Error("apply form field", "field", f.Name, "error", err)
		}
	}
	for i, v := range c.PostFormArray("imagesUrl") {
		st.Draft.SetImageURLAt(i, v)
	}
}

// findProduct locates one record in the current remote list.
func (s *Server) findProduct(c *gin.Context, id string) (models.Product, bool) {
	token := s.session.Token(c.Request)
	products, err := s.client.List(c.Request.Context(), token)
	if err != nil {
		s.logger.Info("listing products failed", "error", err)
		return models.Product{}, false
	}
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
