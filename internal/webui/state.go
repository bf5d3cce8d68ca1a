package webui

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"

	"shopadmin/internal/form"
	"shopadmin/internal/modal"
)

const (
	stateKey = "ui"
	flashKey = "flash"
)

// uiState is what the dashboard keeps between page loads: the modal
// lanes with their pending target, the form draft, and the username to
// put back in the login form after a failed attempt. It rides the
// signed session cookie.
type uiState struct {
	Modal     modal.Controller
	Draft     *form.Draft
	LoginUser string
}

func init() {
	gob.Register(uiState{})
}

func loadState(sess sessions.Session) *uiState {
	if v := sess.Get(stateKey); v != nil {
		if st, ok := v.(uiState); ok {
			return &st
		}
	}
	return &uiState{}
}

func saveState(sess sessions.Session, st *uiState) error {
	sess.Set(stateKey, *st)
	return sess.Save()
}

func setFlash(sess sessions.Session, msg string) {
	sess.Set(flashKey, msg)
	_ = sess.Save()
}

func takeFlash(sess sessions.Session) string {
	v := sess.Get(flashKey)
	if v == nil {
		return ""
	}
	sess.Delete(flashKey)
	_ = sess.Save()
	msg, _ := v.(string)
	return msg
}
