package web

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/abhisek/quizview/internal/quiz"
)

type selectRequest struct {
	Key string `json:"key"`
}

type viewResponse struct {
	View quiz.ViewModel `json:"view"`
}

type actionResponse struct {
	Applied bool           `json:"applied"`
	Result  *quiz.Result   `json:"result,omitempty"`
	View    quiz.ViewModel `json:"view"`
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	sess.mu.Lock()
	vm := quiz.Render(sess.ctrl)
	sess.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, vm); err != nil {
		s.log.Error("render page", zap.Error(err))
	}
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	sess.mu.Lock()
	vm := quiz.Render(sess.ctrl)
	sess.mu.Unlock()

	writeJSON(w, http.StatusOK, viewResponse{View: vm})
}

// handleSelect records an answer. Form posts redirect back to the page;
// API posts take a JSON body and return the new view.
func (s *Server) handleSelect(api bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var key string
		if api {
			var req selectRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid JSON body", http.StatusBadRequest)
				return
			}
			key = req.Key
		} else {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "invalid form", http.StatusBadRequest)
				return
			}
			key = r.PostFormValue("key")
		}

		sess := s.session(w, r)

		sess.mu.Lock()
		pos := sess.ctrl.Position()
		res, ok := sess.ctrl.Select(key)
		vm := quiz.Render(sess.ctrl)
		sess.mu.Unlock()

		if ok {
			s.log.Info("answer recorded",
				zap.String("session", sess.id),
				zap.Int("position", pos),
				zap.String("selected", res.Selected),
				zap.Bool("correct", res.Correct),
			)
		}

		if !api {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		resp := actionResponse{Applied: ok, View: vm}
		if ok {
			resp.Result = &res
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// handleNavigate applies move to the session's controller.
func (s *Server) handleNavigate(api bool, move func(*quiz.Controller) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.session(w, r)

		sess.mu.Lock()
		ok := move(sess.ctrl)
		vm := quiz.Render(sess.ctrl)
		sess.mu.Unlock()

		if !api {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		writeJSON(w, http.StatusOK, actionResponse{Applied: ok, View: vm})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
