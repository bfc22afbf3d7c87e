package web

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"historycar/internal/gateway"
	"historycar/internal/models"
)

// statusFor maps an envelope failure back onto an HTTP status for the browser.
// The upstream status travels in Code; connectivity failures have none.
func statusFor(code string, fallback int) int {
	if n, err := strconv.Atoi(code); err == nil && n >= 400 && n < 600 {
		return n
	}
	return fallback
}

// PageState is the view descriptor returned for the public pages that carry
// no data of their own.
type PageState struct {
	Page          string `json:"page"`
	Authenticated bool   `json:"authenticated"`
}

// @Summary      Public landing state
// @Tags         pages
// @Produce      json
// @Success      200  {object}  PageState
// @Router       / [get]
func (s *Server) HomeHandler(w http.ResponseWriter, r *http.Request) {
	// The guard already redirected authenticated users to the dashboard.
	writeJSON(w, http.StatusOK, PageState{Page: "home", Authenticated: false})
}

// @Summary      Login page state
// @Tags         pages
// @Produce      json
// @Success      200  {object}  PageState
// @Router       /auth/login [get]
func (s *Server) LoginPageHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PageState{Page: "login", Authenticated: false})
}

// @Summary      Register page state
// @Tags         pages
// @Produce      json
// @Success      200  {object}  PageState
// @Router       /auth/register [get]
func (s *Server) RegisterPageHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PageState{Page: "register", Authenticated: false})
}

// @Summary      Logs a user in
// @Description  Forwards the credentials to the HistoryCar API and, on success, persists the issued bearer token in the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      models.LoginCredentials  true  "Login credentials"
// @Success      200          {object}  gateway.Envelope[models.User]
// @Failure      400          {string}  string "Invalid request body"
// @Failure      401          {object}  gateway.Envelope[models.User]
// @Failure      502          {object}  gateway.Envelope[models.User]
// @Router       /auth/login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds models.LoginCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	env := s.auth.Login(r.Context(), creds)
	if !env.Success {
		writeJSON(w, statusFor(env.Code, http.StatusBadGateway), gateway.Envelope[models.User]{
			Success: false,
			Message: env.Message,
			Code:    env.Code,
		})
		return
	}

	s.sessions.SetToken(w, env.Data.Token, s.config.Session.TTLDays)
	log.Printf("User %s logged in", env.Data.User.Email)

	writeJSON(w, http.StatusOK, gateway.Envelope[models.User]{
		Success: true,
		Data:    env.Data.User,
		Message: env.Message,
	})
}

// @Summary      Registers a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      models.RegisterData  true  "Registration data"
// @Success      201   {object}  gateway.Envelope[models.User]
// @Failure      400   {string}  string "Invalid request body"
// @Router       /auth/register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var data models.RegisterData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	env := s.auth.Register(r.Context(), data)
	if !env.Success {
		writeJSON(w, statusFor(env.Code, http.StatusBadGateway), env)
		return
	}
	writeJSON(w, http.StatusCreated, env)
}

// @Summary      Logs the user out
// @Description  Clears the session cookie, closes the session's page controllers and drops its websocket subscribers.
// @Tags         auth
// @Success      204  {null}  nil "No Content"
// @Router       /auth/logout [post]
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	token, had := s.sessions.Token(r)
	s.sessions.ClearToken(w)
	if had {
		s.registry.Drop(token)
		s.hub.DropSession(token)
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  gateway.Envelope[models.User]
// @Failure      401  {object}  gateway.Envelope[models.User]
// @Router       /auth/profile [get]
func (s *Server) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	token, _ := s.sessions.Token(r)
	env := s.auth.Profile(r.Context(), token)
	if !env.Success {
		writeJSON(w, statusFor(env.Code, http.StatusUnauthorized), env)
		return
	}
	writeJSON(w, http.StatusOK, env)
}
