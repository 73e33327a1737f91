package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/poken-app/poken/internal/common"
	"github.com/poken-app/poken/internal/profile"
)

type credentials struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func decodeCredentials(r *http.Request) (credentials, error) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		return credentials{}, err
	}
	creds.UserID = strings.TrimSpace(creds.UserID)
	if creds.UserID == "" || creds.Password == "" {
		return credentials{}, errors.New("missing userId or password")
	}
	return creds, nil
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(r)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	token, err := s.users.Login(r.Context(), creds.UserID, creds.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeDetail(w, http.StatusUnauthorized, "Invalid user ID or password")
			return
		}
		s.log.Error(r.Context(), "login failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(r)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	token, err := s.users.Register(r.Context(), creds.UserID, creds.Password)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateUserID) {
			writeDetail(w, http.StatusConflict, "User ID already registered")
			return
		}
		s.log.Error(r.Context(), "signup failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.Get(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.log.Error(r.Context(), "profile fetch failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var submitted profile.Profile
	if err := json.NewDecoder(r.Body).Decode(&submitted); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	saved, err := s.profiles.Update(r.Context(), userIDFrom(r.Context()), submitted)
	if err != nil {
		s.log.Error(r.Context(), "profile update failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, saved)
}
