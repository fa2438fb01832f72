package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dutchpay/internal/models"
)

// kakaoLoginRequest is the profile payload the mobile client forwards after
// completing the Kakao OAuth exchange.
type kakaoLoginRequest struct {
	KakaoID      string `json:"kakaoId"`
	Nickname     string `json:"profile_nickname"`
	ProfileImage string `json:"profile_image"`
}

// kakaoLoginResponse returns the upserted user plus a session token.
type kakaoLoginResponse struct {
	*models.User
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *Server) handleKakaoLogin(w http.ResponseWriter, r *http.Request) {
	var req kakaoLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.KakaoID == "" {
		writeDetail(w, http.StatusBadRequest, "kakaoId is required")
		return
	}

	user, _, err := s.users.KakaoLogin(r.Context(), req.KakaoID, req.Nickname, req.ProfileImage)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, kakaoLoginResponse{
		User:        user,
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Get(r.Context(), chi.URLParam(r, "kakaoId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req models.User
	if err := decodeJSON(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The path segment is authoritative for which user is updated.
	user, err := s.users.Update(r.Context(), chi.URLParam(r, "kakaoId"), req.Nickname, req.ProfileImage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
