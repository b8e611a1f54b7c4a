package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/cookify/internal/cookify/service"
	"github.com/aussiebroadwan/cookify/pkg/cookifysdk"
	"github.com/aussiebroadwan/cookify/pkg/httpx"
)

// AuthHandler serves registration, login and the caller's profile.
type AuthHandler struct {
	AccountService *service.AccountService
}

// HandleRegister handles POST /auth/register
//
//	@Summary		Register
//	@Description	Creates an account. Emails are case-insensitive and unique.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cookifysdk.CredentialsRequest	true	"email and password"
//	@Success		201		{object}	cookifysdk.RegisterResponse
//	@Failure		400		{object}	cookifysdk.ErrorResponse	"invalid email or password"
//	@Failure		409		{object}	cookifysdk.ErrorResponse	"email already registered"
//	@Failure		503		{object}	cookifysdk.ErrorResponse
//	@Router			/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req cookifysdk.CredentialsRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w, err)
		return
	}

	u, err := h.AccountService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, cookifysdk.RegisterResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	})
}

// HandleLogin handles POST /auth/login
//
//	@Summary		Log in
//	@Description	Exchanges credentials for a bearer access token. Unknown emails and wrong passwords get the same answer.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cookifysdk.CredentialsRequest	true	"email and password"
//	@Success		200		{object}	cookifysdk.TokenResponse
//	@Failure		400		{object}	cookifysdk.ErrorResponse
//	@Failure		401		{object}	cookifysdk.ErrorResponse	"invalid credentials"
//	@Failure		503		{object}	cookifysdk.ErrorResponse
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req cookifysdk.CredentialsRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w, err)
		return
	}

	tok, err := h.AccountService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cookifysdk.TokenResponse{
		Access:    tok.Token,
		TokenType: tok.TokenType,
		ExpiresIn: int64(tok.ExpiresIn / time.Second),
	})
}

// HandleMe handles GET /auth/me
//
//	@Summary		Current user
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	cookifysdk.ProfileResponse
//	@Failure		401	{object}	cookifysdk.ErrorResponse	"missing, invalid or expired token"
//	@Failure		404	{object}	cookifysdk.ErrorResponse	"user no longer exists"
//	@Router			/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		cookifysdk.ErrInvalidToken.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cookifysdk.ProfileResponse{ID: u.ID, Email: u.Email})
}
