package auth

import (
	"errors"
	"net/http"

	"casino_client/internal/api"
	dto "casino_client/internal/api/dto/auth"
	"casino_client/internal/converter"
	"casino_client/internal/model"
	"casino_client/internal/service"
	"casino_client/pkg/req"
	"casino_client/pkg/resp"
)

const (
	sessionCookie = "session_id"
	refreshCookie = "refresh_token"
	cookiePath    = "/auth"
)

type HandlerDeps struct {
	Serv service.AuthService
	// Срок жизни cookie совпадает со сроком refresh токена
	CookieMaxAge int
}

type Handler struct {
	serv   service.AuthService
	maxAge int
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, maxAge: deps.CookieMaxAge}
}

// Register создаёт пользователя, открывает сессию и возвращает access_token.
// session_id и refresh_token уходят в cookies.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil || requestBody.Login == "" || requestBody.Password == "" {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToUser(&requestBody))
	if err != nil {
		api.WriteError(w, err)
		return
	}

	h.setSessionCookies(w, data)
	resp.WriteJSONResponse(w, http.StatusCreated, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Login открывает новую сессию
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Login(r.Context(), converter.LoginRequestToUser(&requestBody))
	if err != nil {
		api.WriteError(w, err)
		return
	}

	h.setSessionCookies(w, data)
	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Refresh выдает новый access_token по cookies session_id и refresh_token
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	data, err := sessionFromCookies(r)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, err.Error())
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), data)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}

	if err := h.serv.Logout(r.Context(), c.Value); err != nil {
		api.WriteError(w, err)
		return
	}

	deleteCookie(w, sessionCookie)
	deleteCookie(w, refreshCookie)
	w.WriteHeader(http.StatusNoContent)
}

func sessionFromCookies(r *http.Request) (*model.AuthData, error) {
	session, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, errors.New("no session_id cookie")
	}
	refresh, err := r.Cookie(refreshCookie)
	if err != nil {
		return nil, errors.New("no refresh_token cookie")
	}
	return &model.AuthData{SessionID: session.Value, RefreshToken: refresh.Value}, nil
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, data *model.AuthData) {
	h.setCookie(w, sessionCookie, data.SessionID)
	h.setCookie(w, refreshCookie, data.RefreshToken)
}

func (h *Handler) setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     cookiePath,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   h.maxAge,
	})
}

func deleteCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     cookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
