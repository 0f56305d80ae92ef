// Package server собирает роутер тестового сервера
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authAPI "casino_client/internal/api/auth"
	cascadeAPI "casino_client/internal/api/cascade"
	lineAPI "casino_client/internal/api/line"
	payAPI "casino_client/internal/api/pay"
	"casino_client/internal/middleware"
	"casino_client/internal/service"
)

type Deps struct {
	Auth   service.AuthService
	Script service.ScriptService
	Pay    service.PaymentService

	AccessSecret []byte
	CookieMaxAge int
}

func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	// CORS middleware. Cookies сессии нужны браузерному клиенту, поэтому с credentials.
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(_ *http.Request, _ string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           60 * 15,
	}))

	authHandler := authAPI.NewHandler(authAPI.HandlerDeps{Serv: deps.Auth, CookieMaxAge: deps.CookieMaxAge})
	r.Route("/auth", func(rr chi.Router) {
		rr.Post("/register", authHandler.Register)
		rr.Post("/login", authHandler.Login)
		rr.Post("/refresh", authHandler.Refresh)
		rr.Post("/logout", authHandler.Logout)
	})

	lineHandler := lineAPI.NewHandler(lineAPI.HandlerDeps{Serv: deps.Script})
	cascadeHandler := cascadeAPI.NewHandler(cascadeAPI.HandlerDeps{Serv: deps.Script})
	payHandler := payAPI.NewHandler(payAPI.HandlerDeps{Serv: deps.Pay})

	r.Group(func(rr chi.Router) {
		rr.Use(middleware.Auth(deps.AccessSecret))

		rr.Route("/line", func(rl chi.Router) {
			rl.Post("/spin", lineHandler.Spin)
			rl.Post("/buy-bonus", lineHandler.BuyBonus)
		})
		rr.Route("/cascade", func(rc chi.Router) {
			rc.Post("/spin", cascadeHandler.Spin)
			rc.Post("/buy-bonus", cascadeHandler.BuyBonus)
		})
		rr.Route("/pay", func(rp chi.Router) {
			rp.Get("/balance", payHandler.Balance)
			rp.Post("/deposit", payHandler.Deposit)
		})
	})

	return r
}
