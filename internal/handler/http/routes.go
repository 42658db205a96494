// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"path/filepath"

	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router with the full middleware pipeline and every route.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(middleware.Compress(5))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.handle(h.getServerVersion))

		r.Route("/users", func(r chi.Router) {
			// routes without authorization
			r.Post("/register", h.handle(h.register))
			r.Get("/verify/{verificationToken}", h.handle(h.verifyEmail))
			r.Post("/verify", h.handle(h.resendVerification))
			r.Post("/login", h.handle(h.login))

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/current", h.handle(h.current))
				r.Get("/logout", h.handle(h.logout))
				r.Patch("/", h.handle(h.updateSubscription))
				r.With(h.upload("avatar")).Patch("/avatars", h.handle(h.updateAvatar))
			})
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.handle(h.listContacts))
			r.Post("/", h.handle(h.createContact))
			r.Get("/{contactID}", h.handle(h.getContact))
			r.Put("/{contactID}", h.handle(h.updateContact))
			r.Delete("/{contactID}", h.handle(h.deleteContact))
			r.Patch("/{contactID}/favorite", h.handle(h.updateFavorite))
		})
	})

	avatars := http.Dir(filepath.Join(h.publicDir, store.AvatarsDir))
	router.Handle("/"+store.AvatarsDir+"/*", http.StripPrefix("/"+store.AvatarsDir+"/", http.FileServer(avatars)))

	router.Handle("/metrics", h.metrics.handler())

	return router
}
