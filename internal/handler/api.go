// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler exposes the persistence facade as a JSON REST API.
// Successful responses carry bare canonical entities; failures carry an
// {"error": {code, message}} envelope.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akhdar/akhdar-go/internal/db"
	"github.com/akhdar/akhdar-go/internal/logging"
	"github.com/akhdar/akhdar-go/internal/store"
)

// Server holds the handler dependencies.
type Server struct {
	db     *db.Manager
	events *logging.EventHandler
	log    *slog.Logger
}

// NewServer creates the API server. The event handler may be nil, in
// which case /admin/events reports an empty list.
func NewServer(manager *db.Manager, events *logging.EventHandler, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{db: manager, events: events, log: log}
}

// Routes mounts every API endpoint on a fresh router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.handleHealth)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.handleListUsers)
		r.Post("/", s.handleCreateUser)
		r.Get("/email/{email}", s.handleGetUserByEmail)
		r.Get("/{id}", s.handleGetUser)
		r.Put("/{id}", s.handleUpdateUser)
		r.Delete("/{id}", s.handleDeleteUser)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", s.handleListPosts)
		r.Post("/", s.handleCreatePost)
		r.Get("/published", s.handleListPublishedPosts)
		r.Get("/slug/{slug}", s.handleGetPostBySlug)
		r.Get("/category/{id}", s.handleListPostsByCategory)
		r.Get("/author/{id}", s.handleListPostsByAuthor)
		r.Get("/{id}", s.handleGetPost)
		r.Put("/{id}", s.handleUpdatePost)
		r.Delete("/{id}", s.handleDeletePost)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", s.handleListCategories)
		r.Post("/", s.handleCreateCategory)
		r.Get("/{id}", s.handleGetCategory)
		r.Put("/{id}", s.handleUpdateCategory)
		r.Delete("/{id}", s.handleDeleteCategory)
	})

	r.Route("/comments", func(r chi.Router) {
		r.Get("/", s.handleListComments)
		r.Post("/", s.handleCreateComment)
		r.Get("/post/{postId}", s.handleListCommentsByPost)
		r.Put("/{id}", s.handleUpdateComment)
		r.Delete("/{id}", s.handleDeleteComment)
	})

	r.Route("/contacts", func(r chi.Router) {
		r.Get("/", s.handleListContacts)
		r.Post("/", s.handleCreateContact)
		r.Put("/{id}", s.handleUpdateContact)
		r.Delete("/{id}", s.handleDeleteContact)
	})

	r.Route("/newsletters", func(r chi.Router) {
		r.Get("/", s.handleListNewsletters)
		r.Post("/", s.handleCreateNewsletter)
		r.Put("/{id}", s.handleUpdateNewsletter)
		r.Delete("/{id}", s.handleDeleteNewsletter)
	})
	r.Route("/newsletter", func(r chi.Router) {
		r.Get("/email/{email}", s.handleGetNewsletterByEmail)
		r.Post("/subscribe", s.handleSubscribeNewsletter)
		r.Post("/unsubscribe", s.handleUnsubscribeNewsletter)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/events", s.handleEvents)
		r.Get("/export", s.handleExport)
		r.Post("/import", s.handleImport)
		r.Delete("/clear-all", s.handleClearAll)
		r.Post("/initialize-sample-data", s.handleSeedSampleData)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON renders a success payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders the error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	envelope.Error.Code = code
	envelope.Error.Message = message
	_ = json.NewEncoder(w).Encode(envelope)
}

// writeStoreError maps persistence failures onto HTTP statuses.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrUnsupported) {
		writeError(w, http.StatusMethodNotAllowed, "unsupported",
			"operation not supported by the active store")
		return
	}
	s.log.Error("store operation failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "store operation failed")
}

func writeNotFound(w http.ResponseWriter, what string) {
	writeError(w, http.StatusNotFound, "not_found", what+" not found")
}

func writeValidationError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnprocessableEntity, "validation_failed", message)
}

// decodeBody parses a JSON request body, rejecting unreadable payloads.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return false
	}
	return true
}
