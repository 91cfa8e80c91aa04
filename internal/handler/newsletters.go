// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/akhdar/akhdar-go/internal/store"
)

func (s *Server) handleListNewsletters(w http.ResponseWriter, r *http.Request) {
	subs, err := s.db.GetAllNewsletters(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

func (s *Server) handleGetNewsletterByEmail(w http.ResponseWriter, r *http.Request) {
	n, err := s.db.GetNewsletterByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if n == nil {
		writeNotFound(w, "newsletter subscription")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleCreateNewsletter(w http.ResponseWriter, r *http.Request) {
	var params store.CreateNewsletterParams
	if !decodeBody(w, r, &params) {
		return
	}
	params.Email = strings.TrimSpace(params.Email)
	if params.Email == "" {
		writeValidationError(w, "email is required")
		return
	}

	n, err := s.db.CreateNewsletter(r.Context(), params)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (s *Server) handleUpdateNewsletter(w http.ResponseWriter, r *http.Request) {
	var params store.UpdateNewsletterParams
	if !decodeBody(w, r, &params) {
		return
	}

	n, err := s.db.UpdateNewsletter(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if n == nil {
		writeNotFound(w, "newsletter subscription")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleDeleteNewsletter(w http.ResponseWriter, r *http.Request) {
	ok, err := s.db.DeleteNewsletter(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if !ok {
		writeNotFound(w, "newsletter subscription")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type subscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func (s *Server) handleSubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		writeValidationError(w, "email is required")
		return
	}

	n, err := s.db.SubscribeNewsletter(r.Context(), req.Email, req.Name)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleUnsubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		writeValidationError(w, "email is required")
		return
	}

	ok, err := s.db.UnsubscribeNewsletter(r.Context(), req.Email)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if !ok {
		writeNotFound(w, "newsletter subscription")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"unsubscribed": true})
}
