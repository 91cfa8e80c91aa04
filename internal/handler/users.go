// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/akhdar/akhdar-go/internal/security"
	"github.com/akhdar/akhdar-go/internal/store"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.db.GetAllUsers(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.db.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if u == nil {
		writeNotFound(w, "user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleGetUserByEmail(w http.ResponseWriter, r *http.Request) {
	u, err := s.db.GetUserByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if u == nil {
		writeNotFound(w, "user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var params store.CreateUserParams
	if !decodeBody(w, r, &params) {
		return
	}
	params.Email = strings.TrimSpace(params.Email)
	if params.Email == "" {
		writeValidationError(w, "email is required")
		return
	}
	params.Name = security.SanitizeText(params.Name)

	u, err := s.db.CreateUser(r.Context(), params)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var params store.UpdateUserParams
	if !decodeBody(w, r, &params) {
		return
	}
	if params.Name != nil {
		clean := security.SanitizeText(*params.Name)
		params.Name = &clean
	}

	u, err := s.db.UpdateUser(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if u == nil {
		writeNotFound(w, "user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ok, err := s.db.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if !ok {
		writeNotFound(w, "user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
