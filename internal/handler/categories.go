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

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.db.GetAllCategories(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := s.db.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if c == nil {
		writeNotFound(w, "category")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var params store.CreateCategoryParams
	if !decodeBody(w, r, &params) {
		return
	}
	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" {
		writeValidationError(w, "name is required")
		return
	}
	params.Description = security.SanitizeText(params.Description)

	c, err := s.db.CreateCategory(r.Context(), params)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var params store.UpdateCategoryParams
	if !decodeBody(w, r, &params) {
		return
	}
	if params.Description != nil {
		clean := security.SanitizeText(*params.Description)
		params.Description = &clean
	}

	c, err := s.db.UpdateCategory(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if c == nil {
		writeNotFound(w, "category")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	ok, err := s.db.DeleteCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if !ok {
		writeNotFound(w, "category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
