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

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.db.GetAllContacts(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var params store.CreateContactParams
	if !decodeBody(w, r, &params) {
		return
	}
	params.Name = security.SanitizeText(params.Name)
	params.Email = strings.TrimSpace(params.Email)
	params.Subject = security.SanitizeText(params.Subject)
	params.Message = security.SanitizeText(params.Message)
	if params.Name == "" || params.Email == "" || params.Message == "" {
		writeValidationError(w, "name, email and message are required")
		return
	}

	c, err := s.db.CreateContact(r.Context(), params)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	var params store.UpdateContactParams
	if !decodeBody(w, r, &params) {
		return
	}
	if params.Message != nil {
		clean := security.SanitizeText(*params.Message)
		params.Message = &clean
	}

	c, err := s.db.UpdateContact(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if c == nil {
		writeNotFound(w, "contact")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	ok, err := s.db.DeleteContact(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if !ok {
		writeNotFound(w, "contact")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
