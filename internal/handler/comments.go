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

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := s.db.GetAllComments(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (s *Server) handleListCommentsByPost(w http.ResponseWriter, r *http.Request) {
	comments, err := s.db.GetCommentsByPost(r.Context(), chi.URLParam(r, "postId"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var params store.CreateCommentParams
	if !decodeBody(w, r, &params) {
		return
	}
	params.Content = security.SanitizeHTML(strings.TrimSpace(params.Content))
	if params.Content == "" {
		writeValidationError(w, "content is required")
		return
	}
	if params.PostID == "" {
		writeValidationError(w, "postId is required")
		return
	}

	c, err := s.db.CreateComment(r.Context(), params)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	var params store.UpdateCommentParams
	if !decodeBody(w, r, &params) {
		return
	}
	if params.Content != nil {
		clean := security.SanitizeHTML(*params.Content)
		params.Content = &clean
	}

	c, err := s.db.UpdateComment(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if c == nil {
		writeNotFound(w, "comment")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	ok, err := s.db.DeleteComment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if !ok {
		writeNotFound(w, "comment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
