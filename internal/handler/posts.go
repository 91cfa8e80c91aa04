// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/akhdar/akhdar-go/internal/security"
	"github.com/akhdar/akhdar-go/internal/store"
	"github.com/akhdar/akhdar-go/internal/util"
)

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.db.GetAllPosts(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleListPublishedPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.db.GetPublishedPosts(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleListPostsByCategory(w http.ResponseWriter, r *http.Request) {
	posts, err := s.db.GetPostsByCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleListPostsByAuthor(w http.ResponseWriter, r *http.Request) {
	posts, err := s.db.GetPostsByAuthor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	p, err := s.db.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if p == nil {
		writeNotFound(w, "post")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleGetPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !util.IsValidSlug(slug) {
		writeValidationError(w, "invalid slug")
		return
	}

	p, err := s.db.GetPostBySlug(r.Context(), slug)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if p == nil {
		writeNotFound(w, "post")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var params store.CreatePostParams
	if !decodeBody(w, r, &params) {
		return
	}
	params.Title = strings.TrimSpace(params.Title)
	if params.Title == "" {
		writeValidationError(w, "title is required")
		return
	}
	if params.AuthorID == "" {
		writeValidationError(w, "authorId is required")
		return
	}
	params.Content = security.SanitizeHTML(params.Content)
	params.Excerpt = security.SanitizeText(params.Excerpt)

	p, err := s.db.CreatePost(r.Context(), params)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	var params store.UpdatePostParams
	if !decodeBody(w, r, &params) {
		return
	}
	if params.Content != nil {
		clean := security.SanitizeHTML(*params.Content)
		params.Content = &clean
	}
	if params.Excerpt != nil {
		clean := security.SanitizeText(*params.Excerpt)
		params.Excerpt = &clean
	}

	p, err := s.db.UpdatePost(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if p == nil {
		writeNotFound(w, "post")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	ok, err := s.db.DeletePost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if !ok {
		writeNotFound(w, "post")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
