// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package local

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akhdar/akhdar-go/internal/model"
	"github.com/akhdar/akhdar-go/internal/store"
)

// SeedSampleData populates an empty store with bilingual demo content.
// It is a no-op when any user already exists.
func (s *Store) SeedSampleData(ctx context.Context) error {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("checking existing users: %w", err)
	}
	if len(users) > 0 {
		slog.Info("sample data skipped, store already has users")
		return nil
	}

	admin, err := s.CreateUser(ctx, store.CreateUserParams{
		Email:    "admin@akhdar.org",
		Name:     "مدير الموقع",
		Role:     model.RoleAdmin,
		Password: "ChangeMe123!",
	})
	if err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}

	categorySeeds := []store.CreateCategoryParams{
		{
			Name:        "Clean Energy",
			Description: "الطاقة النظيفة والمتجددة | Renewable energy and the transition away from fossil fuels",
			Color:       "#10B981",
		},
		{
			Name:        "Conservation",
			Description: "حماية الطبيعة والتنوع الحيوي | Protecting ecosystems and biodiversity",
			Color:       "#3B82F6",
		},
		{
			Name:        "Climate Awareness",
			Description: "التوعية المناخية | Education and outreach on climate change",
			Color:       "#F59E0B",
		},
	}
	categories := make([]model.Category, 0, len(categorySeeds))
	for _, seed := range categorySeeds {
		c, err := s.CreateCategory(ctx, seed)
		if err != nil {
			return fmt.Errorf("seeding category %q: %w", seed.Name, err)
		}
		categories = append(categories, *c)
	}

	postSeeds := []store.CreatePostParams{
		{
			Title:      "Solar Power for Rural Communities",
			Content:    "<p>تعمل جمعيتنا على تركيب ألواح شمسية في القرى النائية.</p><p>Our association installs solar panels in remote villages, bringing clean and affordable electricity to communities that need it most.</p>",
			Excerpt:    "Bringing clean electricity to remote villages through community solar projects.",
			Status:     model.PostStatusPublished,
			AuthorID:   admin.ID,
			Categories: []string{categories[0].ID},
		},
		{
			Title:      "Protecting the Coastal Wetlands",
			Content:    "<p>المناطق الرطبة الساحلية موطن لمئات الأنواع من الطيور المهاجرة.</p><p>Coastal wetlands shelter hundreds of migratory bird species. Join our volunteer days to help restore these habitats.</p>",
			Excerpt:    "Volunteer with us to restore habitats for migratory birds.",
			Status:     model.PostStatusPublished,
			AuthorID:   admin.ID,
			Categories: []string{categories[1].ID},
		},
		{
			Title:      "Climate Workshop Series",
			Content:    "<p>سلسلة ورشات عمل حول التغير المناخي في المدارس.</p><p>A draft outline for our upcoming school workshop series on climate change.</p>",
			Excerpt:    "Planning the next school workshop series.",
			Status:     model.PostStatusDraft,
			AuthorID:   admin.ID,
			Categories: []string{categories[2].ID},
		},
	}
	for _, seed := range postSeeds {
		if _, err := s.CreatePost(ctx, seed); err != nil {
			return fmt.Errorf("seeding post %q: %w", seed.Title, err)
		}
	}

	_, err = s.CreateContact(ctx, store.CreateContactParams{
		Name:    "Layla Haddad",
		Email:   "layla@example.org",
		Subject: "Volunteering",
		Message: "أرغب في التطوع معكم في مشاريع التشجير. How can I join the next tree planting day?",
	})
	if err != nil {
		return fmt.Errorf("seeding contact: %w", err)
	}

	for _, email := range []string{"samir@example.org", "nour@example.org"} {
		if _, err := s.SubscribeNewsletter(ctx, email, ""); err != nil {
			return fmt.Errorf("seeding newsletter %s: %w", email, err)
		}
	}

	slog.Info("sample data seeded",
		"categories", len(categorySeeds), "posts", len(postSeeds))
	return nil
}
