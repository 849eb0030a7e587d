// Package matching remembers which category the user picked for a given
// description, so repeat purchases are categorized without a model call.
package matching

import (
	"context"
)

type Repository interface {
	FindCategory(ctx context.Context, description string) (string, error)
	CreateMapping(ctx context.Context, descriptionPattern, category string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest tries to find a remembered category for the given description.
// Returns empty string if nothing matches.
func (s *Service) Suggest(ctx context.Context, description string) (string, error) {
	return s.repo.FindCategory(ctx, description)
}

// Learn remembers a new mapping between a description pattern and a category.
func (s *Service) Learn(ctx context.Context, descriptionPattern, category string) error {
	return s.repo.CreateMapping(ctx, descriptionPattern, category)
}
