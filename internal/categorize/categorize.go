// Package categorize picks a category for a free-form transaction
// description by delegating to a classifier and validating its answer
// against the stored catalogue.
package categorize

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/mywallet/mywallet/internal/transaction"
)

//go:generate mockgen -source=categorize.go -destination=categorize_mock.go -package=categorize

// Classifier proposes a category for a described transaction, choosing from
// the supplied candidates. Implementations may call remote models; answers
// are advisory and validated by the Service.
type Classifier interface {
	Categorize(ctx context.Context, description string, amount int64, typ transaction.Type, candidates []string) (string, error)
}

// Catalogue supplies the category vocabulary per transaction type.
type Catalogue interface {
	Names(ctx context.Context, typ transaction.Type) ([]string, error)
}

// Memory recalls categories the user confirmed for similar descriptions.
// It is optional; a nil Memory means every request goes to the classifier.
type Memory interface {
	Suggest(ctx context.Context, description string) (string, error)
	Learn(ctx context.Context, descriptionPattern, category string) error
}

type Service struct {
	classifier Classifier
	catalogue  Catalogue
	memory     Memory
	logger     *slog.Logger
}

func NewService(classifier Classifier, catalogue Catalogue, memory Memory, logger *slog.Logger) *Service {
	return &Service{classifier: classifier, catalogue: catalogue, memory: memory, logger: logger}
}

// Categorize returns a category name guaranteed to exist in the catalogue
// for typ. Remembered descriptions short-circuit the classifier. Classifier
// failures and out-of-vocabulary answers degrade to the fallback category
// rather than surfacing an error; recording a transaction must never be
// blocked by a flaky model.
func (s *Service) Categorize(ctx context.Context, description string, amount int64, typ transaction.Type) string {
	candidates, err := s.catalogue.Names(ctx, typ)
	if err != nil {
		s.logger.Error("loading category candidates", "error", err)
		return transaction.CategoryOther
	}

	if len(candidates) == 0 {
		return transaction.CategoryOther
	}

	if s.memory != nil && description != "" {
		remembered, err := s.memory.Suggest(ctx, description)
		if err != nil {
			s.logger.Error("category memory lookup failed", "error", err)
		} else if slices.Contains(candidates, remembered) {
			return remembered
		}
	}

	answer, err := s.classifier.Categorize(ctx, description, amount, typ, candidates)
	if err != nil {
		s.logger.Error("classifier failed", "error", err)
		return transaction.CategoryOther
	}

	answer = strings.TrimSpace(answer)
	if !slices.Contains(candidates, answer) {
		s.logger.Warn("classifier answer outside catalogue", "answer", answer)
		return transaction.CategoryOther
	}

	return answer
}

// Confirm records a user-approved category so future lookups hit memory
// instead of the classifier.
func (s *Service) Confirm(ctx context.Context, description, category string) {
	if s.memory == nil || description == "" || category == "" {
		return
	}

	if err := s.memory.Learn(ctx, description, category); err != nil {
		s.logger.Error("storing category mapping", "error", err)
	}
}
