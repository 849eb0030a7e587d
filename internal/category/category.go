// Package category manages the transaction category catalogue: the stored
// two-level hierarchy of expense and income categories the rest of the
// application records against.
package category

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mywallet/mywallet/internal/transaction"
)

var (
	ErrNotFound    = errors.New("category not found")
	ErrEmptyName   = errors.New("category name is empty")
	ErrDuplicate   = errors.New("category already exists")
	ErrInvalidType = errors.New("invalid category type")
)

// Category is one catalogue entry. Parent is empty for top-level categories
// and holds the parent's name otherwise; the hierarchy is two levels deep.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      transaction.Type
	Parent    string
	Emoji     string
	CreatedAt time.Time
}

// Display returns the emoji-prefixed name used in menus and reports.
func (c Category) Display() string {
	if c.Emoji == "" {
		return c.Name
	}

	return c.Emoji + " " + c.Name
}

//go:generate mockgen -source=category.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, category *Category) error
	ListCategories(ctx context.Context, typ transaction.Type) ([]*Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all categories of the given type, as stored.
func (s *Service) List(ctx context.Context, typ transaction.Type) ([]*Category, error) {
	if !typ.Valid() {
		return nil, ErrInvalidType
	}

	return s.repo.ListCategories(ctx, typ)
}

// Names returns the top-level category names for a type, the vocabulary the
// categorizer may choose from. Subcategories are intentionally excluded.
func (s *Service) Names(ctx context.Context, typ transaction.Type) ([]string, error) {
	categories, err := s.List(ctx, typ)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		if c.Parent == "" {
			names = append(names, c.Name)
		}
	}

	return names, nil
}

// Subcategories returns the children of a top-level category.
func (s *Service) Subcategories(ctx context.Context, typ transaction.Type, parent string) ([]*Category, error) {
	categories, err := s.List(ctx, typ)
	if err != nil {
		return nil, err
	}

	var children []*Category
	for _, c := range categories {
		if c.Parent == parent {
			children = append(children, c)
		}
	}

	return children, nil
}

// Create adds a category after normalizing its name.
func (s *Service) Create(ctx context.Context, category *Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return ErrEmptyName
	}

	if !category.Type.Valid() {
		return ErrInvalidType
	}

	return s.repo.CreateCategory(ctx, category)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, id)
}

// Seed inserts the default catalogue. Existing names are kept; the store
// reports duplicates as ErrDuplicate and Seed skips them.
func (s *Service) Seed(ctx context.Context) (int, error) {
	var inserted int

	for _, c := range Defaults() {
		err := s.repo.CreateCategory(ctx, c)
		if errors.Is(err, ErrDuplicate) {
			continue
		}

		if err != nil {
			return inserted, err
		}

		inserted++
	}

	return inserted, nil
}
