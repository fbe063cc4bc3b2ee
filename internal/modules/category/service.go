package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines category business logic.
type Service interface {
	CreateCategory(ctx context.Context, name string) (*Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateCategory(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	c := &Category{
		ID:   uuid.New(),
		Name: name,
		Slug: Slugify(name),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Slugify lowercases a display name and joins words with hyphens, e.g.
// "School Notebooks" -> "school-notebooks".
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
