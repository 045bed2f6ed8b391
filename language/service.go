package language

import (
	"context"
	"fmt"
)

type UseCase interface {
	Create(ctx context.Context, name string) (Language, error)
	List(ctx context.Context) ([]Language, error)
	Get(ctx context.Context, id int64) (Language, error)
	Update(ctx context.Context, id int64, name string) (Language, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
	}
}

func (s *Service) Create(ctx context.Context, name string) (Language, error) {
	l := Language{
		Name: name,
	}
	id, err := s.Repo.Insert(ctx, l)
	if err != nil {
		return Language{}, fmt.Errorf("inserting language: %w", err)
	}
	l.ID = id
	return l, nil
}

func (s *Service) List(ctx context.Context) ([]Language, error) {
	all, err := s.Repo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("selecting languages: %w", err)
	}
	return all, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Language, error) {
	l, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Language{}, fmt.Errorf("selecting language: %w", err)
	}
	return l, nil
}

// Update replaces every field of the language
func (s *Service) Update(ctx context.Context, id int64, name string) (Language, error) {
	l := Language{
		ID:   id,
		Name: name,
	}
	err := s.Repo.Update(ctx, l)
	if err != nil {
		return Language{}, fmt.Errorf("updating language: %w", err)
	}
	return l, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting language: %w", err)
	}
	return nil
}
