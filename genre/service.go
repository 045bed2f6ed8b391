package genre

import (
	"context"
	"fmt"
)

type UseCase interface {
	Create(ctx context.Context, name string) (Genre, error)
	List(ctx context.Context) ([]Genre, error)
	Get(ctx context.Context, id int64) (Genre, error)
	Update(ctx context.Context, id int64, name string) (Genre, error)
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

func (s *Service) Create(ctx context.Context, name string) (Genre, error) {
	g := Genre{
		Name: name,
	}
	id, err := s.Repo.Insert(ctx, g)
	if err != nil {
		return Genre{}, fmt.Errorf("inserting genre: %w", err)
	}
	g.ID = id
	return g, nil
}

func (s *Service) List(ctx context.Context) ([]Genre, error) {
	all, err := s.Repo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("selecting genres: %w", err)
	}
	return all, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Genre, error) {
	g, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Genre{}, fmt.Errorf("selecting genre: %w", err)
	}
	return g, nil
}

// Update is a full replace; the caller supplies every field
func (s *Service) Update(ctx context.Context, id int64, name string) (Genre, error) {
	g := Genre{
		ID:   id,
		Name: name,
	}
	err := s.Repo.Update(ctx, g)
	if err != nil {
		return Genre{}, fmt.Errorf("updating genre: %w", err)
	}
	return g, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting genre: %w", err)
	}
	return nil
}
