package author

import (
	"context"
	"fmt"
)

type UseCase interface {
	Create(ctx context.Context, a Author) (Author, error)
	List(ctx context.Context) ([]Author, error)
	Get(ctx context.Context, id int64) (Author, error)
	Update(ctx context.Context, id int64, patch Patch) (Author, error)
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

func (s *Service) Create(ctx context.Context, a Author) (Author, error) {
	a.ID = 0
	id, err := s.Repo.Insert(ctx, a)
	if err != nil {
		return Author{}, fmt.Errorf("inserting author: %w", err)
	}
	a.ID = id
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Author, error) {
	all, err := s.Repo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("selecting authors: %w", err)
	}
	return all, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Author, error) {
	a, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Author{}, fmt.Errorf("selecting author: %w", err)
	}
	return a, nil
}

// Update merges patch into the stored author. An empty patch is a plain lookup
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (Author, error) {
	if patch.IsEmpty() {
		return s.Get(ctx, id)
	}
	a, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		return Author{}, fmt.Errorf("updating author: %w", err)
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting author: %w", err)
	}
	return nil
}
