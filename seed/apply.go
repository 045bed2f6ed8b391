package seed

import (
	"context"
	"fmt"

	"github.com/marcelsud/locallibrary/author"
	"github.com/marcelsud/locallibrary/genre"
	"github.com/marcelsud/locallibrary/language"
)

// Services receives the fixtures
type Services struct {
	Languages language.UseCase
	Genres    genre.UseCase
	Authors   author.UseCase
}

// Result counts the records created by Apply
type Result struct {
	Languages int
	Genres    int
	Authors   int
}

// Apply creates every fixture through the services, in file order.
// It stops at the first failure; records created before it are kept
func Apply(ctx context.Context, f Fixtures, s Services) (Result, error) {
	var res Result
	for _, n := range f.Languages {
		if _, err := s.Languages.Create(ctx, n.Name); err != nil {
			return res, fmt.Errorf("seeding language %q: %w", n.Name, err)
		}
		res.Languages++
	}
	for _, n := range f.Genres {
		if _, err := s.Genres.Create(ctx, n.Name); err != nil {
			return res, fmt.Errorf("seeding genre %q: %w", n.Name, err)
		}
		res.Genres++
	}
	for _, af := range f.Authors {
		a, err := af.Author()
		if err != nil {
			return res, fmt.Errorf("seeding author %s %s: %w", af.FirstName, af.LastName, err)
		}
		if _, err := s.Authors.Create(ctx, a); err != nil {
			return res, fmt.Errorf("seeding author %s %s: %w", af.FirstName, af.LastName, err)
		}
		res.Authors++
	}
	return res, nil
}

// Counter reports the stored records per entity. metrics.SQLCollector satisfies it
type Counter interface {
	GetRecordCounts(ctx context.Context) (map[string]int64, error)
}

// ApplyIfEmpty applies f only when the catalog holds no record at all, so a fixture
// loaded at every start is not duplicated. The boolean reports whether it ran
func ApplyIfEmpty(ctx context.Context, f Fixtures, s Services, c Counter) (Result, bool, error) {
	counts, err := c.GetRecordCounts(ctx)
	if err != nil {
		return Result{}, false, fmt.Errorf("counting records: %w", err)
	}
	for _, n := range counts {
		if n > 0 {
			return Result{}, false, nil
		}
	}
	res, err := Apply(ctx, f, s)
	return res, true, err
}
