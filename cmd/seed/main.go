package main

import (
	"context"
	"fmt"
	"os"

	"github.com/marcelsud/locallibrary/author"
	"github.com/marcelsud/locallibrary/config"
	"github.com/marcelsud/locallibrary/genre"
	"github.com/marcelsud/locallibrary/internal/http/chi"
	"github.com/marcelsud/locallibrary/language"
	"github.com/marcelsud/locallibrary/seed"
	"github.com/marcelsud/locallibrary/storage"
)

/* seed - loads a YAML fixture file into the configured catalog store
 * Usage: go run cmd/seed/main.go [seed.yaml]
 * Exit codes: 0 = seeded, 1 = invalid file or store failure
 */

func main() {
	seedFile := "seed.yaml"
	if len(os.Args) > 1 {
		seedFile = os.Args[1]
	}
	if err := run(context.Background(), seedFile); err != nil {
		fmt.Fprintf(os.Stderr, "❌ SEED FAILED\n\nError: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, seedFile string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	logger := chi.NewLogger(cfg.LogLevel, cfg.LogJSON)

	// validate everything before touching the database
	loader := seed.NewLoader()
	if err := loader.Load(seedFile); err != nil {
		return err
	}
	f := loader.Fixtures()
	logger.Info().
		Str("file", seedFile).
		Int("languages", len(f.Languages)).
		Int("genres", len(f.Genres)).
		Int("authors", len(f.Authors)).
		Msg("seed file is valid")

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if _, err := store.Migrate(ctx); err != nil {
		return err
	}

	res, err := seed.Apply(ctx, f, seed.Services{
		Languages: language.NewService(store.Languages()),
		Genres:    genre.NewService(store.Genres()),
		Authors:   author.NewService(store.Authors()),
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ SEED APPLIED\n\n")
	fmt.Printf("   Languages: %d\n", res.Languages)
	fmt.Printf("   Genres:    %d\n", res.Genres)
	fmt.Printf("   Authors:   %d\n", res.Authors)
	return nil
}
