package seeder

import (
	"context"

	"portfolio-api/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// RunAll executes seeders in order and stops at the first failure.
func RunAll(ctx context.Context, db database.DB, seeders ...Seeder) error {
	for _, s := range seeders {
		if err := s.Run(ctx, db); err != nil {
			return err
		}
	}
	return nil
}
