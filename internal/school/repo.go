package school

import "context"

type ListOpts struct {
	Q      string
	Limit  int
	Offset int
}

type Store interface {
	PutSchool(ctx context.Context, s School) error
	GetSchool(ctx context.Context, id string) (School, error)
	ListSchools(ctx context.Context, opts ListOpts) ([]Summary, error)

	// GetByIDs resolves a comparison selection. Order follows ids; unknown
	// ids are skipped rather than erroring so a stale shared link degrades
	// instead of breaking.
	GetByIDs(ctx context.Context, ids []string) ([]School, error)

	// ListGeocoded returns every school that has both coordinates, for the
	// map view. Schools missing either coordinate never appear here.
	ListGeocoded(ctx context.Context) ([]School, error)
}
