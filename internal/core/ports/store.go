package ports

import "github.com/volthaus/meshsweep/internal/core/domain"

// RunStore persists completed run records keyed by input hash.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RunStore interface {
	// Get retrieves the record for the given input hash.
	// A missing record returns (nil, nil).
	Get(inputHash string) (*domain.RunRecord, error)

	// Put stores the record under its input hash.
	Put(record domain.RunRecord) error
}
