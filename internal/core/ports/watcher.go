package ports

import "context"

// Watcher watches a plan file and invokes a callback when it changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Watch blocks until ctx is done, calling onChange after each coalesced
	// batch of changes to the file at path.
	Watch(ctx context.Context, path string, onChange func()) error
}
