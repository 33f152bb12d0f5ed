// Package snapshot provides persistence for catalogue snapshots.
package snapshot

import (
	"context"

	"github.com/scapelab/gear-api/internal/catalogue"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=snapshotmock github.com/scapelab/gear-api/internal/repositories/snapshot Repository

// Repository defines the interface for catalogue snapshot storage.
// Snapshots are immutable once saved; Save also advances the latest
// pointer so readers pick up new versions without coordination.
type Repository interface {
	// Get retrieves a snapshot by version. An empty version resolves
	// the latest saved snapshot.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save persists a snapshot and marks it as the latest.
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a snapshot by version.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput is the input for retrieving a snapshot.
type GetInput struct {
	Version string
}

// GetOutput is the output for retrieving a snapshot.
type GetOutput struct {
	Snapshot *catalogue.Snapshot
}

// SaveInput is the input for persisting a snapshot.
type SaveInput struct {
	Snapshot *catalogue.Snapshot
}

// SaveOutput is the output for persisting a snapshot.
type SaveOutput struct {
	Version string
}

// DeleteInput is the input for deleting a snapshot.
type DeleteInput struct {
	Version string
}

// DeleteOutput is the output for deleting a snapshot.
type DeleteOutput struct{}
