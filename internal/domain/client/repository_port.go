// internal/domain/client/repository_port.go
package client

import "context"

// Repository is a read port over the client directory.
type Repository interface {
	// List returns the directory ordered by name.
	List(ctx context.Context) ([]Client, error)

	// GetByID returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*Client, error)
}
