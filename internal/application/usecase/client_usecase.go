// internal/application/usecase/client_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	clientdom "agendalog/internal/domain/client"
)

var (
	ErrClientInvalidArgument = errors.New("client_usecase: invalid argument")
	ErrClientNotFound        = errors.New("client_usecase: not found")
)

// ClientUsecase exposes the read-only client directory.
type ClientUsecase struct {
	repo clientdom.Repository
}

func NewClientUsecase(repo clientdom.Repository) *ClientUsecase {
	return &ClientUsecase{repo: repo}
}

// List returns the directory ordered by name.
func (uc *ClientUsecase) List(ctx context.Context) ([]clientdom.Client, error) {
	return uc.repo.List(ctx)
}

// Get returns one client.
func (uc *ClientUsecase) Get(ctx context.Context, id string) (*clientdom.Client, error) {
	cid := strings.TrimSpace(id)
	if cid == "" {
		return nil, ErrClientInvalidArgument
	}
	c, err := uc.repo.GetByID(ctx, cid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrClientNotFound
	}
	return c, nil
}
