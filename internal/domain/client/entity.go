// internal/domain/client/entity.go
package client

import (
	"errors"
	"strings"
)

var (
	ErrInvalidClient = errors.New("client: invalid")
	ErrNotFound      = errors.New("client: not found")
)

// Client is one directory record a schedule can be created for.
// The directory is read-only from this service's point of view.
type Client struct {
	ID      string `json:"id" firestore:"id"`
	Name    string `json:"name" firestore:"name"`
	TaxID   string `json:"taxId" firestore:"taxId"`
	Address string `json:"address,omitempty" firestore:"address,omitempty"`
}

func (c Client) Validate() error {
	if strings.TrimSpace(c.ID) == "" || strings.TrimSpace(c.Name) == "" {
		return ErrInvalidClient
	}
	return nil
}
