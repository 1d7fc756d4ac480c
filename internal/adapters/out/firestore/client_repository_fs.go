// internal/adapters/out/firestore/client_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	clientdom "agendalog/internal/domain/client"
)

// ClientRepositoryFS implements the client directory using Firestore.
//
// Collection design:
// - collection: clients
// - docId: client id
type ClientRepositoryFS struct {
	Client *firestore.Client
}

func NewClientRepositoryFS(client *firestore.Client) *ClientRepositoryFS {
	return &ClientRepositoryFS{Client: client}
}

func (r *ClientRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("clients")
}

// List returns every directory record ordered by name.
func (r *ClientRepositoryFS) List(ctx context.Context) ([]clientdom.Client, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("client_repository_fs: firestore client is nil")
	}

	it := r.col().OrderBy("name", firestore.Asc).Documents(ctx)
	defer it.Stop()

	var out []clientdom.Client
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var c clientdom.Client
		if err := doc.DataTo(&c); err != nil {
			return nil, err
		}
		c.ID = doc.Ref.ID
		out = append(out, c)
	}
	return out, nil
}

// GetByID returns (nil, nil) if not found (nil policy).
func (r *ClientRepositoryFS) GetByID(ctx context.Context, id string) (*clientdom.Client, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("client_repository_fs: firestore client is nil")
	}

	cid := strings.TrimSpace(id)
	if cid == "" {
		return nil, errors.New("client_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(cid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var c clientdom.Client
	if err := snap.DataTo(&c); err != nil {
		return nil, err
	}
	c.ID = cid
	return &c, nil
}
