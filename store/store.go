// Package store isolates the remote document store and object storage behind
// ProductStore. GormStore is the production adapter; MemoryStore is the fake.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Kariqs/laptopzone-api/models"
)

var (
	// ErrBackendUnavailable wraps every store or object-storage failure.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrDuplicateSlug is returned by FetchBySlug when the slug is not unique.
	// The store does not enforce uniqueness, so readers must handle this.
	ErrDuplicateSlug = errors.New("more than one product shares this slug")
)

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrBackendUnavailable, op, err)
}

// ProgressFunc receives the transferred fraction in [0,1]. Calls are advisory:
// values may repeat or skip.
type ProgressFunc func(fraction float64)

// Object is a single binary upload.
type Object struct {
	Key          string
	ContentType  string
	CacheControl string
	Size         int64
	Body         io.Reader
}

type ProductStore interface {
	// FetchAll returns every product in store order. An empty catalog is
	// (nil or empty, nil); a failure wraps ErrBackendUnavailable.
	FetchAll(ctx context.Context) ([]models.Product, error)
	// FetchBySlug returns (nil, nil) when no product has the exact slug.
	FetchBySlug(ctx context.Context, slug string) (*models.Product, error)
	// Add writes a new product and returns its generated identifier.
	Add(ctx context.Context, p *models.Product) (string, error)
	// CheckPrivilege reports whether uid has an active admins record.
	CheckPrivilege(ctx context.Context, uid string) (bool, error)
	// UploadAsset stores obj and returns a publicly resolvable URL.
	UploadAsset(ctx context.Context, obj Object, progress ProgressFunc) (string, error)
}

type UserStore interface {
	// FindUserByEmail returns (nil, nil) when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Uploader is the object-storage half of a ProductStore.
type Uploader interface {
	Upload(ctx context.Context, obj Object, progress ProgressFunc) (string, error)
}

// pickSlug applies the duplicate-slug policy to the candidates a query returned.
// Matching is exact even when the database collation is not.
func pickSlug(candidates []models.Product, slug string) (*models.Product, error) {
	var found *models.Product
	for i := range candidates {
		if candidates[i].Slug != slug {
			continue
		}
		if found != nil {
			return nil, ErrDuplicateSlug
		}
		found = &candidates[i]
	}
	return found, nil
}
