package admin

import (
	"context"
	"errors"
	"time"

	"github.com/Kariqs/laptopzone-api/store"
	"go.uber.org/zap"
)

type Pipeline struct {
	store store.ProductStore
	now   func() time.Time
}

func NewPipeline(s store.ProductStore) *Pipeline {
	return &Pipeline{store: s, now: time.Now}
}

// Authorize fails with ErrUnauthorized unless uid has an active admins record.
func (p *Pipeline) Authorize(ctx context.Context, uid string) error {
	ok, err := p.store.CheckPrivilege(ctx, uid)
	if err != nil {
		return err
	}
	if !ok {
		return unauthorized(uid)
	}
	return nil
}

// Submit checks privilege, validates and normalizes form, and writes the
// record. It returns the identifier the store generated.
func (p *Pipeline) Submit(ctx context.Context, uid string, form ProductForm) (string, error) {
	if err := p.Authorize(ctx, uid); err != nil {
		return "", err
	}
	if err := Validate(form); err != nil {
		return "", err
	}

	record := Normalize(form)
	existing, err := p.store.FetchBySlug(ctx, record.Slug)
	switch {
	case errors.Is(err, store.ErrDuplicateSlug):
		return "", ErrSlugTaken
	case err != nil:
		return "", err
	case existing != nil:
		return "", ErrSlugTaken
	}

	now := p.now()
	record.CreatedAt, record.UpdatedAt = now, now
	id, err := p.store.Add(ctx, &record)
	if err != nil {
		return "", err
	}
	zap.L().Info("product submitted", zap.String("id", id), zap.String("slug", record.Slug), zap.String("uid", uid))
	return id, nil
}
