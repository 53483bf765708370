package admin

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/Kariqs/laptopzone-api/store"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

const (
	MaxAssetBytes     = 5 << 20
	assetCacheControl = "public, max-age=31536000, immutable"
	defaultAssetExt   = "jpg"
	defaultAssetSlug  = "no-slug"
)

// allowedAssetTypes are the raster formats served from the public bucket.
// Scriptable formats such as SVG are refused.
var allowedAssetTypes = []string{"image/png", "image/jpeg", "image/webp", "image/gif"}

// Asset is a file offered for upload. Size is the declared size; the body is
// still capped at MaxAssetBytes while reading.
type Asset struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadAsset stores an image for the product identified by slug and returns
// its public URL. Only PNG, JPEG, WebP and GIF images up to MaxAssetBytes are
// accepted, and nothing is sent to storage when the file is rejected.
func (p *Pipeline) UploadAsset(ctx context.Context, uid, slug string, file Asset, progress store.ProgressFunc) (string, error) {
	if err := p.Authorize(ctx, uid); err != nil {
		return "", err
	}
	if file.Size > MaxAssetBytes {
		return "", ErrAssetTooLarge
	}
	if file.ContentType != "" && !strings.HasPrefix(file.ContentType, "image/") {
		return "", ErrAssetType
	}

	data, err := io.ReadAll(io.LimitReader(file.Body, MaxAssetBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: read upload: %v", ErrInvalidAsset, err)
	}
	if len(data) > MaxAssetBytes {
		return "", ErrAssetTooLarge
	}
	detected := mimetype.Detect(data)
	if !slices.ContainsFunc(allowedAssetTypes, detected.Is) {
		return "", ErrAssetType
	}

	key := p.assetKey(uid, slug, file.Filename)
	url, err := p.store.UploadAsset(ctx, store.Object{
		Key:          key,
		ContentType:  detected.String(),
		CacheControl: assetCacheControl,
		Size:         int64(len(data)),
		Body:         bytes.NewReader(data),
	}, progress)
	if err != nil {
		return "", err
	}
	zap.L().Info("asset uploaded", zap.String("key", key), zap.Int("bytes", len(data)))
	return url, nil
}

// assetKey namespaces uploads by caller, time and slug:
// uploads/<uid>/<unixMillis>_<slug>.<ext>
func (p *Pipeline) assetKey(uid, slug, filename string) string {
	safeSlug := NormalizeSlug(slug)
	if safeSlug == "" {
		safeSlug = defaultAssetSlug
	}
	return fmt.Sprintf("uploads/%s/%d_%s.%s", uid, p.now().UnixMilli(), safeSlug, assetExt(filename))
}

func assetExt(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		return defaultAssetExt
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultAssetExt
		}
	}
	return ext
}
