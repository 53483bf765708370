package admin

import (
	"math"
	"strings"

	"github.com/Kariqs/laptopzone-api/models"
	"github.com/spf13/cast"
)

// NormalizeSlug lowercases input, drops everything but [a-z0-9], spaces and
// hyphens, and turns space and hyphen runs into single hyphens with none at
// either end. Tabs and newlines are dropped like any other symbol.
// The result is empty or matches ^[a-z0-9]+(-[a-z0-9]+)*$.
func NormalizeSlug(input string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(input) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == ' ':
			b.WriteByte('-')
		}
	}
	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '-' })
	return strings.Join(parts, "-")
}

// maxOptionSizeGB bounds option sizes well inside int range on every platform.
const maxOptionSizeGB = math.MaxInt32

// NormalizeOption coerces a loosely typed option. Non-numeric deltas become 0,
// as do sizes that are not whole numbers in [0, maxOptionSizeGB]; anything not
// recognisably true becomes false.
func NormalizeOption(o OptionInput) models.ConfigOption {
	return models.ConfigOption{
		SizeGB:        toSize(o.SizeGB),
		PriceDeltaUSD: toNumber(o.PriceDeltaUSD),
		Available:     cast.ToBool(o.Available),
	}
}

func normalizeOptions(in []OptionInput) []models.ConfigOption {
	out := make([]models.ConfigOption, 0, len(in))
	for _, o := range in {
		out = append(out, NormalizeOption(o))
	}
	return out
}

func toSize(v any) int {
	f := toNumber(v)
	if f < 0 || f > maxOptionSizeGB || f != math.Trunc(f) {
		return 0
	}
	return int(f)
}

func toNumber(v any) float64 {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Normalize builds the record that Submit writes.
func Normalize(form ProductForm) models.Product {
	p := models.Product{
		Slug:           NormalizeSlug(form.Slug),
		Brand:          strings.TrimSpace(form.Brand),
		Title:          strings.TrimSpace(form.Title),
		Description:    form.Description,
		BasePriceUSD:   toNumber(form.BasePriceUSD),
		Thumbnail:      strings.TrimSpace(form.Thumbnail),
		CPU:            form.CPU,
		GPU:            form.GPU,
		StorageType:    strings.TrimSpace(form.StorageType),
		Specs:          form.Specs,
		RAMOptions:     normalizeOptions(form.RAMOptions),
		StorageOptions: normalizeOptions(form.StorageOptions),
		GltfURL:        strings.TrimSpace(form.GltfURL),
	}
	if p.Brand == "" {
		p.Brand = DefaultBrand
	}
	if p.Thumbnail == "" {
		p.Thumbnail = DefaultThumbnail
	}
	if p.StorageType == "" {
		p.StorageType = DefaultStorageType
	}
	if p.Specs == nil {
		p.Specs = []models.SpecKV{}
	}
	for _, b := range form.CustomButtons {
		if b.Kind == "" {
			b.Kind = models.ButtonSecondary
		}
		p.CustomButtons = append(p.CustomButtons, b)
	}
	return p
}
