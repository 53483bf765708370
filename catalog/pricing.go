// Package catalog holds the pure storefront logic: configuration pricing,
// advisor scoring and catalog filtering. None of it performs I/O.
package catalog

import "github.com/Kariqs/laptopzone-api/models"

// Selection is a chosen RAM/storage configuration. A zero size means unset;
// option sizes are positive so zero never names a real option.
type Selection struct {
	RAMSizeGB     int `json:"ramSizeGB"`
	StorageSizeGB int `json:"storageSizeGB"`
}

// DefaultSelection picks the first available RAM option and the first
// available storage option in stored order. If several options share a size
// the earliest one wins; if none is available that component stays unset.
func DefaultSelection(p models.Product) Selection {
	return Selection{
		RAMSizeGB:     firstAvailable(p.RAMOptions),
		StorageSizeGB: firstAvailable(p.StorageOptions),
	}
}

func firstAvailable(options []models.ConfigOption) int {
	for _, o := range options {
		if o.Available {
			return o.SizeGB
		}
	}
	return 0
}

// PriceDelta sums the deltas of the RAM and storage options whose size
// equals the selection exactly. Unmatched or unset components add nothing.
func PriceDelta(p models.Product, ramSizeGB, storageSizeGB int) float64 {
	return optionDelta(p.RAMOptions, ramSizeGB) + optionDelta(p.StorageOptions, storageSizeGB)
}

func optionDelta(options []models.ConfigOption, sizeGB int) float64 {
	if sizeGB == 0 {
		return 0
	}
	for _, o := range options {
		if o.SizeGB == sizeGB {
			return o.PriceDeltaUSD
		}
	}
	return 0
}

// FinalPrice is the base price plus delta, with no rounding.
func FinalPrice(p models.Product, delta float64) float64 {
	return p.BasePriceUSD + delta
}

// Quote is the resolved price of a product under one selection.
type Quote struct {
	Default    Selection `json:"defaultSelection"`
	Selected   Selection `json:"selection"`
	PriceDelta float64   `json:"priceDelta"`
	FinalPrice float64   `json:"finalPrice"`
}

// Resolve prices a product. Nil sizes fall back to the default selection.
func Resolve(p models.Product, ramSizeGB, storageSizeGB *int) Quote {
	def := DefaultSelection(p)
	sel := def
	if ramSizeGB != nil {
		sel.RAMSizeGB = *ramSizeGB
	}
	if storageSizeGB != nil {
		sel.StorageSizeGB = *storageSizeGB
	}
	delta := PriceDelta(p, sel.RAMSizeGB, sel.StorageSizeGB)
	return Quote{
		Default:    def,
		Selected:   sel,
		PriceDelta: delta,
		FinalPrice: FinalPrice(p, delta),
	}
}
