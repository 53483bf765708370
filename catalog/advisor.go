package catalog

import (
	"sort"
	"strings"

	"github.com/Kariqs/laptopzone-api/models"
)

// Preferences are the advisor inputs. Zero values are permissive: an empty
// keyword or zero minimum contributes no point.
type Preferences struct {
	MinBudget  float64 `json:"minBudget" form:"minBudget"`
	MaxBudget  float64 `json:"maxBudget" form:"maxBudget"`
	CPUPref    string  `json:"cpuPref" form:"cpu"`
	GPUPref    string  `json:"gpuPref" form:"gpu"`
	RAMMin     int     `json:"ramMin" form:"ramMin"`
	StorageMin int     `json:"storageMin" form:"storageMin"`
}

const MaxScore = 5

// Score awards one point per satisfied criterion.
func Score(p models.Product, prefs Preferences) int {
	score := 0
	if p.BasePriceUSD >= prefs.MinBudget && p.BasePriceUSD <= prefs.MaxBudget {
		score++
	}
	if containsFold(p.CPU, prefs.CPUPref) {
		score++
	}
	if containsFold(p.GPU, prefs.GPUPref) {
		score++
	}
	if prefs.RAMMin > 0 && hasAvailableAtLeast(p.RAMOptions, prefs.RAMMin) {
		score++
	}
	if prefs.StorageMin > 0 && hasAvailableAtLeast(p.StorageOptions, prefs.StorageMin) {
		score++
	}
	return score
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func hasAvailableAtLeast(options []models.ConfigOption, minGB int) bool {
	for _, o := range options {
		if o.Available && o.SizeGB >= minGB {
			return true
		}
	}
	return false
}

type Scored struct {
	Product models.Product `json:"product"`
	Score   int            `json:"score"`
}

// Recommend scores every product and orders the result by descending score,
// then ascending base price. Exact ties keep their input order.
func Recommend(products []models.Product, prefs Preferences) []Scored {
	scored := make([]Scored, len(products))
	for i, p := range products {
		scored[i] = Scored{Product: p, Score: Score(p, prefs)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Product.BasePriceUSD < scored[j].Product.BasePriceUSD
	})
	return scored
}

// Rank is Recommend without the scores.
func Rank(products []models.Product, prefs Preferences) []models.Product {
	scored := Recommend(products, prefs)
	ranked := make([]models.Product, len(scored))
	for i, s := range scored {
		ranked[i] = s.Product
	}
	return ranked
}
