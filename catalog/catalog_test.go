package catalog

import (
	"testing"

	"github.com/Kariqs/laptopzone-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func celsiusH780() models.Product {
	return models.Product{
		Slug:         "fujitsu-celsius-h780",
		Brand:        models.BrandFujitsu,
		Title:        "FUJITSU Workstation CELSIUS H780",
		BasePriceUSD: 500,
		CPU:          "i7-8820H",
		GPU:          "Quadro P600",
		RAMOptions: []models.ConfigOption{
			{SizeGB: 32, PriceDeltaUSD: 0, Available: true},
			{SizeGB: 64, PriceDeltaUSD: 70, Available: true},
		},
		StorageOptions: []models.ConfigOption{
			{SizeGB: 256, PriceDeltaUSD: 0, Available: true},
			{SizeGB: 512, PriceDeltaUSD: 30, Available: true},
			{SizeGB: 1024, PriceDeltaUSD: 90, Available: true},
		},
	}
}

func TestPriceDeltaScenario(t *testing.T) {
	p := celsiusH780()
	delta := PriceDelta(p, 64, 1024)
	assert.Equal(t, 160.0, delta)
	assert.Equal(t, 660.0, FinalPrice(p, delta))
}

func TestPriceDeltaUnmatchedSelection(t *testing.T) {
	p := celsiusH780()
	assert.Equal(t, 0.0, PriceDelta(p, 48, 2048))
	assert.Equal(t, 0.0, PriceDelta(p, 0, 0))
	assert.Equal(t, 30.0, PriceDelta(p, 48, 512))
	assert.Equal(t, 0.0, PriceDelta(models.Product{BasePriceUSD: 10}, 16, 256))
}

func TestFinalPriceIsBasePlusDelta(t *testing.T) {
	p := celsiusH780()
	for _, ram := range []int{0, 32, 64, 128} {
		for _, storage := range []int{0, 256, 512, 1024} {
			delta := PriceDelta(p, ram, storage)
			assert.Equal(t, p.BasePriceUSD+delta, FinalPrice(p, delta))
		}
	}
}

func TestDefaultSelection(t *testing.T) {
	t.Run("first available in stored order", func(t *testing.T) {
		p := models.Product{
			RAMOptions: []models.ConfigOption{
				{SizeGB: 8, Available: false},
				{SizeGB: 32, Available: true},
				{SizeGB: 16, Available: true},
			},
			StorageOptions: []models.ConfigOption{{SizeGB: 512, Available: true}},
		}
		assert.Equal(t, Selection{RAMSizeGB: 32, StorageSizeGB: 512}, DefaultSelection(p))
	})

	t.Run("duplicate sizes resolve to the earliest", func(t *testing.T) {
		p := models.Product{
			RAMOptions: []models.ConfigOption{
				{SizeGB: 16, PriceDeltaUSD: 0, Available: true},
				{SizeGB: 16, PriceDeltaUSD: 40, Available: true},
			},
		}
		assert.Equal(t, 16, DefaultSelection(p).RAMSizeGB)
		assert.Equal(t, 0.0, PriceDelta(p, 16, 0))
	})

	t.Run("none available stays unset", func(t *testing.T) {
		p := models.Product{
			RAMOptions:     []models.ConfigOption{{SizeGB: 8, Available: false}},
			StorageOptions: nil,
		}
		assert.Equal(t, Selection{}, DefaultSelection(p))
	})
}

func TestResolve(t *testing.T) {
	p := celsiusH780()

	q := Resolve(p, nil, nil)
	assert.Equal(t, Selection{RAMSizeGB: 32, StorageSizeGB: 256}, q.Default)
	assert.Equal(t, q.Default, q.Selected)
	assert.Equal(t, 500.0, q.FinalPrice)

	ram := 64
	q = Resolve(p, &ram, nil)
	assert.Equal(t, Selection{RAMSizeGB: 64, StorageSizeGB: 256}, q.Selected)
	assert.Equal(t, 70.0, q.PriceDelta)
	assert.Equal(t, 570.0, q.FinalPrice)
}

func TestScoreScenario(t *testing.T) {
	prefs := Preferences{MinBudget: 0, MaxBudget: 400, CPUPref: "i5", GPUPref: "", RAMMin: 16, StorageMin: 0}
	assert.Equal(t, 1, Score(celsiusH780(), prefs))
}

func TestScoreCriteria(t *testing.T) {
	p := celsiusH780()

	assert.Equal(t, 0, Score(p, Preferences{MaxBudget: 100}), "empty criteria are not auto-satisfied")
	assert.Equal(t, MaxScore, Score(p, Preferences{
		MinBudget:  500,
		MaxBudget:  500,
		CPUPref:    "I7",
		GPUPref:    "quadro",
		RAMMin:     64,
		StorageMin: 1024,
	}))

	p.RAMOptions[1].Available = false
	assert.Equal(t, 0, Score(p, Preferences{MaxBudget: -1, RAMMin: 64}), "unavailable options do not count")
}

func TestScoreMonotonic(t *testing.T) {
	p := celsiusH780()
	base := Preferences{MinBudget: 900, MaxBudget: 1000}
	additions := []func(Preferences) Preferences{
		func(pr Preferences) Preferences { pr.MinBudget, pr.MaxBudget = 0, 2000; return pr },
		func(pr Preferences) Preferences { pr.CPUPref = "8820"; return pr },
		func(pr Preferences) Preferences { pr.GPUPref = "P600"; return pr },
		func(pr Preferences) Preferences { pr.RAMMin = 32; return pr },
		func(pr Preferences) Preferences { pr.StorageMin = 512; return pr },
	}
	prev := Score(p, base)
	prefs := base
	for _, add := range additions {
		prefs = add(prefs)
		next := Score(p, prefs)
		assert.Greater(t, next, prev)
		prev = next
	}
	assert.Equal(t, MaxScore, prev)
}

func TestRankOrdering(t *testing.T) {
	products := []models.Product{
		{Slug: "cheap-i5", BasePriceUSD: 220, CPU: "Intel Core i5-7200U"},
		{Slug: "pricey-i7", BasePriceUSD: 500, CPU: "Intel Core i7-8820H"},
		{Slug: "mid-i7", BasePriceUSD: 350, CPU: "Intel Core i7-1185G7"},
	}
	ranked := Rank(products, Preferences{MaxBudget: 2000, CPUPref: "i7"})
	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"mid-i7", "pricey-i7", "cheap-i5"}, slugs(ranked))
}

func TestRankStableOnExactTies(t *testing.T) {
	products := []models.Product{
		{Slug: "a", BasePriceUSD: 300},
		{Slug: "b", BasePriceUSD: 300},
		{Slug: "cheap", BasePriceUSD: 100},
		{Slug: "c", BasePriceUSD: 300},
		{Slug: "d", BasePriceUSD: 300},
	}
	ranked := Rank(products, Preferences{MaxBudget: 1000})
	assert.Equal(t, []string{"cheap", "a", "b", "c", "d"}, slugs(ranked))

	scored := Recommend(products, Preferences{MaxBudget: 1000})
	for _, s := range scored {
		assert.Equal(t, 1, s.Score)
	}
}

func TestFilter(t *testing.T) {
	products := []models.Product{
		{Slug: "dell", Brand: models.BrandDell, Title: "Dell Latitude 7320", CPU: "Intel Core i5-1145G7", GPU: "Intel Iris Xe"},
		{Slug: "t14s", Brand: models.BrandLenovo, Title: "Lenovo ThinkPad T14s", CPU: "AMD Ryzen 7 Pro 4750U", GPU: "AMD Radeon Graphics"},
		{Slug: "x1", Brand: models.BrandLenovo, Title: "Lenovo ThinkPad X1 Carbon", CPU: "Intel Core i5-8250U", GPU: "Intel UHD 620"},
	}

	assert.Empty(t, Filter(nil, "x", AllBrands))
	assert.Equal(t, products, Filter(products, "", AllBrands))
	assert.Equal(t, []string{"t14s"}, slugs(Filter(products, "RADEON", AllBrands)))
	assert.Equal(t, []string{"dell", "x1"}, slugs(Filter(products, "intel", AllBrands)))
	assert.Equal(t, []string{"x1"}, slugs(Filter(products, "intel", models.BrandLenovo)))
	assert.Equal(t, []string{"t14s", "x1"}, slugs(Filter(products, "", models.BrandLenovo)))
	assert.Empty(t, Filter(products, "", models.BrandApple))
	assert.Equal(t, []string{"dell"}, slugs(Filter(products, "latitude 7320 intel", AllBrands)))
}

func slugs(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Slug
	}
	return out
}
