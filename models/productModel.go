package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BrandDell    = "Dell"
	BrandHP      = "HP"
	BrandFujitsu = "Fujitsu"
	BrandLenovo  = "Lenovo"
	BrandApple   = "Apple"
	BrandOther   = "Other"

	StorageNVMe = "NVMe"
	StorageSSD  = "SSD"
	StorageHDD  = "HDD"

	ButtonPrimary   = "primary"
	ButtonSecondary = "secondary"
	ButtonWhatsApp  = "whatsapp"
	ButtonCall      = "call"
)

// Brands lists the catalog brands in display order.
var Brands = []string{BrandDell, BrandHP, BrandFujitsu, BrandLenovo, BrandApple, BrandOther}

var StorageTypes = []string{StorageNVMe, StorageSSD, StorageHDD}

var ButtonKinds = []string{ButtonPrimary, ButtonSecondary, ButtonWhatsApp, ButtonCall}

type SpecKV struct {
	K string `json:"k" yaml:"k"`
	V string `json:"v" yaml:"v"`
}

// ConfigOption is a RAM or storage choice. PriceDeltaUSD is added to the base price.
type ConfigOption struct {
	SizeGB        int     `json:"sizeGB" yaml:"sizeGB"`
	PriceDeltaUSD float64 `json:"priceDeltaUSD" yaml:"priceDeltaUSD"`
	Available     bool    `json:"available" yaml:"available"`
}

type ActionButton struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href,omitempty" yaml:"href,omitempty"`
	Kind  string `json:"kind,omitempty" yaml:"kind,omitempty" validate:"omitempty,buttonkind"`
}

type Product struct {
	ID             string                            `json:"id" gorm:"primaryKey;size:36"`
	Slug           string                            `json:"slug" gorm:"index;size:191"`
	Brand          string                            `json:"brand" gorm:"size:32"`
	Title          string                            `json:"title"`
	Description    string                            `json:"description,omitempty"`
	BasePriceUSD   float64                           `json:"basePriceUSD"`
	Thumbnail      string                            `json:"thumbnail" gorm:"size:1024"`
	CPU            string                            `json:"cpu"`
	GPU            string                            `json:"gpu"`
	StorageType    string                            `json:"storageType" gorm:"size:16"`
	Specs          datatypes.JSONSlice[SpecKV]       `json:"specs"`
	RAMOptions     datatypes.JSONSlice[ConfigOption] `json:"ramOptions,omitempty" gorm:"column:ram_options"`
	StorageOptions datatypes.JSONSlice[ConfigOption] `json:"storageOptions,omitempty"`
	CustomButtons  datatypes.JSONSlice[ActionButton] `json:"customButtons,omitempty"`
	GltfURL        string                            `json:"gltfUrl,omitempty" gorm:"column:gltf_url;size:1024"`
	CreatedAt      time.Time                         `json:"createdAt"`
	UpdatedAt      time.Time                         `json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}

// BeforeCreate assigns the document identifier when the writer did not supply one.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
