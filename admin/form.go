// Package admin implements the product submission pipeline used by the admin
// dashboard: privilege check, form validation and normalization, store write,
// and thumbnail upload.
package admin

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/Kariqs/laptopzone-api/models"
	"github.com/go-playground/validator/v10"
)

const (
	DefaultBrand       = models.BrandDell
	DefaultThumbnail   = "/assets/placeholder.png"
	DefaultStorageType = models.StorageNVMe
)

// OptionInput is an option as typed into the form; values are coerced by NormalizeOption.
type OptionInput struct {
	SizeGB        any `json:"sizeGB" yaml:"sizeGB"`
	PriceDeltaUSD any `json:"priceDeltaUSD" yaml:"priceDeltaUSD"`
	Available     any `json:"available" yaml:"available"`
}

type ProductForm struct {
	Slug           string                `json:"slug" yaml:"slug" validate:"required"`
	Title          string                `json:"title" yaml:"title" validate:"required"`
	Brand          string                `json:"brand" yaml:"brand" validate:"omitempty,brand"`
	Description    string                `json:"description" yaml:"description"`
	BasePriceUSD   any                   `json:"basePriceUSD" yaml:"basePriceUSD"`
	Thumbnail      string                `json:"thumbnail" yaml:"thumbnail"`
	CPU            string                `json:"cpu" yaml:"cpu"`
	GPU            string                `json:"gpu" yaml:"gpu"`
	StorageType    string                `json:"storageType" yaml:"storageType" validate:"omitempty,storagetype"`
	Specs          []models.SpecKV       `json:"specs" yaml:"specs"`
	RAMOptions     []OptionInput         `json:"ramOptions" yaml:"ramOptions"`
	StorageOptions []OptionInput         `json:"storageOptions" yaml:"storageOptions"`
	CustomButtons  []models.ActionButton `json:"customButtons" yaml:"customButtons" validate:"dive"`
	GltfURL        string                `json:"gltfUrl" yaml:"gltfUrl"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("brand", oneOf(models.Brands))
	_ = v.RegisterValidation("storagetype", oneOf(models.StorageTypes))
	_ = v.RegisterValidation("buttonkind", oneOf(models.ButtonKinds))
	return v
}

func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	}
}

// Validate requires a slug and a title, checks brand, storage type and button
// kinds against their enums, and requires every option size to be a positive
// whole number. A slug that normalizes to nothing and a whitespace-only title
// count as missing.
func Validate(form ProductForm) error {
	check := form
	check.Slug = NormalizeSlug(form.Slug)
	check.Title = strings.TrimSpace(form.Title)
	check.Brand = strings.TrimSpace(form.Brand)
	check.StorageType = strings.TrimSpace(form.StorageType)

	verr := &ValidationError{}
	if err := validate.Struct(check); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			if fe.Tag() == "required" {
				verr.MissingFields = append(verr.MissingFields, fieldPath(fe))
			} else {
				verr.InvalidFields = append(verr.InvalidFields, fieldPath(fe))
			}
		}
	}
	verr.InvalidFields = append(verr.InvalidFields, invalidSizes("ramOptions", form.RAMOptions)...)
	verr.InvalidFields = append(verr.InvalidFields, invalidSizes("storageOptions", form.StorageOptions)...)

	if len(verr.MissingFields) == 0 && len(verr.InvalidFields) == 0 {
		return nil
	}
	return verr
}

// fieldPath drops the struct name from the namespace: customButtons[0].kind.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func invalidSizes(field string, options []OptionInput) []string {
	var out []string
	for i, o := range options {
		if NormalizeOption(o).SizeGB <= 0 {
			out = append(out, fmt.Sprintf("%s[%d].sizeGB", field, i))
		}
	}
	return out
}
