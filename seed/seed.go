// Package seed carries the launch catalog as product forms, ready to be
// pushed through the admin pipeline.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/Kariqs/laptopzone-api/admin"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var productsYAML []byte

func Products() ([]admin.ProductForm, error) {
	return Parse(productsYAML)
}

// Parse decodes a YAML list of product forms.
func Parse(data []byte) ([]admin.ProductForm, error) {
	var forms []admin.ProductForm
	if err := yaml.Unmarshal(data, &forms); err != nil {
		return nil, fmt.Errorf("parse seed products: %w", err)
	}
	return forms, nil
}
