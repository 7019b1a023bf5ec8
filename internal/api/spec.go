// Package api holds the HTTP surface's embedded OpenAPI contract. Handlers
// and middleware live in subpackages.
package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openapiSpec []byte

// LoadSpec parses and validates the embedded OpenAPI contract.
func LoadSpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = context.Background()

	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("parse embedded openapi.yaml: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate embedded openapi.yaml: %w", err)
	}
	return doc, nil
}
