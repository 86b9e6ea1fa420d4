package http

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// specYAML is the source document of api.gen.go, served as-is at /openapi.yaml.
//
//go:embed openapi.yaml
var specYAML []byte

// RawSpec returns the OpenAPI document in its YAML form.
func RawSpec() []byte {
	return bytes.Clone(specYAML)
}

// LoadSpec decodes the spec compiled into api.gen.go and validates it.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
}

// validateBody checks a decoded JSON document against a named component schema.
func validateBody(doc *openapi3.T, schema string, body []byte) error {
	ref, ok := doc.Components.Schemas[schema]
	if !ok || ref.Value == nil {
		return fmt.Errorf("unknown schema %q", schema)
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if err := ref.Value.VisitJSON(value); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}
