package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var errInvalidJSON = errors.New("Invalid JSON body")

var optionalString = map[string]interface{}{"type": []string{"string", "null"}}

var (
	expertAdviceSchema = mustSchema(map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query":    optionalString,
			"crop":     optionalString,
			"location": optionalString,
			"season":   optionalString,
		},
	})

	weatherAdviceSchema = mustSchema(map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"location": map[string]interface{}{"type": "string"},
			"crop":     optionalString,
		},
	})
)

func mustSchema(schema map[string]interface{}) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid request schema: %v", err))
	}
	return s
}

// decodeBody validates body against schema and unmarshals it into dst. An
// empty body is treated as an empty object.
func decodeBody(body []byte, schema *gojsonschema.Schema, dst interface{}) error {
	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return errInvalidJSON
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("Invalid request: %s", strings.Join(errs, "; "))
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return errInvalidJSON
	}
	return nil
}
