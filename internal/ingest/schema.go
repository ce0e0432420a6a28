package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Structural schemas for the scraper-produced documents. Deliberately loose:
// scrapers evolve faster than this engine, so only the shape the diff relies
// on is enforced.
const pricingSchema = `{
  "type": "object",
  "required": ["categories"],
  "properties": {
    "categories": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["tools"],
        "properties": {
          "id": {"type": "string"},
          "tools": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name"],
              "properties": {"name": {"type": "string", "minLength": 1}}
            }
          }
        }
      }
    }
  }
}`

const featureSchema = `{
  "type": "object",
  "required": ["competitors"],
  "properties": {
    "competitors": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": {"type": "boolean"}
      }
    }
  }
}`

const genericSchema = `{
  "type": "object",
  "additionalProperties": {"type": ["string", "number", "boolean", "null"]}
}`

var (
	pricingCompiled = jsonschema.MustCompileString("pricing.schema.json", pricingSchema)
	featureCompiled = jsonschema.MustCompileString("features.schema.json", featureSchema)
	genericCompiled = jsonschema.MustCompileString("generic.schema.json", genericSchema)
)

func validateAgainst(sch *jsonschema.Schema, raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nil
}
