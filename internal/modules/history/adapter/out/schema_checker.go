package out

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	historyout "flowstreak/internal/modules/history/port/out"
)

// historySchema describes the sessionHistory document: zero-padded day keys mapped to
// non-negative whole minutes.
const historySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "propertyNames": { "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$" },
  "additionalProperties": { "type": "integer", "minimum": 0 }
}`

type JSONSchemaChecker struct {
	schema *gojsonschema.Schema
}

func NewJSONSchemaChecker() (historyout.SchemaChecker, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(historySchema))
	if err != nil {
		return nil, fmt.Errorf("compile history schema: %w", err)
	}
	return &JSONSchemaChecker{schema: schema}, nil
}

// Validate returns one message per violation. Unparseable JSON is reported as a problem,
// not as an error.
func (c *JSONSchemaChecker) Validate(raw string) ([]string, error) {
	result, err := c.schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return []string{fmt.Sprintf("unreadable document: %v", err)}, nil
	}
	if result.Valid() {
		return nil, nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return problems, nil
}
