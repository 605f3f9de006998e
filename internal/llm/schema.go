package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/mholloway/ptr-tracker/constants"
)

// BuildReportJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the model as a structured output constraint
// and also use it locally to validate what comes back.
func BuildReportJSONSchema() map[string]any {
	transaction := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"owner":             enumProp(constants.Ownerships),
			"asset_name":        map[string]any{"type": "string", "minLength": 1},
			"asset_type":        map[string]any{"type": "string"},
			"filing_status":     enumProp(constants.FilingStatuses),
			"trade_type":        enumProp(constants.TradeTypes),
			"trade_date":        dateProp(),
			"notification_date": dateProp(),
			"min_amount":        map[string]any{"type": "integer", "minimum": 0},
			"max_amount":        map[string]any{"type": "integer", "minimum": 0},
		},
		"required": []string{"asset_name", "trade_type", "trade_date", "min_amount", "max_amount"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"doc_id":       map[string]any{"type": "string", "pattern": `^\d+$`},
			"filer_name":   map[string]any{"type": "string", "minLength": 1},
			"filer_status": enumProp(constants.FilerStatuses),
			"state":        map[string]any{"type": "string", "pattern": `^[A-Z]{2}$`},
			"district":     map[string]any{"type": "integer", "minimum": 0},
			"transactions": map[string]any{"type": "array", "items": transaction},
		},
		"required": []string{"doc_id", "filer_name", "filer_status", "state", "district", "transactions"},
	}
}

func enumProp(values []string) map[string]any {
	return map[string]any{"type": "string", "enum": values}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
}

// ValidateJSONAgainstSchema checks a raw JSON document against the schema
// map produced by BuildReportJSONSchema.
func ValidateJSONAgainstSchema(schema map[string]any, doc []byte) error {
	sb, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("report.schema.json", bytes.NewReader(sb)); err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	compiled, err := compiler.Compile("report.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return compiled.Validate(v)
}
