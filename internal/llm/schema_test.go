package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildReportJSONSchema()

	doc, err := json.Marshal(validReportFields())
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, doc))
}

func TestValidateJSONAgainstSchema_Rejections(t *testing.T) {
	schema := BuildReportJSONSchema()

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing doc_id", mutate: func(m map[string]any) { delete(m, "doc_id") }},
		{name: "wrong doc_id type", mutate: func(m map[string]any) { m["doc_id"] = 20032062 }},
		{name: "unknown property", mutate: func(m map[string]any) { m["senator"] = true }},
		{
			name: "bad trade type enum",
			mutate: func(m map[string]any) {
				txs := m["transactions"].([]any)
				txs[0].(map[string]any)["trade_type"] = "SHORT"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(validReportFields())
			require.NoError(t, err)

			var m map[string]any
			require.NoError(t, json.Unmarshal(raw, &m))
			tt.mutate(m)

			doc, err := json.Marshal(m)
			require.NoError(t, err)
			assert.Error(t, ValidateJSONAgainstSchema(schema, doc))
		})
	}
}

func TestValidateJSONAgainstSchema_MalformedJSON(t *testing.T) {
	assert.Error(t, ValidateJSONAgainstSchema(BuildReportJSONSchema(), []byte("{not json")))
}
