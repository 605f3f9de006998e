package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocIDRule(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		valid bool
	}{
		{name: "numeric id", value: "20032062", valid: true},
		{name: "short id", value: "7", valid: true},
		{name: "letters", value: "20032062a", valid: false},
		{name: "empty", value: "", valid: false},
		{name: "negative", value: "-1", valid: false},
		{name: "not a string", value: 20032062, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DocID("doc_id", tt.value)
			if tt.valid {
				assert.Nil(t, err)
			} else {
				require.NotNil(t, err)
				assert.Equal(t, "doc_id", err.Field)
			}
		})
	}
}

func TestDisclosureYearRule(t *testing.T) {
	rule := DisclosureYear(2008, 2026)

	assert.Nil(t, rule("year", 2008))
	assert.Nil(t, rule("year", 2025))
	assert.Nil(t, rule("year", 2026))

	require.NotNil(t, rule("year", 2007))
	require.NotNil(t, rule("year", 2027))
	require.NotNil(t, rule("year", "2025"))
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator().
		Field("doc_id", "", Required, DocID).
		Field("year", 1999, DisclosureYear(2008, 2026))

	require.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 3)
	assert.Contains(t, v.ErrorMessage(), "doc_id")
	assert.Contains(t, v.ErrorMessage(), "year")
}

func TestValidatorError_PercentInValueIsLiteral(t *testing.T) {
	v := NewValidator().Field("doc_id", "100%broken", DocID)

	err := v.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "100%broken")
	assert.NotContains(t, err.Error(), "%!")
}

func TestValidateAndReturnError(t *testing.T) {
	clean := NewValidator().Field("doc_id", "20032062", Required, DocID)
	assert.NoError(t, ValidateAndReturnError(clean))

	bad := NewValidator().Field("doc_id", "", Required)
	err := ValidateAndReturnError(bad)
	require.Error(t, err)
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		DocID string `validate:"required,numeric"`
		State string `validate:"required,len=2"`
	}

	assert.NoError(t, ValidateStruct(payload{DocID: "20032062", State: "AL"}))

	err := ValidateStruct(payload{DocID: "abc", State: "AL"})
	require.Error(t, err)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.True(t, errors.Is(err, ErrValidation))
}
