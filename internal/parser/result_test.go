package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

func warnIssue(msg string) entity.ParseIssue {
	return entity.ParseIssue{Severity: constants.SeverityWarning, Message: msg}
}

func errIssue(msg string) entity.ParseIssue {
	return entity.ParseIssue{Severity: constants.SeverityError, Message: msg}
}

func TestOk(t *testing.T) {
	r := Ok(42)
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsError())
	assert.False(t, r.HasWarnings())

	data, ok := r.Data()
	require.True(t, ok)
	assert.Equal(t, 42, data)
	assert.Empty(t, r.AllIssues())
}

func TestOkWarn_EmptyListIsCleanSuccess(t *testing.T) {
	r := OkWarn("data", nil)
	assert.True(t, r.IsSuccess())
	assert.False(t, r.HasWarnings())

	r = OkWarn("data", []entity.ParseIssue{})
	assert.False(t, r.HasWarnings())
}

func TestOkWarn_CarriesWarnings(t *testing.T) {
	r := OkWarn("data", []entity.ParseIssue{warnIssue("w1"), warnIssue("w2")})
	assert.True(t, r.IsSuccess())
	assert.True(t, r.HasWarnings())
	assert.Len(t, r.Warnings(), 2)
	assert.Empty(t, r.Errors())

	data, ok := r.Data()
	require.True(t, ok)
	assert.Equal(t, "data", data)
}

func TestFail(t *testing.T) {
	r := Fail[string](errIssue("boom"))
	assert.True(t, r.IsError())
	assert.False(t, r.IsSuccess())

	_, ok := r.Data()
	assert.False(t, ok)
	assert.Len(t, r.Errors(), 1)
	assert.Empty(t, r.Warnings())
	assert.Equal(t, 1, r.ErrorCount())
}

func TestFromIssues(t *testing.T) {
	tests := []struct {
		name       string
		issues     []entity.ParseIssue
		wantError  bool
		wantWarns  int
		wantErrors int
	}{
		{name: "no issues", issues: nil},
		{
			name:      "warnings only",
			issues:    []entity.ParseIssue{warnIssue("w1"), warnIssue("w2")},
			wantWarns: 2,
		},
		{
			name:       "errors only",
			issues:     []entity.ParseIssue{errIssue("e1")},
			wantError:  true,
			wantErrors: 1,
		},
		{
			name:       "mixed keeps only errors",
			issues:     []entity.ParseIssue{warnIssue("w1"), errIssue("e1"), warnIssue("w2"), errIssue("e2")},
			wantError:  true,
			wantErrors: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromIssues("payload", tt.issues)
			assert.Equal(t, tt.wantError, r.IsError())
			assert.Len(t, r.Warnings(), tt.wantWarns)
			assert.Len(t, r.Errors(), tt.wantErrors)
			if tt.wantError {
				for _, issue := range r.Errors() {
					assert.True(t, issue.IsError())
				}
			}
		})
	}
}

func TestMap(t *testing.T) {
	double := func(n int) int { return n * 2 }

	r := Map(Ok(21), double)
	data, _ := r.Data()
	assert.Equal(t, 42, data)

	r = Map(OkWarn(21, []entity.ParseIssue{warnIssue("w")}), double)
	assert.True(t, r.HasWarnings())
	data, _ = r.Data()
	assert.Equal(t, 42, data)

	r = Map(Fail[int](errIssue("e")), double)
	assert.True(t, r.IsError())
	assert.Len(t, r.Errors(), 1)
}
