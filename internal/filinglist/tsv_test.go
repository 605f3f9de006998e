package filinglist

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholloway/ptr-tracker/constants"
)

func tsvDoc(rows ...string) string {
	return constants.FilingListHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestParseTSV(t *testing.T) {
	doc := tsvDoc(
		"Hon.\tAderholt\tRobert B.\t\tP\tAL04\t2025\t8/4/2025\t20032062",
		"Hon.\tPelosi\tNancy\t\tA\tCA11\t2025\t5/15/2025\t10063241",
	)

	filings, skipped, err := ParseTSV(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, filings, 2)

	f := filings[0]
	assert.Equal(t, "20032062", f.DocID)
	assert.Equal(t, "Hon.", f.Prefix)
	assert.Equal(t, "Aderholt", f.Last)
	assert.Equal(t, "Robert B.", f.First)
	assert.Empty(t, f.Suffix)
	assert.Equal(t, "P", f.FilingType)
	assert.True(t, f.IsPtr())
	assert.Equal(t, "AL04", f.StateDst)
	assert.Equal(t, 2025, f.Year)
	assert.Equal(t, time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC), f.FilingDate)
	assert.Equal(t, "Hon.\tAderholt\tRobert B.\t\tP\tAL04\t2025\t8/4/2025\t20032062", f.RawRow)

	assert.False(t, filings[1].IsPtr())
}

func TestParseTSV_SkipsMalformedRows(t *testing.T) {
	doc := tsvDoc(
		"Hon.\tAderholt\tRobert B.\t\tP\tAL04\t2025\t8/4/2025\t20032062",
		"only\tthree\tcolumns",
		"Hon.\tSmith\tJohn\t\tP\tTX01\t2025\t8/4/2025\t", // empty DocID
		"Hon.\tSmith\tJohn\t\tP\tTX01\tnotayear\t8/4/2025\t20032063",
		"Hon.\tSmith\tJohn\t\tP\tTX01\t2025\tnotadate\t20032064",
		"",
		"Hon.\tCarter\tJane\t\tP\tGA02\t2025\t12/31/2025\t20032065",
	)

	filings, skipped, err := ParseTSV(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 4, skipped)
	require.Len(t, filings, 2)
	assert.Equal(t, "20032062", filings[0].DocID)
	assert.Equal(t, "20032065", filings[1].DocID)
}

func TestParseTSV_HeaderMismatchIsFatal(t *testing.T) {
	doc := "Prefix\tLast\tFirst\tSuffix\tFilingType\tStateDst\tYear\tDocID\n" +
		"Hon.\tAderholt\tRobert B.\t\tP\tAL04\t2025\t20032062\n"

	_, _, err := ParseTSV(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected filing list header")
}

func TestParseTSV_EmptyInput(t *testing.T) {
	_, _, err := ParseTSV(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestParseTSV_WindowsLineEndings(t *testing.T) {
	doc := constants.FilingListHeader + "\r\n" +
		"Hon.\tAderholt\tRobert B.\t\tP\tAL04\t2025\t8/4/2025\t20032062\r\n"

	filings, skipped, err := ParseTSV(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, filings, 1)
	assert.Equal(t, "20032062", filings[0].DocID)
}
