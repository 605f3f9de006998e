package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{
			name: "crlf to lf",
			in:   "line one\r\nline two\rline three",
			want: "line one\nline two\nline three",
		},
		{
			name: "tabs and runs of spaces collapse",
			in:   "GSK plc\t\tAmerican   Depositary  Shares",
			want: "GSK plc American Depositary Shares",
		},
		{
			name: "blank line runs collapse to one",
			in:   "TRANSACTIONS\n\n\n\n\nGSK plc",
			want: "TRANSACTIONS\n\nGSK plc",
		},
		{
			name: "trailing spaces stripped per line",
			in:   "Member   \nAL04  ",
			want: "Member\nAL04",
		},
		{
			name: "cyrillic confusables become latin",
			in:   "Р 07/28/2025 08/01/2025",
			want: "P 07/28/2025 08/01/2025",
		},
		{
			name: "mixed confusable word",
			in:   "СОР",
			want: "COP",
		},
		{
			name: "dates survive untouched",
			in:   "S 01/02/2025 01/05/2025 $1,001 - $15,000",
			want: "S 01/02/2025 01/05/2025 $1,001 - $15,000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_KeepsLineStructure(t *testing.T) {
	in := "FILER INFORMATION\nName:\nHon. Robert B. Aderholt\nStatus:\nMember\nAL04"
	assert.Equal(t, in, Normalize(in))
}
