package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountRangeFor(t *testing.T) {
	tests := []struct {
		min, max int
		want     AmountRange
	}{
		{1_001, 15_000, Amount1KTo15K},
		{15_001, 50_000, Amount15KTo50K},
		{50_001, 100_000, Amount50KTo100K},
		{100_001, 250_000, Amount100KTo250K},
		{250_001, 500_000, Amount250KTo500K},
		{500_001, 1_000_000, Amount500KTo1M},
		{1_000_001, 5_000_000, Amount1MTo5M},
		{5_000_001, 25_000_000, Amount5MTo25M},
		{25_000_001, 50_000_000, Amount25MTo50M},
		{50_000_001, 0, AmountOver50M},
	}

	for _, tt := range tests {
		got, ok := AmountRangeFor(tt.min, tt.max)
		assert.True(t, ok, "range %d-%d", tt.min, tt.max)
		assert.Equal(t, tt.want, got)
	}
}

func TestAmountRangeFor_OpenTopBucketIgnoresMaximum(t *testing.T) {
	// Anything at or above the top boundary lands in the open bucket no
	// matter what the stated maximum reads.
	for _, max := range []int{0, 100, 50_000_000, 999_999_999} {
		got, ok := AmountRangeFor(50_000_001, max)
		assert.True(t, ok)
		assert.Equal(t, AmountOver50M, got)
	}

	got, ok := AmountRangeFor(75_000_000, 1)
	assert.True(t, ok)
	assert.Equal(t, AmountOver50M, got)
}

func TestAmountRangeFor_UnknownPair(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{name: "boundaries from different buckets", min: 1_001, max: 50_000},
		{name: "off by one minimum", min: 1_000, max: 15_000},
		{name: "arbitrary pair", min: 12, max: 345},
		{name: "below top boundary", min: 50_000_000, max: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := AmountRangeFor(tt.min, tt.max)
			assert.False(t, ok)
		})
	}
}

func TestParseFilerStatus(t *testing.T) {
	tests := []struct {
		in   string
		want FilerStatus
		ok   bool
	}{
		{"Member", FilerStatusMember, true},
		{"member", FilerStatusMember, true},
		{"  Officer  ", FilerStatusOfficerOrEmployee, true},
		{"Employee", FilerStatusOfficerOrEmployee, true},
		{"Candidate", FilerStatusCandidate, true},
		{"Senator", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseFilerStatus(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseOwnership(t *testing.T) {
	sp, ok := ParseOwnership("SP")
	assert.True(t, ok)
	assert.Equal(t, OwnerSpouse, sp)

	dc, ok := ParseOwnership("DC")
	assert.True(t, ok)
	assert.Equal(t, OwnerDependentChild, dc)

	jt, ok := ParseOwnership("JT")
	assert.True(t, ok)
	assert.Equal(t, OwnerJoint, jt)

	_, ok = ParseOwnership("XX")
	assert.False(t, ok)
}
