package constants

// AmountRange is one of the ten fixed dollar buckets PTR filings report
// instead of exact amounts.
type AmountRange string

const (
	Amount1KTo15K    AmountRange = "1001-15000"
	Amount15KTo50K   AmountRange = "15001-50000"
	Amount50KTo100K  AmountRange = "50001-100000"
	Amount100KTo250K AmountRange = "100001-250000"
	Amount250KTo500K AmountRange = "250001-500000"
	Amount500KTo1M   AmountRange = "500001-1000000"
	Amount1MTo5M     AmountRange = "1000001-5000000"
	Amount5MTo25M    AmountRange = "5000001-25000000"
	Amount25MTo50M   AmountRange = "25000001-50000000"
	AmountOver50M    AmountRange = "OVER_50000000"
)

type amountBounds struct {
	min, max int
}

// amountBuckets enumerates the exact boundary pairs printed on the PTR form.
// The open-ended top bucket is handled separately in AmountRangeFor.
var amountBuckets = map[amountBounds]AmountRange{
	{1_001, 15_000}:           Amount1KTo15K,
	{15_001, 50_000}:          Amount15KTo50K,
	{50_001, 100_000}:         Amount50KTo100K,
	{100_001, 250_000}:        Amount100KTo250K,
	{250_001, 500_000}:        Amount250KTo500K,
	{500_001, 1_000_000}:      Amount500KTo1M,
	{1_000_001, 5_000_000}:    Amount1MTo5M,
	{5_000_001, 25_000_000}:   Amount5MTo25M,
	{25_000_001, 50_000_000}:  Amount25MTo50M,
}

// AmountRangeFor maps a parsed minimum/maximum dollar pair to its bucket.
// Any minimum of at least $50,000,001 maps to the open top bucket no matter
// what the stated maximum reads. The second return reports whether a bucket
// matched at all.
func AmountRangeFor(min, max int) (AmountRange, bool) {
	if r, ok := amountBuckets[amountBounds{min, max}]; ok {
		return r, true
	}
	if min >= 50_000_001 {
		return AmountOver50M, true
	}
	return "", false
}

// AmountRanges lists all buckets in ascending order.
var AmountRanges = []AmountRange{
	Amount1KTo15K,
	Amount15KTo50K,
	Amount50KTo100K,
	Amount100KTo250K,
	Amount250KTo500K,
	Amount500KTo1M,
	Amount1MTo5M,
	Amount5MTo25M,
	Amount25MTo50M,
	AmountOver50M,
}

// AmountRangeValues is the string view of AmountRanges, used for schema
// validation.
var AmountRangeValues = func() []string {
	out := make([]string, len(AmountRanges))
	for i, r := range AmountRanges {
		out[i] = string(r)
	}
	return out
}()
