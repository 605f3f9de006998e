package parser

import "regexp"

// Marker strings and patterns for the House PTR layout. These are stateless
// lookup tables shared by the parsing stages; none of them are mutated.
const (
	filerBlockMarker = "FILER INFORMATION"
	filerNamePrefix  = "Hon."
)

var (
	// Document identity.
	reFilingID = regexp.MustCompile(`Filing ID #(\d+)`)

	// Filer header block.
	reStateDistrict = regexp.MustCompile(`([A-Z]{2})(\d+)`)

	// Transaction anchors: a bracketed two-character asset-type code.
	reAssetAnchor = regexp.MustCompile(`\[([A-Z0-9]{2})\]`)

	// Trade-type token, word- or line-bounded. The OCR source systematically
	// renders Latin P as the identical-glyph Cyrillic Р (U+0420), so both are
	// accepted and canonicalized to PURCHASE.
	reTradeType = regexp.MustCompile(`(?m)(?:^|\s)([PSР])(?:\s|$)`)

	// Co-owner code in the run-up to an anchor.
	reOwnership = regexp.MustCompile(`\b(SP|DC|JT)\b`)

	// Date pair: transaction date then notification date.
	reDatePair = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s+(\d{2}/\d{2}/\d{4})`)

	// Amount range, thousands separators included.
	reAmountRange = regexp.MustCompile(`\$([\d,]+)\s*-\s*\$([\d,]+)`)

	reFilingStatus = regexp.MustCompile(`(?i)FILING STATUS:\s*(New|Amended)`)

	// Structural noise rejected during asset-name reconstruction.
	reBareOwnerCode = regexp.MustCompile(`^[A-Z]{1,2}$`)
	reBareDate      = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	reBareAmount    = regexp.MustCompile(`^\$[\d,]+\s*-\s*\$[\d,]+$`)

	// Asset-name cleanup: trailing trade-type letters (Latin or Cyrillic) and
	// a trailing bracketed code captured by accident.
	reTrailingTradeType = regexp.MustCompile(`\s+[PSР]\b`)
	reTrailingAnchor    = regexp.MustCompile(`\s+\[[A-Z]{2}\]\s*$`)
)

// assetNameDenylist rejects column headers and table furniture when walking
// backward from an anchor.
var assetNameDenylist = []string{
	"TRANSACTIONS",
	"Date",
	"Amount",
	"Type",
	"Cap.",
	"Gains",
	"$200",
	"FILING STATUS",
	"SUBHOLDING",
}

// headerLabelSkip lists lines ignored inside the filer header window.
var headerLabelSkip = []string{
	filerBlockMarker,
	"Name:",
	"Status:",
}
