package constants

import "fmt"

// Layout of the House clerk's public disclosure site and our storage keys.
const (
	// MinimumDisclosureYear is the first year disclosures are published for.
	MinimumDisclosureYear = 2008

	DisclosureBaseURL = "https://disclosures-clerk.house.gov/public_disc"
	FilingListPath    = "/financial-pdfs"
	PtrPath           = "/ptr-pdfs"

	// FilingTypePtr marks periodic transaction report rows in the filing list.
	FilingTypePtr = "P"

	// FilingListHeader is the expected first line of the yearly TSV.
	FilingListHeader = "Prefix\tLast\tFirst\tSuffix\tFilingType\tStateDst\tYear\tFilingDate\tDocID"
)

// FilingListURL returns the download URL for a year's filing-list ZIP.
func FilingListURL(year int) string {
	return fmt.Sprintf("%s%s/%dFD.zip", DisclosureBaseURL, FilingListPath, year)
}

// PtrDocURL returns the download URL for one PTR document.
func PtrDocURL(docID string, year int) string {
	return fmt.Sprintf("%s%s/%d/%s.pdf", DisclosureBaseURL, PtrPath, year, docID)
}

// FilingListFileName is the TSV entry name inside the yearly ZIP.
func FilingListFileName(year int) string {
	return fmt.Sprintf("%dFD.txt", year)
}

// Storage keys under the configured blob-store prefix.

func FilingListStorageKey(year int) string {
	return fmt.Sprintf("congress/house/disclosure-list/%d.zip", year)
}

func FilingListTsvStorageKey(year int) string {
	return fmt.Sprintf("congress/house/disclosure-list/%d.tsv", year)
}

func PtrPdfStorageKey(docID string, year int) string {
	return fmt.Sprintf("congress/house/%d/%s.pdf", year, docID)
}

func PtrTextStorageKey(docID string, year int) string {
	return fmt.Sprintf("congress/house/%d/%s.txt", year, docID)
}
