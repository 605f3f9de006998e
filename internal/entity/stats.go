package entity

// StatsSnapshot counts what the database currently holds. A zero Year
// means the snapshot covers every year.
type StatsSnapshot struct {
	Year         int `json:"year,omitempty"`
	Filings      int `json:"filings"`
	PtrFilings   int `json:"ptr_filings"`
	Downloads    int `json:"downloads"`
	OcrResults   int `json:"ocr_results"`
	Reports      int `json:"reports"`
	Transactions int `json:"transactions"`
	Warnings     int `json:"warnings"`
	Errors       int `json:"errors"`
}
