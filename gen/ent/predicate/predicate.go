// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Download is the predicate function for download builders.
type Download func(*sql.Selector)

// Filing is the predicate function for filing builders.
type Filing func(*sql.Selector)

// FilingList is the predicate function for filinglist builders.
type FilingList func(*sql.Selector)

// OcrResult is the predicate function for ocrresult builders.
type OcrResult func(*sql.Selector)

// ParseIssue is the predicate function for parseissue builders.
type ParseIssue func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// Transaction is the predicate function for transaction builders.
type Transaction func(*sql.Selector)
