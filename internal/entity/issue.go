package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/mholloway/ptr-tracker/constants"
)

// DocIDUnknown stamps issues raised before a document identity could be
// established. The pipeline rewrites it with the filing's DocID on persist.
const DocIDUnknown = "UNKNOWN"

// ParseIssue is one diagnostic produced during extraction. Issues are
// append-only: reprocessing a document never deletes earlier rows.
type ParseIssue struct {
	ID        uuid.UUID               `json:"id"`
	DocID     string                  `json:"doc_id"`
	Severity  constants.IssueSeverity `json:"severity"`
	Category  constants.IssueCategory `json:"category"`
	Message   string                  `json:"message"`
	Details   string                  `json:"details,omitempty"`
	Location  string                  `json:"location,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

// IsError reports whether the issue is fatal-severity.
func (i ParseIssue) IsError() bool {
	return i.Severity == constants.SeverityError
}
