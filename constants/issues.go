package constants

// IssueSeverity classifies a parse issue as recoverable or fatal.
type IssueSeverity string

const (
	SeverityWarning IssueSeverity = "WARNING"
	SeverityError   IssueSeverity = "ERROR"
)

// IssueCategory groups parse issues by the stage that produced them.
type IssueCategory string

const (
	IssueDocumentStructure IssueCategory = "DOCUMENT_STRUCTURE"
	IssueFilerInformation  IssueCategory = "FILER_INFORMATION_PARSING"
	IssueTransaction       IssueCategory = "TRANSACTION_PARSING"
	IssueDataValidation    IssueCategory = "DATA_VALIDATION"
	IssueOCRQuality        IssueCategory = "OCR_QUALITY"
)

// IssueSeverities and IssueCategories hold the stable values stored in the
// parse_issues table.
var (
	IssueSeverities = []string{string(SeverityWarning), string(SeverityError)}

	IssueCategories = []string{
		string(IssueDocumentStructure),
		string(IssueFilerInformation),
		string(IssueTransaction),
		string(IssueDataValidation),
		string(IssueOCRQuality),
	}
)
