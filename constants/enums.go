package constants

import "strings"

// FilerStatus is the filer classification printed in the FILER INFORMATION block.
type FilerStatus string

const (
	FilerStatusMember            FilerStatus = "MEMBER"
	FilerStatusOfficerOrEmployee FilerStatus = "OFFICER_OR_EMPLOYEE"
	FilerStatusCandidate         FilerStatus = "CANDIDATE"
)

// ParseFilerStatus maps a status keyword from the filing header to its enum.
// "officer" and "employee" collapse into a single status.
func ParseFilerStatus(s string) (FilerStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "member":
		return FilerStatusMember, true
	case "officer", "employee":
		return FilerStatusOfficerOrEmployee, true
	case "candidate":
		return FilerStatusCandidate, true
	default:
		return "", false
	}
}

// IsFilerStatusKeyword reports whether the line is one of the closed status
// keywords, without committing to a mapping.
func IsFilerStatusKeyword(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "member", "officer", "employee", "candidate":
		return true
	}
	return false
}

// TradeType is the transaction direction code from the PTR table.
type TradeType string

const (
	TradePurchase TradeType = "PURCHASE"
	TradeSale     TradeType = "SALE"
	TradeExchange TradeType = "EXCHANGE"
)

// Ownership is the co-owner code preceding an asset entry. Absence means the
// filer holds the asset directly.
type Ownership string

const (
	OwnerSpouse         Ownership = "SPOUSE"
	OwnerDependentChild Ownership = "DEPENDENT_CHILD"
	OwnerJoint          Ownership = "JOINT"
)

// ParseOwnership maps the bare SP/DC/JT token to its enum.
func ParseOwnership(code string) (Ownership, bool) {
	switch code {
	case "SP":
		return OwnerSpouse, true
	case "DC":
		return OwnerDependentChild, true
	case "JT":
		return OwnerJoint, true
	default:
		return "", false
	}
}

// FilingStatus marks a transaction row as an original or amended entry.
type FilingStatus string

const (
	FilingStatusNew     FilingStatus = "NEW"
	FilingStatusAmended FilingStatus = "AMENDED"
)

// FilingTypes used in the clerk's yearly filing list. Only type P rows are
// periodic transaction reports.
var FilingTypes = []string{"P", "A", "C", "D", "O", "W", "X"}

// String views of the closed enums, used for schema validation.
var (
	FilerStatuses = []string{
		string(FilerStatusMember),
		string(FilerStatusOfficerOrEmployee),
		string(FilerStatusCandidate),
	}
	TradeTypes = []string{
		string(TradePurchase),
		string(TradeSale),
		string(TradeExchange),
	}
	Ownerships = []string{
		string(OwnerSpouse),
		string(OwnerDependentChild),
		string(OwnerJoint),
	}
	FilingStatuses = []string{
		string(FilingStatusNew),
		string(FilingStatusAmended),
	}
)
