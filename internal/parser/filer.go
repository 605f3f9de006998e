package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

// parseFilerInfo locates the FILER INFORMATION block and classifies the lines
// in its window. No partial header is accepted: a missing name, status, or
// state/district is fatal for the whole document.
func (p *Parser) parseFilerInfo(ocrText, docID string) Result[entity.FilerInfo] {
	const location = "FILER INFORMATION block"

	blockStart := strings.Index(ocrText, filerBlockMarker)
	if blockStart == -1 {
		return Fail[entity.FilerInfo](p.issue(docID,
			constants.SeverityError, constants.IssueFilerInformation,
			"could not find FILER INFORMATION block",
			"FILER INFORMATION section not found in OCR text",
			location))
	}

	lines := strings.Split(ocrText[blockStart:], "\n")
	if len(lines) > p.cfg.HeaderWindowLines {
		lines = lines[:p.cfg.HeaderWindowLines]
	}
	if len(lines) < p.cfg.HeaderWindowLines-1 {
		return Fail[entity.FilerInfo](p.issue(docID,
			constants.SeverityError, constants.IssueFilerInformation,
			"FILER INFORMATION block does not contain enough lines",
			fmt.Sprintf("expected at least %d lines, found %d", p.cfg.HeaderWindowLines-1, len(lines)),
			location))
	}

	var (
		fullName   string
		statusText string
		state      string
		district   = -1
	)

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || isHeaderLabel(line) {
			continue
		}

		if m := reStateDistrict.FindStringSubmatch(line); m != nil {
			state = m[1]
			district, _ = strconv.Atoi(m[2])
			continue
		}

		if constants.IsFilerStatusKeyword(line) {
			statusText = line
			continue
		}

		if fullName == "" && (strings.HasPrefix(line, filerNamePrefix) ||
			(strings.Contains(line, " ") && len(line) > 5)) {
			fullName = line
		}
	}

	switch {
	case fullName == "":
		return Fail[entity.FilerInfo](p.issue(docID,
			constants.SeverityError, constants.IssueFilerInformation,
			"could not extract filer name from FILER INFORMATION block",
			"no valid filer name pattern found in the block",
			location))
	case statusText == "":
		return Fail[entity.FilerInfo](p.issue(docID,
			constants.SeverityError, constants.IssueFilerInformation,
			"could not extract filer status from FILER INFORMATION block",
			"no valid status keyword found in the block",
			location))
	case state == "" || district < 0:
		return Fail[entity.FilerInfo](p.issue(docID,
			constants.SeverityError, constants.IssueFilerInformation,
			"could not extract state/district from FILER INFORMATION block",
			"no valid state/district pattern (e.g. AL04) found in the block",
			location))
	}

	status, ok := constants.ParseFilerStatus(statusText)
	if !ok {
		return Fail[entity.FilerInfo](p.issue(docID,
			constants.SeverityError, constants.IssueDataValidation,
			fmt.Sprintf("unknown filer status: %s", statusText),
			"status must be one of: member, officer, employee, candidate",
			location))
	}

	return Ok(entity.FilerInfo{
		FullName: fullName,
		Status:   status,
		State:    state,
		District: district,
	})
}

func isHeaderLabel(line string) bool {
	for _, label := range headerLabelSkip {
		if line == label {
			return true
		}
	}
	return false
}
