package filinglist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

const columnCount = 9

// filingDateLayout matches the clerk's M/D/YYYY dates, e.g. "1/2/2025".
const filingDateLayout = "1/2/2006"

// ParseTSV reads the yearly filing-list TSV and returns one Filing per
// well-formed row. Rows that cannot be parsed are skipped and counted.
// A missing or mismatched header line is fatal: it means the clerk
// changed the export format and every row mapping would be suspect.
func ParseTSV(r io.Reader) (filings []entity.Filing, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, 0, fmt.Errorf("read filing list header: %w", err)
		}
		return nil, 0, fmt.Errorf("filing list is empty")
	}
	header := strings.TrimRight(scanner.Text(), "\r\n")
	if header != constants.FilingListHeader {
		return nil, 0, fmt.Errorf("unexpected filing list header: %q", header)
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		filing, ok := parseRow(line)
		if !ok {
			skipped++
			continue
		}
		filings = append(filings, filing)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("read filing list: %w", err)
	}
	return filings, skipped, nil
}

func parseRow(line string) (entity.Filing, bool) {
	cols := strings.Split(line, "\t")
	if len(cols) != columnCount {
		return entity.Filing{}, false
	}

	docID := strings.TrimSpace(cols[8])
	if docID == "" {
		return entity.Filing{}, false
	}

	year, err := strconv.Atoi(strings.TrimSpace(cols[6]))
	if err != nil {
		return entity.Filing{}, false
	}

	filingDate, err := time.Parse(filingDateLayout, strings.TrimSpace(cols[7]))
	if err != nil {
		return entity.Filing{}, false
	}

	return entity.Filing{
		Prefix:     strings.TrimSpace(cols[0]),
		Last:       strings.TrimSpace(cols[1]),
		First:      strings.TrimSpace(cols[2]),
		Suffix:     strings.TrimSpace(cols[3]),
		FilingType: strings.TrimSpace(cols[4]),
		StateDst:   strings.TrimSpace(cols[5]),
		Year:       year,
		FilingDate: filingDate,
		DocID:      docID,
		RawRow:     line,
	}, true
}
