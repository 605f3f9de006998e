package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

// parseTransactions scans the whole document for bracketed asset-type codes;
// each occurrence anchors one candidate transaction. Anchors are parsed
// independently and a failure only drops that anchor.
func (p *Parser) parseTransactions(ocrText, sourceURL, docID string) Result[[]entity.ParsedTransaction] {
	var (
		transactions []entity.ParsedTransaction
		issues       []entity.ParseIssue
	)

	anchors := reAssetAnchor.FindAllStringSubmatchIndex(ocrText, -1)
	for i, anchor := range anchors {
		location := fmt.Sprintf("transaction #%d", i+1)
		anchorText := ocrText[anchor[0]:anchor[1]]

		tx, warns, err := p.parseTransaction(ocrText, anchor, sourceURL)
		if err != nil {
			p.logger.Debug("parser.transaction.skipped",
				"doc_id", docID, "anchor", anchorText, "location", location, "reason", err)
			issues = append(issues, p.issue(docID,
				constants.SeverityWarning, constants.IssueTransaction,
				fmt.Sprintf("could not parse transaction for asset %s", anchorText),
				err.Error(), location))
			continue
		}
		for _, w := range warns {
			w.DocID = docID
			w.Location = location
			w.CreatedAt = p.now()
			issues = append(issues, w)
		}
		transactions = append(transactions, tx)
	}

	return OkWarn(transactions, issues)
}

// parseTransaction extracts one transaction around an anchor match. The
// returned warnings are non-fatal flags on an otherwise parsed transaction.
func (p *Parser) parseTransaction(ocrText string, anchor []int, sourceURL string) (entity.ParsedTransaction, []entity.ParseIssue, error) {
	var tx entity.ParsedTransaction

	anchorStart, anchorEnd := anchor[0], anchor[1]
	assetType := ocrText[anchor[2]:anchor[3]]
	beforeAnchor := ocrText[:anchorStart]

	assetName, err := p.reconstructAssetName(beforeAnchor)
	if err != nil {
		return tx, nil, err
	}

	ownership := p.findOwnership(beforeAnchor)

	ctxStart := max(0, anchorStart-p.cfg.ContextBefore)
	ctxEnd := min(len(ocrText), anchorEnd+p.cfg.ContextAfter)
	window := ocrText[ctxStart:ctxEnd]

	tradeType, err := findTradeType(window)
	if err != nil {
		return tx, nil, fmt.Errorf("%w for %q", err, assetName)
	}

	tradeDate, notificationDate, err := findDates(window)
	if err != nil {
		return tx, nil, fmt.Errorf("%w for %q", err, assetName)
	}

	amountRange, warns, err := findAmountRange(window)
	if err != nil {
		return tx, nil, fmt.Errorf("%w for %q", err, assetName)
	}

	tx = entity.ParsedTransaction{
		Owner:            ownership,
		AssetName:        assetName,
		AssetType:        assetType,
		FilingStatus:     findFilingStatus(window),
		TradeType:        tradeType,
		AmountRange:      amountRange,
		TradeDate:        tradeDate,
		NotificationDate: notificationDate,
		SourceURL:        sourceURL,
	}
	return tx, warns, nil
}

// reconstructAssetName walks backward from the anchor, skipping table
// furniture, and collects the remaining lines in original order. The walk
// stops when a denylisted line follows collected content or a line looks like
// a complete company name.
func (p *Parser) reconstructAssetName(beforeAnchor string) (string, error) {
	lines := strings.Split(beforeAnchor, "\n")

	var parts []string
	for i := len(lines) - 1; i >= max(0, len(lines)-p.cfg.AssetLookbackLines); i-- {
		line := strings.TrimSpace(lines[i])

		if isStructuralNoise(line) {
			if len(parts) > 0 {
				break
			}
			continue
		}

		parts = append([]string{line}, parts...)

		if looksTerminal(line) {
			break
		}
	}

	if len(parts) == 0 {
		return "", errors.New("could not extract asset name")
	}

	name := strings.TrimSpace(strings.Join(parts, " "))
	name = strings.TrimSpace(reTrailingTradeType.ReplaceAllString(name, ""))
	name = strings.TrimSpace(reTrailingAnchor.ReplaceAllString(name, ""))
	return name, nil
}

func isStructuralNoise(line string) bool {
	if line == "" || reBareOwnerCode.MatchString(line) ||
		reBareDate.MatchString(line) || reBareAmount.MatchString(line) {
		return true
	}
	for _, marker := range assetNameDenylist {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

func looksTerminal(line string) bool {
	if len(line) <= 10 {
		return false
	}
	return strings.Contains(line, "Inc") ||
		strings.Contains(line, "Corp") ||
		strings.Contains(line, "Company") ||
		strings.Contains(line, ".")
}

func (p *Parser) findOwnership(beforeAnchor string) *constants.Ownership {
	tail := beforeAnchor
	if len(tail) > p.cfg.OwnershipLookback {
		tail = tail[len(tail)-p.cfg.OwnershipLookback:]
	}
	m := reOwnership.FindStringSubmatch(tail)
	if m == nil {
		return nil
	}
	owner, ok := constants.ParseOwnership(m[1])
	if !ok {
		return nil
	}
	return &owner
}

func findTradeType(window string) (constants.TradeType, error) {
	m := reTradeType.FindStringSubmatch(window)
	if m == nil {
		return "", errors.New("could not determine trade type")
	}
	switch m[1] {
	case "P", "Р": // Latin P or its Cyrillic confusable
		return constants.TradePurchase, nil
	case "S":
		return constants.TradeSale, nil
	default:
		return "", fmt.Errorf("could not determine trade type from %q", m[1])
	}
}

func findDates(window string) (time.Time, *time.Time, error) {
	m := reDatePair.FindStringSubmatch(window)
	if m == nil {
		return time.Time{}, nil, errors.New("could not extract transaction dates")
	}
	tradeDate, err := time.Parse("01/02/2006", m[1])
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid transaction date %q", m[1])
	}
	notification, err := time.Parse("01/02/2006", m[2])
	if err != nil {
		// The second date is optional metadata; a corrupt one is dropped.
		return tradeDate, nil, nil
	}
	return tradeDate, &notification, nil
}

// findAmountRange maps the first dollar pair in the window to one of the ten
// fixed buckets. A pair matching no boundary fails the transaction. When the
// open top bucket absorbs a malformed upper bound, that is flagged rather
// than silently accepted.
func findAmountRange(window string) (constants.AmountRange, []entity.ParseIssue, error) {
	m := reAmountRange.FindStringSubmatch(window)
	if m == nil {
		return "", nil, errors.New("could not extract amount range")
	}
	minAmount, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return "", nil, fmt.Errorf("invalid amount minimum %q", m[1])
	}
	maxAmount, err := strconv.Atoi(strings.ReplaceAll(m[2], ",", ""))
	if err != nil {
		return "", nil, fmt.Errorf("invalid amount maximum %q", m[2])
	}

	bucket, ok := constants.AmountRangeFor(minAmount, maxAmount)
	if !ok {
		return "", nil, fmt.Errorf("unknown amount range: %d - %d", minAmount, maxAmount)
	}

	var warns []entity.ParseIssue
	if bucket == constants.AmountOver50M && maxAmount < minAmount {
		warns = append(warns, entity.ParseIssue{
			Severity: constants.SeverityWarning,
			Category: constants.IssueDataValidation,
			Message:  "suspicious amount maximum in open top bucket",
			Details:  fmt.Sprintf("stated range %d - %d has maximum below minimum", minAmount, maxAmount),
		})
	}
	return bucket, warns, nil
}

func findFilingStatus(window string) constants.FilingStatus {
	m := reFilingStatus.FindStringSubmatch(window)
	if m == nil {
		return constants.FilingStatusNew
	}
	if strings.EqualFold(m[1], "amended") {
		return constants.FilingStatusAmended
	}
	return constants.FilingStatusNew
}
