package ocr

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
)

// confusables maps Cyrillic glyphs the OCR engine emits for visually
// identical Latin letters. The Р→P case matters most: the engine
// systematically mis-renders the trade-type column's Latin P.
var confusables = strings.NewReplacer(
	"А", "A",
	"В", "B",
	"С", "C",
	"Е", "E",
	"Н", "H",
	"К", "K",
	"М", "M",
	"О", "O",
	"Р", "P",
	"Т", "T",
	"Х", "X",
)

// Normalize collapses noisy whitespace and canonicalizes Cyrillic look-alike
// characters to Latin. Conservative: line breaks are kept, since the parser's
// heuristics are line-oriented.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	s = strings.Join(lines, "\n")

	s = confusables.Replace(s)
	return strings.TrimSpace(s)
}
