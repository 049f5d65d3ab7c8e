package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"shenanigigs/jobstats/internal/models"
)

const MinKeywordLength = 3

var (
	digitRunPattern = regexp.MustCompile(`\p{Nd}+`)
	wordPattern     = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

var stopWords = map[string]struct{}{
	"and": {}, "or": {}, "the": {}, "a": {}, "an": {}, "in": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "on": {}, "-": {}, "/": {},
}

// ParseSalary returns the mean of the integer runs embedded in a salary
// string once thousands separators are removed. Any Unicode decimal digit
// counts. The "k" suffix is not
// applied, so "$90k - $120k" yields 105 (thousands of dollars).
func ParseSalary(salary string) (float64, bool) {
	if salary == models.NoSalary {
		return 0, false
	}

	runs := digitRunPattern.FindAllString(strings.ReplaceAll(salary, ",", ""), -1)
	if len(runs) == 0 {
		return 0, false
	}

	var sum float64
	for _, run := range runs {
		sum += parseDigits(run)
	}
	return sum / float64(len(runs)), true
}

// IsStopWord reports whether token is excluded from keyword counting.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

// TitleKeywords lowercases and joins the titles, splits them into word
// tokens and drops stop words and tokens shorter than MinKeywordLength.
// Tokens are returned in discovery order.
func TitleKeywords(titles []string) []string {
	text := strings.ToLower(strings.Join(titles, " "))

	var keywords []string
	for _, token := range wordPattern.FindAllString(text, -1) {
		if IsStopWord(token) || utf8.RuneCountInString(token) < MinKeywordLength {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}

func parseDigits(s string) float64 {
	var v float64
	for _, r := range s {
		v = v*10 + float64(digitValue(r))
	}
	return v
}

// digitValue maps a decimal digit from any script to 0-9. Every Nd block
// runs contiguously from zero to nine.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	for _, rng := range unicode.Nd.R16 {
		if lo, hi := rune(rng.Lo), rune(rng.Hi); r >= lo && r <= hi {
			return int(r-lo) % 10
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if lo, hi := rune(rng.Lo), rune(rng.Hi); r >= lo && r <= hi {
			return int(r-lo) % 10
		}
	}
	return 0
}
