package ats

import (
	"fmt"
	"regexp"
	"strings"
)

// PhoneStrategy finds and normalizes phone numbers for one numbering region.
type PhoneStrategy interface {
	Region() string
	Patterns() []*regexp.Regexp
	// Normalize strips separators and country/trunk prefixes. It reports false
	// when the result is not a valid local 10-digit number.
	Normalize(raw string) (string, bool)
}

const (
	RegionIndia = "in"
	RegionNANP  = "nanp"
)

type regionalPhones struct {
	region      string
	patterns    []*regexp.Regexp
	countryCode string
	trunkPrefix string
	leading     string
}

func (r regionalPhones) Region() string             { return r.region }
func (r regionalPhones) Patterns() []*regexp.Regexp { return r.patterns }

func (r regionalPhones) Normalize(raw string) (string, bool) {
	var b strings.Builder
	for _, ch := range raw {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	digits := b.String()
	if cc := r.countryCode; cc != "" && len(digits) == 10+len(cc) && strings.HasPrefix(digits, cc) {
		digits = digits[len(cc):]
	}
	if tp := r.trunkPrefix; tp != "" && len(digits) == 10+len(tp) && strings.HasPrefix(digits, tp) {
		digits = digits[len(tp):]
	}
	if len(digits) != 10 || !strings.ContainsRune(r.leading, rune(digits[0])) {
		return "", false
	}
	return digits, true
}

var indiaPhones = regionalPhones{
	region: RegionIndia,
	patterns: []*regexp.Regexp{
		regexp.MustCompile(`\+91[\s-]?[6-9]\d{4}[\s-]?\d{5}\b`),
		regexp.MustCompile(`\+91[\s-]?[6-9]\d{2}[\s-]?\d{3}[\s-]?\d{4}\b`),
		regexp.MustCompile(`\b91[\s-]?[6-9]\d{9}\b`),
		regexp.MustCompile(`\b0[6-9]\d{9}\b`),
		regexp.MustCompile(`\b[6-9]\d{4}[\s-]?\d{5}\b`),
		regexp.MustCompile(`\b[6-9]\d{2}[\s.-]?\d{3}[\s.-]?\d{4}\b`),
	},
	countryCode: "91",
	trunkPrefix: "0",
	leading:     "6789",
}

var nanpPhones = regionalPhones{
	region: RegionNANP,
	patterns: []*regexp.Regexp{
		regexp.MustCompile(`\+1[\s.-]?\(?[2-9]\d{2}\)?[\s.-]?\d{3}[\s.-]?\d{4}\b`),
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}[\s.-]?\d{4}\b`),
		regexp.MustCompile(`\b\d{3}[\s.-]?\d{3}[\s.-]?\d{4}\b`),
	},
	countryCode: "1",
	leading:     "23456789",
}

// India returns the Indian mobile numbering strategy.
func India() PhoneStrategy { return indiaPhones }

// NANP returns the North American numbering strategy.
func NANP() PhoneStrategy { return nanpPhones }

// PhoneStrategyFor maps a configured region name to its strategy.
func PhoneStrategyFor(region string) (PhoneStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(region)) {
	case "", RegionIndia:
		return India(), nil
	case RegionNANP, "us":
		return NANP(), nil
	default:
		return nil, fmt.Errorf("unknown phone region %q", region)
	}
}

// ExtractPhones applies the strategy's patterns in order and returns the
// distinct normalized numbers in first-seen order.
func ExtractPhones(s PhoneStrategy, text string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, re := range s.Patterns() {
		for _, m := range re.FindAllString(text, -1) {
			num, ok := s.Normalize(m)
			if !ok || seen[num] {
				continue
			}
			seen[num] = true
			out = append(out, num)
		}
	}
	return out
}
