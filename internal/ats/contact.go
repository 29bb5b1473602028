package ats

import (
	"regexp"
	"strings"
)

var (
	emailPattern           = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	linkedInProfilePattern = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9_-]+`)
	gitHubProfilePattern   = regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9_-]+`)
	qrCodePattern          = regexp.MustCompile(`(?i)\bqr[\s-]?code\b`)
)

// ContactExtractor finds emails, phone numbers and profile links.
type ContactExtractor struct {
	phones PhoneStrategy
}

// NewContactExtractor builds an extractor using the given phone strategy.
// A nil strategy defaults to India.
func NewContactExtractor(phones PhoneStrategy) *ContactExtractor {
	if phones == nil {
		phones = India()
	}
	return &ContactExtractor{phones: phones}
}

// Extract scans text for contact details.
//
// The extracted text never carries images, so any mention of LinkedIn or
// GitHub is also taken as a sign of a scannable profile QR code.
func (e *ContactExtractor) Extract(text string) ContactInfo {
	info := ContactInfo{
		Email: uniqueMatches(emailPattern, text),
		Phone: ExtractPhones(e.phones, text),
	}

	lower := strings.ToLower(text)
	info.LinkedIn = linkedInProfilePattern.MatchString(text)
	info.GitHub = gitHubProfilePattern.MatchString(text)

	if strings.Contains(lower, "linkedin") {
		info.LinkedIn = true
		info.LinkedInQR = true
		info.QRCodeMentioned = true
	}
	if strings.Contains(lower, "github") {
		info.GitHub = true
		info.GitHubQR = true
		info.QRCodeMentioned = true
	}
	if qrCodePattern.MatchString(text) {
		info.QRCodeMentioned = true
	}

	if !info.LinkedIn && !info.GitHub &&
		(strings.Contains(lower, "portfolio") || strings.Contains(lower, "personal website")) {
		info.Portfolio = true
	}
	return info
}

func uniqueMatches(re *regexp.Regexp, text string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, m := range re.FindAllString(text, -1) {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
