// Package secrets scans package content for credential-shaped strings
// before it is written into tool directories.
package secrets

import (
	"regexp"
	"strings"
)

// Severity ranks how confident a pattern match is.
type Severity string

const (
	// SeverityWarning flags a suspicious string worth reviewing.
	SeverityWarning Severity = "warning"
	// SeverityCritical flags a string that is almost certainly a live
	// credential.
	SeverityCritical Severity = "critical"
)

// Pattern describes one credential shape to scan for.
type Pattern struct {
	Name     string
	Regexp   *regexp.Regexp
	Severity Severity
}

// Finding records one match in scanned content.
type Finding struct {
	Name     string
	Line     int
	Severity Severity
	Match    string
}

// DefaultPatterns returns the built-in credential patterns.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name:     "github token",
			Regexp:   regexp.MustCompile(`\b(ghp|gho|ghu|ghs|ghr)_[A-Za-z0-9]{36}\b`),
			Severity: SeverityCritical,
		},
		{
			Name:     "aws access key",
			Regexp:   regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
			Severity: SeverityCritical,
		},
		{
			Name:     "private key block",
			Regexp:   regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----`),
			Severity: SeverityCritical,
		},
		{
			Name:     "slack token",
			Regexp:   regexp.MustCompile(`\bxox[baprs]-[A-Za-z0-9-]{10,}\b`),
			Severity: SeverityCritical,
		},
		{
			Name:     "connection string",
			Regexp:   regexp.MustCompile(`(?i)\b(postgres|postgresql|mysql|mongodb(\+srv)?|redis|amqp)://[^\s:@]+:[^\s@]+@`),
			Severity: SeverityCritical,
		},
		{
			Name:     "bearer token",
			Regexp:   regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9._~+/-]{20,}=*`),
			Severity: SeverityWarning,
		},
		{
			Name:     "assigned secret",
			Regexp:   regexp.MustCompile(`(?i)\b(api[_-]?key|secret|token|password|passwd)\b\s*[:=]\s*['"][^'"]{8,}['"]`),
			Severity: SeverityWarning,
		},
	}
}

// Scanner matches content against a set of credential patterns.
type Scanner struct {
	patterns []Pattern
}

// NewScanner creates a scanner with the given patterns, or the default
// set when none are given.
func NewScanner(patterns ...Pattern) *Scanner {
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}
	return &Scanner{patterns: patterns}
}

// Scan returns a finding for each credential-shaped match in the
// content. Placeholder values are filtered out.
func (s *Scanner) Scan(content string) []Finding {
	var findings []Finding
	for i, line := range strings.Split(content, "\n") {
		for _, p := range s.patterns {
			for _, match := range p.Regexp.FindAllString(line, -1) {
				if isPlaceholder(match) {
					continue
				}
				findings = append(findings, Finding{
					Name:     p.Name,
					Line:     i + 1,
					Severity: p.Severity,
					Match:    truncateMatch(match),
				})
			}
		}
	}
	return findings
}

// HasCritical reports whether any finding is critical.
func HasCritical(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

var placeholderMarkers = []string{
	"example", "placeholder", "your_", "your-", "changeme", "change-me",
	"xxx", "<", "${", "{{", "dummy", "sample", "redacted", "...",
}

// isPlaceholder filters values that look like documentation stand-ins
// rather than real credentials.
func isPlaceholder(match string) bool {
	lower := strings.ToLower(match)
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// truncateMatch keeps enough of the match to locate it without
// reprinting the whole credential.
func truncateMatch(match string) string {
	const keep = 12
	if len(match) <= keep {
		return match
	}
	return match[:keep] + "..."
}
