package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const maxDomainLength = 253

const minTLDLength = 2

var domainLabelPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

// NormalizeDomain trims whitespace, lowercases and drops a trailing dot.
func NormalizeDomain(d string) string {
	d = strings.TrimSpace(d)
	d = strings.TrimSuffix(d, ".")
	return strings.ToLower(d)
}

// ValidateCustomDomain checks the syntax of a customer-submitted domain:
// at least two labels, each made of [a-zA-Z0-9-] without leading or
// trailing hyphens, and a TLD of at least two characters. Punycode TLDs
// such as xn--p1ai pass. No network access is performed.
func ValidateCustomDomain(d string) error {
	if d == "" || len(d) > maxDomainLength {
		return fmt.Errorf("%w: %q", ErrInvalidDomainFormat, d)
	}

	labels := strings.Split(d, ".")
	if len(labels) < 2 {
		return fmt.Errorf("%w: %q has no dot", ErrInvalidDomainFormat, d)
	}

	for _, label := range labels {
		if !domainLabelPattern.MatchString(label) {
			return fmt.Errorf("%w: invalid label %q in %q", ErrInvalidDomainFormat, label, d)
		}
	}

	if tld := labels[len(labels)-1]; len(tld) < minTLDLength {
		return fmt.Errorf("%w: invalid top-level domain %q", ErrInvalidDomainFormat, tld)
	}

	return nil
}
