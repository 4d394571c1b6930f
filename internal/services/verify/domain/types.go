// Package domain holds the verification request, outcome and port types
package domain

import (
	"strings"

	perr "cpauth/internal/platform/errors"

	"github.com/google/uuid"
)

// Platform is a supported competitive programming site
type Platform string

// Supported platforms
const (
	CodeChef   Platform = "codechef"
	LeetCode   Platform = "leetcode"
	Codeforces Platform = "codeforces"
)

// AllPlatforms lists every supported platform in a stable order
func AllPlatforms() []Platform { return []Platform{CodeChef, LeetCode, Codeforces} }

// ParsePlatform maps a case-insensitive name to a Platform
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllPlatforms() {
		if p == known {
			return p, nil
		}
	}
	return "", perr.WithField(perr.InvalidArgf("unsupported platform %q", s), "platform")
}

func (p Platform) String() string { return string(p) }

// VerificationRequest is one ownership check; it is never stored
type VerificationRequest struct {
	Platform Platform
	Username string
	Code     string
}

// Candidates are the public text fragments a verifier extracted, in source order
type Candidates []string

// Outcome is the result of a completed check. Failures travel as errors instead
type Outcome uint8

// Outcomes
const (
	NotVerified Outcome = iota
	Verified
)

func (o Outcome) String() string {
	if o == Verified {
		return "verified"
	}
	return "not_verified"
}

// Result is a completed verification
type Result struct {
	Outcome   Outcome   `json:"-"`
	Platform  Platform  `json:"platform"`
	Username  string    `json:"username"`
	AttemptID uuid.UUID `json:"attempt_id"`
}

// Verified reports whether the code was found
func (r Result) Verified() bool { return r.Outcome == Verified }
