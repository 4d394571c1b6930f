package domain

import "context"

// Verifier extracts the candidate fragments for a username on one platform.
// A missing or unreadable field is an empty result; only infrastructure failures are errors
type Verifier interface {
	Candidates(ctx context.Context, username string) (Candidates, error)
}

// VerifierFunc adapts a function to Verifier
type VerifierFunc func(ctx context.Context, username string) (Candidates, error)

// Candidates implements Verifier
func (f VerifierFunc) Candidates(ctx context.Context, username string) (Candidates, error) {
	return f(ctx, username)
}

// ServicePort is the verification dispatcher
type ServicePort interface {
	Verify(ctx context.Context, req VerificationRequest) (Result, error)
	Platforms() []Platform
}
