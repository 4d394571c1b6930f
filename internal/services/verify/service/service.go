// Package service dispatches a verification request to its platform verifier
package service

import (
	"context"
	"slices"

	"cpauth/internal/core/match"
	perr "cpauth/internal/platform/errors"
	"cpauth/internal/platform/logger"
	"cpauth/internal/services/verify/domain"

	"github.com/google/uuid"
)

// Service defines the verify service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the verify service over a fixed dispatch table
type Svc struct {
	verifiers map[domain.Platform]domain.Verifier
	newID     func() uuid.UUID
}

// New constructs a verify service. The table is copied; nil verifiers panic
func New(verifiers map[domain.Platform]domain.Verifier) *Svc {
	if len(verifiers) == 0 {
		panic("verify.Service requires at least one verifier")
	}
	table := make(map[domain.Platform]domain.Verifier, len(verifiers))
	for p, v := range verifiers {
		if v == nil {
			panic("verify.Service requires a non nil verifier for " + p.String())
		}
		table[p] = v
	}
	return &Svc{verifiers: table, newID: uuid.New}
}

// Verify fetches the candidates for req.Username and matches req.Code against them.
// A nil error means the check completed; the Result says whether it passed
func (s *Svc) Verify(ctx context.Context, req domain.VerificationRequest) (domain.Result, error) {
	res := domain.Result{Platform: req.Platform, Username: req.Username, AttemptID: s.newID()}

	v, ok := s.verifiers[req.Platform]
	if !ok {
		return res, perr.WithField(perr.InvalidArgf("unsupported platform %q", req.Platform), "platform")
	}

	ctx = logger.WithAttempt(ctx, res.AttemptID.String(), req.Platform.String())
	log := logger.C(ctx)

	fragments, err := v.Candidates(ctx, req.Username)
	if err != nil {
		return res, labelled(err, "verify."+req.Platform.String())
	}

	if match.Any(fragments, req.Code) {
		res.Outcome = domain.Verified
	}
	log.Debug().
		Int("fragments", len(fragments)).
		Str("outcome", res.Outcome.String()).
		Msg("verification completed")
	return res, nil
}

// Platforms lists the platforms with a registered verifier in stable order
func (s *Svc) Platforms() []domain.Platform {
	out := make([]domain.Platform, 0, len(s.verifiers))
	for _, p := range domain.AllPlatforms() {
		if _, ok := s.verifiers[p]; ok {
			out = append(out, p)
		}
	}
	// anything registered outside the known set goes last, by name
	var extra []domain.Platform
	for p := range s.verifiers {
		if !known(p) {
			extra = append(extra, p)
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}

// labelled keeps the code and the innermost op of a verifier error
func labelled(err error, op string) error {
	e, ok := perr.As(err)
	if !ok {
		return perr.WithOp(perr.Wrap(err, perr.ErrorCodeUnknown, "verifier failed"), op)
	}
	if e.Op() == "" {
		return perr.WithOp(err, op)
	}
	return err
}

func known(p domain.Platform) bool {
	for _, k := range domain.AllPlatforms() {
		if k == p {
			return true
		}
	}
	return false
}

var _ Service = (*Svc)(nil)
