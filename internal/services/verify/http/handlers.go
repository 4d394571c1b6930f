// Package http provides http transport for verification
package http

import (
	stdhttp "net/http"

	"cpauth/internal/modkit/httpkit"
	perr "cpauth/internal/platform/errors"
	"cpauth/internal/platform/logger"
	"cpauth/internal/services/verify/domain"
	svc "cpauth/internal/services/verify/service"
)

// Messages written to clients; failure reasons stay in the logs
const (
	MsgVerified       = "Authentication successful"
	MsgNotVerified    = "authentication failed"
	MsgInternalFailed = "internal server error"
)

// Register mounts one POST endpoint per registered platform plus the platform listing
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/platforms", h.platforms)
	for _, p := range s.Platforms() {
		httpkit.PostJSON(r, "/"+p.String(), h.verify(p))
	}
}

type handlers struct{ svc svc.Service }

// swagger:route POST /auth/{platform} Auth authVerify
// @Summary Verify ownership of a competitive programming account
// @Tags Auth
// @Accept json
// @Produce json
// @Param platform path string true "codechef, leetcode or codeforces"
// @Param payload body domain.VerifyInput true "Username and code"
// @Success 200 {object} domain.VerifyResponse "verified"
// @Failure 400 {object} httpkit.Envelope "invalid body; username limited to letters, digits, _ . - (max 64), code to one token"
// @Failure 401 {object} httpkit.Envelope "authentication failed"
// @Failure 500 {object} httpkit.Envelope "internal server error"
// @Router /auth/{platform} [post]
func (h *handlers) verify(p domain.Platform) func(*stdhttp.Request, domain.VerifyInput) (any, error) {
	return func(r *stdhttp.Request, in domain.VerifyInput) (any, error) {
		res, err := h.svc.Verify(r.Context(), domain.VerificationRequest{
			Platform: p,
			Username: in.Username,
			Code:     in.Code,
		})
		if err != nil {
			return nil, failed(r, res, err)
		}
		if !res.Verified() {
			return nil, perr.Unauthorizedf(MsgNotVerified)
		}
		return domain.VerifyResponse{
			Verified:  true,
			Platform:  res.Platform,
			Username:  res.Username,
			AttemptID: res.AttemptID.String(),
			Message:   MsgVerified,
		}, nil
	}
}

// failed logs the reason and hides it from the client, except for caller mistakes
func failed(r *stdhttp.Request, res domain.Result, err error) error {
	code := perr.CodeOf(err)
	if code == perr.ErrorCodeInvalidArgument || code == perr.ErrorCodeValidation {
		return err
	}
	e, _ := perr.As(err)
	ev := logger.C(r.Context()).Error().
		Err(err).
		Str("code", code.String()).
		Str("platform", res.Platform.String()).
		Str("attempt_id", res.AttemptID.String())
	if e != nil && e.Op() != "" {
		ev = ev.Str("op", e.Op())
	}
	ev.Msg("verification failed")
	return perr.Internalf(MsgInternalFailed)
}

// swagger:route GET /auth/platforms Auth authPlatforms
// @Summary Supported platforms
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.PlatformsResponse "ok"
// @Router /auth/platforms [get]
func (h *handlers) platforms(_ *stdhttp.Request) (any, error) {
	return domain.PlatformsResponse{Platforms: h.svc.Platforms()}, nil
}
