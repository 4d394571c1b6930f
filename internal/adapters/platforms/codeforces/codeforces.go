// Package codeforces verifies Codeforces accounts through the user.info API
package codeforces

import (
	"context"
	"strings"

	"cpauth/internal/adapters/platforms"
	perr "cpauth/internal/platform/errors"
	"cpauth/internal/platform/logger"
	pstrings "cpauth/internal/platform/strings"
	"cpauth/internal/services/verify/domain"

	"github.com/go-resty/resty/v2"
)

const statusFailed = "FAILED"

// Verifier calls {base}/user.info?handles={username}
type Verifier struct {
	base string
	http *resty.Client
}

// New returns a Codeforces verifier rooted at base, e.g. https://codeforces.com/api
func New(base string, client *resty.Client) *Verifier {
	return &Verifier{base: strings.TrimRight(base, "/"), http: client}
}

// Candidates returns the first and last name of the first result, whichever are present.
// The HTTP status is ignored; a FAILED payload still arrives with 400
func (v *Verifier) Candidates(ctx context.Context, username string) (domain.Candidates, error) {
	res, err := v.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("handles", username).
		Get(v.base + "/user.info")
	if err != nil {
		return nil, perr.WithOp(perr.Transport(err, "codeforces user.info"), "codeforces.Candidates")
	}

	doc, err := platforms.ParseJSON(res.Body())
	if err != nil {
		return nil, perr.WithOp(err, "codeforces.Candidates")
	}

	status, ok := doc.String("status")
	switch {
	case !ok:
		return nil, nil
	case status == statusFailed:
		logger.C(ctx).Debug().
			Str("comment", pstrings.Deref(doc.StringPtr("comment"))).
			Int("http_status", res.StatusCode()).
			Msg("codeforces rejected lookup")
		return nil, nil
	}

	return domain.Candidates(pstrings.Present(
		doc.StringPtr("result", 0, "firstName"),
		doc.StringPtr("result", 0, "lastName"),
	)), nil
}

var _ domain.Verifier = (*Verifier)(nil)
