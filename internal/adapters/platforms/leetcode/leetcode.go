// Package leetcode verifies LeetCode accounts through the public profile real name
package leetcode

import (
	"context"

	"cpauth/internal/adapters/platforms"
	perr "cpauth/internal/platform/errors"
	"cpauth/internal/platform/logger"
	"cpauth/internal/services/verify/domain"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
)

const (
	operationName = "matchedUser"
	// the username travels as a variable, never spliced into the document
	profileQuery = `query matchedUser($username: String!) { matchedUser(username: $username) { profile { realName } } }`
)

// Verifier queries the LeetCode GraphQL endpoint over GET
type Verifier struct {
	endpoint string
	http     *resty.Client
}

// New returns a LeetCode verifier for endpoint, e.g. https://leetcode.com/graphql
func New(endpoint string, client *resty.Client) *Verifier {
	return &Verifier{endpoint: endpoint, http: client}
}

// Candidates returns [realName] when the profile exposes one, otherwise nothing
func (v *Verifier) Candidates(ctx context.Context, username string) (domain.Candidates, error) {
	vars, err := jsoniter.MarshalToString(map[string]string{"username": username})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "encode graphql variables")
	}

	res, err := v.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"query":         profileQuery,
			"operationName": operationName,
			"variables":     vars,
		}).
		Get(v.endpoint)
	if err != nil {
		return nil, perr.WithOp(perr.Transport(err, "leetcode graphql"), "leetcode.Candidates")
	}

	doc, err := platforms.ParseJSON(res.Body())
	if err != nil {
		return nil, perr.WithOp(err, "leetcode.Candidates")
	}
	if msg, ok := doc.String("errors", 0, "message"); ok {
		logger.C(ctx).Debug().Str("error", msg).Msg("leetcode graphql returned errors")
	}

	name, ok := doc.String("data", "matchedUser", "profile", "realName")
	if !ok {
		return nil, nil
	}
	return domain.Candidates{name}, nil
}

var _ domain.Verifier = (*Verifier)(nil)
