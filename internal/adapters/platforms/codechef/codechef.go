// Package codechef verifies CodeChef accounts through the profile page title
package codechef

import (
	"context"
	"net/url"
	"strings"

	"cpauth/internal/adapters/scrape"
	perr "cpauth/internal/platform/errors"
	"cpauth/internal/services/verify/domain"
)

// titleSelector picks the profile page title, which carries the display name
const titleSelector = "title"

// Verifier reads the <title> of {base}/{username}
type Verifier struct {
	base string
	text *scrape.Extractor
}

// New returns a CodeChef verifier rooted at base, e.g. https://www.codechef.com/users
func New(base string, text *scrape.Extractor) *Verifier {
	return &Verifier{base: strings.TrimRight(base, "/"), text: text}
}

// Candidates returns the title text nodes. A missing title is a NoMatch failure,
// never a silent not-verified; an unknown user and an absent code look the same
func (v *Verifier) Candidates(ctx context.Context, username string) (domain.Candidates, error) {
	frags, err := v.text.Text(ctx, v.base+"/"+url.PathEscape(username), titleSelector)
	if err != nil {
		return nil, perr.WithOp(err, "codechef.Candidates")
	}
	return frags, nil
}

var _ domain.Verifier = (*Verifier)(nil)
