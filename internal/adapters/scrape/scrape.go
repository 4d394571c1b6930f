// Package scrape fetches an HTML page and returns the text under the first
// element matching a CSS selector
package scrape

import (
	"bytes"
	"context"

	perr "cpauth/internal/platform/errors"
	"cpauth/internal/platform/logger"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("cpauth/adapters/scrape")

// Extractor pulls text out of remote HTML documents
type Extractor struct {
	http *resty.Client
}

// New returns an Extractor that fetches through client
func New(client *resty.Client) *Extractor { return &Extractor{http: client} }

// Text GETs url and returns the text nodes below the first element matching
// selector, in document order. The HTTP status is not inspected.
//
// Errors: Selector for an invalid selector (checked before any network call),
// Transport when the page cannot be fetched, Decode when it cannot be parsed
// and NoMatch when no element matches. An element without text yields an empty slice
func (e *Extractor) Text(ctx context.Context, url, selector string) (_ []string, err error) {
	ctx, span := tracer.Start(ctx, "scrape.Text")
	defer span.End()
	span.SetAttributes(attribute.String("url", url), attribute.String("selector", selector))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, perr.Selector(err, "invalid selector %q", selector)
	}

	res, err := e.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, perr.Transport(err, "fetch %s", url)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, perr.Decode(err, "parse html from %s", url)
	}

	match := doc.FindMatcher(sel)
	if match.Length() == 0 {
		return nil, perr.NoMatchf("selector %q matched nothing at %s", selector, url)
	}

	out := []string{}
	collectText(match.Nodes[0], &out)

	logger.C(ctx).Debug().
		Str("url", url).
		Str("selector", selector).
		Int("status", res.StatusCode()).
		Int("fragments", len(out)).
		Msg("extracted text")
	return out, nil
}

// collectText appends every descendant text node of n in document order
func collectText(n *html.Node, out *[]string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			*out = append(*out, c.Data)
			continue
		}
		collectText(c, out)
	}
}
