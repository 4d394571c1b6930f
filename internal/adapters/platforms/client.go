// Package platforms holds what the per-platform verifiers share: endpoints,
// the outbound HTTP client and JSON decoding of platform responses
package platforms

import (
	"fmt"
	"time"

	"cpauth/internal/core/version"
	"cpauth/internal/platform/config"
	"cpauth/internal/platform/logger"

	"dario.cat/mergo"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default endpoints
const (
	CodeChefBaseURL    = "https://www.codechef.com/users"
	LeetCodeGraphQLURL = "https://leetcode.com/graphql"
	CodeforcesAPIURL   = "https://codeforces.com/api"
)

// Options configures the outbound client and platform endpoints
type Options struct {
	UserAgent string
	// Timeout bounds a single outbound call; 0 leaves it to the caller's context
	Timeout time.Duration

	CodeChefBaseURL    string
	LeetCodeGraphQLURL string
	CodeforcesAPIURL   string
}

// DefaultOptions returns production endpoints and no client timeout
func DefaultOptions() Options {
	return Options{
		UserAgent:          version.UserAgent(),
		CodeChefBaseURL:    CodeChefBaseURL,
		LeetCodeGraphQLURL: LeetCodeGraphQLURL,
		CodeforcesAPIURL:   CodeforcesAPIURL,
	}
}

// WithDefaults fills every unset field from DefaultOptions
func (o Options) WithDefaults() Options {
	if err := mergo.Merge(&o, DefaultOptions()); err != nil {
		// only fails for mismatched types, which cannot happen here
		panic(fmt.Sprintf("platforms: merge defaults: %v", err))
	}
	return o
}

// FromConfig reads options from cfg, usually scoped to CPAUTH_PLATFORMS_
func FromConfig(cfg config.Conf) Options {
	return Options{
		UserAgent:          cfg.MayString("USER_AGENT", ""),
		Timeout:            cfg.MayDuration("TIMEOUT", 0),
		CodeChefBaseURL:    cfg.MayURL("CODECHEF_BASE_URL", CodeChefBaseURL),
		LeetCodeGraphQLURL: cfg.MayURL("LEETCODE_GRAPHQL_URL", LeetCodeGraphQLURL),
		CodeforcesAPIURL:   cfg.MayURL("CODEFORCES_API_URL", CodeforcesAPIURL),
	}.WithDefaults()
}

var tracer = otel.Tracer("cpauth/adapters/platforms")

// NewClient builds the resty client shared by every verifier.
// It is safe for concurrent use and never retries
func NewClient(o Options) *resty.Client {
	o = o.WithDefaults()
	log := logger.Named("platforms")

	c := resty.New().
		SetHeader("User-Agent", o.UserAgent).
		SetRetryCount(0).
		SetLogger(restyLogger{log})
	if o.Timeout > 0 {
		c.SetTimeout(o.Timeout)
	}

	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		ctx, _ := tracer.Start(req.Context(), "http "+req.Method,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attribute.String("http.url", req.URL)),
		)
		req.SetContext(ctx)
		return nil
	})
	c.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		span := trace.SpanFromContext(res.Request.Context())
		defer span.End()
		span.SetAttributes(
			attribute.Int("http.status_code", res.StatusCode()),
			attribute.Int("http.response_size", len(res.Body())),
		)
		logger.C(res.Request.Context()).Debug().
			Str("method", res.Request.Method).
			Str("url", res.Request.URL).
			Int("status", res.StatusCode()).
			Dur("elapsed", res.Time()).
			Msg("platform response")
		return nil
	})
	c.OnError(func(req *resty.Request, err error) {
		span := trace.SpanFromContext(req.Context())
		defer span.End()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	})
	return c
}

// restyLogger routes resty's own diagnostics through zerolog
type restyLogger struct{ log *logger.Logger }

func (l restyLogger) Errorf(format string, v ...any) { l.log.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...any)  { l.log.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...any) { l.log.Debug().Msgf(format, v...) }
