package codeforces

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"

	"cpauth/internal/core/match"
	perr "cpauth/internal/platform/errors"
	"cpauth/internal/platform/logger"
	kit "cpauth/internal/platform/testkit"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var logs = &syncBuffer{}

func TestMain(m *testing.M) {
	logger.Init(logger.Options{Level: "info", Format: "json", Writer: logs})
	os.Exit(m.Run())
}

func TestCandidates(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   []string
	}{
		{"both names", 200, `{"status":"OK","result":[{"firstName":"ABC123","lastName":"Doe"}]}`, []string{"ABC123", "Doe"}},
		{"last name only", 200, `{"status":"OK","result":[{"lastName":"Doe"}]}`, []string{"Doe"}},
		{"no names", 200, `{"status":"OK","result":[{"handle":"tourist"}]}`, nil},
		{"first result wins", 200, `{"status":"OK","result":[{"firstName":"A"},{"firstName":"B"}]}`, []string{"A"}},
		{"empty result", 200, `{"status":"OK","result":[]}`, nil},
		{"failed", 400, `{"status":"FAILED","comment":"handles: User with handle nobody not found"}`, nil},
		{"missing status", 200, `{"result":[{"firstName":"A"}]}`, nil},
		{"wrong shape", 200, `{"status":1}`, nil},
		{"first name wrong type", 200, `{"status":"OK","result":[{"firstName":7,"lastName":"ABC123"}]}`, []string{"ABC123"}},
		{"comment wrong type", 200, `{"status":"OK","comment":5,"result":[{"firstName":"ABC123","lastName":"Doe"}]}`, []string{"ABC123", "Doe"}},
		{"sibling field wrong type", 200, `{"status":"OK","result":[{"rating":"high","firstName":"ABC123"}]}`, []string{"ABC123"}},
		{"result not a list", 200, `{"status":"OK","result":{"firstName":"ABC123"}}`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			up := kit.NewUpstream(t, tc.status, "application/json", tc.body)
			got, err := New(up.URL, resty.New()).Candidates(context.Background(), "someone")
			require.NoError(t, err)
			if tc.want == nil {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tc.want, []string(got))
		})
	}
}

func TestCandidatesRequest(t *testing.T) {
	up := kit.NewUpstream(t, 200, "application/json", `{"status":"OK","result":[{"firstName":"ABC123"}]}`)
	got, err := New(up.URL+"/", resty.New()).Candidates(context.Background(), "tour ist&x=1")
	require.NoError(t, err)
	require.True(t, match.Any(got, "ABC123"))

	r := up.Last()
	require.Equal(t, "/user.info", r.URL.Path)
	require.Equal(t, "tour ist&x=1", r.URL.Query().Get("handles"))
}

func TestCandidatesInvalidJSON(t *testing.T) {
	up := kit.NewUpstream(t, 502, "text/html", `<h1>Bad Gateway</h1>`)
	_, err := New(up.URL, resty.New()).Candidates(context.Background(), "u")
	require.True(t, perr.IsCode(err, perr.ErrorCodeDecode), "got %v", err)
}

func TestCandidatesConnectionRefused(t *testing.T) {
	_, err := New(kit.RefusedURL(t), resty.New()).Candidates(context.Background(), "u")
	require.True(t, perr.IsCode(err, perr.ErrorCodeTransport), "got %v", err)
	e, ok := perr.As(err)
	require.True(t, ok)
	require.Equal(t, "codeforces.Candidates", e.Op())
}

func TestFailedLookupIsNotLoggedAtInfo(t *testing.T) {
	up := kit.NewUpstream(t, 400, "application/json", `{"status":"FAILED","comment":"handles: User with handle nobody not found"}`)
	got, err := New(up.URL, resty.New()).Candidates(context.Background(), "nobody")
	require.NoError(t, err)
	require.Empty(t, got)
	require.NotContains(t, logs.String(), "codeforces rejected lookup")
}
