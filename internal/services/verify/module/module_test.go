package module

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cpauth/internal/adapters/platforms"
	modkit "cpauth/internal/modkit"
	"cpauth/internal/modkit/module"
	"cpauth/internal/platform/config"
	phttp "cpauth/internal/platform/net/http"
	kit "cpauth/internal/platform/testkit"
	"cpauth/internal/services/verify/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) { kit.VerifyNoLeaks(m) }

func serve(t *testing.T, mod modkit.Module, platform, body string) int {
	t.Helper()
	m := chi.NewRouter()
	mod.MountRoutes(phttp.AdaptChi(m))
	req := httptest.NewRequest(http.MethodPost, "/auth/"+platform, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, req)
	return rr.Code
}

func TestModuleEndToEnd(t *testing.T) {
	cc := kit.NewUpstream(t, 200, "text/html", `<html><head><title>code123 - user - CodeChef</title></head></html>`)
	lc := kit.NewUpstream(t, 200, "application/json", `{"data":{"matchedUser":{"profile":{"realName":"John XYZ123"}}}}`)
	cf := kit.NewUpstream(t, 400, "application/json", `{"status":"FAILED","comment":"handles: User not found"}`)

	svc := NewService(platforms.Options{
		CodeChefBaseURL:    cc.URL + "/users",
		LeetCodeGraphQLURL: lc.URL + "/graphql",
		CodeforcesAPIURL:   cf.URL + "/api",
	})
	mod := WithService(modkit.Deps{}, svc)

	require.Equal(t, http.StatusOK, serve(t, mod, "codechef", `{"username":"user","code":"code123"}`))
	require.Equal(t, http.StatusUnauthorized, serve(t, mod, "codechef", `{"username":"user","code":"code999"}`))
	require.Equal(t, http.StatusOK, serve(t, mod, "leetcode", `{"username":"john","code":"XYZ123"}`))
	require.Equal(t, http.StatusUnauthorized, serve(t, mod, "codeforces", `{"username":"nobody","code":"ABC123"}`))

	require.Equal(t, "/users/user", cc.Last().URL.Path)
	require.Equal(t, "/graphql", lc.Last().URL.Path)
	require.Equal(t, "/api/user.info", cf.Last().URL.Path)
	require.Contains(t, cf.Last().Header.Get("User-Agent"), "cpauth/")
}

func TestModuleFailedIsInternal(t *testing.T) {
	svc := NewService(platforms.Options{
		CodeChefBaseURL:    kit.RefusedURL(t),
		LeetCodeGraphQLURL: kit.RefusedURL(t),
		CodeforcesAPIURL:   kit.RefusedURL(t),
	})
	mod := WithService(modkit.Deps{}, svc)
	for _, p := range domain.AllPlatforms() {
		require.Equal(t, http.StatusInternalServerError, serve(t, mod, p.String(), `{"username":"u","code":"c"}`), p)
	}
}

func TestModulePortsAndRegistry(t *testing.T) {
	module.Reset()
	t.Cleanup(module.Reset)

	mod := WithService(modkit.Deps{}, NewService(platforms.Options{}), modkit.WithPrefix("/verify"))
	require.Equal(t, "verify", mod.Name())
	require.Equal(t, "/verify", mod.Prefix())

	module.Register(mod)
	port, ok := module.Lookup[domain.ServicePort]("verify")
	require.True(t, ok)
	require.Equal(t, domain.AllPlatforms(), port.Platforms())
}

func TestFromConfig(t *testing.T) {
	t.Setenv("CPAUTH_PLATFORMS_CODEFORCES_API_URL", "http://cf.local/api/")
	t.Setenv("CPAUTH_PLATFORMS_TIMEOUT", "5s")

	o := FromConfig(config.New().Prefix("CPAUTH_"))
	require.Equal(t, "http://cf.local/api", o.Platforms.CodeforcesAPIURL)
	require.Equal(t, platforms.LeetCodeGraphQLURL, o.Platforms.LeetCodeGraphQLURL)
	require.Equal(t, "5s", o.Platforms.Timeout.String())
}
