package config

import (
	"testing"
	"time"

	kit "cpauth/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	api := root.Prefix("CPAUTH_")
	if got := api.Key("PORT"); got != "CPAUTH_PORT" {
		t.Fatalf("Key() = %q, want %q", got, "CPAUTH_PORT")
	}
	nested := api.Prefix("PLATFORMS_")
	if got := nested.Key("TIMEOUT"); got != "CPAUTH_PLATFORMS_TIMEOUT" {
		t.Fatalf("nested Key() = %q, want %q", got, "CPAUTH_PLATFORMS_TIMEOUT")
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  cpauth ")
	if got := c.MustString("NAME"); got != "cpauth" {
		t.Fatalf("MustString = %q, want %q", got, "cpauth")
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })

	t.Setenv("APP_BLANK", "   ")
	kit.MustPanic(t, func() { _ = c.MustString("BLANK") })
}

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q, want %q", got, "def")
	}
	t.Setenv("S_NAME", " cpauth ")
	if got := c.MayString("NAME", "x"); got != "cpauth" {
		t.Fatalf("MayString value = %q, want %q", got, "cpauth")
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt default = %d, want %d", got, 9)
	}
	t.Setenv("I_OK", " 7 ")
	if got := c.MayInt("OK", 0); got != 7 {
		t.Fatalf("MayInt ok = %d, want %d", got, 7)
	}
	t.Setenv("I_BAD", "x")
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad -> default = %d, want %d", got, 3)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if got := c.MayBool("MISSING", true); got != true {
		t.Fatalf("MayBool default true expected")
	}
	t.Setenv("B_T", "true")
	if got := c.MayBool("T", false); got != true {
		t.Fatalf("MayBool true expected")
	}
	t.Setenv("B_BAD", "nope")
	if got := c.MayBool("BAD", false); got != false {
		t.Fatalf("MayBool bad -> default false expected")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("DUR_")
	if got := c.MayDuration("MISS", 5*time.Second); got != 5*time.Second {
		t.Fatalf("MayDuration default expected")
	}
	t.Setenv("DUR_OK", "150ms")
	if got := c.MayDuration("OK", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration ok = %v, want %v", got, 150*time.Millisecond)
	}
	t.Setenv("DUR_ZERO", "0s")
	if got := c.MayDuration("ZERO", time.Second); got != 0 {
		t.Fatalf("MayDuration zero = %v, want 0", got)
	}
	t.Setenv("DUR_NEG", "-1s")
	if got := c.MayDuration("NEG", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration negative -> default expected, got %v", got)
	}
	t.Setenv("DUR_BAD", "nope")
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad -> default expected")
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	def := []string{"a", "b"}
	if got := c.MayCSV("MISS", def); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("MayCSV default mismatch: %#v", got)
	}
	t.Setenv("CSV_VALS", " one, two , ,three ,, ")
	got := c.MayCSV("VALS", nil)
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("MayCSV len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	t.Setenv("CSV_EMPTY", " , ,  ,")
	if got := c.MayCSV("EMPTY", []string{"fallback"}); len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("MayCSV all-empty -> default mismatch: %#v", got)
	}
}

func TestMayURL(t *testing.T) {
	c := New().Prefix("U_")
	const def = "https://codeforces.com/api"
	if got := c.MayURL("MISS", def); got != def {
		t.Fatalf("MayURL default = %q", got)
	}
	t.Setenv("U_OK", "http://127.0.0.1:9999/api/")
	if got := c.MayURL("OK", def); got != "http://127.0.0.1:9999/api" {
		t.Fatalf("MayURL trims trailing slash, got %q", got)
	}
	for _, bad := range []string{"/relative", "://bad", "ftp://example.com"} {
		t.Setenv("U_BAD", bad)
		if got := c.MayURL("BAD", def); got != def {
			t.Fatalf("MayURL(%q) = %q, want default", bad, got)
		}
	}
}
