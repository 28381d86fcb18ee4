package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestResolveVersionInfo_LdflagsOverride(t *testing.T) {
	original := version
	defer func() { version = original }()

	version = "1.2.3"
	v, _, _ := resolveVersionInfo()
	if v != "1.2.3" {
		t.Errorf("expected ldflags version '1.2.3', got %q", v)
	}
}

func TestResolveVersionInfo_DevFallback(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()

	version, commit, date = "dev", "unknown", "unknown"
	v, c, d := resolveVersionInfo()

	if v == "" {
		t.Error("version should not be empty")
	}
	t.Logf("resolved: version=%s commit=%s date=%s", v, c, d)
}

func TestPrintVersionInfo_SplitsStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	printVersionInfo(&stdout, &stderr)

	if strings.Count(stdout.String(), "\n") != 1 {
		t.Errorf("expected a single machine-readable line on stdout, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "muninn") {
		t.Errorf("expected banner on stderr, got %q", stderr.String())
	}
}
