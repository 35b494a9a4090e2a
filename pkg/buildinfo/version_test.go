package buildinfo

import (
	"strings"
	"testing"
)

func TestGetKeepsLdflags(t *testing.T) {
	old := [3]string{Version, Commit, Date}
	defer func() { Version, Commit, Date = old[0], old[1], old[2] }()

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"
	got := Get()
	if got.Version != "v1.2.3" || got.Commit != "abc123" || got.Date != "2026-01-02" {
		t.Errorf("Get() = %+v", got)
	}
	if !strings.Contains(String(), "version: v1.2.3") {
		t.Errorf("String() = %q", String())
	}
	if !strings.HasPrefix(Template(), "{{.Name}} version v1.2.3") {
		t.Errorf("Template() = %q", Template())
	}
}
