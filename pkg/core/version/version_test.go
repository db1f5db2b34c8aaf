package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersion(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q does not match semver format (x.y.z)", Version)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if want := runtime.GOOS + "/" + runtime.GOARCH; info.Platform != want {
		t.Errorf("Platform = %q, want %q", info.Platform, want)
	}
}

func TestInfo_String(t *testing.T) {
	info := Info{Version: "1.2.3", GitCommit: "abc123", BuildDate: "2026-10-17", GoVersion: "go1.24.0", Platform: "linux/amd64"}

	if got := info.Short(); got != "valid8 v1.2.3" {
		t.Errorf("Short() = %q", got)
	}

	out := info.String()
	for _, want := range []string{"valid8 v1.2.3\n", "Git Commit: abc123", "Build Date: 2026-10-17", "Go Version: go1.24.0", "OS/Arch:    linux/amd64"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}
}
