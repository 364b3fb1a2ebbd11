package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	t.Run("ldflags values", func(t *testing.T) {
		origVersion, origCommit, origBuildTime := Version, Commit, BuildTime
		defer func() {
			Version, Commit, BuildTime = origVersion, origCommit, origBuildTime
		}()

		Version = "1.2.3"
		Commit = "abc1234"
		BuildTime = "2024-01-15T10:00:00Z"

		if got, want := String(), "1.2.3 (abc1234) built 2024-01-15T10:00:00Z"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("development defaults", func(t *testing.T) {
		got := String()
		if !strings.Contains(got, Version) {
			t.Errorf("String() = %q, should contain %q", got, Version)
		}
		if !strings.Contains(got, "built") {
			t.Errorf("String() = %q, should contain %q", got, "built")
		}
	})
}
