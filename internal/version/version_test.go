package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBuildInfo(t *testing.T, version, commit, date string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := Version, GitCommit, BuildDate
	SetBuildInfo(version, commit, date)
	t.Cleanup(func() { SetBuildInfo(oldVersion, oldCommit, oldDate) })
}

func TestDefaultVersionIsValid(t *testing.T) {
	assert.NoError(t, ValidateVersion())
	assert.Equal(t, Version, GetVersion())
}

func TestGetInfo(t *testing.T) {
	withBuildInfo(t, "1.4.2+17.abc1234", "abcdef1234567", "2026-01-02")

	info, err := GetInfo()
	require.NoError(t, err)
	assert.Equal(t, "1.4.2+17.abc1234", info.Version)
	assert.Equal(t, uint64(1), info.SemVer.Major())
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)

	withBuildInfo(t, "not-a-version", "unknown", "unknown")
	_, err = GetInfo()
	assert.ErrorContains(t, err, "invalid semantic version")
}

func TestGetFormattedVersion(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		date     string
		expected string
	}{
		{"development build", "1.4.0", "unknown", "unknown", "MTM v1.4.0"},
		{"release build", "1.4.0", "abcdef1234567", "2026-01-02", "MTM v1.4.0, commit abcdef1, built 2026-01-02"},
		{"short commit", "1.4.0", "abc", "", "MTM v1.4.0, commit abc"},
		{"invalid version", "banana", "unknown", "unknown", "MTM vbanana (invalid version)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.version, tt.commit, tt.date)
			assert.Equal(t, tt.expected, GetFormattedVersion())
		})
	}
}

func TestGetDetailedVersion(t *testing.T) {
	withBuildInfo(t, "1.5.0-rc.1+42", "abc", "2026-01-02")

	out := GetDetailedVersion()
	lines := strings.Split(out, "\n")
	assert.Equal(t, "MTM v1.5.0-rc.1+42", lines[0])
	assert.Contains(t, out, "Build Metadata: 42")
	assert.Contains(t, out, "Platform: ")
	assert.True(t, IsPrerelease())
	assert.False(t, IsDevelopment())
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1, v2   string
		expected int
	}{
		{"1.0.0", "1.0.1", -1},
		{"1.4.0", "1.4.0", 0},
		{"2.0.0", "1.9.9", 1},
		{"1.0.0-rc.1", "1.0.0", -1},
	}
	for _, tt := range tests {
		got, err := CompareVersions(tt.v1, tt.v2)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "%s vs %s", tt.v1, tt.v2)
	}

	_, err := CompareVersions("x", "1.0.0")
	assert.ErrorContains(t, err, "invalid version v1")
	_, err = CompareVersions("1.0.0", "y")
	assert.ErrorContains(t, err, "invalid version v2")
}

func TestSatisfies(t *testing.T) {
	withBuildInfo(t, "1.4.0", "unknown", "unknown")

	ok, err := Satisfies(">= 1.2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Satisfies("^2")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Satisfies("abc")
	assert.ErrorContains(t, err, "invalid version constraint")
}
