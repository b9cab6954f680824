package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-graph/internal/mappers"
)

func TestGetenv(t *testing.T) {
	t.Setenv("TEST_GETENV", "")
	if result := getenv("TEST_GETENV", "default"); result != "default" {
		t.Errorf("Expected default value 'default', got '%s'", result)
	}

	t.Setenv("TEST_GETENV", "test-value")
	if result := getenv("TEST_GETENV", "default"); result != "test-value" {
		t.Errorf("Expected 'test-value', got '%s'", result)
	}
}

func TestGetenvInt(t *testing.T) {
	testCases := []struct {
		value    string
		expected int
	}{
		{"", 42},
		{"100", 100},
		{" 7 ", 7},
		{"not-an-int", 42},
	}

	for _, tc := range testCases {
		t.Setenv("TEST_GETENV_INT", tc.value)
		if result := getenvInt("TEST_GETENV_INT", 42); result != tc.expected {
			t.Errorf("getenvInt(%q) = %d, want %d", tc.value, result, tc.expected)
		}
	}
}

func TestGetenvBool(t *testing.T) {
	testCases := []struct {
		value    string
		def      bool
		expected bool
	}{
		{"", true, true},
		{"true", false, true},
		{"false", true, false},
		{"not-a-bool", true, true},
	}

	for _, tc := range testCases {
		t.Setenv("TEST_GETENV_BOOL", tc.value)
		if result := getenvBool("TEST_GETENV_BOOL", tc.def); result != tc.expected {
			t.Errorf("getenvBool(%q, %v) = %v, want %v", tc.value, tc.def, result, tc.expected)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("XCRI_LANGUAGE", "cy")
	t.Setenv("XCRI_WORKERS", "8")
	t.Setenv("XCRI_FETCH_TIMEOUT_SECONDS", "5")
	t.Setenv("SFTP_HOST", "sftp.test")
	t.Setenv("SFTP_PORT", "2222")
	t.Setenv("SFTP_INSECURE_IGNORE_HOSTKEY", "true")
	t.Setenv("SFTP_KNOWN_HOSTS", " /etc/ssh/known_hosts ")
	t.Setenv("S3_BUCKET", "catalogues")
	t.Setenv("S3_PREFIX", "/graphs/")

	cfg := Load()

	assert.Equal(t, "cy", cfg.Language)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "sftp.test", cfg.SFTPHost)
	assert.Equal(t, 2222, cfg.SFTPPort)
	assert.True(t, cfg.SFTPInsecureIgnoreHostKey)
	assert.Equal(t, "/etc/ssh/known_hosts", cfg.SFTPKnownHosts)
	assert.Equal(t, "catalogues", cfg.S3Bucket)
	assert.Equal(t, "graphs", cfg.S3Prefix)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"XCRI_LANGUAGE", "XCRI_WORKERS", "XCRI_FETCH_TIMEOUT_SECONDS",
		"SFTP_PORT", "SFTP_DIR", "SFTP_INSECURE_IGNORE_HOSTKEY",
		"S3_REGION", "S3_BUCKET", "S3_USE_SSL",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 60*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 22, cfg.SFTPPort)
	assert.Equal(t, "/inbound", cfg.SFTPDir)
	assert.False(t, cfg.SFTPInsecureIgnoreHostKey, "host keys are checked unless opted out")
	assert.Equal(t, "us-east-1", cfg.S3Region)
	assert.True(t, cfg.S3UseSSL)
}

func TestLoadSchemesDefault(t *testing.T) {
	schemes, err := LoadSchemes("")
	require.NoError(t, err)
	assert.Equal(t, mappers.DefaultSchemes(), schemes)
}

func TestLoadSchemesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemes.yaml")
	data := `
schemes:
  - type: courseDataProgramme:JACS3
    framework: JACS
  - type: courseDataProgramme:HECoS
    framework: HECoS
    alignment_type: EducationalSubject
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	schemes, err := LoadSchemes(path)
	require.NoError(t, err)
	require.Len(t, schemes, 2)
	assert.Equal(t, mappers.Scheme{Type: "courseDataProgramme:JACS3", Framework: "JACS", AlignmentType: "EducationalSubject"}, schemes[0])
	assert.Equal(t, "HECoS", schemes[1].Framework)
}

func TestParseSchemesErrors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"not yaml", "schemes: [:"},
		{"missing framework", "schemes:\n  - type: x\n"},
		{"duplicate", "schemes:\n  - type: x\n    framework: X\n  - type: x\n    framework: Y\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSchemes([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadSchemesMissingFile(t *testing.T) {
	_, err := LoadSchemes(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "config: read schemes file")
}
