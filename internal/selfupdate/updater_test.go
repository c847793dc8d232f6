package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "studyplan_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "studyplan_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "studyplan_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "studyplan_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "studyplan_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "studyplan_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "studyplan_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "normal",
			input: "abc123  studyplan_Darwin_all.tar.gz\ndef456  studyplan_Linux_x86_64.tar.gz\n",
			want: map[string]string{
				"studyplan_Darwin_all.tar.gz":   "abc123",
				"studyplan_Linux_x86_64.tar.gz": "def456",
			},
		},
		{
			name:  "empty",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "malformed lines skipped",
			input: "abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n",
			want: map[string]string{
				"file.tar.gz":  "abc123",
				"other.tar.gz": "ghi789",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseChecksums([]byte(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := verifyChecksum(data, strings.Repeat("0", 64))
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func TestExtractBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho studyplan")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "studyplan", content)
		got, err := extractBinary(archive, "studyplan_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", content)
		_, err := extractBinary(archive, "studyplan_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "studyplan")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	replacement := []byte("new-binary-content")
	sum := sha256.Sum256(replacement)
	require.NoError(t, applyUpdate(replacement, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	// The original file mode survives the swap.
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// currentAsset resolves the release asset name for the platform running
// the test, skipping platforms whose asset is not a tar.gz.
func currentAsset(t *testing.T) string {
	t.Helper()
	asset, err := assetName()
	require.NoError(t, err)
	if strings.HasSuffix(asset, ".zip") {
		t.Skip("release fixture is a tar.gz")
	}
	return asset
}

// releaseServer fakes a GitHub release at tag v2.0.0 serving the given
// archive bytes and checksums.txt body for the given asset name.
func releaseServer(t *testing.T, asset string, archive []byte, checksums string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/abhisek/studyplan/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case "/abhisek/studyplan/releases/download/v2.0.0/" + asset:
			_, _ = w.Write(archive)
		case "/abhisek/studyplan/releases/download/v2.0.0/checksums.txt":
			_, _ = w.Write([]byte(checksums))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	content := []byte("new-studyplan-binary")
	archive := buildTarGz(t, "studyplan", content)
	archiveSum := sha256.Sum256(archive)

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "studyplan")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		asset := currentAsset(t)
		server := releaseServer(t, asset, archive, hex.EncodeToString(archiveSum[:])+"  "+asset+"\n")

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		asset := currentAsset(t)
		server := releaseServer(t, asset, archive, strings.Repeat("0", 64)+"  "+asset+"\n")

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/abhisek/studyplan/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
