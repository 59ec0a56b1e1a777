// Copyright 2025-2026 The TorchSR Authors. SPDX-License-Identifier: Apache-2.0

package datautil

import (
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := path.Join(tmpDir, "present.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0666))
	assert.True(t, FileExists(filePath))
	assert.True(t, FileExists(tmpDir))
	assert.False(t, FileExists(path.Join(tmpDir, "absent.txt")))
}

func TestReplaceTildeInDir(t *testing.T) {
	assert.Equal(t, "/tmp/data", ReplaceTildeInDir("/tmp/data"))
	assert.Equal(t, "", ReplaceTildeInDir(""))
	expanded := ReplaceTildeInDir("~/data")
	assert.NotEqual(t, "~/data", expanded)
	assert.True(t, path.IsAbs(expanded))
}

func TestValidateMD5(t *testing.T) {
	tmpDir := t.TempDir()
	contents := []byte("super-resolution")
	filePath := path.Join(tmpDir, "archive.zip")
	require.NoError(t, os.WriteFile(filePath, contents, 0666))

	sum := md5.Sum(contents)
	require.NoError(t, ValidateMD5(filePath, hex.EncodeToString(sum[:])))

	// Upper-case checksums are accepted too.
	require.NoError(t, os.WriteFile(filePath, contents, 0666))
	require.NoError(t, ValidateMD5(filePath, strings.ToUpper(hex.EncodeToString(sum[:]))))

	// A wrong checksum must fail and remove the file.
	require.NoError(t, os.WriteFile(filePath, contents, 0666))
	err := ValidateMD5(filePath, "00000000000000000000000000000000")
	require.Error(t, err)
	assert.False(t, FileExists(filePath))
}

func TestDownloadIfMissing(t *testing.T) {
	contents := []byte("fake archive bytes")
	sum := md5.Sum(contents)
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write(contents)
	}))
	defer server.Close()

	tmpDir := t.TempDir()
	filePath := path.Join(tmpDir, "downloads", "archive.zip")
	require.NoError(t, DownloadIfMissing(server.URL+"/archive.zip", filePath, hex.EncodeToString(sum[:])))
	require.Equal(t, int64(1), requests.Load())
	got, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, contents, got)

	// Second call must not hit the server again.
	require.NoError(t, DownloadIfMissing(server.URL+"/archive.zip", filePath, hex.EncodeToString(sum[:])))
	require.Equal(t, int64(1), requests.Load())
}
