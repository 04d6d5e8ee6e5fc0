package vendoring

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLicense(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestFindLicense_PlainName(t *testing.T) {
	dir := t.TempDir()
	writeLicense(t, dir, "LICENSE", "MIT License")

	got, err := FindLicense(dir)

	require.NoError(t, err)
	assert.Equal(t, "MIT License", got)
}

func TestFindLicense_CaseInsensitiveWithExtension(t *testing.T) {
	dir := t.TempDir()
	writeLicense(t, dir, "license.txt", "BSD License")

	got, err := FindLicense(dir)

	require.NoError(t, err)
	assert.Equal(t, "BSD License", got)
}

func TestFindLicense_IgnoresOtherStems(t *testing.T) {
	dir := t.TempDir()
	writeLicense(t, dir, "LICENSES.md", "not it")
	writeLicense(t, dir, "README.md", "docs")

	_, err := FindLicense(dir)

	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFindLicense_EmptyDir(t *testing.T) {
	_, err := FindLicense(t.TempDir())

	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRenderNotice_CommandLineOpening(t *testing.T) {
	got, err := renderNotice("manifestval vendor -O ./out", "validate.go", "TOOL LICENSE", "COMPILER LICENSE")

	require.NoError(t, err)
	assert.Contains(t, got, "manifestval vendor -O ./out")
	assert.Contains(t, got, "`validate.go`")
	assert.Contains(t, got, "TOOL LICENSE")
	assert.Contains(t, got, "COMPILER LICENSE")
	assert.NotContains(t, got, "vendoring API")
}

func TestRenderNotice_APIOpening(t *testing.T) {
	got, err := renderNotice("", "validate.go", "TOOL LICENSE", "COMPILER LICENSE")

	require.NoError(t, err)
	assert.Contains(t, got, "vendoring API")
	assert.NotContains(t, got, "following command")
}

func TestNewAttributionMissingError(t *testing.T) {
	err := NewAttributionMissingError("schema compiler", "/tmp/nowhere")

	assert.Equal(t, "schema compiler", err.Dependency)
	assert.Contains(t, err.Error(), "schema compiler")
	assert.Contains(t, err.Error(), "/tmp/nowhere")

	var target *AttributionMissingError
	assert.True(t, errors.As(err, &target))
}
