package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexdata/portfolio/internal/portfolio"
)

func TestWriteExportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeExport(&buf, "json"))

	var got portfolio.Content
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	if diff := cmp.Diff(portfolio.All(), got); diff != "" {
		t.Errorf("json export mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteExportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeExport(&buf, "YAML"))

	assert.Contains(t, buf.String(), "skill_categories:")
	var got portfolio.Content
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, portfolio.Projects(), got.Projects)
	assert.Equal(t, portfolio.BlogPosts(), got.BlogPosts)
}

func TestWriteExportUnknownFormat(t *testing.T) {
	err := writeExport(&bytes.Buffer{}, "toml")
	assert.ErrorIs(t, err, errUnknownFormat)
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("ALEXDATA_LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"build", "--out", "site"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		buildOut = ""
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Site built in site")
	assert.FileExists(t, filepath.Join(dir, "site", "index.html"))
	assert.FileExists(t, filepath.Join(dir, "site", "filter", "nlp", "index.html"))
}

func TestExplicitConfigMustExist(t *testing.T) {
	t.Chdir(t.TempDir())

	rootCmd.SetArgs([]string{"--config", "missing.yaml", "export"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		cfgFile = ""
	})

	assert.Error(t, rootCmd.Execute())
	_, err := os.Stat("missing.yaml")
	assert.True(t, os.IsNotExist(err))
}

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan []byte)
	go func() {
		b, _ := io.ReadAll(r)
		done <- b
	}()

	fn()
	require.NoError(t, w.Close())
	return string(<-done)
}

func writeConfig(t *testing.T, dir string) {
	t.Helper()
	cfg := "server:\n  mode: release\nlog:\n  level: info\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o644))
}

func TestExportStdoutIsPureData(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir)

	rootCmd.SetArgs([]string{"export", "--format", "json"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		exportFormat = "yaml"
	})

	var execErr error
	out := captureStdout(t, func() { execErr = rootCmd.Execute() })
	require.NoError(t, execErr)

	var got portfolio.Content
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	assert.Equal(t, portfolio.Projects(), got.Projects)
	assert.NoDirExists(t, filepath.Join(dir, "logs"))
}

func TestBuildLogsStayOffStdout(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir)
	t.Setenv("ALEXDATA_LOG_FILE", filepath.Join(t.TempDir(), "app.log"))

	rootCmd.SetArgs([]string{"build", "--out", "site"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		buildOut = ""
	})

	var execErr error
	out := captureStdout(t, func() { execErr = rootCmd.Execute() })
	require.NoError(t, execErr)
	assert.Equal(t, "Site built in site\n", out)
}
