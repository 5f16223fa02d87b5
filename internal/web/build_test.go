package web

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexdata/portfolio/internal/config"
	"github.com/alexdata/portfolio/internal/portfolio"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestBuildWritesStaticSite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	site := config.SiteConfig{Title: "Alex", BaseURL: "https://alexdata.example/"}

	require.NoError(t, Build(out, site))

	index := readFile(t, filepath.Join(out, "index.html"))
	assert.Equal(t, 3, projectCards(index))
	assert.Contains(t, index, `data-static="true"`)
	assert.NotContains(t, index, "hx-get")
	assert.NotContains(t, index, "hx-post")
	assert.Contains(t, index, "TechFlow Systems")
	assert.Contains(t, index, "GPA: 3.9/4.0")
	assert.Contains(t, index, `id="contact-form"`)
	assert.Contains(t, index, `href="https://alexdata.example/filter/nlp/#projects"`)
	assert.Contains(t, index, "https://alexdata.example/static/app.js")

	nlp := readFile(t, filepath.Join(out, "filter", "nlp", "index.html"))
	assert.Equal(t, 1, projectCards(nlp))
	assert.Contains(t, nlp, `data-project-id="3"`)

	eda := readFile(t, filepath.Join(out, "filter", "eda", "index.html"))
	assert.Equal(t, 0, projectCards(eda))

	assert.FileExists(t, filepath.Join(out, "filter", "deep-learning", "index.html"))
	assert.FileExists(t, filepath.Join(out, "static", "app.js"))
	assert.FileExists(t, filepath.Join(out, "static", "app.css"))
	assert.FileExists(t, filepath.Join(out, "static", "favicon.svg"))

	var radar envelope[[]portfolio.RadarPoint]
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(out, "api", "charts", "skills.json"))), &radar))
	assert.Equal(t, portfolio.SkillRadar(), radar.Data)
}

func TestBuildReplacesPreviousOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	stale := filepath.Join(out, "filter", "retired", "index.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))
	kept := filepath.Join(out, "CNAME")
	require.NoError(t, os.WriteFile(kept, []byte("alexdata.example"), 0o644))

	require.NoError(t, Build(out, config.SiteConfig{}))
	assert.NoFileExists(t, stale)
	assert.FileExists(t, kept)
	assert.FileExists(t, filepath.Join(out, "index.html"))
}

func TestBuildRefusesUnsafeDirs(t *testing.T) {
	root := t.TempDir()
	work := filepath.Join(root, "work")
	require.NoError(t, os.MkdirAll(work, 0o755))
	t.Chdir(work)
	sibling := filepath.Join(root, "notes.txt")
	require.NoError(t, os.WriteFile(sibling, []byte("keep"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)

	for _, out := range []string{"", ".", "/", "./", "..", "../", "../..", wd, filepath.Dir(wd)} {
		err := Build(out, config.SiteConfig{})
		assert.ErrorIs(t, err, ErrUnsafeOutDir, out)
	}
	assert.FileExists(t, sibling)
	assert.NoFileExists(t, filepath.Join(work, "index.html"))
}

func TestBuildIntoSiblingDir(t *testing.T) {
	root := t.TempDir()
	work := filepath.Join(root, "work")
	require.NoError(t, os.MkdirAll(work, 0o755))
	t.Chdir(work)

	require.NoError(t, Build("../site", config.SiteConfig{}))
	assert.FileExists(t, filepath.Join(root, "site", "index.html"))
}

func TestContains(t *testing.T) {
	sep := string(filepath.Separator)
	assert.True(t, contains(sep+"a", sep+"a"))
	assert.True(t, contains(sep+"a", sep+filepath.Join("a", "b")))
	assert.False(t, contains(sep+filepath.Join("a", "b"), sep+"a"))
	assert.False(t, contains(sep+"a", sep+"ab"))
	assert.False(t, contains(sep+filepath.Join("a", "..b"), sep+"a"))
}

func TestMarkdown(t *testing.T) {
	got := string(markdown("over **4 years**"))
	assert.Equal(t, "<p>over <strong>4 years</strong></p>", strings.TrimSpace(got))

	got = string(markdown("<script>alert(1)</script>"))
	assert.NotContains(t, got, "<script>")
}

func TestDict(t *testing.T) {
	m, err := dict("Title", "About", "Subtitle", 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Title": "About", "Subtitle": 1}, m)

	_, err = dict("Title")
	assert.Error(t, err)
	_, err = dict(1, "x")
	assert.Error(t, err)
}
