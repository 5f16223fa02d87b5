package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/alexdata/portfolio/internal/config"
	"github.com/alexdata/portfolio/internal/logger"
	"github.com/alexdata/portfolio/internal/portfolio"
	"github.com/alexdata/portfolio/internal/view"
)

var ErrUnsafeOutDir = errors.New("refusing to build into this directory")

// builtEntries are the top-level names Build writes into its output
// directory. A rebuild removes only these.
var builtEntries = []string{"index.html", "filter", "api", "static"}

// Build renders the page into out so it can be hosted without the server:
// index.html for All, filter/<slug>/index.html for every other filter, the
// chart series as JSON and the embedded assets under static/. Output of a
// previous build is replaced; other files in out are left alone.
func Build(out string, site config.SiteConfig) error {
	clean, err := checkOutDir(out)
	if err != nil {
		return err
	}

	tmpl, err := Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	for _, name := range builtEntries {
		if err := os.RemoveAll(filepath.Join(clean, name)); err != nil {
			return fmt.Errorf("failed to clean %s: %w", filepath.Join(clean, name), err)
		}
	}
	if err := os.MkdirAll(clean, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", clean, err)
	}

	for _, f := range view.Filters {
		state := view.New()
		state.SelectFilter(f)
		page := NewPage(state, site)
		page.Static = true

		dst := filepath.Join(clean, "index.html")
		if f != view.All {
			dst = filepath.Join(clean, "filter", f.Slug(), "index.html")
		}
		if err := renderFile(tmpl, dst, page); err != nil {
			return err
		}
	}

	charts := map[string]any{
		"skills.json": portfolio.SkillRadar(),
		"impact.json": portfolio.ImpactSeries(),
	}
	for name, series := range charts {
		dst := filepath.Join(clean, "api", "charts", name)
		if err := writeJSON(dst, Response{Code: http.StatusOK, Message: "success", Data: series}); err != nil {
			return err
		}
	}

	if err := copyFS(staticFS, filepath.Join(clean, "static")); err != nil {
		return err
	}

	logger.Log.Info("site built", zap.String("out", clean), zap.Int("pages", len(view.Filters)))
	return nil
}

// checkOutDir refuses the working directory, the filesystem root and any
// directory that contains the working directory.
func checkOutDir(out string) (string, error) {
	if out == "" {
		return "", fmt.Errorf("%w: empty path", ErrUnsafeOutDir)
	}
	clean := filepath.Clean(out)
	abs, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", out, err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	if abs == filepath.VolumeName(abs)+string(filepath.Separator) || contains(abs, wd) {
		return "", fmt.Errorf("%w: %q", ErrUnsafeOutDir, out)
	}
	return clean, nil
}

// contains reports whether dir is path or one of its ancestors.
func contains(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func renderFile(tmpl *template.Template, dst string, page Page) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "index", page); err != nil {
		return fmt.Errorf("render %s: %w", dst, err)
	}
	return writeFile(dst, buf.Bytes())
}

func writeJSON(dst string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", dst, err)
	}
	return writeFile(dst, b)
}

func writeFile(dst string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}

// copyFS mirrors src into the directory dst.
func copyFS(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dstPath := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		return writeFile(dstPath, data)
	})
}
