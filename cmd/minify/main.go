// Command minify writes minified copies of the web templates and static
// assets into a dist tree that the server prefers in production.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

func main() {
	var (
		srcDir = flag.String("src", ".", "Directory holding templates/ and static/")
		outDir = flag.String("out", "dist", "Output directory")
	)
	flag.Parse()

	if err := run(*srcDir, *outDir, os.Stdout); err != nil {
		log.Fatalf("Minification failed: %v", err)
	}
	fmt.Printf("Minified files are in %s\n", *outDir)
}

// mediaTypes maps the asset extensions we minify to their media type.
var mediaTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
		TemplateDelims:   html.GoTemplateDelims,
	})
	m.AddFunc("application/javascript", js.Minify)
	return m
}

// run minifies src/templates/*.html and the CSS and JS under src/static
// into out, keeping relative paths.
func run(src, out string, w io.Writer) error {
	m := newMinifier()
	for _, dir := range []string{"templates", "static"} {
		root := filepath.Join(src, dir)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			mediaType, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]
			if d.IsDir() || !ok {
				return nil
			}
			if dir == "templates" && mediaType != "text/html" {
				return nil
			}
			rel, err := filepath.Rel(src, path)
			if err != nil {
				return err
			}
			return minifyFile(m, path, filepath.Join(out, rel), mediaType, w)
		})
		if err != nil {
			return fmt.Errorf("minify %s: %w", root, err)
		}
	}
	return nil
}

func minifyFile(m *minify.M, srcPath, dstPath, mediaType string, w io.Writer) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	minified, err := m.Bytes(mediaType, src)
	if err != nil {
		return fmt.Errorf("%s: %w", srcPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(dstPath, minified, 0644); err != nil {
		return err
	}

	ratio := 0.0
	if len(src) > 0 {
		ratio = float64(len(src)-len(minified)) / float64(len(src)) * 100
	}
	fmt.Fprintf(w, "%s: %d bytes -> %d bytes (%.1f%% reduction)\n", srcPath, len(src), len(minified), ratio)
	return nil
}
