package main

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCSSMinification(t *testing.T) {
	input := `
		body {
			color: #fff;
			margin: 0  ;
		}
	`
	got, err := newMinifier().String("text/css", input)
	if err != nil {
		t.Fatalf("CSS minification failed: %v", err)
	}
	if want := `body{color:#fff;margin:0}`; got != want {
		t.Errorf("CSS minification mismatch:\nGot:      %q\nExpected: %q", got, want)
	}
}

func TestJSMinification(t *testing.T) {
	input := `
		function add(a, b) {
			return a + b;
		}
	`
	got, err := newMinifier().String("application/javascript", input)
	if err != nil {
		t.Fatalf("JS minification failed: %v", err)
	}
	if want := `function add(e,t){return e+t}`; got != want {
		t.Errorf("JS minification mismatch:\nGot:      %q\nExpected: %q", got, want)
	}
}

func TestHTMLMinification_KeepsTemplateActions(t *testing.T) {
	input := `<div class="word">
		<p>   Adivinhe   a   palavra   </p>
		{{ range .game.Slots }}<span>{{ .Value }}</span>{{ end }}
	</div>`
	got, err := newMinifier().String("text/html", input)
	if err != nil {
		t.Fatalf("HTML minification failed: %v", err)
	}
	for _, want := range []string{"{{ range .game.Slots }}", "{{ .Value }}", "{{ end }}"} {
		if !strings.Contains(got, want) {
			t.Errorf("minified HTML lost %q: %q", want, got)
		}
	}
	if len(got) >= len(input) {
		t.Errorf("HTML was not reduced: %d -> %d bytes", len(input), len(got))
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRun(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "dist")
	writeFile(t, filepath.Join(src, "templates", "page.html"), "<p>  hi  </p>\n")
	writeFile(t, filepath.Join(src, "templates", "notes.txt"), "skip me")
	writeFile(t, filepath.Join(src, "static", "style.css"), "body {\n  margin: 0 ;\n}\n")
	writeFile(t, filepath.Join(src, "static", "app.js"), "var answer = 42;\n")
	writeFile(t, filepath.Join(src, "static", "logo.png"), "PNG")

	var log bytes.Buffer
	if err := run(src, out, &log); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	css, err := os.ReadFile(filepath.Join(out, "static", "style.css"))
	if err != nil || string(css) != "body{margin:0}" {
		t.Errorf("dist style.css = %q, %v", css, err)
	}
	for _, rel := range []string{"templates/page.html", "static/app.js"} {
		if _, err := os.Stat(filepath.Join(out, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	for _, rel := range []string{"templates/notes.txt", "static/logo.png"} {
		if _, err := os.Stat(filepath.Join(out, rel)); err == nil {
			t.Errorf("%s should not be written", rel)
		}
	}
	if got := strings.Count(log.String(), "reduction"); got != 3 {
		t.Errorf("reported %d files, want 3:\n%s", got, log.String())
	}
}

func TestRun_MissingSource(t *testing.T) {
	if err := run(filepath.Join(t.TempDir(), "nope"), t.TempDir(), &bytes.Buffer{}); err == nil {
		t.Error("run with a missing source directory succeeded")
	}
}

func TestRun_ProjectTemplatesStillParse(t *testing.T) {
	out := t.TempDir()
	if err := run(filepath.Join("..", ".."), out, &bytes.Buffer{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	tmpl, err := template.ParseGlob(filepath.Join(out, "templates", "*.html"))
	if err != nil {
		t.Fatalf("minified templates do not parse: %v", err)
	}
	for _, name := range []string{"index.html", "game-content"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("minified templates lack %q", name)
		}
	}

	src, err := os.Stat(filepath.Join("..", "..", "templates", "game.html"))
	if err != nil {
		t.Fatal(err)
	}
	dst, err := os.Stat(filepath.Join(out, "templates", "game.html"))
	if err != nil {
		t.Fatal(err)
	}
	if dst.Size() >= src.Size() {
		t.Errorf("game.html was not reduced: %d -> %d bytes", src.Size(), dst.Size())
	}
}
