package i18n

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCatalogTranslateWithFallback(t *testing.T) {
	fixture, err := DefaultFixture()
	if err != nil {
		t.Fatalf("DefaultFixture: %v", err)
	}
	catalog := NewCatalog(fixture)

	t.Run("falls back to regional parent", func(t *testing.T) {
		got, err := catalog.Translate("es-MX", "Wrapper element")
		if err != nil {
			t.Fatalf("translate: %v", err)
		}
		if got != "Elemento contenedor" {
			t.Fatalf("expected Spanish translation, got %q", got)
		}
	})

	t.Run("falls back to key", func(t *testing.T) {
		got, err := catalog.Translate("fr", "Content is rendered from Markdown.")
		if err != nil {
			t.Fatalf("translate: %v", err)
		}
		if got != "Content is rendered from Markdown." {
			t.Fatalf("expected source string, got %q", got)
		}
	})

	t.Run("formats placeholders", func(t *testing.T) {
		got, err := catalog.Translate("fr", "Wraps %iframe tags with a %wrapper tag.",
			"%iframe", "<iframe>",
			"%wrapper", "<figure>",
		)
		if err != nil {
			t.Fatalf("translate: %v", err)
		}
		want := `Enveloppe les balises <em class="placeholder">&lt;iframe&gt;</em> dans une balise <em class="placeholder">&lt;figure&gt;</em>.`
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})
}

func TestFormatPlaceholders(t *testing.T) {
	cases := []struct {
		name     string
		template string
		args     []any
		want     string
		wantErr  bool
	}{
		{name: "no args", template: "plain", want: "plain"},
		{name: "escaped", template: "@name!", args: []any{"@name", "<b>"}, want: "&lt;b&gt;!"},
		{name: "emphasis", template: "%tag", args: []any{"%tag", "<p>"}, want: `<em class="placeholder">&lt;p&gt;</em>`},
		{name: "longest wins", template: "@a @ab", args: []any{"@a", "1", "@ab", "2"}, want: "1 2"},
		{name: "odd args", template: "x", args: []any{"@a"}, want: "x", wantErr: true},
		{name: "bad prefix", template: "x", args: []any{"!a", "1"}, want: "x", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatPlaceholders(tc.template, tc.args...)
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTranslateHelperFallsBackOnError(t *testing.T) {
	if got := Translate(nil, "en", "broken %x", "%x"); got != "broken %x" {
		t.Fatalf("expected key fallback, got %q", got)
	}
}

func TestLoaderReadsFixture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.json")
	content := `{"config":{"default_locale":"de"},"translations":{"de":{"Wrapper element":"Wrapper-Element"}}}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fixture, err := NewLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, _ := NewCatalog(fixture).Translate("en", "Wrapper element")
	if got != "Wrapper-Element" {
		t.Fatalf("expected default locale fallback, got %q", got)
	}
}

func TestLoaderRequiresPath(t *testing.T) {
	if _, err := NewLoader("").Load(context.Background()); err == nil {
		t.Fatal("expected error for empty path")
	}
}
