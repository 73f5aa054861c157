package document

import (
	"strings"
	"testing"
)

func TestParseWithFrontMatter(t *testing.T) {
	source := []byte(`---
title: Launch video
format: markdown
langcode: fr
author: ops
---
<iframe src="https://example.com/embed"></iframe>
`)

	doc, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Title != "Launch video" || doc.Format != "markdown" || doc.Langcode != "fr" {
		t.Fatalf("unexpected header %+v", doc)
	}
	if doc.Custom["author"] != "ops" {
		t.Fatalf("expected custom author, got %v", doc.Custom)
	}
	if strings.TrimSpace(doc.Body) != `<iframe src="https://example.com/embed"></iframe>` {
		t.Fatalf("unexpected body %q", doc.Body)
	}
}

func TestParseWithoutFrontMatter(t *testing.T) {
	source := []byte("<p>plain</p>\n<iframe></iframe>")

	doc, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Format != "" || doc.Title != "" {
		t.Fatalf("expected empty header, got %+v", doc)
	}
	if doc.Body != string(source) {
		t.Fatalf("expected body to equal source, got %q", doc.Body)
	}
}

func TestParseRejectsMalformedFrontMatter(t *testing.T) {
	if _, err := Parse([]byte("---\ntitle: [unterminated\n---\nbody")); err == nil {
		t.Fatal("expected parse error")
	}
}
