package rdfio

import (
	"strings"
	"testing"
)

func TestNewParser(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"application/n-triples", "application/n-triples"},
		{"text/plain", "application/n-triples"},
		{"application/n-quads", "application/n-quads"},
		{"application/n-quads; charset=utf-8", "application/n-quads"},
		{" Application/N-Quads ", "application/n-quads"},
		{"application/x-generalized-n-triples", "application/x-generalized-n-triples"},
		{"application/x-generalized-n-quads", "application/x-generalized-n-quads"},
	}
	for _, tt := range tests {
		p, err := NewParser(tt.contentType)
		if err != nil {
			t.Fatalf("NewParser(%q): %v", tt.contentType, err)
		}
		if p.ContentType() != tt.want {
			t.Errorf("NewParser(%q).ContentType() = %q, want %q", tt.contentType, p.ContentType(), tt.want)
		}
	}

	if _, err := NewParser("text/turtle"); err == nil {
		t.Error("expected error for unsupported content type")
	}
}

func TestParseByContentType(t *testing.T) {
	doc := "<http://ex/s> <http://ex/p> <http://ex/o> <http://ex/g> .\n"

	p, err := NewParser("application/n-quads")
	if err != nil {
		t.Fatal(err)
	}
	quads, err := p.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(quads) != 1 {
		t.Fatalf("expected 1 quad, got %d", len(quads))
	}

	// the same document is rejected as N-Triples: no graph label allowed
	p, err = NewParser("application/n-triples")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Parse(strings.NewReader(doc)); err == nil {
		t.Error("expected N-Triples parser to reject a graph label")
	}
}

func TestParseGeneralized(t *testing.T) {
	doc := "?s <http://ex/p> ?o .\n"

	// variables only parse under the generalized variants
	p, err := NewParser("application/x-generalized-n-triples")
	if err != nil {
		t.Fatal(err)
	}
	quads, err := p.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(quads) != 1 {
		t.Fatalf("expected 1 quad, got %d", len(quads))
	}

	p, err = NewParser("application/n-triples")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Parse(strings.NewReader(doc)); err == nil {
		t.Error("expected strict parser to reject variables")
	}
}
