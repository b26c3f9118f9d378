// Package rdfio selects a parser implementation by MIME content type.
package rdfio

import (
	"fmt"
	"io"
	"strings"

	"github.com/rdfline/rdfline/pkg/nquads"
	"github.com/rdfline/rdfline/pkg/rdf"
)

// RDFParser is the interface for parsing RDF data in various formats
type RDFParser interface {
	// Parse parses RDF data from a reader and returns quads
	Parse(reader io.Reader) ([]*rdf.Quad, error)

	// ContentType returns the MIME type this parser handles
	ContentType() string
}

// NewParser creates an RDF parser based on the content type. The generalized
// variants have no registered MIME type, so they use an x- prefixed one.
func NewParser(contentType string) (RDFParser, error) {
	// Normalize content type (remove parameters like charset)
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	switch ct {
	case "application/n-triples", "text/plain":
		return &NTriplesParser{}, nil
	case "application/n-quads":
		return &NQuadsParser{}, nil
	case "application/x-generalized-n-triples":
		return &NTriplesParser{Generalized: true}, nil
	case "application/x-generalized-n-quads":
		return &NQuadsParser{Generalized: true}, nil
	default:
		return nil, fmt.Errorf("unsupported content type: %s", contentType)
	}
}

// NTriplesParser parses N-Triples format (triples only, default graph)
type NTriplesParser struct {
	// Generalized accepts any term kind at any position
	Generalized bool
}

func (p *NTriplesParser) ContentType() string {
	if p.Generalized {
		return "application/x-generalized-n-triples"
	}
	return "application/n-triples"
}

func (p *NTriplesParser) Parse(reader io.Reader) ([]*rdf.Quad, error) {
	opts := []nquads.Option{nquads.WithFormat(nquads.NTriples)}
	if p.Generalized {
		opts = append(opts, nquads.WithMode(nquads.Generalized))
	}
	quads, err := nquads.ParseDocument(reader, opts...)
	if err != nil {
		return nil, fmt.Errorf("error parsing N-Triples: %w", err)
	}
	return quads, nil
}

// NQuadsParser parses N-Quads format (quads with optional graph)
type NQuadsParser struct {
	// Generalized accepts any term kind at any position
	Generalized bool
}

func (p *NQuadsParser) ContentType() string {
	if p.Generalized {
		return "application/x-generalized-n-quads"
	}
	return "application/n-quads"
}

func (p *NQuadsParser) Parse(reader io.Reader) ([]*rdf.Quad, error) {
	opts := []nquads.Option{nquads.WithFormat(nquads.NQuads)}
	if p.Generalized {
		opts = append(opts, nquads.WithMode(nquads.Generalized))
	}
	quads, err := nquads.ParseDocument(reader, opts...)
	if err != nil {
		return nil, fmt.Errorf("error parsing N-Quads: %w", err)
	}
	return quads, nil
}
