// Package intern provides a term pool that deduplicates named and blank
// nodes, so documents that repeat the same IRIs share one allocation per
// distinct term.
package intern

import (
	"github.com/zeebo/xxh3"

	"github.com/rdfline/rdfline/pkg/rdf"
)

// Pool deduplicates terms by a 128-bit hash of their kind and lexical value.
// A Pool is not safe for concurrent use.
type Pool struct {
	terms map[xxh3.Uint128]rdf.Term
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{terms: make(map[xxh3.Uint128]rdf.Term)}
}

// NamedNode returns the pooled node for iri, creating it on first use.
func (p *Pool) NamedNode(iri string) *rdf.NamedNode {
	key := hashTerm(byte(rdf.TermTypeNamedNode), iri)
	if t, ok := p.terms[key]; ok {
		return t.(*rdf.NamedNode)
	}
	n := rdf.NewNamedNode(iri)
	p.terms[key] = n
	return n
}

// BlankNode returns the pooled node for id, creating it on first use.
func (p *Pool) BlankNode(id string) *rdf.BlankNode {
	key := hashTerm(byte(rdf.TermTypeBlankNode), id)
	if t, ok := p.terms[key]; ok {
		return t.(*rdf.BlankNode)
	}
	n := rdf.NewBlankNode(id)
	p.terms[key] = n
	return n
}

// Len returns the number of pooled terms.
func (p *Pool) Len() int {
	return len(p.terms)
}

// hashTerm keys on a kind prefix byte plus the lexical value, so a named
// node and a blank node with the same text never collide.
func hashTerm(kind byte, value string) xxh3.Uint128 {
	h := xxh3.New()
	h.Write([]byte{kind})
	h.WriteString(value)
	return h.Sum128()
}
