// Package nquads parses the N-Triples and N-Quads line-based RDF syntaxes,
// in both the strict W3C form and a generalized superset that permits any
// term kind at any position, relative IRIs, and variables.
package nquads

import (
	"bufio"
	"io"
	"strings"

	"github.com/rdfline/rdfline/internal/intern"
	"github.com/rdfline/rdfline/pkg/rdf"
)

// Option configures a Decoder or a one-shot parse.
type Option func(*config)

type config struct {
	format Format
	mode   Mode
	pool   *intern.Pool
}

// WithFormat selects the syntax; the default is NQuads.
func WithFormat(f Format) Option {
	return func(c *config) { c.format = f }
}

// WithMode selects the term-kind policy; the default is Strict.
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithInterning deduplicates named and blank nodes across statements, so
// repeated terms share one allocation.
func WithInterning() Option {
	return func(c *config) { c.pool = intern.NewPool() }
}

func newConfig(opts []Option) config {
	c := config{format: NQuads, mode: Strict}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Decoder reads a document statement by statement. Statements are separated
// by line breaks; blank lines and comment-only lines are skipped.
type Decoder struct {
	r    *bufio.Reader
	cfg  config
	line int
	err  error
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: bufio.NewReader(r), cfg: newConfig(opts)}
}

// Next returns the next statement. It returns io.EOF at the end of the
// document. After any other error the decoder is stuck: every subsequent
// call returns the same error.
func (d *Decoder) Next() (*rdf.Quad, error) {
	if d.err != nil {
		return nil, d.err
	}
	for {
		text, line, err := d.readLine()
		if err != nil {
			d.err = err
			return nil, err
		}
		if isSkippable(text) {
			continue
		}
		p := &statementParser{
			input: text, line: line,
			format: d.cfg.format, mode: d.cfg.mode, pool: d.cfg.pool,
		}
		q, err := p.parseStatement()
		if err != nil {
			d.err = err
			return nil, err
		}
		return q, nil
	}
}

// Err returns the first error encountered, if any. io.EOF is not reported.
func (d *Decoder) Err() error {
	if d.err == io.EOF {
		return nil
	}
	return d.err
}

// readLine returns the next physical line without its terminator and its
// 1-based line number. A bare '\r', a '\n', and a "\r\n" pair each end one
// line. io.EOF is returned only once the input is exhausted.
func (d *Decoder) readLine() (string, int, error) {
	var sb strings.Builder
	for {
		b, err := d.r.ReadByte()
		if err == io.EOF {
			if sb.Len() == 0 {
				return "", 0, io.EOF
			}
			d.line++
			return sb.String(), d.line, nil
		}
		if err != nil {
			return "", 0, err
		}
		switch b {
		case '\n':
			d.line++
			return sb.String(), d.line, nil
		case '\r':
			if next, err := d.r.ReadByte(); err == nil && next != '\n' {
				d.r.UnreadByte()
			}
			d.line++
			return sb.String(), d.line, nil
		default:
			sb.WriteByte(b)
		}
	}
}

// isSkippable reports whether a line holds no statement: empty, whitespace
// only, or a comment.
func isSkippable(line string) bool {
	for i := 0; i < len(line); i++ {
		if isWS(line[i]) {
			continue
		}
		return line[i] == '#'
	}
	return true
}

// ParseDocument parses a whole document and returns its statements. It
// stops at the first malformed statement.
func ParseDocument(r io.Reader, opts ...Option) ([]*rdf.Quad, error) {
	d := NewDecoder(r, opts...)
	var quads []*rdf.Quad
	for {
		q, err := d.Next()
		if err == io.EOF {
			return quads, nil
		}
		if err != nil {
			return nil, err
		}
		quads = append(quads, q)
	}
}

// ParseStatement parses input as exactly one statement. Line breaks are not
// permitted; the statement must account for the entire input.
func ParseStatement(input string, opts ...Option) (*rdf.Quad, error) {
	cfg := newConfig(opts)
	p := &statementParser{
		input: input, line: 1,
		format: cfg.format, mode: cfg.mode, pool: cfg.pool,
	}
	return p.parseStatement()
}
