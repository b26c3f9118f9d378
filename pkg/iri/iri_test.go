package iri

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositive(t *testing.T) {
	tests := []struct {
		input     string
		absolute  bool
		scheme    string
		authority string // rendered authority, "" when absent
		hasAuth   bool
		path      string
		query     string
		hasQuery  bool
		fragment  string
		hasFrag   bool
	}{
		{input: "http:", absolute: true, scheme: "http"},
		{input: "http://example.org", absolute: true, scheme: "http", authority: "example.org", hasAuth: true},
		{input: "http://127.0.0.1", absolute: true, scheme: "http", authority: "127.0.0.1", hasAuth: true},
		{input: "http://[::]", absolute: true, scheme: "http", authority: "[::]", hasAuth: true},
		{input: "http://%0D", absolute: true, scheme: "http", authority: "%0D", hasAuth: true},
		{input: "http://example.org/", absolute: true, scheme: "http", authority: "example.org", hasAuth: true, path: "/"},
		{input: "http://éxample.org/", absolute: true, scheme: "http", authority: "éxample.org", hasAuth: true, path: "/"},
		{input: "http://user:pw@example.org:1234/", absolute: true, scheme: "http", authority: "user:pw@example.org:1234", hasAuth: true, path: "/"},
		{input: "http://example.org/foo/bar/baz", absolute: true, scheme: "http", authority: "example.org", hasAuth: true, path: "/foo/bar/baz"},
		{input: "http://example.org/foo/bar/", absolute: true, scheme: "http", authority: "example.org", hasAuth: true, path: "/foo/bar/"},
		{input: "http://example.org/foo/.././/bar", absolute: true, scheme: "http", authority: "example.org", hasAuth: true, path: "/foo/.././/bar"},
		{input: "http://example.org/!$&'()*+,=:@/foo%0D", absolute: true, scheme: "http", authority: "example.org", hasAuth: true, path: "/!$&'()*+,=:@/foo%0D"},
		{input: "http://example.org/?abc", absolute: true, scheme: "http", authority: "example.org", hasAuth: true, path: "/", query: "abc", hasQuery: true},
		{input: "http://example.org/?!$&'()*+,=:@/?\ue000", absolute: true, scheme: "http", authority: "example.org", hasAuth: true, path: "/", query: "!$&'()*+,=:@/?\ue000", hasQuery: true},
		{input: "http://example.org/#def", absolute: true, scheme: "http", authority: "example.org", hasAuth: true, path: "/", fragment: "def", hasFrag: true},
		{input: "http://example.org/?abc#def", absolute: true, scheme: "http", authority: "example.org", hasAuth: true, path: "/", query: "abc", hasQuery: true, fragment: "def", hasFrag: true},
		{input: "tag:abc/def", absolute: true, scheme: "tag", path: "abc/def"},
		{input: "tag:", absolute: true, scheme: "tag"},
		{input: "foo", path: "foo"},
		{input: "..", path: ".."},
		{input: "//example.org", authority: "example.org", hasAuth: true},
		{input: "?", hasQuery: true},
		{input: "#", hasFrag: true},
		{input: "?#", hasQuery: true, hasFrag: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.absolute, parsed.IsAbsolute())
			assert.Equal(t, tt.scheme, parsed.Scheme)
			if tt.hasAuth {
				require.NotNil(t, parsed.Authority)
				assert.Equal(t, tt.authority, parsed.Authority.String())
			} else {
				assert.Nil(t, parsed.Authority)
			}
			assert.Equal(t, tt.path, parsed.Path)
			assert.Equal(t, tt.hasQuery, parsed.HasQuery)
			assert.Equal(t, tt.query, parsed.Query)
			assert.Equal(t, tt.hasFrag, parsed.HasFragment)
			assert.Equal(t, tt.fragment, parsed.Fragment)

			// reassembly must reproduce the input byte for byte
			assert.Equal(t, tt.input, parsed.String())
		})
	}
}

func TestParseNegative(t *testing.T) {
	inputs := []string{
		"http://[/",
		"http://a/[",
		"http://a/]",
		"http://a/|",
		"http://a/ ",
		"http://a/\ue000", // iprivate is query-only
		"http://a b",
		"[",
		"]",
		"|",
		" ",
		"\ue000",
		":foo",
		"1:2",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			var perr *ParseError
			require.True(t, errors.As(err, &perr))
		})
	}
}

func TestParseErrorOffset(t *testing.T) {
	_, err := Parse("http://a/ x")
	require.Error(t, err)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ErrMalformedIRI, perr.Kind)
	assert.Equal(t, 9, perr.Offset)
}

func TestParseWholeInputRequired(t *testing.T) {
	// a valid prefix followed by junk is not accepted
	_, err := Parse("http://example.org/path^rest")
	require.Error(t, err)
}

func TestDecompositionRoundTrip(t *testing.T) {
	// parse → String → parse must reach a fixed point
	inputs := []string{
		"http://example.org/a/b?q#f",
		"//host:8080/p",
		"mailto:someone@example.org",
		"foo/bar?",
		"http://a:",
	}
	for _, input := range inputs {
		first, err := Parse(input)
		require.NoError(t, err, input)
		second, err := Parse(first.String())
		require.NoError(t, err, input)
		assert.Equal(t, first, second, input)
	}
}

func TestClassifierBoundaries(t *testing.T) {
	assert.False(t, isUCSChar(0x9F))
	assert.True(t, isUCSChar(0xA0))
	assert.True(t, isUCSChar(0xD7FF))
	assert.False(t, isUCSChar(0xD800))
	assert.False(t, isUCSChar(0xF8FF))
	assert.True(t, isUCSChar(0xF900))
	assert.True(t, isUCSChar(0xFFEF))
	assert.False(t, isUCSChar(0xFFF0))
	assert.True(t, isUCSChar(0x10000))
	assert.False(t, isUCSChar(0xE0FFF))
	assert.True(t, isUCSChar(0xE1000))
	assert.True(t, isUCSChar(0xEFFFD))
	assert.False(t, isUCSChar(0xEFFFE))

	assert.True(t, isIPrivate(0xE000))
	assert.True(t, isIPrivate(0xF8FF))
	assert.False(t, isIPrivate(0xF900))
	assert.True(t, isIPrivate(0xF0000))
	assert.True(t, isIPrivate(0x10FFFD))
	assert.False(t, isIPrivate(0xA0))
}
