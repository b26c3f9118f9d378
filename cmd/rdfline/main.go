package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rdfline/rdfline/pkg/iri"
	"github.com/rdfline/rdfline/pkg/nquads"
	"github.com/rdfline/rdfline/pkg/rdf"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "validate":
		runValidate(os.Args[2:])
	case "count":
		runCount(os.Args[2:])
	case "iri":
		if len(os.Args) < 3 {
			fmt.Println("Usage: rdfline iri <reference>")
			os.Exit(1)
		}
		runIRI(os.Args[2])
	default:
		fmt.Printf("Unknown command: %s\n", command)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: rdfline <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  validate [flags] [file] - Parse a document, report the first error")
	fmt.Println("  count [flags] [file]    - Parse a document, print statement counts")
	fmt.Println("  iri <reference>         - Parse one IRI and print its components")
	fmt.Println("Flags:")
	fmt.Println("  -format ntriples|nquads  input syntax (default nquads)")
	fmt.Println("  -generalized             accept generalized RDF")
}

// decodeFlags parses the shared flag set and returns the configured options
// plus the input reader (a file argument, or stdin).
func decodeFlags(name string, args []string) ([]nquads.Option, io.ReadCloser) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	format := fs.String("format", "nquads", "input syntax: ntriples or nquads")
	generalized := fs.Bool("generalized", false, "accept generalized RDF")
	fs.Parse(args)

	var opts []nquads.Option
	switch *format {
	case "ntriples":
		opts = append(opts, nquads.WithFormat(nquads.NTriples))
	case "nquads":
		opts = append(opts, nquads.WithFormat(nquads.NQuads))
	default:
		fmt.Printf("Unknown format: %s\n", *format)
		os.Exit(1)
	}
	if *generalized {
		opts = append(opts, nquads.WithMode(nquads.Generalized))
	}

	if fs.NArg() == 0 {
		return opts, os.Stdin
	}
	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Printf("Failed to open input: %v\n", err)
		os.Exit(1)
	}
	return opts, f
}

func runValidate(args []string) {
	opts, in := decodeFlags("validate", args)
	defer in.Close()

	d := nquads.NewDecoder(in, opts...)
	n := 0
	for {
		_, err := d.Next()
		if err == io.EOF {
			fmt.Printf("OK: %d statements\n", n)
			return
		}
		if err != nil {
			fmt.Printf("Invalid: %v\n", err)
			os.Exit(1)
		}
		n++
	}
}

func runCount(args []string) {
	opts, in := decodeFlags("count", args)
	defer in.Close()

	opts = append(opts, nquads.WithInterning())
	d := nquads.NewDecoder(in, opts...)
	statements := 0
	graphs := map[string]int{}
	for {
		q, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Parse failed: %v\n", err)
			os.Exit(1)
		}
		statements++
		if _, ok := q.Graph.(*rdf.DefaultGraph); ok {
			graphs["(default)"]++
		} else {
			graphs[q.Graph.String()]++
		}
	}
	fmt.Printf("Statements: %d\n", statements)
	for g, n := range graphs {
		fmt.Printf("  %s: %d\n", g, n)
	}
}

func runIRI(ref string) {
	parsed, err := iri.Parse(ref)
	if err != nil {
		fmt.Printf("Invalid: %v\n", err)
		os.Exit(1)
	}
	if parsed.IsAbsolute() {
		fmt.Printf("Scheme:    %s\n", parsed.Scheme)
	} else {
		fmt.Println("Relative reference")
	}
	if parsed.Authority != nil {
		fmt.Printf("Authority: %s\n", parsed.Authority)
	}
	fmt.Printf("Path:      %s\n", parsed.Path)
	if parsed.HasQuery {
		fmt.Printf("Query:     %s\n", parsed.Query)
	}
	if parsed.HasFragment {
		fmt.Printf("Fragment:  %s\n", parsed.Fragment)
	}
}
