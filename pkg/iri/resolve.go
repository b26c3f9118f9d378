package iri

import "strings"

// Resolve applies the RFC 3986 section 5.3 reference resolution algorithm,
// producing the target of ref interpreted against the absolute base. Neither
// argument is mutated; components are copied into the result as-is apart
// from dot-segment removal on the path.
func Resolve(base, ref *IRI) *IRI {
	target := &IRI{}
	if ref.Scheme != "" {
		target.Scheme = ref.Scheme
		target.Authority = ref.Authority
		target.Path = removeDotSegments(ref.Path)
		target.Query, target.HasQuery = ref.Query, ref.HasQuery
	} else {
		target.Scheme = base.Scheme
		if ref.Authority != nil {
			target.Authority = ref.Authority
			target.Path = removeDotSegments(ref.Path)
			target.Query, target.HasQuery = ref.Query, ref.HasQuery
		} else {
			target.Authority = base.Authority
			if ref.Path == "" {
				target.Path = base.Path
				if ref.HasQuery {
					target.Query, target.HasQuery = ref.Query, true
				} else {
					target.Query, target.HasQuery = base.Query, base.HasQuery
				}
			} else {
				if strings.HasPrefix(ref.Path, "/") {
					target.Path = removeDotSegments(ref.Path)
				} else {
					target.Path = removeDotSegments(mergePaths(base, ref.Path))
				}
				target.Query, target.HasQuery = ref.Query, ref.HasQuery
			}
		}
	}
	target.Fragment, target.HasFragment = ref.Fragment, ref.HasFragment
	return target
}

// mergePaths implements RFC 3986 section 5.3 "merge": the reference path
// replaces everything after the last '/' of the base path.
func mergePaths(base *IRI, refPath string) string {
	if base.Authority != nil && base.Path == "" {
		return "/" + refPath
	}
	if i := strings.LastIndexByte(base.Path, '/'); i >= 0 {
		return base.Path[:i+1] + refPath
	}
	return refPath
}

// removeDotSegments implements RFC 3986 section 5.2.4.
func removeDotSegments(path string) string {
	var out []string
	in := path
	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = "/" + in[3:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = "/" + in[4:]
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case in == "/..":
			in = "/"
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case in == "." || in == "..":
			in = ""
		default:
			// move the first segment (including a leading '/') to the output
			i := 0
			if in[0] == '/' {
				i = 1
			}
			var seg string
			if j := strings.IndexByte(in[i:], '/'); j >= 0 {
				seg, in = in[:i+j], in[i+j:]
			} else {
				seg, in = in, ""
			}
			out = append(out, seg)
		}
	}
	return strings.Join(out, "")
}
