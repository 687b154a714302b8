package analyzer

import (
	"strings"
	"unicode"
)

// Filter keeps the conformances and embeddings that pass opts and drops
// every abstraction or variant left without an edge.
func Filter(h *Hierarchy, opts Options) *Hierarchy {
	out := &Hierarchy{ModulePath: h.ModulePath}

	abstractions := make(map[string]bool)
	variants := make(map[string]bool)

	for _, c := range h.Conformances {
		a, v := c.Abstraction, c.Variant
		if !opts.IncludeStdlib && isStdlib(a.PkgPath) {
			continue
		}
		if !opts.IncludeUnexported && (isUnexported(a.Name) || isUnexported(v.Name)) {
			continue
		}
		if opts.Filter != "" && !strings.HasPrefix(a.PkgPath, opts.Filter) && !strings.HasPrefix(v.PkgPath, opts.Filter) {
			continue
		}
		out.Conformances = append(out.Conformances, c)
		abstractions[key(a.PkgPath, a.Name)] = true
		variants[key(v.PkgPath, v.Name)] = true
	}

	for _, e := range h.Embeddings {
		if !opts.IncludeUnexported && (isUnexported(e.Outer.Name) || isUnexported(e.Inner.Name)) {
			continue
		}
		if opts.Filter != "" && !strings.HasPrefix(e.Outer.PkgPath, opts.Filter) {
			continue
		}
		out.Embeddings = append(out.Embeddings, e)
		variants[key(e.Outer.PkgPath, e.Outer.Name)] = true
		variants[key(e.Inner.PkgPath, e.Inner.Name)] = true
	}

	for _, a := range h.Abstractions {
		if abstractions[key(a.PkgPath, a.Name)] {
			out.Abstractions = append(out.Abstractions, a)
		}
	}
	for _, v := range h.Variants {
		if variants[key(v.PkgPath, v.Name)] {
			out.Variants = append(out.Variants, v)
		}
	}
	return out
}

// isStdlib reports whether the first path element lacks a dot.
func isStdlib(pkgPath string) bool {
	first, _, _ := strings.Cut(pkgPath, "/")
	return !strings.Contains(first, ".")
}

func isUnexported(name string) bool {
	if name == "" {
		return true
	}
	return unicode.IsLower(rune(name[0]))
}

func key(pkgPath, name string) string {
	return pkgPath + "." + name
}
