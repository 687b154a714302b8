package diagram

import (
	"sort"
	"strings"

	"github.com/olehluchkiv/polydemo/internal/analyzer"
)

// Section is one family's diagram.
type Section struct {
	Title   string
	Mermaid string
}

// BuildSections splits h into one diagram per package that holds variants.
// An abstraction appears in every section whose variants conform to it.
func BuildSections(h *analyzer.Hierarchy, opts Options) []Section {
	byPkg := make(map[string]*analyzer.Hierarchy)
	group := func(pkgName string) *analyzer.Hierarchy {
		g, ok := byPkg[pkgName]
		if !ok {
			g = &analyzer.Hierarchy{ModulePath: h.ModulePath}
			byPkg[pkgName] = g
		}
		return g
	}

	for _, v := range h.Variants {
		g := group(v.PkgName)
		g.Variants = append(g.Variants, v)
	}
	for _, c := range h.Conformances {
		g := group(c.Variant.PkgName)
		g.Conformances = append(g.Conformances, c)
	}
	for _, e := range h.Embeddings {
		g := group(e.Outer.PkgName)
		g.Embeddings = append(g.Embeddings, e)
	}

	for _, g := range byPkg {
		used := make(map[string]bool)
		for _, c := range g.Conformances {
			used[key(c.Abstraction)] = true
		}
		for _, a := range h.Abstractions {
			if used[key(&a)] {
				g.Abstractions = append(g.Abstractions, a)
			}
		}
	}

	names := make([]string, 0, len(byPkg))
	for n := range byPkg {
		names = append(names, n)
	}
	sort.Strings(names)

	sections := make([]Section, 0, len(names))
	for _, n := range names {
		sections = append(sections, Section{Title: n, Mermaid: GenerateMermaid(byPkg[n], opts)})
	}
	return sections
}

// Markdown renders sections as a document with one fenced mermaid block
// per section.
func Markdown(title string, sections []Section) string {
	var b strings.Builder
	b.WriteString("# " + title + "\n")
	for _, s := range sections {
		b.WriteString("\n## " + s.Title + "\n\n```mermaid\n")
		b.WriteString(s.Mermaid)
		b.WriteString("```\n")
	}
	return b.String()
}

func key(a *analyzer.Abstraction) string {
	return a.PkgPath + "." + a.Name
}
