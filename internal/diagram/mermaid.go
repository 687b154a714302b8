package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olehluchkiv/polydemo/internal/analyzer"
)

// Options controls Mermaid diagram generation.
type Options struct {
	MaxMethodsPerBox   int  // 0 means unlimited
	IncludeInit        bool // emit the %%{init:}%% directive for standalone .mmd files
	ShowVariantMethods bool
}

// DefaultOptions returns the defaults used by the CLI.
func DefaultOptions() Options {
	return Options{MaxMethodsPerBox: 5, IncludeInit: true}
}

// GenerateMermaid renders h as a Mermaid classDiagram. Abstractions get the
// <<interface>> stereotype, conformance is drawn as --|> and embedding as *--.
func GenerateMermaid(h *analyzer.Hierarchy, opts Options) string {
	var b strings.Builder

	abstractions := make([]analyzer.Abstraction, len(h.Abstractions))
	copy(abstractions, h.Abstractions)
	sort.Slice(abstractions, func(i, j int) bool {
		return NodeID(abstractions[i].PkgName, abstractions[i].Name) < NodeID(abstractions[j].PkgName, abstractions[j].Name)
	})

	variants := make([]analyzer.Variant, len(h.Variants))
	copy(variants, h.Variants)
	sort.Slice(variants, func(i, j int) bool {
		return NodeID(variants[i].PkgName, variants[i].Name) < NodeID(variants[j].PkgName, variants[j].Name)
	})

	var edges []string
	for _, c := range h.Conformances {
		edges = append(edges, fmt.Sprintf("    %s --|> %s",
			NodeID(c.Variant.PkgName, c.Variant.Name),
			NodeID(c.Abstraction.PkgName, c.Abstraction.Name)))
	}
	for _, e := range h.Embeddings {
		edges = append(edges, fmt.Sprintf("    %s *-- %s : embeds",
			NodeID(e.Outer.PkgName, e.Outer.Name),
			NodeID(e.Inner.PkgName, e.Inner.Name)))
	}
	sort.Strings(edges)

	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram")
	empty := len(abstractions) == 0 && len(variants) == 0
	if !empty {
		b.WriteString("\n    direction LR\n")
		b.WriteString("    classDef interfaceStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold\n")
		b.WriteString("    classDef variantStyle fill:#4a9c6d,stroke:#357a50,color:#fff,stroke-width:2px")
	}

	for _, a := range abstractions {
		b.WriteString("\n")
		writeAbstraction(&b, a, opts)
	}
	if len(abstractions) > 0 && len(variants) > 0 {
		b.WriteString("\n")
	}
	for _, v := range variants {
		b.WriteString("\n")
		writeVariant(&b, v, opts)
	}

	if !empty && len(edges) > 0 {
		b.WriteString("\n")
	}
	for _, e := range edges {
		b.WriteString("\n")
		b.WriteString(e)
	}

	if !empty {
		b.WriteString("\n")
		for _, a := range abstractions {
			fmt.Fprintf(&b, "\n    cssClass \"%s\" interfaceStyle", NodeID(a.PkgName, a.Name))
		}
		for _, v := range variants {
			fmt.Fprintf(&b, "\n    cssClass \"%s\" variantStyle", NodeID(v.PkgName, v.Name))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// SanitizeSignature removes characters Mermaid treats as markup in class
// labels.
func SanitizeSignature(sig string) string {
	sig = strings.ReplaceAll(sig, "<-chan", "chan")
	// bare "interface" clashes with the <<interface>> stereotype
	sig = strings.ReplaceAll(sig, "interface{}", "any")
	sig = strings.ReplaceAll(sig, "{}", "")
	return sig
}

// NodeID builds a Mermaid-safe identifier from a package and type name.
func NodeID(pkgName, name string) string {
	return strings.NewReplacer("/", "_", ".", "_", "-", "_").Replace(pkgName + "_" + name)
}

func writeAbstraction(b *strings.Builder, a analyzer.Abstraction, opts Options) {
	fmt.Fprintf(b, "    class %s {\n", NodeID(a.PkgName, a.Name))
	b.WriteString("        <<interface>>\n")
	if a.SourceFile != "" {
		b.WriteString("        %% file: " + a.SourceFile + "\n")
	}
	writeMethods(b, a.Methods, opts)
	b.WriteString("    }")
}

// writeVariant omits methods unless asked; they already appear on the
// interfaces the variant conforms to.
func writeVariant(b *strings.Builder, v analyzer.Variant, opts Options) {
	fmt.Fprintf(b, "    class %s {\n", NodeID(v.PkgName, v.Name))
	if v.SourceFile != "" {
		b.WriteString("        %% file: " + v.SourceFile + "\n")
	}
	if opts.ShowVariantMethods {
		writeMethods(b, v.Methods, opts)
	}
	b.WriteString("    }")
}

func writeMethods(b *strings.Builder, methods []analyzer.MethodSig, opts Options) {
	limit := len(methods)
	truncated := false
	if opts.MaxMethodsPerBox > 0 && limit > opts.MaxMethodsPerBox {
		limit = opts.MaxMethodsPerBox
		truncated = true
	}
	for _, m := range methods[:limit] {
		fmt.Fprintf(b, "        +%s\n", SanitizeSignature(m.Signature))
	}
	if truncated {
		b.WriteString("        ...\n")
	}
}
