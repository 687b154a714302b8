package analyzer

import "go/types"

// Abstraction is an interface some variant conforms to.
type Abstraction struct {
	Name       string
	PkgPath    string
	PkgName    string
	Methods    []MethodSig
	TypeObj    *types.Interface
	SourceFile string
}

// Variant is a named concrete type.
type Variant struct {
	Name       string
	PkgPath    string
	PkgName    string
	IsStruct   bool
	Methods    []MethodSig
	TypeObj    *types.Named
	SourceFile string
}

// MethodSig captures a method name and its signature string.
type MethodSig struct {
	Name      string
	Signature string
}

// Conformance records that a variant satisfies an abstraction.
type Conformance struct {
	Variant     *Variant
	Abstraction *Abstraction
	ViaPointer  bool // only *T satisfies the interface
}

// Embedding records that Outer embeds Inner, the Go stand-in for a
// subclass extending its parent.
type Embedding struct {
	Outer *Variant
	Inner *Variant
}

// Hierarchy is the full analysis output.
type Hierarchy struct {
	Abstractions []Abstraction
	Variants     []Variant
	Conformances []Conformance
	Embeddings   []Embedding
	ModulePath   string
}

// Options controls which packages are loaded and what is kept.
type Options struct {
	Patterns          []string // package patterns, default ./...
	Filter            string   // package path prefix filter
	IncludeStdlib     bool
	IncludeUnexported bool
}
