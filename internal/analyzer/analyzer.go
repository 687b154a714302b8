package analyzer

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// Analyze loads the packages under dir and works out which variants conform
// to which abstractions and which variants embed one another.
func Analyze(ctx context.Context, dir string, opts Options, logger *slog.Logger) (*Hierarchy, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo | packages.NeedImports | packages.NeedModule,
		Dir:     dir,
		Context: ctx,
	}

	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	logger.Info("packages loaded", "packages_count", len(pkgs), "patterns", patterns)

	h := &Hierarchy{}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
		if h.ModulePath == "" && pkg.Module != nil {
			h.ModulePath = pkg.Module.Path
		}
	}

	seen := make(map[string]bool)
	addAbstraction := func(tn *types.TypeName, iface *types.Interface, pkgPath, pkgName string, fset *token.FileSet) {
		key := pkgPath + "." + tn.Name()
		if seen[key] {
			return
		}
		seen[key] = true
		h.Abstractions = append(h.Abstractions, Abstraction{
			Name:       tn.Name(),
			PkgPath:    pkgPath,
			PkgName:    pkgName,
			Methods:    ifaceMethods(iface),
			TypeObj:    iface,
			SourceFile: sourceFile(fset, tn.Pos(), dir),
		})
		logger.Debug("found abstraction", "name", tn.Name(), "package", pkgPath, "methods", iface.NumMethods())
	}

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			tn, named, ok := namedType(scope.Lookup(name))
			if !ok {
				continue
			}
			if iface, ok := named.Underlying().(*types.Interface); ok {
				addAbstraction(tn, iface, pkg.PkgPath, pkg.Name, pkg.Fset)
				continue
			}
			methods := typeMethods(named)
			h.Variants = append(h.Variants, Variant{
				Name:       tn.Name(),
				PkgPath:    pkg.PkgPath,
				PkgName:    pkg.Name,
				IsStruct:   isStruct(named),
				Methods:    methods,
				TypeObj:    named,
				SourceFile: sourceFile(pkg.Fset, tn.Pos(), dir),
			})
			logger.Debug("found variant", "name", tn.Name(), "package", pkg.PkgPath, "methods", len(methods))
		}

		// Interfaces from imports can still be satisfied by local types.
		for _, imp := range pkg.Imports {
			if imp.Types == nil {
				continue
			}
			iscope := imp.Types.Scope()
			for _, name := range iscope.Names() {
				tn, named, ok := namedType(iscope.Lookup(name))
				if !ok {
					continue
				}
				if iface, ok := named.Underlying().(*types.Interface); ok {
					addAbstraction(tn, iface, imp.PkgPath, imp.Name, imp.Fset)
				}
			}
		}
	}

	logger.Info("types collected", "abstractions", len(h.Abstractions), "variants", len(h.Variants))

	var msets typeutil.MethodSetCache
	for i := range h.Variants {
		v := &h.Variants[i]
		for j := range h.Abstractions {
			a := &h.Abstractions[j]
			if a.TypeObj.NumMethods() == 0 {
				continue
			}
			switch {
			case types.Implements(v.TypeObj, a.TypeObj) || hasMethods(msets.MethodSet(v.TypeObj), a.TypeObj):
				h.Conformances = append(h.Conformances, Conformance{Variant: v, Abstraction: a})
				logger.Debug("conformance", "variant", v.Name, "abstraction", a.Name, "via_pointer", false)
			case types.Implements(types.NewPointer(v.TypeObj), a.TypeObj) || hasMethods(msets.MethodSet(types.NewPointer(v.TypeObj)), a.TypeObj):
				h.Conformances = append(h.Conformances, Conformance{Variant: v, Abstraction: a, ViaPointer: true})
				logger.Debug("conformance", "variant", v.Name, "abstraction", a.Name, "via_pointer", true)
			}
		}
	}

	h.Embeddings = embeddings(h.Variants)

	logger.Info("analysis complete", "conformances", len(h.Conformances), "embeddings", len(h.Embeddings))
	return h, nil
}

func namedType(obj types.Object) (*types.TypeName, *types.Named, bool) {
	tn, ok := obj.(*types.TypeName)
	if !ok || tn.IsAlias() {
		return nil, nil, false
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, nil, false
	}
	return tn, named, true
}

// embeddings pairs every struct with the loaded variants it embeds.
func embeddings(variants []Variant) []Embedding {
	index := make(map[*types.TypeName]*Variant, len(variants))
	for i := range variants {
		index[variants[i].TypeObj.Obj()] = &variants[i]
	}

	var out []Embedding
	for i := range variants {
		outer := &variants[i]
		st, ok := outer.TypeObj.Underlying().(*types.Struct)
		if !ok {
			continue
		}
		for k := 0; k < st.NumFields(); k++ {
			f := st.Field(k)
			if !f.Embedded() {
				continue
			}
			t := f.Type()
			if p, ok := t.(*types.Pointer); ok {
				t = p.Elem()
			}
			named, ok := t.(*types.Named)
			if !ok {
				continue
			}
			if inner, ok := index[named.Obj()]; ok {
				out = append(out, Embedding{Outer: outer, Inner: inner})
			}
		}
	}
	return out
}

func ifaceMethods(iface *types.Interface) []MethodSig {
	methods := make([]MethodSig, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		methods[i] = MethodSig{Name: m.Name(), Signature: signature(m)}
	}
	return methods
}

func typeMethods(named *types.Named) []MethodSig {
	var methods []MethodSig
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		methods = append(methods, MethodSig{Name: m.Name(), Signature: signature(m)})
	}
	return methods
}

func signature(fn *types.Func) string {
	sig := fn.Type().(*types.Signature)
	var b strings.Builder
	b.WriteString(fn.Name())
	b.WriteString("(")
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(shortType(params.At(i).Type()))
	}
	b.WriteString(")")
	results := sig.Results()
	switch results.Len() {
	case 0:
	case 1:
		b.WriteString(" ")
		b.WriteString(shortType(results.At(0).Type()))
	default:
		b.WriteString(" (")
		for i := 0; i < results.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(shortType(results.At(i).Type()))
		}
		b.WriteString(")")
	}
	return b.String()
}

func shortType(t types.Type) string {
	return types.TypeString(t, func(pkg *types.Package) string {
		return pkg.Name()
	})
}

func isStruct(named *types.Named) bool {
	_, ok := named.Underlying().(*types.Struct)
	return ok
}

func hasMethods(mset *types.MethodSet, iface *types.Interface) bool {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if mset.Lookup(m.Pkg(), m.Name()) == nil {
			return false
		}
	}
	return true
}

// sourceFile resolves pos to a path relative to root.
func sourceFile(fset *token.FileSet, pos token.Pos, root string) string {
	if fset == nil || !pos.IsValid() {
		return ""
	}
	p := fset.Position(pos)
	if !p.IsValid() || p.Filename == "" {
		return ""
	}
	rel, err := filepath.Rel(root, p.Filename)
	if err != nil {
		return p.Filename
	}
	return rel
}
