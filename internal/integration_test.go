package internal_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olehluchkiv/polydemo/internal/analyzer"
	"github.com/olehluchkiv/polydemo/internal/diagram"
	"github.com/olehluchkiv/polydemo/internal/resolver"
)

func testdataDir(t *testing.T, name string) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	// tests run in internal/, testdata sits one level up
	return filepath.Join(filepath.Dir(wd), "testdata", name)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func analyze(t *testing.T, name string, opts analyzer.Options) *analyzer.Hierarchy {
	t.Helper()
	dir, err := resolver.Resolve(testdataDir(t, name), testLogger())
	require.NoError(t, err)
	h, err := analyzer.Analyze(context.Background(), dir, opts, testLogger())
	require.NoError(t, err)
	return analyzer.Filter(h, opts)
}

func TestEndToEnd(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		opts     analyzer.Options
		validate func(t *testing.T, got string)
	}{
		{
			name: "multiple interfaces",
			dir:  "lessons",
			validate: func(t *testing.T, got string) {
				assert.Contains(t, got, "class robot_Mover {\n        <<interface>>")
				assert.Contains(t, got, "robot_Robot --|> robot_Mover")
				assert.Contains(t, got, "robot_Robot --|> robot_SoundMaker")
				assert.Contains(t, got, "robot_Cart --|> robot_Mover")
				assert.NotContains(t, got, "robot_Cart --|> robot_SoundMaker")
				assert.NotContains(t, got, "robot_Statue")
			},
		},
		{
			name: "default with override",
			dir:  "lessons",
			validate: func(t *testing.T, got string) {
				assert.Contains(t, got, "shape_Base --|> shape_Shape")
				assert.Contains(t, got, "shape_Circle --|> shape_Shape")
				assert.Contains(t, got, "shape_Circle *-- shape_Base : embeds")
				assert.Contains(t, got, "+Area() float64")
				// fmt.Stringer is stdlib
				assert.NotContains(t, got, "fmt_Stringer")
			},
		},
		{
			name: "stdlib included",
			dir:  "lessons",
			opts: analyzer.Options{IncludeStdlib: true},
			validate: func(t *testing.T, got string) {
				assert.Contains(t, got, "shape_Circle --|> fmt_Stringer")
			},
		},
		{
			name: "embedding without interfaces",
			dir:  "lessons",
			validate: func(t *testing.T, got string) {
				assert.Contains(t, got, "zoo_Dog *-- zoo_Animal : embeds")
				assert.NotContains(t, got, "zoo_Rock")
				assert.NotContains(t, got, "zoo_Marker")
			},
		},
		{
			name: "unexported hidden by default",
			dir:  "lessons",
			validate: func(t *testing.T, got string) {
				assert.NotContains(t, got, "zoo_parrot")
				assert.NotContains(t, got, "zoo_speaker")
			},
		},
		{
			name: "unexported included",
			dir:  "lessons",
			opts: analyzer.Options{IncludeUnexported: true},
			validate: func(t *testing.T, got string) {
				assert.Contains(t, got, "zoo_parrot --|> zoo_speaker")
			},
		},
		{
			name: "package filter",
			dir:  "lessons",
			opts: analyzer.Options{Filter: "example.com/lessons/robot"},
			validate: func(t *testing.T, got string) {
				assert.Contains(t, got, "robot_Robot --|> robot_Mover")
				assert.NotContains(t, got, "shape_")
				assert.NotContains(t, got, "zoo_")
			},
		},
		{
			name: "narrowed patterns",
			dir:  "lessons",
			opts: analyzer.Options{Patterns: []string{"./shape"}},
			validate: func(t *testing.T, got string) {
				assert.Contains(t, got, "shape_Circle --|> shape_Shape")
				assert.NotContains(t, got, "robot_")
			},
		},
		{
			name: "nothing to draw",
			dir:  "empty",
			validate: func(t *testing.T, got string) {
				assert.Equal(t, "classDiagram\n", got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := analyze(t, tt.dir, tt.opts)
			tt.validate(t, diagram.GenerateMermaid(h, diagram.Options{}))
		})
	}
}

func TestAnalyze_ModulePathAndPointerConformance(t *testing.T) {
	h := analyze(t, "lessons", analyzer.Options{})
	assert.Equal(t, "example.com/lessons", h.ModulePath)

	var cart *analyzer.Conformance
	for i := range h.Conformances {
		if h.Conformances[i].Variant.Name == "Cart" {
			cart = &h.Conformances[i]
		}
	}
	require.NotNil(t, cart)
	assert.True(t, cart.ViaPointer)
	assert.Equal(t, "Mover", cart.Abstraction.Name)
	assert.Equal(t, filepath.Join("robot", "robot.go"), cart.Variant.SourceFile)
}

func TestSections_OnePerFamily(t *testing.T) {
	h := analyze(t, "lessons", analyzer.Options{})
	sections := diagram.BuildSections(h, diagram.Options{})

	var titles []string
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"robot", "shape", "zoo"}, titles)
	assert.Contains(t, sections[0].Mermaid, "robot_Robot --|> robot_SoundMaker")
	assert.NotContains(t, sections[0].Mermaid, "shape_")
}
