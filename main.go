package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/olehluchkiv/polydemo/internal/analyzer"
	"github.com/olehluchkiv/polydemo/internal/calc"
	"github.com/olehluchkiv/polydemo/internal/config"
	"github.com/olehluchkiv/polydemo/internal/diagram"
	"github.com/olehluchkiv/polydemo/internal/dispatch"
	"github.com/olehluchkiv/polydemo/internal/lesson"
	"github.com/olehluchkiv/polydemo/internal/logging"
	"github.com/olehluchkiv/polydemo/internal/resolver"
)

// streams is the process's terminal. echo repeats input lines to out when
// stdin is not a terminal.
type streams struct {
	in   io.Reader
	out  io.Writer
	err  io.Writer
	echo bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := streams{in: os.Stdin, out: os.Stdout, err: os.Stderr, echo: !isTerminal(os.Stdin)}
	code := run(ctx, os.Args[1:], s)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, s streams) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(s.err, "Error: %v\n", err)
		return 1
	}

	// Flags may follow positionals: "polydemo payment -log-level debug".
	flags, positional := reorderArgs(args)

	fs := flag.NewFlagSet("polydemo", flag.ContinueOnError)
	fs.SetOutput(s.err)
	lessonFlag := fs.String("lesson", cfg.Lesson, "lesson to run")
	list := fs.Bool("list", false, "list lessons and variant families")
	diagramOut := fs.String("diagram", "", "write a Mermaid class diagram of the module to this file (.md for one section per package, - for stdout)")
	pathFlag := fs.String("path", ".", "module to diagram")
	filter := fs.String("filter", "", "package path prefix filter for -diagram")
	includeStdlib := fs.Bool("include-stdlib", false, "include standard library interfaces in -diagram")
	includeUnexported := fs.Bool("include-unexported", false, "include unexported types and interfaces in -diagram")
	logFile := fs.String("log-file", cfg.LogFile, "log file path (empty for stderr only)")
	logLevel := fs.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintln(s.err, "Usage: polydemo [flags] [lesson]")
		fmt.Fprintln(s.err, "       polydemo [flags] <family> <variant> [attributes...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(flags); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	positional = append(positional, fs.Args()...)

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(s.err, "Invalid log level %q: %v\n", *logLevel, err)
		return 1
	}
	logger, cleanup, err := logging.Setup(s.err, *logFile, level)
	if err != nil {
		fmt.Fprintf(s.err, "Failed to setup logging: %v\n", err)
		return 1
	}
	defer cleanup()

	switch {
	case *list:
		printCatalog(s.out)
		return 0
	case *diagramOut != "":
		opts := analyzer.Options{
			Filter:            *filter,
			IncludeStdlib:     *includeStdlib,
			IncludeUnexported: *includeUnexported,
		}
		if err := writeDiagram(ctx, *pathFlag, *diagramOut, opts, s.out, logger); err != nil {
			logger.Error("diagram failed", "error", err)
			fmt.Fprintf(s.err, "Error: %v\n", err)
			return 1
		}
		return 0
	case len(positional) >= 2:
		return runCalc(positional[0], positional[1], positional[2:], s, logger)
	case len(positional) == 1:
		return runLesson(positional[0], s, logger)
	default:
		return runLesson(*lessonFlag, s, logger)
	}
}

func runLesson(name string, s streams, logger *slog.Logger) int {
	l, err := lesson.Catalog().New(name)
	if err != nil {
		logger.Error("unknown lesson", "lesson", name, "error", err)
		fmt.Fprintf(s.err, "Error: %v (try -list)\n", err)
		return 1
	}
	logger.Debug("running lesson", "lesson", l.Name(), "concept", l.Concept())
	if err := l.Run(lesson.NewConsole(s.in, s.out, s.echo)); err != nil {
		logger.Error("lesson failed", "lesson", l.Name(), "error", err)
		fmt.Fprintf(s.err, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runCalc(family, variant string, attrs []string, s streams, logger *slog.Logger) int {
	lines, err := calc.Eval(family, variant, attrs)
	switch {
	case errors.Is(err, dispatch.ErrInputFormat):
		logger.Debug("variant input rejected", "family", family, "variant", variant, "error", err)
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return 0
	case err != nil:
		logger.Error("variant lookup failed", "family", family, "variant", variant, "error", err)
		fmt.Fprintf(s.err, "Error: %v (try -list)\n", err)
		return 1
	}
	for _, l := range lines {
		fmt.Fprintln(s.out, l)
	}
	return 0
}

func printCatalog(w io.Writer) {
	fmt.Fprintln(w, "Lessons:")
	reg := lesson.Catalog()
	for _, name := range reg.Names() {
		l, err := reg.New(name)
		if err != nil {
			continue
		}
		marker := " "
		if name == lesson.Default {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %-20s %s\n", marker, name, l.Concept())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Variant families:")
	for _, f := range calc.Families() {
		fmt.Fprintf(w, "   %-20s %s\n", f.Name(), strings.Join(f.Variants(), ", "))
	}
}

func writeDiagram(ctx context.Context, path, out string, opts analyzer.Options, stdout io.Writer, logger *slog.Logger) error {
	dir, err := resolver.Resolve(path, logger)
	if err != nil {
		return err
	}
	h, err := analyzer.Analyze(ctx, dir, opts, logger)
	if err != nil {
		return err
	}
	h = analyzer.Filter(h, opts)
	logger.Info("hierarchy filtered",
		"abstractions", len(h.Abstractions), "variants", len(h.Variants),
		"conformances", len(h.Conformances), "embeddings", len(h.Embeddings))

	var content string
	if strings.EqualFold(filepath.Ext(out), ".md") {
		dopts := diagram.DefaultOptions()
		dopts.IncludeInit = false
		title := h.ModulePath
		if title == "" {
			title = filepath.Base(dir)
		}
		content = diagram.Markdown(title, diagram.BuildSections(h, dopts))
	} else {
		content = diagram.GenerateMermaid(h, diagram.DefaultOptions())
	}

	if out == "-" {
		_, err := io.WriteString(stdout, content)
		return err
	}
	if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	logger.Info("diagram written", "path", out)
	return nil
}

// reorderArgs separates flags from positional arguments so flags can appear
// anywhere. A value flag without "=" consumes the next argument.
func reorderArgs(args []string) (flags, positional []string) {
	valueFlags := map[string]bool{
		"-lesson": true, "-diagram": true, "-path": true, "-filter": true,
		"-log-file": true, "-log-level": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			flags = append(flags, arg)
			name := "-" + strings.TrimLeft(arg, "-")
			if !strings.Contains(arg, "=") && valueFlags[name] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return flags, positional
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
