package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Resolve turns a local path into the root directory of the Go module that
// contains it. If no go.mod sits at or above the path, the shallowest one
// below it is used.
func Resolve(input string, logger *slog.Logger) (string, error) {
	absPath, err := filepath.Abs(input)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", absPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", absPath)
	}

	root, err := findModuleRoot(absPath)
	if err != nil {
		root, err = findModuleRootInTree(absPath)
		if err != nil {
			return "", err
		}
	}

	logger.Info("resolved module root", "input", input, "module_root", root)
	return root, nil
}

// findModuleRoot walks up from dir to the nearest go.mod.
func findModuleRoot(dir string) (string, error) {
	current := dir
	for {
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no go.mod found in %s or any parent directory", dir)
		}
		current = parent
	}
}

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	"testdata":     true,
}

// findModuleRootInTree returns the shallowest directory under root holding a
// go.mod. Ties at the same depth go to the lexically first path.
func findModuleRootInTree(root string) (string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == "go.mod" {
			found = append(found, filepath.Dir(path))
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("walking %s: %w", root, err)
	}
	if len(found) == 0 {
		return "", fmt.Errorf("no go.mod found in %s or its subdirectories", root)
	}

	depth := func(p string) int { return strings.Count(p, string(filepath.Separator)) }
	sort.Slice(found, func(i, j int) bool {
		if di, dj := depth(found[i]), depth(found[j]); di != dj {
			return di < dj
		}
		return found[i] < found[j]
	})
	return found[0], nil
}
