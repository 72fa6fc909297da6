// Package catalog assembles the list of items a session starts with.
package catalog

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/conorfennell/learntrack/internal/domain"
	"github.com/conorfennell/learntrack/internal/itemid"
	"github.com/conorfennell/learntrack/internal/parser"
	"github.com/conorfennell/learntrack/internal/seed"
)

// Result is the outcome of loading a catalog.
type Result struct {
	Items []domain.LearningItem
	// Errors holds per-file problems that did not stop the load.
	Errors []error
	// FromSeed is true when the built-in sample items were used.
	FromSeed bool
}

// Load reads every *.md file under dir and returns the items they define, in
// file order. Item IDs are derived from content, and later duplicates are
// dropped. An empty dir, or a dir without any valid items, yields the seed
// items instead. Only a failure to walk dir is returned as an error.
func Load(dir string) (Result, error) {
	if dir == "" {
		slog.Info("No items directory configured, using sample items")
		return Result{Items: seed.Items(), FromSeed: true}, nil
	}

	var res Result
	seen := make(map[string]string)

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		fileItems, parseErr := parser.ParseFile(path)
		if parseErr != nil {
			res.Errors = append(res.Errors, fmt.Errorf("parsing %s: %w", path, parseErr))
		}
		for _, item := range fileItems {
			item.ID = itemid.Hash(item)
			if first, dup := seen[item.ID]; dup {
				slog.Warn("Duplicate item skipped", "id", item.ID, "title", item.Title, "path", path, "first_seen", first)
				continue
			}
			seen[item.ID] = path
			res.Items = append(res.Items, item)
		}
		return nil
	})
	if walkErr != nil {
		return Result{}, fmt.Errorf("failed to walk items directory %s: %w", dir, walkErr)
	}

	for _, err := range res.Errors {
		slog.Warn("Item file problem", "error", err)
	}

	if len(res.Items) == 0 {
		slog.Info("No items found, using sample items", "path", dir)
		res.Items = seed.Items()
		res.FromSeed = true
		return res, nil
	}

	slog.Info("Catalog loaded",
		"path", dir,
		"items", len(res.Items),
		"errors", len(res.Errors),
	)
	return res, nil
}
