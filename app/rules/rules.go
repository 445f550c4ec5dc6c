// Package rules loads the heuristic ruleset from a JSON file and reloads it when the file changes.
package rules

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/go-pkgz/fileutils"

	"github.com/GregHolmes/discord-bot-spam-detector/lib/heuristic"
)

// Watcher keeps the scorer of a heuristic.Holder in sync with the rules file
type Watcher struct {
	path   string
	holder *heuristic.Holder
}

// NewWatcher makes a Watcher for the rules file, the file must exist
func NewWatcher(path string, holder *heuristic.Holder) (*Watcher, error) {
	if holder == nil {
		return nil, fmt.Errorf("holder is nil")
	}
	if !fileutils.IsFile(path) {
		return nil, fmt.Errorf("rules file %s not found", path)
	}
	return &Watcher{path: path, holder: holder}, nil
}

// Load reads the rules file and replaces the holder's scorer.
// On error the holder keeps the previous scorer.
func (w *Watcher) Load() error {
	data, err := readFile(w.path)
	if err != nil {
		return err
	}
	return w.apply(data)
}

// Run watches the rules file and reloads it on every change until the context is canceled
func (w *Watcher) Run(ctx context.Context) error {
	return watch(ctx, w.path, w.apply)
}

func (w *Watcher) apply(r io.Reader) error {
	rules, err := heuristic.LoadRules(r)
	if err != nil {
		return fmt.Errorf("failed to parse rules %s: %w", w.path, err)
	}
	scorer, err := heuristic.NewScorer(rules)
	if err != nil {
		return fmt.Errorf("failed to compile rules %s: %w", w.path, err)
	}
	if err := w.holder.Set(scorer); err != nil {
		return err
	}
	active := w.holder.Scorer().Rules()
	log.Printf("[INFO] heuristic rules loaded from %s, %d keywords, %d high-weight phrases, %d promo patterns",
		w.path, len(active.Keywords), len(active.HighWeight), len(active.Promo))
	return nil
}

// watch starts watching file for changes and calls onDataChange callback
func watch(ctx context.Context, path string, onDataChange func(io.Reader) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err = watcher.Add(path); err != nil {
		return fmt.Errorf("failed to add %s to watcher: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("[INFO] stopping watcher for %s, %v", path, ctx.Err())
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			data, e := readFile(path)
			if e != nil {
				log.Printf("[WARN] failed to read updated file %s: %v", path, e)
				continue
			}
			if e = onDataChange(data); e != nil {
				log.Printf("[WARN] failed to load updated file %s, previous rules kept: %v", path, e)
			}
		case e, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[WARN] watcher error: %v", e)
		}
	}
}

func readFile(path string) (io.Reader, error) {
	data, err := os.ReadFile(path) //nolint gosec // path is controlled by the app
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return bytes.NewReader(data), nil
}
