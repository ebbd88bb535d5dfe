package charon

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/charon-lang/charon/source"
)

// Logger is used to print messages from the file-watching feature.
var Logger = log.New(os.Stderr, "[charon] ", 0)

// Bundle is a collection of charon sources.  It acts as input for a
// compilation.
type Bundle struct {
	strings map[string]string
	order   []string
	err     error
	watcher *fsnotify.Watcher
}

// NewBundle creates an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{strings: make(map[string]string)}
}

// WatchFiles tells the bundle to watch any files added to it and
// invalidate their parse results as they change on disk.  It should be
// called once, before adding any files.
func (b *Bundle) WatchFiles(watch bool) *Bundle {
	if watch && b.err == nil && b.watcher == nil {
		b.watcher, b.err = fsnotify.NewWatcher()
	}
	return b
}

// AddDir adds all *.cn files found within the given directory (including
// sub-directories) to the bundle.
func (b *Bundle) AddDir(root string) *Bundle {
	var err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".cn") {
			return nil
		}
		b.AddFile(path)
		return nil
	})
	if err != nil {
		b.err = err
	}
	return b
}

// AddFile adds the given source file to this bundle.
func (b *Bundle) AddFile(filename string) *Bundle {
	if b.err == nil && b.watcher != nil {
		b.err = b.watcher.Add(filename)
	}
	b.order = append(b.order, filename)
	return b
}

// AddString adds source text to this bundle under the given name.
func (b *Bundle) AddString(name, content string) *Bundle {
	b.strings[name] = content
	b.order = append(b.order, name)
	return b
}

// Compile parses every source in the bundle into a new compilation.  When
// watching is enabled the returned compilation is kept fresh: a change to
// a watched file re-reads it and invalidates its parse entry.
func (b *Bundle) Compile() (*Compilation, error) {
	if b.err != nil {
		return nil, b.err
	}

	var c = NewCompilation()
	for _, name := range b.order {
		if content, ok := b.strings[name]; ok {
			c.AddSource(source.FromString(name, content))
			continue
		}
		content, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		c.AddSource(source.New(name, content))
	}
	for _, name := range b.order {
		if _, err := c.Tree(name); err != nil {
			return nil, err
		}
	}

	if b.watcher != nil {
		go b.watch(c)
	}
	return c, nil
}

// watch reloads changed files and invalidates their parse entries.  It
// mutates the compilation from the watcher goroutine without locking;
// the compilation itself is single-threaded, so callers who both watch
// and drive queries concurrently get no consistency guarantee.
func (b *Bundle) watch(c *Compilation) {
	for {
		select {
		case ev, ok := <-b.watcher.Events:
			if !ok {
				return
			}
			// If it's a rename, the watch was removed with the old file.
			// Add it back, after a delay.
			if ev.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
				time.Sleep(10 * time.Millisecond)
				if err := b.watcher.Add(ev.Name); err != nil {
					Logger.Println(err)
					continue
				}
			}

			var content, err = os.ReadFile(ev.Name)
			if err != nil {
				Logger.Println(err)
				continue
			}
			c.AddSource(source.New(ev.Name, content))
			Logger.Printf("invalidated %s (%v)", ev.Name, ev.Op)

		case err, ok := <-b.watcher.Errors:
			if !ok {
				return
			}
			Logger.Println(err)
		}
	}
}
