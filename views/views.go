// Package views renders HTML pages from the templates directory.
//
// Every page is executed through layout.html, which pulls in the page's
// "content" block. Output is buffered so a failed render never leaves a
// partial page on the wire.
package views

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// LayoutFile is the template every page renders through
const LayoutFile = "layout.html"

// ErrNoViewEngine is returned when a view is rendered without an engine
var ErrNoViewEngine = errors.New("no default view engine was specified")

// Engine renders named views
type Engine interface {
	Render(w io.Writer, name string, data interface{}) error
}

// Render renders a view with engine, failing when there is none
func Render(engine Engine, w io.Writer, name string, data interface{}) error {
	if engine == nil {
		return ErrNoViewEngine
	}
	return engine.Render(w, name, data)
}

// ViewNotFoundError reports a view that has no template file
type ViewNotFoundError struct {
	Name string
	Dir  string
}

func (e *ViewNotFoundError) Error() string {
	return fmt.Sprintf("failed to lookup view %q in views directory %q", e.Name, e.Dir)
}

func (e *ViewNotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// TemplateEngine renders views with html/template
type TemplateEngine struct {
	dir    string
	cache  bool
	logger zerolog.Logger

	mu         sync.RWMutex
	templates  map[string]*template.Template
	generation uint64

	// afterParse runs between parsing and caching a template; tests only
	afterParse func(name string)
}

// NewTemplateEngine creates an engine reading templates from dir.
// With cache set, parsed templates are kept until Invalidate is called.
func NewTemplateEngine(dir string, cache bool, logger zerolog.Logger) *TemplateEngine {
	return &TemplateEngine{
		dir:       dir,
		cache:     cache,
		logger:    logger,
		templates: make(map[string]*template.Template),
	}
}

// Dir returns the views directory
func (e *TemplateEngine) Dir() string {
	return e.dir
}

// Render executes the named view into w
func (e *TemplateEngine) Render(w io.Writer, name string, data interface{}) error {
	tmpl, err := e.lookup(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, LayoutFile, data); err != nil {
		return fmt.Errorf("failed to render view %q: %w", name, err)
	}

	_, err = buf.WriteTo(w)
	return err
}

// Invalidate drops every cached template
func (e *TemplateEngine) Invalidate() {
	e.mu.Lock()
	e.templates = make(map[string]*template.Template)
	e.generation++
	e.mu.Unlock()
}

func (e *TemplateEngine) lookup(name string) (*template.Template, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return nil, &ViewNotFoundError{Name: name, Dir: e.dir}
	}

	var generation uint64
	if e.cache {
		e.mu.RLock()
		tmpl, ok := e.templates[name]
		generation = e.generation
		e.mu.RUnlock()
		if ok {
			return tmpl, nil
		}
	}

	tmpl, err := e.parse(name)
	if err != nil {
		return nil, err
	}

	if e.afterParse != nil {
		e.afterParse(name)
	}

	if e.cache {
		// An invalidation during the parse means tmpl may already be stale
		e.mu.Lock()
		if e.generation == generation {
			e.templates[name] = tmpl
		}
		e.mu.Unlock()
	}

	return tmpl, nil
}

func (e *TemplateEngine) parse(name string) (*template.Template, error) {
	pagePath := filepath.Join(e.dir, name+".html")
	if _, err := os.Stat(pagePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ViewNotFoundError{Name: name, Dir: e.dir}
		}
		return nil, fmt.Errorf("failed to stat view %q: %w", name, err)
	}

	tmpl := template.New(name).Funcs(template.FuncMap{
		"add":  func(a, b int) int { return a + b },
		"sub":  func(a, b int) int { return a - b },
		"eq":   func(a, b interface{}) bool { return a == b },
		"year": func() int { return time.Now().Year() },
	})

	if _, err := tmpl.ParseFiles(filepath.Join(e.dir, LayoutFile), pagePath); err != nil {
		return nil, fmt.Errorf("failed to parse view %q: %w", name, err)
	}

	return tmpl, nil
}

// Watch invalidates the cache whenever a file in the views directory
// changes. The watcher is registered before Watch returns and is closed
// when ctx is done.
func (e *TemplateEngine) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(e.dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch views directory: %w", err)
	}

	go e.watchLoop(ctx, watcher)
	return nil
}

func (e *TemplateEngine) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				e.Invalidate()
				e.logger.Debug().Str("file", event.Name).Msg("views changed, template cache cleared")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			e.logger.Warn().Err(err).Msg("views watcher error")
		}
	}
}
