package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"

	"github.com/hupe1980/quickspot"
	"github.com/hupe1980/quickspot/rank"
)

// PromptCommand creates the prompt command
func PromptCommand() *cli.Command {
	return &cli.Command{
		Name:  "prompt",
		Usage: "Interactive typeahead prompt; local sources reload when they change",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "filter",
				Usage: "Persistent filter as field=text, or text for the whole record (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "no-watch",
				Usage: "Do not reload changed local sources",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			e, err := newEnv(ctx, c)
			if err != nil {
				return err
			}

			s := &session{env: e, filters: c.StringSlice("filter")}
			if err := s.reload(ctx); err != nil {
				return err
			}

			if !c.Bool("no-watch") {
				stop, err := s.watch(ctx)
				if err != nil {
					e.logger.Warn("live reload disabled", "error", err)
				} else {
					defer stop()
				}
			}

			fmt.Println(metaStyle.Render("Type to search. :all lists, :filter f=x narrows, :clear resets, :q quits."))
			return s.run(os.Stdin, os.Stdout)
		},
	}
}

// session holds the prompt state shared by the input loop and the reloader.
type session struct {
	env     *env
	mu      sync.Mutex
	lookup  *quickspot.Lookup
	filters []string
}

func (s *session) renderer() renderer {
	return renderer{keyField: s.env.cfg.KeyField, fields: s.env.cfg.SearchFields}
}

// reload rebuilds the store from the sources and re-applies the filters.
func (s *session) reload(ctx context.Context) error {
	store, err := s.env.open(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := applyFilters(store, s.filters); err != nil {
		return err
	}
	s.lookup = quickspot.NewLookup(store, s.env.cfg.LookupOptions()...)
	return nil
}

func (s *session) run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		quit, err := s.handle(out, scanner.Text())
		if err != nil {
			fmt.Fprintln(out, noDataStyle.Render(err.Error()))
		}
		if quit {
			return nil
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

// handle processes one input line and reports whether the prompt should end.
func (s *session) handle(out io.Writer, line string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch cmd {
	case ":q", ":quit", ":exit":
		return true, nil
	case ":all":
		s.renderer().render(out, s.lookup.ShowAll(false, rank.ByQuery("")), "")
	case ":filter":
		if err := applyFilters(s.lookup.Store(), []string{arg}); err != nil {
			return false, err
		}
		s.filters = append(s.filters, arg)
		fmt.Fprintln(out, metaStyle.Render(fmt.Sprintf("%d records match the filters", len(s.lookup.Store().Filtered()))))
	case ":clear":
		s.lookup.Store().ClearFilters()
		s.filters = nil
		s.lookup.Reset()
	default:
		s.renderer().render(out, s.lookup.Query(line), line)
	}
	return false, nil
}

// watch reloads the store when a local source changes. Events are debounced
// because editors often write a file in several steps.
func (s *session) watch(ctx context.Context) (func(), error) {
	paths := localPaths(s.env.sources)
	if len(paths) == 0 {
		return func() {}, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Directories are watched so atomic replacements are seen.
	watched := map[string]bool{}
	for p := range paths {
		dir := filepath.Dir(p)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, err
		}
		watched[dir] = true
	}

	ctx, cancel := context.WithCancel(ctx)
	debounce := s.env.cfg.ReloadDebounce.Duration
	logger := s.env.logger

	go func() {
		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !paths[filepath.Clean(event.Name)] {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, func() {
					if err := s.reload(ctx); err != nil {
						logger.Error("reload failed", "error", err)
						return
					}
					logger.Info("sources reloaded", "trigger", event.Name)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error", "error", err)
			}
		}
	}()

	return func() {
		cancel()
		_ = watcher.Close()
	}, nil
}

// localPaths returns the cleaned file system paths among uris.
func localPaths(uris []string) map[string]bool {
	out := map[string]bool{}
	for _, uri := range uris {
		u, err := url.Parse(uri)
		switch {
		case filepath.VolumeName(uri) != "":
			out[filepath.Clean(uri)] = true
		case err != nil:
		case u.Scheme == "":
			out[filepath.Clean(uri)] = true
		case u.Scheme == "file" && u.Path != "":
			out[filepath.Clean(filepath.FromSlash(u.Path))] = true
		}
	}
	for p := range out {
		if abs, err := filepath.Abs(p); err == nil && abs != p {
			delete(out, p)
			out[abs] = true
		}
	}
	return out
}
