package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hupe1980/quickspot"
	"github.com/hupe1980/quickspot/rank"
)

// SearchCommand creates the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search the datasets",
		ArgsUsage: "QUERY...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results (0 for the configured default)",
			},
			&cli.BoolFlag{
				Name:  "explain",
				Usage: "Show the ranking score of each result",
			},
			&cli.StringSliceFlag{
				Name:  "filter",
				Usage: "Persistent filter as field=text, or text for the whole record (repeatable)",
			},
			&cli.StringFlag{
				Name:  "field",
				Usage: "Match against the raw value of one field",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			query := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(query) == "" {
				return fmt.Errorf("search needs a query")
			}

			e, err := newEnv(ctx, c)
			if err != nil {
				return err
			}
			store, err := e.open(ctx)
			if err != nil {
				return err
			}
			if err := applyFilters(store, c.StringSlice("filter")); err != nil {
				return err
			}

			if field := c.String("field"); field != "" {
				store.FindField(field, query).SortBy(rank.ByQuery(query))
			} else {
				store.Search(query)
			}

			limit := c.Int("limit")
			if limit == 0 {
				limit = e.cfg.MaxResults
			}

			r := renderer{keyField: e.cfg.KeyField, fields: e.cfg.SearchFields}
			if c.Bool("explain") {
				r.explain(os.Stdout, capSlice(store.Explain(query), limit))
				return nil
			}
			r.render(os.Stdout, capSlice(store.Get(), limit), query)
			return nil
		},
	}
}

// parseFilter splits "field=text". Without '=' the whole argument is text.
func parseFilter(arg string) (field, text string) {
	if i := strings.IndexByte(arg, '='); i > 0 {
		return strings.TrimSpace(arg[:i]), arg[i+1:]
	}
	return "", arg
}

func applyFilters(store *quickspot.Store, args []string) error {
	for _, arg := range args {
		field, text := parseFilter(arg)
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("empty filter %q", arg)
		}
		if field == "" {
			store.Filter(text)
		} else {
			store.FilterField(field, text)
		}
	}
	return nil
}

func capSlice[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
