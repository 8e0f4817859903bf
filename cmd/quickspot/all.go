package main

import (
	"context"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hupe1980/quickspot/rank"
	"github.com/hupe1980/quickspot/record"
)

// AllCommand creates the all command
func AllCommand() *cli.Command {
	return &cli.Command{
		Name:  "all",
		Usage: "List every record",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of records (0 for unlimited)",
			},
			&cli.StringSliceFlag{
				Name:  "filter",
				Usage: "Persistent filter as field=text, or text for the whole record (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "unfiltered",
				Usage: "Ignore the filters when listing",
			},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "Order by the raw value of this field instead of the key",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
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

			spec := rank.ByQuery("")
			if field := c.String("sort"); field != "" {
				spec = rank.ByFunc(byField(field))
			}

			recs := store.AllBy(c.Bool("unfiltered"), spec).Get()
			r := renderer{keyField: e.cfg.KeyField, fields: e.cfg.SearchFields}
			r.render(os.Stdout, capSlice(recs, c.Int("limit")), "")
			return nil
		},
	}
}

// byField orders records by the raw text of field, case-insensitively.
func byField(field string) rank.Comparator {
	return func(a, b *record.Record) int {
		return strings.Compare(strings.ToLower(a.Text(field)), strings.ToLower(b.Text(field)))
	}
}
