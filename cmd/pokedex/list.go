package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pokedex-service/internal/app/catalog"
	"pokedex-service/internal/app/listing"
	"pokedex-service/internal/domain/pokemon"
)

// listOutput is what list prints, whichever way the pages were loaded.
type listOutput struct {
	Items      []pokemon.Pokemon `json:"items"`
	NextOffset int               `json:"nextOffset"`
	HasMore    bool              `json:"hasMore"`
	Dropped    int               `json:"dropped"`
}

func listCmd(env *cliEnv) *cobra.Command {
	var offset, limit, pages int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogue entries page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if offset < 0 || limit < 0 {
				return fmt.Errorf("offset and limit must not be negative")
			}
			ctx := commandContext(cmd)
			svc := env.catalog(cmd)

			var out listOutput
			var err error
			if offset == 0 {
				var snap listing.Snapshot
				_, snap, err = loadPages(ctx, svc, limit, pages)
				out = listOutput{Items: snap.Items, NextOffset: snap.NextOffset, HasMore: snap.HasMore}
			} else {
				out, err = loadRange(ctx, svc, offset, limit, pages)
			}
			if err != nil {
				return err
			}
			if out.Items == nil {
				out.Items = []pokemon.Pokemon{}
			}

			return render(cmd.OutOrStdout(), env.flags.output, out, func(w io.Writer) error {
				if err := writeSummaries(w, out.Items); err != nil {
					return err
				}
				more := "no more pages"
				if out.HasMore {
					more = fmt.Sprintf("more from offset %d", out.NextOffset)
				}
				_, err := fmt.Fprintf(w, "%d loaded, %s\n", len(out.Items), more)
				return err
			})
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "Index offset to start from")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (defaults to PAGE_SIZE)")
	cmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to load")
	return cmd
}

// loadPages drives a list through its first page and pages-1 more.
func loadPages(ctx context.Context, svc *catalog.Service, limit, pages int) (*listing.List, listing.Snapshot, error) {
	list := listing.New(svc, listing.Options{Limit: limit})
	snap, err := list.Start(ctx)
	if err != nil {
		return list, snap, err
	}
	for i := 1; i < pages && snap.HasMore; i++ {
		if snap, err = list.LoadMore(ctx); err != nil {
			return list, snap, err
		}
	}
	return list, snap, nil
}

// loadRange reads pages straight from the catalogue starting at offset.
func loadRange(ctx context.Context, svc *catalog.Service, offset, limit, pages int) (listOutput, error) {
	if limit <= 0 {
		limit = svc.PageSize()
	}
	out := listOutput{NextOffset: offset, HasMore: true}
	for i := 0; i < max(pages, 1) && out.HasMore; i++ {
		page, err := svc.LoadPage(ctx, out.NextOffset, limit)
		if err != nil {
			return out, err
		}
		out.Items = append(out.Items, page.Items...)
		out.Dropped += page.Dropped
		out.NextOffset = page.Offset + page.Limit
		out.HasMore = page.HasMore
	}
	return out, nil
}
