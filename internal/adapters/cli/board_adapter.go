// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/banban/internal/ports/primary"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	heading   = color.New(color.Bold)
)

func okMark() string   { return okColor.Sprint("✓") }
func warnMark() string { return warnColor.Sprint("!") }

// BoardAdapter renders whole-board operations.
type BoardAdapter struct {
	service primary.BoardService
	out     io.Writer
}

// NewBoardAdapter creates a new BoardAdapter with the given service.
func NewBoardAdapter(service primary.BoardService, out io.Writer) *BoardAdapter {
	return &BoardAdapter{
		service: service,
		out:     out,
	}
}

// Show prints every column with its activities, then the stash and the tags.
func (a *BoardAdapter) Show(ctx context.Context) error {
	board, err := a.service.Snapshot(ctx)
	if err != nil {
		return err
	}

	tags := make(map[int64]*primary.Tag)
	for _, c := range board.Categories {
		for _, t := range c.Tags {
			tags[t.ID] = t
		}
	}
	for _, t := range board.Uncategorized {
		tags[t.ID] = t
	}

	for _, c := range board.Columns {
		fmt.Fprintf(a.out, "\n%s (%d)\n", heading.Sprint(c.Column.Name), c.Column.ID)
		a.writeActivities(c.Activities, tags)
	}
	if len(board.Stash) > 0 {
		fmt.Fprintf(a.out, "\n%s\n", heading.Sprint("Stash"))
		a.writeActivities(board.Stash, tags)
	}

	if len(board.Categories) > 0 || len(board.Uncategorized) > 0 {
		fmt.Fprintf(a.out, "\n%s\n", heading.Sprint("Tags"))
		for _, c := range board.Categories {
			fmt.Fprintf(a.out, "  %s: %s\n", c.Category.Name, tagList(c.Tags))
		}
		if len(board.Uncategorized) > 0 {
			fmt.Fprintf(a.out, "  uncategorized: %s\n", tagList(board.Uncategorized))
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

func (a *BoardAdapter) writeActivities(activities []*primary.Activity, tags map[int64]*primary.Tag) {
	if len(activities) == 0 {
		fmt.Fprintln(a.out, "  (empty)")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, act := range activities {
		var chips []*primary.Tag
		for _, id := range act.TagIDs {
			if t, ok := tags[id]; ok {
				chips = append(chips, t)
			}
		}
		fmt.Fprintf(w, "  %d.\t#%d\t%s\t%s\n", act.Ordinal, act.ID, act.Name, tagList(chips))
	}
	w.Flush()
}

// Check prints the ordinal check report and returns an error when the board
// is inconsistent.
func (a *BoardAdapter) Check(ctx context.Context) error {
	report, err := a.service.Check(ctx)
	if err != nil {
		return err
	}

	for _, c := range report.Collections {
		if len(c.Violations) == 0 {
			fmt.Fprintf(a.out, "%s %s\n", okMark(), c.Name)
			continue
		}
		fmt.Fprintf(a.out, "%s %s\n", warnMark(), c.Name)
		for _, v := range c.Violations {
			fmt.Fprintf(a.out, "    %s\n", v)
		}
	}

	if !report.OK() {
		return fmt.Errorf("ordinals are inconsistent, run 'banban doctor --fix' to repair")
	}
	return nil
}

// Repair renumbers every collection and prints what changed.
func (a *BoardAdapter) Repair(ctx context.Context) error {
	report, err := a.service.Repair(ctx)
	if err != nil {
		return err
	}

	if report.Total() == 0 {
		fmt.Fprintf(a.out, "%s Nothing to repair\n", okMark())
		return nil
	}
	for _, c := range report.Collections {
		if c.Renumbered > 0 {
			fmt.Fprintf(a.out, "%s %s: renumbered %d rows\n", okMark(), c.Name, c.Renumbered)
		}
	}
	return nil
}

// tagList renders tags as coloured names.
func tagList(tags []*primary.Tag) string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = tagChip(t)
	}
	return strings.Join(names, " ")
}

func tagChip(t *primary.Tag) string {
	if len(t.Color) != 6 {
		return t.Name
	}
	rgb, err := strconv.ParseUint(t.Color, 16, 32)
	if err != nil {
		return t.Name
	}
	return color.RGB(int(rgb>>16), int(rgb>>8&0xFF), int(rgb&0xFF)).Sprint(t.Name)
}
