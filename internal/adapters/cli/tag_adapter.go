package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/ports/primary"
)

// TagAdapter translates tag commands to TagService calls.
type TagAdapter struct {
	service primary.TagService
	out     io.Writer
}

// NewTagAdapter creates a new TagAdapter with the given service.
func NewTagAdapter(service primary.TagService, out io.Writer) *TagAdapter {
	return &TagAdapter{service: service, out: out}
}

// Create creates a tag.
func (a *TagAdapter) Create(ctx context.Context, req primary.CreateTagRequest) error {
	tag, err := a.service.CreateTag(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Created tag %d: %s #%s\n", okMark(), tag.ID, tagChip(tag), tag.Color)
	return nil
}

// Rename renames a tag.
func (a *TagAdapter) Rename(ctx context.Context, id int64, name string) error {
	if err := a.service.RenameTag(ctx, id, name); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Tag %d renamed to %s\n", okMark(), id, name)
	return nil
}

// Recolor changes a tag's colour.
func (a *TagAdapter) Recolor(ctx context.Context, id int64, color string) error {
	if err := a.service.RecolorTag(ctx, id, color); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Tag %d recolored\n", okMark(), id)
	return nil
}

// Move moves a tag.
func (a *TagAdapter) Move(ctx context.Context, req primary.MoveRequest) error {
	if err := a.service.MoveTag(ctx, req); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Tag %d moved\n", okMark(), req.ID)
	return nil
}

// Delete deletes a tag.
func (a *TagAdapter) Delete(ctx context.Context, id int64) error {
	if err := a.service.DeleteTag(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Tag %d deleted\n", okMark(), id)
	return nil
}

// List lists the tags of one category, or the uncategorized tags.
func (a *TagAdapter) List(ctx context.Context, category ordinal.ParentID) error {
	tags, err := a.service.ListTags(ctx, category)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		fmt.Fprintln(a.out, "No tags found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tID\tCOLOR\tNAME")
	for _, t := range tags {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", t.Ordinal, t.ID, t.Color, tagChip(t))
	}
	return w.Flush()
}
