package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/ports/primary"
)

// ActivityAdapter translates activity commands to ActivityService calls.
type ActivityAdapter struct {
	service primary.ActivityService
	out     io.Writer
}

// NewActivityAdapter creates a new ActivityAdapter with the given service.
func NewActivityAdapter(service primary.ActivityService, out io.Writer) *ActivityAdapter {
	return &ActivityAdapter{service: service, out: out}
}

// Create creates an activity.
func (a *ActivityAdapter) Create(ctx context.Context, req primary.CreateActivityRequest) error {
	activity, err := a.service.CreateActivity(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Created activity %d: %s (%s, position %d)\n",
		okMark(), activity.ID, activity.Name, columnLabel(activity.ColumnID), activity.Ordinal)
	return nil
}

// Show displays one activity.
func (a *ActivityAdapter) Show(ctx context.Context, id int64) error {
	activity, err := a.service.GetActivity(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nActivity: %d\n", activity.ID)
	fmt.Fprintf(a.out, "Name:     %s\n", activity.Name)
	fmt.Fprintf(a.out, "Column:   %s\n", columnLabel(activity.ColumnID))
	fmt.Fprintf(a.out, "Position: %d\n", activity.Ordinal)
	if activity.Body != "" {
		fmt.Fprintf(a.out, "Body:     %s\n", activity.Body)
	}
	if len(activity.TagIDs) > 0 {
		fmt.Fprintf(a.out, "Tags:     %v\n", activity.TagIDs)
	}
	fmt.Fprintf(a.out, "Updated:  %s\n\n", activity.UpdatedAt)
	return nil
}

// Update changes an activity's name and body. Nil fields keep their
// current value.
func (a *ActivityAdapter) Update(ctx context.Context, id int64, name, body *string) error {
	current, err := a.service.GetActivity(ctx, id)
	if err != nil {
		return err
	}

	req := primary.UpdateActivityRequest{ActivityID: id, Name: current.Name, Body: current.Body}
	if name != nil {
		req.Name = *name
	}
	if body != nil {
		req.Body = *body
	}
	if err := a.service.UpdateActivity(ctx, req); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Activity %d updated\n", okMark(), id)
	return nil
}

// Move moves an activity.
func (a *ActivityAdapter) Move(ctx context.Context, req primary.MoveRequest) error {
	if err := a.service.MoveActivity(ctx, req); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Activity %d moved\n", okMark(), req.ID)
	return nil
}

// Delete deletes an activity.
func (a *ActivityAdapter) Delete(ctx context.Context, id int64) error {
	if err := a.service.DeleteActivity(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Activity %d deleted\n", okMark(), id)
	return nil
}

// List lists the activities of one column, or the stash.
func (a *ActivityAdapter) List(ctx context.Context, column ordinal.ParentID) error {
	activities, err := a.service.ListActivities(ctx, column)
	if err != nil {
		return err
	}
	if len(activities) == 0 {
		fmt.Fprintf(a.out, "No activities in %s\n", columnLabel(column))
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tID\tNAME")
	for _, act := range activities {
		fmt.Fprintf(w, "%d\t%d\t%s\n", act.Ordinal, act.ID, act.Name)
	}
	return w.Flush()
}

// Tag attaches a tag to an activity.
func (a *ActivityAdapter) Tag(ctx context.Context, activityID, tagID int64) error {
	if err := a.service.AddTag(ctx, activityID, tagID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Tag %d added to activity %d\n", okMark(), tagID, activityID)
	return nil
}

// Untag detaches a tag from an activity.
func (a *ActivityAdapter) Untag(ctx context.Context, activityID, tagID int64) error {
	if err := a.service.RemoveTag(ctx, activityID, tagID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Tag %d removed from activity %d\n", okMark(), tagID, activityID)
	return nil
}

func columnLabel(column ordinal.ParentID) string {
	if !column.Valid {
		return "stash"
	}
	return fmt.Sprintf("column %d", column.ID)
}
