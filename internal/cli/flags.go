package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/banban/internal/core/ordinal"
)

// parseID parses a positional ID argument.
func parseID(kind, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID %q: must be a positive integer", kind, arg)
	}
	return id, nil
}

// parseOrdinal parses a positional ordinal argument.
func parseOrdinal(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid ordinal %q: must be an integer", arg)
	}
	return n, nil
}

// parentOf maps a parent flag value to a partition; 0 is the null partition.
func parentOf(id int64) ordinal.ParentID {
	if id == 0 {
		return ordinal.NoParent
	}
	return ordinal.Parent(id)
}

// optionalParent returns the partition requested by flag or detach, or nil
// when neither was given.
func optionalParent(cmd *cobra.Command, flag string, id int64, detach bool) *ordinal.ParentID {
	switch {
	case detach:
		p := ordinal.NoParent
		return &p
	case cmd.Flags().Changed(flag):
		p := parentOf(id)
		return &p
	}
	return nil
}

// optionalOrdinal returns a pointer to value when flag was given.
func optionalOrdinal(cmd *cobra.Command, flag string, value int) *int {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &value
}
