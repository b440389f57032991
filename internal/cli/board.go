package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/ordkey/internal/store"
)

// ListsResult is the output of list commands.
type ListsResult struct {
	Lists []store.List `json:"lists"`
}

func (r ListsResult) String() string {
	lines := make([]string, len(r.Lists))
	for i, l := range r.Lists {
		lines[i] = fmt.Sprintf("%-8s %s  %s", l.OrderKey, l.ID, l.Name)
	}
	return strings.Join(lines, "\n")
}

// ItemsResult is the output of item commands.
type ItemsResult struct {
	Items []store.Item `json:"items"`
}

func (r ItemsResult) String() string {
	lines := make([]string, len(r.Items))
	for i, it := range r.Items {
		lines[i] = fmt.Sprintf("%-8s %s  %s", it.OrderKey, it.ID, it.Title)
	}
	return strings.Join(lines, "\n")
}

// openStore opens the configured database.
func (o *RootOptions) openStore() (*store.Store, error) {
	o.Logger.Debug("opening database", "path", o.Database)
	st, err := store.Open(o.Database, store.WithLogger(o.Logger))
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}

// withStore opens the database, runs fn and closes the database.
func (o *RootOptions) withStore(fn func(*store.Store) error) error {
	st, err := o.openStore()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			o.Logger.Error("error closing database", "error", closeErr)
		}
	}()
	return fn(st)
}

// storeError maps store failures to exit codes: bad input exits 1,
// anything else 2.
func storeError(message string, err error) error {
	if errorCode(err) == ErrCodeCommand {
		return WrapExitError(ExitCommandError, message, err)
	}
	return rejected(message, err)
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid index %q", s))
	}
	return i, nil
}

// NewListCommand creates the list command group.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := rootOpts
	var parent string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage ordered lists",
	}
	cmd.PersistentFlags().StringVar(&parent, "parent", "", "parent list ID (lists with a parent are columns)")

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Append a new list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(func(st *store.Store) error {
				l, err := st.CreateList(cmd.Context(), parent, args[0])
				if err != nil {
					return storeError("failed to create list", err)
				}
				return opts.formatter(cmd).Success(ListsResult{Lists: []store.List{l}})
			})
		},
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "Show lists in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(func(st *store.Store) error {
				lists, err := st.Lists(cmd.Context(), parent)
				if err != nil {
					return storeError("failed to read lists", err)
				}
				return opts.formatter(cmd).Success(ListsResult{Lists: lists})
			})
		},
	}

	move := &cobra.Command{
		Use:   "move <list-id> <index>",
		Short: "Move a list to a new index among its siblings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			return opts.withStore(func(st *store.Store) error {
				l, err := st.MoveList(cmd.Context(), args[0], index)
				if err != nil {
					return storeError("failed to move list", err)
				}
				return opts.formatter(cmd).Success(ListsResult{Lists: []store.List{l}})
			})
		},
	}

	cmd.AddCommand(create, ls, move)
	return cmd
}

// NewItemCommand creates the item command group.
func NewItemCommand(rootOpts *RootOptions) *cobra.Command {
	opts := rootOpts

	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage items in a list",
	}

	add := &cobra.Command{
		Use:   "add <list-id> <title>...",
		Short: "Append items to the end of a list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(func(st *store.Store) error {
				var added []store.Item
				for _, title := range args[1:] {
					it, err := st.AddItem(cmd.Context(), args[0], title)
					if err != nil {
						return storeError("failed to add item", err)
					}
					added = append(added, it)
				}
				return opts.formatter(cmd).Success(ItemsResult{Items: added})
			})
		},
	}

	insert := &cobra.Command{
		Use:   "insert <list-id> <index> <title>...",
		Short: "Insert items as a block at an index",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			return opts.withStore(func(st *store.Store) error {
				items, err := st.InsertItems(cmd.Context(), args[0], index, args[2:]...)
				if err != nil {
					return storeError("failed to insert items", err)
				}
				return opts.formatter(cmd).Success(ItemsResult{Items: items})
			})
		},
	}

	var toList string
	move := &cobra.Command{
		Use:   "move <item-id> <index>",
		Short: "Move an item within its list or to another list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			return opts.withStore(func(st *store.Store) error {
				it, err := st.MoveItem(cmd.Context(), args[0], toList, index)
				if err != nil {
					return storeError("failed to move item", err)
				}
				return opts.formatter(cmd).Success(ItemsResult{Items: []store.Item{it}})
			})
		},
	}
	move.Flags().StringVar(&toList, "to", "", "target list ID (default: the item's own list)")

	ls := &cobra.Command{
		Use:   "ls <list-id>",
		Short: "Show the items of a list in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(func(st *store.Store) error {
				items, err := st.Items(cmd.Context(), args[0])
				if err != nil {
					return storeError("failed to read items", err)
				}
				return opts.formatter(cmd).Success(ItemsResult{Items: items})
			})
		},
	}

	rm := &cobra.Command{
		Use:   "rm <item-id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(func(st *store.Store) error {
				if err := st.DeleteItem(cmd.Context(), args[0]); err != nil {
					return storeError("failed to delete item", err)
				}
				return opts.formatter(cmd).Success(ItemsResult{Items: []store.Item{}})
			})
		},
	}

	cmd.AddCommand(add, insert, move, ls, rm)
	return cmd
}

// NewRebalanceCommand creates the rebalance command.
func NewRebalanceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := rootOpts

	cmd := &cobra.Command{
		Use:   "rebalance <list-id>",
		Short: "Re-key a list with short, evenly spaced keys",
		Long: `Assign every item in a list a fresh key, preserving order.

Repeated inserts at the same position lengthen keys. Rebalancing replaces
them with the shortest evenly spaced keys for the list's size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(func(st *store.Store) error {
				items, err := st.Rebalance(cmd.Context(), args[0])
				if err != nil {
					return storeError("failed to rebalance", err)
				}
				return opts.formatter(cmd).Success(ItemsResult{Items: items})
			})
		},
	}

	return cmd
}
