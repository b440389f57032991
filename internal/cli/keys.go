package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/ordkey/orderkey"
)

// BoundsOptions holds the --after/--before flags shared by key commands.
type BoundsOptions struct {
	*RootOptions
	After  string // lower bound, exclusive
	Before string // upper bound, exclusive
}

func (o *BoundsOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.After, "after", "", "generate after this key (default: no lower bound)")
	cmd.Flags().StringVar(&o.Before, "before", "", "generate before this key (default: no upper bound)")
}

// KeysResult is the output of between and nkeys.
type KeysResult struct {
	After  string   `json:"after,omitempty"`
	Before string   `json:"before,omitempty"`
	Keys   []string `json:"keys"`
}

func (r KeysResult) String() string {
	return strings.Join(r.Keys, "\n")
}

// NewBetweenCommand creates the between command.
func NewBetweenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BoundsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "between",
		Short: "Generate one key between two bounds",
		Long: `Generate the shortest key that sorts strictly between --after and --before.

Omit a bound to generate at the start or end. With no bounds the result is "a0".

Examples:
  ordkey between
  ordkey between --after a0
  ordkey between --after a0 --before a1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := orderkey.KeyBetween(opts.After, opts.Before)
			if err != nil {
				return rejected("cannot generate key", err)
			}
			opts.Logger.Debug("generated key", "after", opts.After, "before", opts.Before, "key", key)
			return opts.formatter(cmd).Success(KeysResult{After: opts.After, Before: opts.Before, Keys: []string{key}})
		},
	}
	opts.bind(cmd)

	return cmd
}

// NKeysOptions holds flags for the nkeys command.
type NKeysOptions struct {
	BoundsOptions
	Count int
}

// NewNKeysCommand creates the nkeys command.
func NewNKeysCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NKeysOptions{BoundsOptions: BoundsOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "nkeys",
		Short: "Generate N ascending keys between two bounds",
		Long: `Generate N ascending keys strictly between --after and --before.

Use this rather than repeated between calls when inserting many items at
once: keys are spread evenly so they stay short.

Examples:
  ordkey nkeys -n 5
  ordkey nkeys -n 3 --after a0 --before a1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Count < 0 {
				return NewExitError(ExitCommandError, fmt.Sprintf("-n must not be negative, got %d", opts.Count))
			}
			keys, err := orderkey.NKeysBetween(opts.After, opts.Before, opts.Count)
			if err != nil {
				return rejected("cannot generate keys", err)
			}
			opts.Logger.Debug("generated keys", "after", opts.After, "before", opts.Before, "n", len(keys))
			return opts.formatter(cmd).Success(KeysResult{After: opts.After, Before: opts.Before, Keys: keys})
		},
	}
	opts.bind(cmd)
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "number of keys to generate")

	return cmd
}

// KeyValidation is the validation outcome for one key.
type KeyValidation struct {
	Key   string `json:"key"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidateResult is the output of validate.
type ValidateResult struct {
	Results []KeyValidation `json:"results"`
	Invalid int             `json:"invalid"`
}

func (r ValidateResult) String() string {
	var b strings.Builder
	for i, v := range r.Results {
		if i > 0 {
			b.WriteByte('\n')
		}
		if v.Valid {
			fmt.Fprintf(&b, "ok   %s", v.Key)
		} else {
			fmt.Fprintf(&b, "FAIL %s: %s", v.Key, v.Error)
		}
	}
	return b.String()
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := rootOpts

	cmd := &cobra.Command{
		Use:   "validate <key>...",
		Short: "Check keys are well-formed",
		Long: `Check that each key is a well-formed order key.

Exit codes:
  0 - All keys are valid
  1 - One or more keys are invalid

Examples:
  ordkey validate a0 a0V b00
  ordkey validate --format json a00`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := ValidateResult{Results: make([]KeyValidation, 0, len(args))}
			for _, key := range args {
				v := KeyValidation{Key: key, Valid: true}
				if err := orderkey.Validate(key); err != nil {
					v.Valid = false
					v.Error = err.Error()
					result.Invalid++
				}
				result.Results = append(result.Results, v)
			}

			if err := opts.formatter(cmd).Success(result); err != nil {
				return err
			}
			if result.Invalid > 0 {
				exitErr := NewExitError(ExitFailure, fmt.Sprintf("%d of %d keys invalid", result.Invalid, len(args)))
				exitErr.Reported = true
				return exitErr
			}
			return nil
		},
	}

	return cmd
}
