package tally

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mibar/dictextra/internal/envconfig"
	"github.com/mibar/dictextra/internal/logutil"
	"github.com/mibar/dictextra/pkg/dictextra"
)

// NewCLI builds the tally command tree.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tally",
		Short: "Count and group newline-delimited records",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true

			verbose, _ := cmd.Flags().GetBool("verbose")
			level := logutil.Level(verbose || envconfig.Debug)
			slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), level))
		},
	}

	rootCmd.PersistentFlags().StringP("file", "f", "", "Read records from a file instead of stdin")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug logging")
	rootCmd.PersistentFlags().Bool("require-input", false, "Fail when no records are read")
	rootCmd.PersistentFlags().BoolP("words", "w", false, "Treat every word as a record")

	rootCmd.AddCommand(
		newFreqCmd(),
		newGroupCmd(),
		newEnvCmd(),
	)

	return rootCmd
}

func newFreqCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freq",
		Short: "Count how often each record occurs",
		Args:  cobra.NoArgs,
		RunE:  freqHandler,
	}

	cmd.Flags().Bool("fold-case", envconfig.FoldCase, "Lower-case records before counting")
	cmd.Flags().Int("min", 0, "Hide records counted fewer times")
	cmd.Flags().StringSlice("drop", nil, "Records to leave out")
	cmd.Flags().StringSlice("only", nil, "Records to keep, in output order")
	cmd.Flags().Int("first-over", 0, "Print only the first record counted more than N times")

	return cmd
}

func freqHandler(cmd *cobra.Command, args []string) error {
	records, err := readInput(cmd)
	if err != nil {
		return err
	}

	var opts CountOptions
	opts.FoldCase, _ = cmd.Flags().GetBool("fold-case")
	opts.Min, _ = cmd.Flags().GetInt("min")
	opts.Drop, _ = cmd.Flags().GetStringSlice("drop")
	opts.Only, _ = cmd.Flags().GetStringSlice("only")

	counts := Count(records, opts)
	slog.Debug("counted records", "records", len(records), "keys", counts.Size())

	if cmd.Flags().Changed("first-over") {
		n, _ := cmd.Flags().GetInt("first-over")
		key, count, ok := FirstOver(counts, n)
		if !ok {
			return fmt.Errorf("first-over %d: %w", n, ErrNoMatch)
		}
		counts = dictextra.FromPairs(dictextra.Pair[string, int]{Key: key, Value: count})
	}

	WriteCounts(cmd.OutOrStdout(), counts)
	return nil
}

func newGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Group records by a derived key",
		Long: `Group records by a derived key. --by accepts:

  line        the record itself
  lower       the lower-cased record
  len         the length of the record
  field:N     the N-th whitespace separated field
  prefix:N    the first N characters

Records without a key (too few fields, too short) are dropped.`,
		Args: cobra.NoArgs,
		RunE: groupHandler,
	}

	cmd.Flags().String("by", "line", "Key to group by")

	return cmd
}

func groupHandler(cmd *cobra.Command, args []string) error {
	spec, _ := cmd.Flags().GetString("by")
	key, err := ParseKeySpec(spec)
	if err != nil {
		return err
	}

	records, err := readInput(cmd)
	if err != nil {
		return err
	}

	groups := Group(records, key)
	slog.Debug("grouped records", "records", len(records), "groups", groups.Size(), "by", spec)

	WriteGroups(cmd.OutOrStdout(), groups)
	return nil
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables tally reads",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := newTable(cmd.OutOrStdout(), "NAME", "VALUE", "DESCRIPTION")
			for name, v := range dictextra.Entries(envconfig.Values()) {
				table.Append([]string{name, fmt.Sprint(v.Value), v.Description})
			}
			table.Render()
		},
	}
}

func readInput(cmd *cobra.Command) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		defer f.Close()
		r = f
	}

	words, _ := cmd.Flags().GetBool("words")
	records, err := ReadRecords(r, words)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if required, _ := cmd.Flags().GetBool("require-input"); required && len(records) == 0 {
		return nil, ErrEmptyInput
	}
	return records, nil
}
