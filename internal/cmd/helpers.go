package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sapphire-forecast/sapphire-cli/internal/api"
	"github.com/sapphire-forecast/sapphire-cli/internal/outfmt"
)

// printList renders fetched records according to the global output flags.
// JSON output (and any --jq expression) takes the records as-is; text output
// goes through the tabwriter with the given header row.
func printList[T any](cmd *cobra.Command, items []T, headers []string, row func(T) []string) error {
	mode, err := outfmt.Parse(flags.Output)
	if err != nil {
		return err
	}
	if mode == outfmt.JSON || flags.JQ != "" {
		return outfmt.WriteJSON(cmd.OutOrStdout(), items, flags.JQ)
	}
	if len(items) == 0 {
		cmd.Println("No records found")
		return nil
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, row(item))
	}
	return outfmt.WriteTable(cmd.OutOrStdout(), headers, rows)
}

// readRecordsFile loads a JSON array of records from path, or from stdin
// when path is "-".
func readRecordsFile[T any](cmd *cobra.Command, path string) ([]T, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: expected a JSON array of records: %w", path, err)
	}
	return records, nil
}

func reportWritten(cmd *cobra.Command, count int) {
	cmd.Printf("Wrote %d records\n", count)
}

// fmtFloat renders an optional numeric value for table output.
func fmtFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func addFileFlag(cmd *cobra.Command, file *string) {
	cmd.Flags().StringVar(file, "file", "", `JSON file with an array of records ("-" for stdin)`)
	_ = cmd.MarkFlagRequired("file")
}

func addPaginationFlags(cmd *cobra.Command, opts *api.ListOptions) {
	cmd.Flags().IntVar(&opts.Skip, "skip", 0, "Number of records to skip")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, fmt.Sprintf("Maximum records to return (default %d)", api.DefaultLimit))
}

func addDateRangeFlags(cmd *cobra.Command, start, end *string) {
	cmd.Flags().StringVar(start, "start-date", "", "Earliest date to include (ISO format, inclusive)")
	cmd.Flags().StringVar(end, "end-date", "", "Latest date to include (ISO format, inclusive)")
}

func addCodeFlag(cmd *cobra.Command, code *string) {
	cmd.Flags().StringVar(code, "code", "", "Filter by hydropost code")
}
