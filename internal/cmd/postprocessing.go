package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sapphire-forecast/sapphire-cli/internal/api"
)

func forecastRow(r api.ForecastRecord) []string {
	return []string{r.Code, r.Date, r.HorizonType, fmtFloat(r.Forecast), fmtFloat(r.Lower), fmtFloat(r.Upper)}
}

var forecastHeaders = []string{"CODE", "DATE", "HORIZON", "FORECAST", "LOWER", "UPPER"}

func addForecastListFlags(cmd *cobra.Command, opts *api.ForecastListOptions) {
	cmd.Flags().StringVar(&opts.Horizon, "horizon", "", "Filter by horizon type ("+strings.Join(api.ValidHorizons, ", ")+")")
	addCodeFlag(cmd, &opts.Code)
	addDateRangeFlags(cmd, &opts.StartDate, &opts.EndDate)
	addPaginationFlags(cmd, &opts.ListOptions)
}

func newForecastsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecasts",
		Short: "Read and write model forecasts",
	}
	cmd.AddCommand(newForecastsListCmd())
	cmd.AddCommand(newForecastsWriteCmd())
	return cmd
}

func newForecastsListCmd() *cobra.Command {
	var opts api.ForecastListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List forecast records",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getPostprocessingClient()
			if err != nil {
				return err
			}
			records, err := client.Forecasts().List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printList(cmd, records, forecastHeaders, forecastRow)
		},
	}

	addForecastListFlags(cmd, &opts)
	return cmd
}

func newForecastsWriteCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Bulk-write forecast records from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecordsFile[api.ForecastRecord](cmd, file)
			if err != nil {
				return err
			}
			client, err := getPostprocessingClient()
			if err != nil {
				return err
			}
			count, err := client.Forecasts().Write(cmd.Context(), records)
			if err != nil {
				return err
			}
			reportWritten(cmd, count)
			return nil
		},
	}

	addFileFlag(cmd, &file)
	return cmd
}

func newLRForecastsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lr-forecasts",
		Short: "Read and write linear regression forecasts",
	}
	cmd.AddCommand(newLRForecastsListCmd())
	cmd.AddCommand(newLRForecastsWriteCmd())
	return cmd
}

func newLRForecastsListCmd() *cobra.Command {
	var opts api.ForecastListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List linear regression forecast records",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getPostprocessingClient()
			if err != nil {
				return err
			}
			records, err := client.LRForecasts().List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printList(cmd, records, forecastHeaders, forecastRow)
		},
	}

	addForecastListFlags(cmd, &opts)
	return cmd
}

func newLRForecastsWriteCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Bulk-write linear regression forecast records from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecordsFile[api.ForecastRecord](cmd, file)
			if err != nil {
				return err
			}
			client, err := getPostprocessingClient()
			if err != nil {
				return err
			}
			count, err := client.LRForecasts().Write(cmd.Context(), records)
			if err != nil {
				return err
			}
			reportWritten(cmd, count)
			return nil
		},
	}

	addFileFlag(cmd, &file)
	return cmd
}

func newSkillMetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill-metrics",
		Short: "Read and write forecast skill metrics",
	}
	cmd.AddCommand(newSkillMetricsListCmd())
	cmd.AddCommand(newSkillMetricsWriteCmd())
	return cmd
}

func newSkillMetricsListCmd() *cobra.Command {
	var opts api.SkillMetricListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List skill metric records",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getPostprocessingClient()
			if err != nil {
				return err
			}
			records, err := client.SkillMetrics().List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printList(cmd, records,
				[]string{"CODE", "HORIZON", "MODEL", "MAE", "RMSE", "NSE", "KGE"},
				func(r api.SkillMetricRecord) []string {
					return []string{r.Code, r.HorizonType, r.Model, fmtFloat(r.MAE), fmtFloat(r.RMSE), fmtFloat(r.NSE), fmtFloat(r.KGE)}
				})
		},
	}

	cmd.Flags().StringVar(&opts.Horizon, "horizon", "", "Filter by horizon type ("+strings.Join(api.ValidHorizons, ", ")+")")
	cmd.Flags().StringVar(&opts.Model, "model", "", "Filter by forecast model ("+strings.Join(api.ValidForecastModels, ", ")+")")
	addCodeFlag(cmd, &opts.Code)
	addPaginationFlags(cmd, &opts.ListOptions)
	return cmd
}

func newSkillMetricsWriteCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Bulk-write skill metric records from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecordsFile[api.SkillMetricRecord](cmd, file)
			if err != nil {
				return err
			}
			client, err := getPostprocessingClient()
			if err != nil {
				return err
			}
			count, err := client.SkillMetrics().Write(cmd.Context(), records)
			if err != nil {
				return err
			}
			reportWritten(cmd, count)
			return nil
		},
	}

	addFileFlag(cmd, &file)
	return cmd
}
