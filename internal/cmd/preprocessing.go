package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sapphire-forecast/sapphire-cli/internal/api"
)

func newRunoffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runoff",
		Short: "Read and write daily runoff data",
	}
	cmd.AddCommand(newRunoffListCmd())
	cmd.AddCommand(newRunoffWriteCmd())
	return cmd
}

func newRunoffListCmd() *cobra.Command {
	var opts api.RunoffListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List runoff records",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getPreprocessingClient()
			if err != nil {
				return err
			}
			records, err := client.Runoff().List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printList(cmd, records,
				[]string{"CODE", "DATE", "HORIZON", "DISCHARGE", "PREDICTOR"},
				func(r api.RunoffRecord) []string {
					return []string{r.Code, r.Date, r.HorizonType, fmtFloat(r.Discharge), fmtFloat(r.Predictor)}
				})
		},
	}

	cmd.Flags().StringVar(&opts.Horizon, "horizon", "", "Filter by horizon type ("+strings.Join(api.ValidHorizons, ", ")+")")
	addCodeFlag(cmd, &opts.Code)
	addDateRangeFlags(cmd, &opts.StartDate, &opts.EndDate)
	addPaginationFlags(cmd, &opts.ListOptions)
	return cmd
}

func newRunoffWriteCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Bulk-write runoff records from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecordsFile[api.RunoffRecord](cmd, file)
			if err != nil {
				return err
			}
			client, err := getPreprocessingClient()
			if err != nil {
				return err
			}
			count, err := client.Runoff().Write(cmd.Context(), records)
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

func newHydrographCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hydrograph",
		Short: "Read and write hydrograph statistics",
	}
	cmd.AddCommand(newHydrographListCmd())
	cmd.AddCommand(newHydrographWriteCmd())
	return cmd
}

func newHydrographListCmd() *cobra.Command {
	var opts api.HydrographListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hydrograph records",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getPreprocessingClient()
			if err != nil {
				return err
			}
			records, err := client.Hydrograph().List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printList(cmd, records,
				[]string{"CODE", "DATE", "HORIZON", "MEAN", "Q50", "NORM", "CURRENT"},
				func(r api.HydrographRecord) []string {
					return []string{r.Code, r.Date, r.HorizonType, fmtFloat(r.Mean), fmtFloat(r.Q50), fmtFloat(r.Norm), fmtFloat(r.Current)}
				})
		},
	}

	cmd.Flags().StringVar(&opts.Horizon, "horizon", "", "Filter by horizon type ("+strings.Join(api.ValidHorizons, ", ")+")")
	addCodeFlag(cmd, &opts.Code)
	addDateRangeFlags(cmd, &opts.StartDate, &opts.EndDate)
	addPaginationFlags(cmd, &opts.ListOptions)
	return cmd
}

func newHydrographWriteCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Bulk-write hydrograph records from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecordsFile[api.HydrographRecord](cmd, file)
			if err != nil {
				return err
			}
			client, err := getPreprocessingClient()
			if err != nil {
				return err
			}
			count, err := client.Hydrograph().Write(cmd.Context(), records)
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

func newMeteoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meteo",
		Short: "Read and write meteorological data",
	}
	cmd.AddCommand(newMeteoListCmd())
	cmd.AddCommand(newMeteoWriteCmd())
	return cmd
}

func newMeteoListCmd() *cobra.Command {
	var opts api.MeteoListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List meteo records",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getPreprocessingClient()
			if err != nil {
				return err
			}
			records, err := client.Meteo().List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printList(cmd, records,
				[]string{"CODE", "DATE", "TYPE", "DAY", "VALUE", "NORM"},
				func(r api.MeteoRecord) []string {
					return []string{r.Code, r.Date, r.MeteoType, strconv.Itoa(r.DayOfYear), fmtFloat(r.Value), fmtFloat(r.Norm)}
				})
		},
	}

	cmd.Flags().StringVar(&opts.MeteoType, "type", "", "Filter by meteo variable ("+strings.Join(api.ValidMeteoTypes, ", ")+")")
	addCodeFlag(cmd, &opts.Code)
	addDateRangeFlags(cmd, &opts.StartDate, &opts.EndDate)
	addPaginationFlags(cmd, &opts.ListOptions)
	return cmd
}

func newMeteoWriteCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Bulk-write meteo records from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecordsFile[api.MeteoRecord](cmd, file)
			if err != nil {
				return err
			}
			client, err := getPreprocessingClient()
			if err != nil {
				return err
			}
			count, err := client.Meteo().Write(cmd.Context(), records)
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

func newSnowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snow",
		Short: "Read and write snow data",
	}
	cmd.AddCommand(newSnowListCmd())
	cmd.AddCommand(newSnowWriteCmd())
	return cmd
}

func newSnowListCmd() *cobra.Command {
	var opts api.SnowListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List snow records",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getPreprocessingClient()
			if err != nil {
				return err
			}
			records, err := client.Snow().List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printList(cmd, records,
				[]string{"CODE", "DATE", "TYPE", "VALUE", "NORM"},
				func(r api.SnowRecord) []string {
					return []string{r.Code, r.Date, r.SnowType, fmtFloat(r.Value), fmtFloat(r.Norm)}
				})
		},
	}

	cmd.Flags().StringVar(&opts.SnowType, "type", "", "Filter by snow variable ("+strings.Join(api.ValidSnowTypes, ", ")+")")
	addCodeFlag(cmd, &opts.Code)
	addDateRangeFlags(cmd, &opts.StartDate, &opts.EndDate)
	addPaginationFlags(cmd, &opts.ListOptions)
	return cmd
}

func newSnowWriteCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Bulk-write snow records from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecordsFile[api.SnowRecord](cmd, file)
			if err != nil {
				return err
			}
			client, err := getPreprocessingClient()
			if err != nil {
				return err
			}
			count, err := client.Snow().Write(cmd.Context(), records)
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
