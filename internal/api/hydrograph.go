package api

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/sapphire-forecast/sapphire-cli/internal/validation"
)

// HydrographRecord is a statistical summary row for one station and horizon
// step: distribution quantiles over the historical record plus the previous
// and current year values.
type HydrographRecord struct {
	ID            int64    `json:"id,omitempty"`
	HorizonType   string   `json:"horizon_type"`
	Code          string   `json:"code"`
	Date          string   `json:"date"`
	DayOfYear     int      `json:"day_of_year"`
	HorizonValue  int      `json:"horizon_value"`
	HorizonInYear int      `json:"horizon_in_year"`
	Count         *float64 `json:"count,omitempty"`
	Mean          *float64 `json:"mean,omitempty"`
	Std           *float64 `json:"std,omitempty"`
	Min           *float64 `json:"min,omitempty"`
	Max           *float64 `json:"max,omitempty"`
	Q05           *float64 `json:"q05,omitempty"`
	Q25           *float64 `json:"q25,omitempty"`
	Q50           *float64 `json:"q50,omitempty"`
	Q75           *float64 `json:"q75,omitempty"`
	Q95           *float64 `json:"q95,omitempty"`
	Norm          *float64 `json:"norm,omitempty"`
	Previous      *float64 `json:"previous,omitempty"`
	Current       *float64 `json:"current,omitempty"`
}

// HydrographListOptions filter a hydrograph read.
type HydrographListOptions struct {
	Horizon   string
	Code      string
	StartDate string
	EndDate   string
	ListOptions
}

func (o HydrographListOptions) validate() error {
	if err := validation.Enum(o.Horizon, ValidHorizons, "horizon"); err != nil {
		return err
	}
	return o.ListOptions.validate()
}

func (o HydrographListOptions) values() url.Values {
	v := o.ListOptions.values()
	setParam(v, "horizon", o.Horizon)
	setParam(v, "code", o.Code)
	setParam(v, "start_date", o.StartDate)
	setParam(v, "end_date", o.EndDate)
	return v
}

// List reads hydrograph records matching opts.
func (s HydrographService) List(ctx context.Context, opts HydrographListOptions) ([]HydrographRecord, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	slog.Info("reading hydrograph data", "horizon", opts.Horizon, "code", opts.Code)

	var records []HydrographRecord
	if err := s.get(ctx, "/hydrograph/", opts.values(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Write posts hydrograph records in batches.
func (s HydrographService) Write(ctx context.Context, records []HydrographRecord) (int, error) {
	return writeBatched(ctx, s.Client, "/hydrograph/", records)
}
