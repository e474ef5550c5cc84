package api

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/sapphire-forecast/sapphire-cli/internal/validation"
)

// RunoffRecord is one daily (or aggregated) runoff observation. Nullable
// numeric fields are pointers and marshal to explicit JSON null.
type RunoffRecord struct {
	ID            int64    `json:"id,omitempty"`
	HorizonType   string   `json:"horizon_type"`
	Code          string   `json:"code"`
	Date          string   `json:"date"`
	Discharge     *float64 `json:"discharge"`
	Predictor     *float64 `json:"predictor,omitempty"`
	HorizonValue  int      `json:"horizon_value"`
	HorizonInYear int      `json:"horizon_in_year"`
}

// RunoffListOptions filter a runoff read. Zero-valued filters are omitted
// from the request. Dates are ISO strings (inclusive bounds).
type RunoffListOptions struct {
	Horizon   string
	Code      string
	StartDate string
	EndDate   string
	ListOptions
}

func (o RunoffListOptions) validate() error {
	if err := validation.Enum(o.Horizon, ValidHorizons, "horizon"); err != nil {
		return err
	}
	return o.ListOptions.validate()
}

func (o RunoffListOptions) values() url.Values {
	v := o.ListOptions.values()
	setParam(v, "horizon", o.Horizon)
	setParam(v, "code", o.Code)
	setParam(v, "start_date", o.StartDate)
	setParam(v, "end_date", o.EndDate)
	return v
}

// List reads runoff records matching opts.
func (s RunoffService) List(ctx context.Context, opts RunoffListOptions) ([]RunoffRecord, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	slog.Info("reading runoff data", "horizon", opts.Horizon, "code", opts.Code)

	var records []RunoffRecord
	if err := s.get(ctx, "/runoff/", opts.values(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Write posts runoff records in batches and returns the count the server
// acknowledged.
func (s RunoffService) Write(ctx context.Context, records []RunoffRecord) (int, error) {
	return writeBatched(ctx, s.Client, "/runoff/", records)
}
