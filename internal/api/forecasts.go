package api

import (
	"context"
	"net/url"

	"github.com/sapphire-forecast/sapphire-cli/internal/validation"
)

// ForecastRecord is one forecast value with optional confidence bounds.
// Both the forecasts and lr-forecasts endpoints use this shape.
type ForecastRecord struct {
	ID          int64    `json:"id,omitempty"`
	HorizonType string   `json:"horizon_type"`
	Code        string   `json:"code"`
	Date        string   `json:"date"`
	Forecast    *float64 `json:"forecast"`
	Lower       *float64 `json:"lower,omitempty"`
	Upper       *float64 `json:"upper,omitempty"`
}

// ForecastListOptions filter a forecast read.
type ForecastListOptions struct {
	Horizon   string
	Code      string
	StartDate string
	EndDate   string
	ListOptions
}

func (o ForecastListOptions) validate() error {
	if err := validation.Enum(o.Horizon, ValidHorizons, "horizon"); err != nil {
		return err
	}
	return o.ListOptions.validate()
}

func (o ForecastListOptions) values() url.Values {
	v := o.ListOptions.values()
	setParam(v, "horizon", o.Horizon)
	setParam(v, "code", o.Code)
	setParam(v, "start_date", o.StartDate)
	setParam(v, "end_date", o.EndDate)
	return v
}

// List reads forecast records matching opts.
func (s ForecastsService) List(ctx context.Context, opts ForecastListOptions) ([]ForecastRecord, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var records []ForecastRecord
	if err := s.get(ctx, "/forecasts/", opts.values(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Write posts forecast records in batches.
func (s ForecastsService) Write(ctx context.Context, records []ForecastRecord) (int, error) {
	return writeBatched(ctx, s.Client, "/forecasts/", records)
}

// List reads linear regression forecast records matching opts.
func (s LRForecastsService) List(ctx context.Context, opts ForecastListOptions) ([]ForecastRecord, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var records []ForecastRecord
	if err := s.get(ctx, "/lr-forecasts/", opts.values(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Write posts linear regression forecast records in batches.
func (s LRForecastsService) Write(ctx context.Context, records []ForecastRecord) (int, error) {
	return writeBatched(ctx, s.Client, "/lr-forecasts/", records)
}
