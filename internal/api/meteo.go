package api

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/sapphire-forecast/sapphire-cli/internal/validation"
)

// MeteoRecord is one meteorological observation: temperature ("T") or
// precipitation ("P").
type MeteoRecord struct {
	ID        int64    `json:"id,omitempty"`
	MeteoType string   `json:"meteo_type"`
	Code      string   `json:"code"`
	Date      string   `json:"date"`
	DayOfYear int      `json:"day_of_year"`
	Value     *float64 `json:"value"`
	Norm      *float64 `json:"norm,omitempty"`
}

// MeteoListOptions filter a meteo read.
type MeteoListOptions struct {
	MeteoType string
	Code      string
	StartDate string
	EndDate   string
	ListOptions
}

func (o MeteoListOptions) validate() error {
	if err := validation.Enum(o.MeteoType, ValidMeteoTypes, "meteo_type"); err != nil {
		return err
	}
	return o.ListOptions.validate()
}

func (o MeteoListOptions) values() url.Values {
	v := o.ListOptions.values()
	setParam(v, "meteo_type", o.MeteoType)
	setParam(v, "code", o.Code)
	setParam(v, "start_date", o.StartDate)
	setParam(v, "end_date", o.EndDate)
	return v
}

// List reads meteorological records matching opts.
func (s MeteoService) List(ctx context.Context, opts MeteoListOptions) ([]MeteoRecord, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	slog.Info("reading meteo data", "meteo_type", opts.MeteoType, "code", opts.Code)

	var records []MeteoRecord
	if err := s.get(ctx, "/meteo/", opts.values(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Write posts meteorological records in batches.
func (s MeteoService) Write(ctx context.Context, records []MeteoRecord) (int, error) {
	return writeBatched(ctx, s.Client, "/meteo/", records)
}
