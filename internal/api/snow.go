package api

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/sapphire-forecast/sapphire-cli/internal/validation"
)

// SnowRecord is one snow measurement: height ("HS"), runoff ("ROF"), or
// snow water equivalent ("SWE"). Zones carries the optional per-elevation
// zone values (value1 through value14 on the wire).
type SnowRecord struct {
	ID       int64    `json:"id,omitempty"`
	SnowType string   `json:"snow_type"`
	Code     string   `json:"code"`
	Date     string   `json:"date"`
	Value    *float64 `json:"value"`
	Norm     *float64 `json:"norm,omitempty"`
	Zone1    *float64 `json:"value1,omitempty"`
	Zone2    *float64 `json:"value2,omitempty"`
	Zone3    *float64 `json:"value3,omitempty"`
	Zone4    *float64 `json:"value4,omitempty"`
	Zone5    *float64 `json:"value5,omitempty"`
	Zone6    *float64 `json:"value6,omitempty"`
	Zone7    *float64 `json:"value7,omitempty"`
	Zone8    *float64 `json:"value8,omitempty"`
	Zone9    *float64 `json:"value9,omitempty"`
	Zone10   *float64 `json:"value10,omitempty"`
	Zone11   *float64 `json:"value11,omitempty"`
	Zone12   *float64 `json:"value12,omitempty"`
	Zone13   *float64 `json:"value13,omitempty"`
	Zone14   *float64 `json:"value14,omitempty"`
}

// SnowListOptions filter a snow read.
type SnowListOptions struct {
	SnowType  string
	Code      string
	StartDate string
	EndDate   string
	ListOptions
}

func (o SnowListOptions) validate() error {
	if err := validation.Enum(o.SnowType, ValidSnowTypes, "snow_type"); err != nil {
		return err
	}
	return o.ListOptions.validate()
}

func (o SnowListOptions) values() url.Values {
	v := o.ListOptions.values()
	setParam(v, "snow_type", o.SnowType)
	setParam(v, "code", o.Code)
	setParam(v, "start_date", o.StartDate)
	setParam(v, "end_date", o.EndDate)
	return v
}

// List reads snow records matching opts.
func (s SnowService) List(ctx context.Context, opts SnowListOptions) ([]SnowRecord, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	slog.Info("reading snow data", "snow_type", opts.SnowType, "code", opts.Code)

	var records []SnowRecord
	if err := s.get(ctx, "/snow/", opts.values(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Write posts snow records in batches.
func (s SnowService) Write(ctx context.Context, records []SnowRecord) (int, error) {
	return writeBatched(ctx, s.Client, "/snow/", records)
}
