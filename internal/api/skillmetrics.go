package api

import (
	"context"
	"net/url"

	"github.com/sapphire-forecast/sapphire-cli/internal/validation"
)

// SkillMetricRecord holds forecast verification scores for one station,
// horizon, and model.
type SkillMetricRecord struct {
	ID          int64    `json:"id,omitempty"`
	HorizonType string   `json:"horizon_type"`
	Code        string   `json:"code"`
	Model       string   `json:"model"`
	MAE         *float64 `json:"mae,omitempty"`
	RMSE        *float64 `json:"rmse,omitempty"`
	NSE         *float64 `json:"nse,omitempty"`
	KGE         *float64 `json:"kge,omitempty"`
	Bias        *float64 `json:"bias,omitempty"`
	R2          *float64 `json:"r2,omitempty"`
	PBias       *float64 `json:"pbias,omitempty"`
}

// SkillMetricListOptions filter a skill-metric read.
type SkillMetricListOptions struct {
	Horizon string
	Code    string
	Model   string
	ListOptions
}

func (o SkillMetricListOptions) validate() error {
	if err := validation.Enum(o.Horizon, ValidHorizons, "horizon"); err != nil {
		return err
	}
	if err := validation.Enum(o.Model, ValidForecastModels, "model"); err != nil {
		return err
	}
	return o.ListOptions.validate()
}

func (o SkillMetricListOptions) values() url.Values {
	v := o.ListOptions.values()
	setParam(v, "horizon", o.Horizon)
	setParam(v, "code", o.Code)
	setParam(v, "model", o.Model)
	return v
}

// List reads skill metrics matching opts.
func (s SkillMetricsService) List(ctx context.Context, opts SkillMetricListOptions) ([]SkillMetricRecord, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var records []SkillMetricRecord
	if err := s.get(ctx, "/skill-metrics/", opts.values(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Write posts skill metric records in batches.
func (s SkillMetricsService) Write(ctx context.Context, records []SkillMetricRecord) (int, error) {
	return writeBatched(ctx, s.Client, "/skill-metrics/", records)
}
