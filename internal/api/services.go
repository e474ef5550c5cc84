package api

// Service accessors group Client methods by resource. Each service embeds
// *Client so it shares the owning client's configuration and connection pool.

type RunoffService struct{ *Client }

type HydrographService struct{ *Client }

type MeteoService struct{ *Client }

type SnowService struct{ *Client }

type ForecastsService struct{ *Client }

type LRForecastsService struct{ *Client }

type SkillMetricsService struct{ *Client }

func (c *PreprocessingClient) Runoff() RunoffService {
	return RunoffService{c.Client}
}

func (c *PreprocessingClient) Hydrograph() HydrographService {
	return HydrographService{c.Client}
}

func (c *PreprocessingClient) Meteo() MeteoService {
	return MeteoService{c.Client}
}

func (c *PreprocessingClient) Snow() SnowService {
	return SnowService{c.Client}
}

func (c *PostprocessingClient) Forecasts() ForecastsService {
	return ForecastsService{c.Client}
}

func (c *PostprocessingClient) LRForecasts() LRForecastsService {
	return LRForecastsService{c.Client}
}

func (c *PostprocessingClient) SkillMetrics() SkillMetricsService {
	return SkillMetricsService{c.Client}
}
