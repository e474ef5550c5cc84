package api

import (
	"net/url"
	"strconv"

	"github.com/sapphire-forecast/sapphire-cli/internal/validation"
)

// DefaultLimit is the page size used when a list request leaves Limit unset.
const DefaultLimit = 100

// Valid enum values for API parameters.
var (
	ValidHorizons       = []string{"day", "pentad", "decade", "month", "season", "year"}
	ValidMeteoTypes     = []string{"T", "P"}
	ValidSnowTypes      = []string{"HS", "ROF", "SWE"}
	ValidForecastModels = []string{"TFT", "TiDE", "TSMixer", "LR", "EM", "NE"}
)

// ListOptions are the pagination parameters shared by every list endpoint.
type ListOptions struct {
	Skip  int
	Limit int // 0 means DefaultLimit
}

func (o ListOptions) limit() int {
	if o.Limit == 0 {
		return DefaultLimit
	}
	return o.Limit
}

func (o ListOptions) validate() error {
	if err := validation.NonNegativeInt(o.Skip, "skip"); err != nil {
		return err
	}
	return validation.PositiveInt(o.limit(), "limit")
}

// values returns the pagination query parameters. skip and limit are always
// sent; resource filters are layered on top by each service.
func (o ListOptions) values() url.Values {
	v := url.Values{}
	v.Set("skip", strconv.Itoa(o.Skip))
	v.Set("limit", strconv.Itoa(o.limit()))
	return v
}

// setParam adds key=value to v unless value is empty. Omitted filters are
// never sent as empty query strings.
func setParam(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
