package weather

// Report represents the JSON payload returned by the current weather endpoint.
type Report struct {
	Conditions   []Condition  `json:"weather"`
	Measurements Measurements `json:"main"`
	Wind         Wind         `json:"wind"`
	Name         string       `json:"name"`
	// Sys is absent in the minimal response shape.
	Sys *System `json:"sys,omitempty"`
}

// Condition holds the provider's coarse category and its description.
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Measurements holds metric readings: Celsius, percent and hPa.
type Measurements struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  float64 `json:"humidity"`
	Pressure  float64 `json:"pressure"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
}

// Wind holds speed in m/s and an optional direction in degrees.
type Wind struct {
	Speed float64  `json:"speed"`
	Deg   *float64 `json:"deg,omitempty"`
}

type System struct {
	Country string `json:"country"`
}

// Country returns the resolved ISO country code or an empty string.
func (r *Report) Country() string {
	if r.Sys == nil {
		return ""
	}
	return r.Sys.Country
}

// Forecast represents the JSON payload returned by the forecast endpoint.
type Forecast struct {
	List []ForecastEntry `json:"list"`
	City City            `json:"city"`
}

// ForecastEntry is a single 3-hour step of a forecast.
type ForecastEntry struct {
	Dt           int64        `json:"dt"`
	DtTxt        string       `json:"dt_txt"`
	Measurements Measurements `json:"main"`
	Conditions   []Condition  `json:"weather"`
	Wind         Wind         `json:"wind"`
}

type City struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}
