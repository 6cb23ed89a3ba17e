package external

import "encoding/json"

// CoordDTO is the "coord" object of the current weather response
type CoordDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ConditionDTO is one element of the "weather" array
type ConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO holds temperatures and humidity
type MainDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  float64 `json:"humidity"`
}

// WindDTO holds wind data
type WindDTO struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

// SysDTO holds the country code
type SysDTO struct {
	Country string `json:"country"`
}

// CurrentWeatherResponse represents the response of GET /weather
type CurrentWeatherResponse struct {
	Coord      CoordDTO       `json:"coord"`
	Weather    []ConditionDTO `json:"weather"`
	Main       MainDTO        `json:"main"`
	Visibility float64        `json:"visibility"`
	Wind       WindDTO        `json:"wind"`
	Dt         int64          `json:"dt"`
	Sys        SysDTO         `json:"sys"`
	Name       string         `json:"name"`
	Cod        json.Number    `json:"cod"`
}

// ForecastItemDTO is one sample of the forecast list
type ForecastItemDTO struct {
	Dt      int64          `json:"dt"`
	Main    MainDTO        `json:"main"`
	Weather []ConditionDTO `json:"weather"`
	Wind    WindDTO        `json:"wind"`
	DtTxt   string         `json:"dt_txt"`
}

// ForecastCityDTO describes the place a forecast belongs to
type ForecastCityDTO struct {
	Name    string   `json:"name"`
	Country string   `json:"country"`
	Coord   CoordDTO `json:"coord"`
}

// ForecastResponse represents the response of GET /forecast
type ForecastResponse struct {
	Cod  json.Number       `json:"cod"`
	Cnt  int               `json:"cnt"`
	List []ForecastItemDTO `json:"list"`
	City ForecastCityDTO   `json:"city"`
}

// APIErrorResponse represents error responses from OpenWeatherMap; cod is a string or a number.
// In xml mode the same fields arrive as child elements of <ClientError>.
type APIErrorResponse struct {
	Cod     json.Number `json:"cod" xml:"cod"`
	Message string      `json:"message" xml:"message"`
}
