package external

import (
	"encoding/xml"
	"time"
)

const (
	xmlTimeLayout     = "2006-01-02T15:04:05"
	forecastTxtLayout = "2006-01-02 15:04:05"
)

// ValueXML is the common `value="..."` attribute element
type ValueXML struct {
	Value float64 `xml:"value,attr"`
}

// CoordXML is the <coord lon lat/> element of the current weather document
type CoordXML struct {
	Lon float64 `xml:"lon,attr"`
	Lat float64 `xml:"lat,attr"`
}

// CityXML is the <city> element of the current weather document
type CityXML struct {
	Name    string   `xml:"name,attr"`
	Coord   CoordXML `xml:"coord"`
	Country string   `xml:"country"`
}

// WeatherXML is the <weather number value icon/> element
type WeatherXML struct {
	Number int    `xml:"number,attr"`
	Value  string `xml:"value,attr"`
	Icon   string `xml:"icon,attr"`
}

// WindXML is the <wind> element
type WindXML struct {
	Speed ValueXML `xml:"speed"`
}

// LastUpdateXML is the <lastupdate value/> element, in UTC
type LastUpdateXML struct {
	Value string `xml:"value,attr"`
}

// CurrentWeatherXML represents GET /weather?mode=xml
type CurrentWeatherXML struct {
	XMLName     xml.Name      `xml:"current"`
	City        CityXML       `xml:"city"`
	Temperature ValueXML      `xml:"temperature"`
	FeelsLike   ValueXML      `xml:"feels_like"`
	Humidity    ValueXML      `xml:"humidity"`
	Wind        WindXML       `xml:"wind"`
	Visibility  ValueXML      `xml:"visibility"`
	Weather     WeatherXML    `xml:"weather"`
	LastUpdate  LastUpdateXML `xml:"lastupdate"`
}

// ToCurrentWeatherResponse maps the XML document onto the JSON response shape
func (c *CurrentWeatherXML) ToCurrentWeatherResponse() *CurrentWeatherResponse {
	var dt int64
	if updated, err := time.Parse(xmlTimeLayout, c.LastUpdate.Value); err == nil {
		dt = updated.Unix()
	}
	return &CurrentWeatherResponse{
		Coord: CoordDTO{Lat: c.City.Coord.Lat, Lon: c.City.Coord.Lon},
		Weather: []ConditionDTO{{
			ID:          c.Weather.Number,
			Main:        ConditionMainForID(c.Weather.Number),
			Description: c.Weather.Value,
			Icon:        c.Weather.Icon,
		}},
		Main: MainDTO{
			Temp:      c.Temperature.Value,
			FeelsLike: c.FeelsLike.Value,
			Humidity:  c.Humidity.Value,
		},
		Visibility: c.Visibility.Value,
		Wind:       WindDTO{Speed: c.Wind.Speed.Value},
		Dt:         dt,
		Sys:        SysDTO{Country: c.City.Country},
		Name:       c.City.Name,
		Cod:        "200",
	}
}

// ForecastPositionXML is the nested <location latitude longitude/> element
type ForecastPositionXML struct {
	Latitude  float64 `xml:"latitude,attr"`
	Longitude float64 `xml:"longitude,attr"`
}

// ForecastLocationXML is the <location> element of the forecast document
type ForecastLocationXML struct {
	Name     string              `xml:"name"`
	Country  string              `xml:"country"`
	Position ForecastPositionXML `xml:"location"`
}

// SymbolXML is the <symbol number name var/> element of a forecast sample
type SymbolXML struct {
	Number int    `xml:"number,attr"`
	Name   string `xml:"name,attr"`
	Var    string `xml:"var,attr"`
}

// WindSpeedXML is the <windSpeed mps/> element of a forecast sample
type WindSpeedXML struct {
	Mps float64 `xml:"mps,attr"`
}

// ForecastTimeXML is one <time from to> sample
type ForecastTimeXML struct {
	From        string       `xml:"from,attr"`
	Symbol      SymbolXML    `xml:"symbol"`
	WindSpeed   WindSpeedXML `xml:"windSpeed"`
	Temperature ValueXML     `xml:"temperature"`
	FeelsLike   ValueXML     `xml:"feels_like"`
	Humidity    ValueXML     `xml:"humidity"`
}

// ForecastXML represents GET /forecast?mode=xml
type ForecastXML struct {
	XMLName  xml.Name            `xml:"weatherdata"`
	Location ForecastLocationXML `xml:"location"`
	Times    []ForecastTimeXML   `xml:"forecast>time"`
}

// ToForecastResponse maps the XML document onto the JSON response shape, keeping sample order
func (f *ForecastXML) ToForecastResponse() *ForecastResponse {
	list := make([]ForecastItemDTO, 0, len(f.Times))
	for _, sample := range f.Times {
		item := ForecastItemDTO{
			Main: MainDTO{
				Temp:      sample.Temperature.Value,
				FeelsLike: sample.FeelsLike.Value,
				Humidity:  sample.Humidity.Value,
			},
			Weather: []ConditionDTO{{
				ID:          sample.Symbol.Number,
				Main:        ConditionMainForID(sample.Symbol.Number),
				Description: sample.Symbol.Name,
				Icon:        sample.Symbol.Var,
			}},
			Wind: WindDTO{Speed: sample.WindSpeed.Mps},
		}
		if from, err := time.Parse(xmlTimeLayout, sample.From); err == nil {
			item.Dt = from.Unix()
			item.DtTxt = from.Format(forecastTxtLayout)
		}
		list = append(list, item)
	}
	return &ForecastResponse{
		Cod:  "200",
		Cnt:  len(list),
		List: list,
		City: ForecastCityDTO{
			Name:    f.Location.Name,
			Country: f.Location.Country,
			Coord:   CoordDTO{Lat: f.Location.Position.Latitude, Lon: f.Location.Position.Longitude},
		},
	}
}

// ConditionMainForID derives the JSON "main" group from a condition code, which the
// XML documents only carry as a number.
func ConditionMainForID(id int) string {
	switch {
	case id >= 200 && id < 300:
		return "Thunderstorm"
	case id >= 300 && id < 400:
		return "Drizzle"
	case id >= 500 && id < 600:
		return "Rain"
	case id >= 600 && id < 700:
		return "Snow"
	case id == 800:
		return "Clear"
	case id > 800 && id < 900:
		return "Clouds"
	}
	if main, ok := atmosphereGroups[id]; ok {
		return main
	}
	return ""
}

var atmosphereGroups = map[int]string{
	701: "Mist",
	711: "Smoke",
	721: "Haze",
	731: "Dust",
	741: "Fog",
	751: "Sand",
	761: "Dust",
	762: "Ash",
	771: "Squall",
	781: "Tornado",
}
