package entity

const (
	MessageEmptyQuery   = "Please enter a city name"
	MessageCityNotFound = "City not found"
)

// SearchError is the inline error of the search panel.
type SearchError struct {
	Message string `json:"message"`
	Query   string `json:"query"`
}

func (e *SearchError) Error() string {
	if e.Query == "" {
		return e.Message
	}
	return e.Query + ": " + e.Message
}

// SearchState is owned by the city search view.
type SearchState struct {
	QueryText  string           `json:"queryText"`
	LastError  *SearchError     `json:"lastError,omitempty"`
	LastResult *WeatherSnapshot `json:"lastResult,omitempty"`
	Icon       IconKey          `json:"icon"`
}

// Clone returns a copy that shares no mutable memory with s.
func (s SearchState) Clone() SearchState {
	out := s
	if s.LastError != nil {
		e := *s.LastError
		out.LastError = &e
	}
	if s.LastResult != nil {
		r := *s.LastResult
		r.Forecast = append([]ForecastEntry(nil), s.LastResult.Forecast...)
		out.LastResult = &r
	}
	return out
}
