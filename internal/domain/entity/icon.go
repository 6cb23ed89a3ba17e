package entity

// IconKey selects the animated weather icon shown by the widget.
type IconKey string

const (
	IconClearDay     IconKey = "CLEAR_DAY"
	IconCloudy       IconKey = "CLOUDY"
	IconRain         IconKey = "RAIN"
	IconSnow         IconKey = "SNOW"
	IconWind         IconKey = "WIND"
	IconSleet        IconKey = "SLEET"
	IconFog          IconKey = "FOG"
	IconThunderstorm IconKey = "THUNDERSTORM"
)

// Background names the animation drawn behind the current conditions.
type Background string

const (
	BackgroundClear        Background = "clear"
	BackgroundClouds       Background = "clouds"
	BackgroundFog          Background = "fog"
	BackgroundRain         Background = "rain"
	BackgroundSnow         Background = "snow"
	BackgroundTornado      Background = "tornado"
	BackgroundThunderstorm Background = "thunderstorm"
)
