// Package icon holds the condition tables shared by the location and search views.
package icon

import "go-widget/internal/domain/entity"

var conditionIcons = map[string]entity.IconKey{
	"Haze":         entity.IconClearDay,
	"Clouds":       entity.IconCloudy,
	"Rain":         entity.IconRain,
	"Snow":         entity.IconSnow,
	"Dust":         entity.IconWind,
	"Drizzle":      entity.IconSleet,
	"Fog":          entity.IconFog,
	"Smoke":        entity.IconFog,
	"Tornado":      entity.IconWind,
	"Thunderstorm": entity.IconThunderstorm,
}

var conditionBackgrounds = map[string]entity.Background{
	"Haze":         entity.BackgroundFog,
	"Clouds":       entity.BackgroundClouds,
	"Rain":         entity.BackgroundRain,
	"Snow":         entity.BackgroundSnow,
	"Dust":         entity.BackgroundFog,
	"Drizzle":      entity.BackgroundRain,
	"Fog":          entity.BackgroundFog,
	"Smoke":        entity.BackgroundFog,
	"Tornado":      entity.BackgroundTornado,
	"Thunderstorm": entity.BackgroundThunderstorm,
	"Clear":        entity.BackgroundClear,
}

// MapConditionToIcon maps a provider condition such as "Rain" to an icon key.
// Unknown conditions, including "Clear", use the clear-day icon.
func MapConditionToIcon(conditionMain string) entity.IconKey {
	if key, ok := conditionIcons[conditionMain]; ok {
		return key
	}
	return entity.IconClearDay
}

// BackgroundFor maps a provider condition to its background animation.
func BackgroundFor(conditionMain string) entity.Background {
	if bg, ok := conditionBackgrounds[conditionMain]; ok {
		return bg
	}
	return entity.BackgroundClear
}
