package world

import "math/rand"

type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherCloudy Weather = "cloudy"
	WeatherRainy  Weather = "rainy"
)

// RollWeather picks the weather for a new day.
func RollWeather(rng *rand.Rand) Weather {
	switch roll := rng.Float64(); {
	case roll < 0.6:
		return WeatherSunny
	case roll < 0.85:
		return WeatherCloudy
	default:
		return WeatherRainy
	}
}
