package shared

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"trip_planner/internal/cost"
)

type Config struct {
	AppEnv        string
	LogLevel      string
	HTTPAddr      string
	MetricsAddr   string
	PlanTimeout   time.Duration
	SourceTimeout time.Duration
	Attempts      int
	Backoff       time.Duration
	SourceRPS     int
	Currency      string

	PlacesBase string
	PlacesHost string
	PlacesKey  string
	LLMBase    string
	LLMKey     string
	LLMModel   string

	MapsBase      string
	FlightsSearch string
	HotelsGoogle  string
	HotelsBooking string
	HotelsGoibibo string
	HotelsMMT     string

	Cost cost.Config
}

// Load reads .env when present, then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg(".env ignored")
	}
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	dc := cost.DefaultConfig()
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		LogLevel:      env("LOG_LEVEL", "info"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ""),
		PlanTimeout:   time.Duration(atoi("PLAN_TIMEOUT_SECONDS", 120)) * time.Second,
		SourceTimeout: time.Duration(atoi("ADAPTER_TIMEOUT_SECONDS", 30)) * time.Second,
		Attempts:      atoi("ACQUIRE_ATTEMPTS", 3),
		Backoff:       time.Duration(atoi("ACQUIRE_BACKOFF_MS", 2000)) * time.Millisecond,
		SourceRPS:     atoi("SOURCE_RPS", 5),
		Currency:      env("CURRENCY_SYMBOL", "₹"),

		PlacesBase: env("PLACES_BASE_URL", "https://google-map-places-new-v2.p.rapidapi.com"),
		PlacesHost: env("PLACES_HOST", "google-map-places-new-v2.p.rapidapi.com"),
		PlacesKey:  env("PLACES_API_KEY", ""),
		LLMBase:    env("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMKey:     env("LLM_API_KEY", ""),
		LLMModel:   env("LLM_MODEL", "llama3-70b-8192"),

		MapsBase:      env("MAPS_BASE_URL", "https://www.google.com"),
		FlightsSearch: env("FLIGHTS_SEARCH_URL", "https://www.google.com/search"),
		HotelsGoogle:  env("HOTELS_GOOGLE_URL", "https://www.google.com"),
		HotelsBooking: env("HOTELS_BOOKING_URL", "https://www.booking.com"),
		HotelsGoibibo: env("HOTELS_GOIBIBO_URL", "https://www.goibibo.com"),
		HotelsMMT:     env("HOTELS_MMT_URL", "https://www.makemytrip.com"),

		Cost: cost.Config{
			FuelPricePerLiter:    atof("FUEL_PRICE_PER_LITER", dc.FuelPricePerLiter),
			MileageKMPL:          atof("CAR_MILEAGE_KMPL", dc.MileageKMPL),
			FuelFallback:         atof("FUEL_FALLBACK_COST", dc.FuelFallback),
			FlightFallback:       atof("FLIGHT_FALLBACK_COST", dc.FlightFallback),
			HotelReference:       atof("HOTEL_REFERENCE_RATE", dc.HotelReference),
			HotelBandLow:         atof("HOTEL_BAND_LOW", dc.HotelBandLow),
			HotelBandHigh:        atof("HOTEL_BAND_HIGH", dc.HotelBandHigh),
			FoodPerDay:           atof("FOOD_PER_DAY", dc.FoodPerDay),
			LocalTransportPerDay: atof("LOCAL_TRANSPORT_PER_DAY", dc.LocalTransportPerDay),
		},
	}
	if c.PlacesKey == "" {
		log.Warn().Msg("PLACES_API_KEY is empty, places sources disabled")
	}
	if c.LLMKey == "" {
		log.Warn().Msg("LLM_API_KEY is empty, itineraries use the template")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
