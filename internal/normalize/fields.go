package normalize

import (
	"strconv"
	"strings"

	"trip_planner/internal/domain"
)

/********** alias registries (single source of truth) **********/

var routeAliases = map[string][]string{
	"index":    {"index", "position", "rank"},
	"text":     {"text", "card", "card_text", "summary"},
	"page":     {"page_text", "page", "content"},
	"distance": {"distance_km", "distance", "length", "legs.distance"},
	"duration": {"duration", "time", "travel_time", "legs.duration"},
	"via":      {"via", "route", "summary_via"},
}

var flightAliases = map[string][]string{
	"text":      {"text", "card", "card_text"},
	"airline":   {"airline", "carrier", "airline_name", "operator"},
	"number":    {"flight_number", "flightNumber", "number", "code"},
	"departure": {"departure", "departure_time", "depart", "dep"},
	"arrival":   {"arrival", "arrival_time", "arrive", "arr"},
	"duration":  {"duration", "travel_time", "journey_time"},
	"price":     {"price", "fare", "amount", "price.total"},
}

var hotelAliases = map[string][]string{
	"text":      {"text", "card", "card_text"},
	"name":      {"name", "hotel_name", "title", "displayName.text"},
	"location":  {"location", "address", "locality", "area"},
	"price":     {"price", "rate", "nightly_price", "price.amount"},
	"rating":    {"rating", "score", "review_score", "stars"},
	"amenities": {"amenities", "facilities", "features"},
}

var attractionAliases = map[string][]string{
	"name":        {"name", "title", "displayName.text", "display_name"},
	"description": {"description", "about", "editorial.snippet.text", "editorialSummary.text", "summary"},
	"rating":      {"rating", "score", "stars"},
	"context":     {"location_context", "location", "place", "formattedAddress", "address"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		var obj map[string]any
		switch t := cur.(type) {
		case map[string]any:
			obj = t
		case domain.RawRecord:
			obj = t
		default:
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns a trimmed string (or a formatted number) at path.
func lookupStr(m map[string]any, path string) string {
	switch v := lookupAny(m, path).(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	}
	return ""
}

// firstAlias: first non-empty string for a named alias set.
func firstAlias(m map[string]any, aliases map[string][]string, key string) *string {
	for _, p := range aliases[key] {
		if s := lookupStr(m, p); s != "" {
			return &s
		}
	}
	return nil
}

// floatAlias: number from an alias set (float64/int/string like "4,5").
func floatAlias(m map[string]any, aliases map[string][]string, key string) *float64 {
	for _, k := range aliases[key] {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		}
	}
	return nil
}

func intAlias(m map[string]any, aliases map[string][]string, key string) (int, bool) {
	for _, k := range aliases[key] {
		switch v := lookupAny(m, k).(type) {
		case float64:
			return int(v), true
		case int:
			return v, true
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

// sliceAlias accepts []any of strings or {name}, []string, or a
// comma-separated string.
func sliceAlias(m map[string]any, aliases map[string][]string, key string) []string {
	for _, k := range aliases[key] {
		var out []string
		switch raw := lookupAny(m, k).(type) {
		case []string:
			for _, s := range raw {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		case []any:
			for _, it := range raw {
				switch t := it.(type) {
				case string:
					if t = strings.TrimSpace(t); t != "" {
						out = append(out, t)
					}
				case map[string]any:
					if n, ok := t["name"].(string); ok && n != "" {
						out = append(out, n)
					}
				}
			}
		case string:
			for _, s := range strings.Split(raw, ",") {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// gaps records back-filled field names in order.
type gaps []string

func (g *gaps) add(field string) { *g = append(*g, field) }

func (g gaps) list() []string {
	if len(g) == 0 {
		return nil
	}
	return []string(g)
}
