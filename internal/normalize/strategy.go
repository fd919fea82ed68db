// Package normalize turns raw source records into canonical records.
// Free-text extraction is expressed as ordered lists of pure strategies;
// the first strategy that yields a value wins.
package normalize

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Strategy extracts one value from free text.
type Strategy[T any] func(text string) (T, bool)

// First runs strategies in order and returns the first hit.
func First[T any](text string, strategies ...Strategy[T]) (T, bool) {
	for _, s := range strategies {
		if v, ok := s(text); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

const minRouteKM = 200

var (
	reGroupedKM   = regexp.MustCompile(`([\d,]{4,})\s*km`)
	reDistanceIs  = regexp.MustCompile(`(?i)distance\s+(?:is|of)\s+([\d,]{4,})\s*km`)
	reGeneralKM   = regexp.MustCompile(`(?i)(\d{3,})\s*(?:km|kilometers)`)
	reTimeDistKM  = regexp.MustCompile(`(\d+)\s*hr\s*(\d+)\s*min\s*\(\s*([\d,]+)\s*km\)`)
	reCardKM      = regexp.MustCompile(`(?is)(\d+)\s*(?:hr|hour).*?(\d+)\s*km`)
	reDuration    = regexp.MustCompile(`(\d+)\s*hr\s*(\d*)|(\d+)\s*min`)
	reVia         = regexp.MustCompile(`(?i)via\s+([^.\n]+)`)
	reNumber      = regexp.MustCompile(`\d+(?:\.\d+)?`)
	rePrice       = regexp.MustCompile(`(?:₹|Rs\.?|INR)\s*([0-9][0-9,]*(?:\.\d+)?)`)
	reClock       = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})(?:\s*([AP])\.?M\.?)?`)
	reFlightDur   = regexp.MustCompile(`(?i)(\d+)\s*h(?:r|rs|ours?)?\s*(?:(\d+)\s*m(?:in)?)?`)
	reISODur      = regexp.MustCompile(`(?i)^PT(?:(\d+)H)?(?:(\d+)M)?$`)
	reFlightNum   = regexp.MustCompile(`\b([A-Z][A-Z0-9]|[0-9][A-Z])[-\s]?([0-9]{3,4})\b`)
	reRatingLabel = regexp.MustCompile(`(?i)\b(\d(?:\.\d)?)\s*(?:/\s*(5|10)|out of\s*(5|10)|stars?|rating)`)
)

// distances parses comma-grouped numbers, keeps those above minRouteKM and
// returns them largest first.
func distances(matches [][]string, group int) []float64 {
	var out []float64
	for _, m := range matches {
		n, err := strconv.Atoi(strings.ReplaceAll(m[group], ",", ""))
		if err != nil || n <= minRouteKM {
			continue
		}
		out = append(out, float64(n))
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	return out
}

// PageDistance returns the strategy cascade for a scraped route page.
// Route index i takes the i-th largest grouped distance when present.
func PageDistance(i int) []Strategy[float64] {
	return []Strategy[float64]{
		func(s string) (float64, bool) {
			ds := distances(reGroupedKM.FindAllStringSubmatch(s, -1), 1)
			if len(ds) == 0 {
				return 0, false
			}
			if i < len(ds) {
				return ds[i], true
			}
			if i == 0 {
				return ds[0], true
			}
			return 0, false
		},
		func(s string) (float64, bool) {
			ds := distances(reDistanceIs.FindAllStringSubmatch(s, -1), 1)
			return firstOf(ds)
		},
		func(s string) (float64, bool) {
			ds := distances(reGeneralKM.FindAllStringSubmatch(s, -1), 1)
			return firstOf(ds)
		},
		func(s string) (float64, bool) {
			ds := distances(reTimeDistKM.FindAllStringSubmatch(s, -1), 3)
			return firstOf(ds)
		},
	}
}

// CardDistance reads "15 hr 5 min 847 km" style route cards.
func CardDistance(s string) (float64, bool) {
	m := reCardKM.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[2], 64)
	return f, err == nil && f > 0
}

// TimeDistanceDuration reads the duration out of "H hr M min (N km)".
func TimeDistanceDuration(s string) (string, bool) {
	for _, m := range reTimeDistKM.FindAllStringSubmatch(s, -1) {
		n, err := strconv.Atoi(strings.ReplaceAll(m[3], ",", ""))
		if err == nil && n > minRouteKM {
			return fmt.Sprintf("%s hr %s min", m[1], m[2]), true
		}
	}
	return "", false
}

// NumericDistance parses a bare distance field ("1,339 km", "635").
func NumericDistance(s string) (float64, bool) {
	m := reNumber.FindString(strings.ReplaceAll(s, ",", ""))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	return f, err == nil && f > 0
}

// RouteDuration formats "H hr M min" or "M min" found in free text.
func RouteDuration(s string) (string, bool) {
	m := reDuration.FindStringSubmatch(s)
	switch {
	case m == nil:
		return "", false
	case m[1] != "":
		mins := m[2]
		if mins == "" {
			mins = "0"
		}
		return fmt.Sprintf("%s hr %s min", m[1], mins), true
	default:
		return m[3] + " min", true
	}
}

// Via returns "Via X" for "via X." in free text.
func Via(s string) (string, bool) {
	m := reVia.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	if v == "" {
		return "", false
	}
	return "Via " + v, true
}

// Amount strips currency symbols and separators and parses the first
// number ("₹ 1,450" -> 1450).
func Amount(s string) (float64, bool) {
	if m := rePrice.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	m := reNumber.FindString(strings.ReplaceAll(s, ",", ""))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	return f, err == nil
}

// PriceInText finds a currency-marked price inside a larger block.
func PriceInText(s string) (float64, bool) {
	m := rePrice.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	return Amount(m[1])
}

// RatingNumber extracts the first integer[.fraction] token. Values on a
// 10 scale are halved.
func RatingNumber(s string) (float64, bool) {
	m := reNumber.FindString(strings.ReplaceAll(s, ",", "."))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || f <= 0 || f > 10 {
		return 0, false
	}
	if f > 5 {
		f /= 2
	}
	return f, true
}

// RatingInText finds a labelled rating ("4.5/5", "8.6 out of 10").
func RatingInText(s string) (float64, bool) {
	m := reRatingLabel.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	if m[2] == "10" || m[3] == "10" || f > 5 {
		f /= 2
	}
	return f, true
}

// Clock parses "6:05", "06:05", "6:05 PM" into minutes after midnight.
func Clock(s string) (int, bool) {
	m := reClock.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	switch strings.ToUpper(m[3]) {
	case "P":
		if h < 12 {
			h += 12
		}
	case "A":
		if h == 12 {
			h = 0
		}
	}
	if h > 23 || mi > 59 {
		return 0, false
	}
	return h*60 + mi, true
}

// Clocks returns every clock time in s, in order.
func Clocks(s string) []int {
	var out []int
	for _, loc := range reClock.FindAllStringIndex(s, -1) {
		if v, ok := Clock(s[loc[0]:loc[1]]); ok {
			out = append(out, v)
		}
	}
	return out
}

// FlightMinutes parses "2h 30m", "2 hr 30 min", "PT2H30M".
func FlightMinutes(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if m := reISODur.FindStringSubmatch(s); m != nil && (m[1] != "" || m[2] != "") {
		h, _ := strconv.Atoi(m[1])
		mi, _ := strconv.Atoi(m[2])
		return h*60 + mi, true
	}
	m := reFlightDur.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	return h*60 + mi, h+mi > 0
}

// FlightNumberIn finds "6E-2134", "AI 505" style codes.
func FlightNumberIn(s string) (string, bool) {
	m := reFlightNum.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1] + "-" + m[2], true
}

func firstOf(ds []float64) (float64, bool) {
	if len(ds) == 0 {
		return 0, false
	}
	return ds[0], true
}

func formatClock(mins int) string {
	mins = ((mins % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

func formatFlightDuration(mins int) string {
	return fmt.Sprintf("%dh %02dm", mins/60, mins%60)
}
