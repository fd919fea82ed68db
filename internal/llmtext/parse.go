// Package llmtext recovers structured data from untrusted model output.
package llmtext

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"trip_planner/internal/domain"
)

var ErrUnparseable = errors.New("llmtext: no structured data in response")

// Stage names the parser that produced a result.
type Stage string

const (
	StageNone     Stage = "none"
	StageStrict   Stage = "strict_json"
	StageArray    Stage = "array_regex"
	StageLenient  Stage = "lenient_regex"
	StageNumbered Stage = "numbered_list"
	StageColon    Stage = "colon_list"
)

var (
	reArray        = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
	reLenientArray = regexp.MustCompile(`\[\s*\{[^\[\]]*\}(?:\s*,\s*\{[^\[\]]*\})*\s*\]`)
	reNumbered     = regexp.MustCompile(`\n\s*\d+\.\s*`)
	reName         = regexp.MustCompile(`(?i)(?:Name|Title)\s*:?\s*([^\n]+)`)
	reDescription  = regexp.MustCompile(`(?i)(?:Description|About)\s*:?\s*([^\n]+(?:\n[^\n]+)*?)(?:\n|$)`)
	reRating       = regexp.MustCompile(`(?i)(?:Rating)\s*:?\s*(\d+(?:\.\d+)?)`)
	reRated        = regexp.MustCompile(`(?i)(?:Rating|rated)\s*:?\s*(\d+(?:\.\d+)?)`)
	reLocation     = regexp.MustCompile(`(?i)(?:Location|Place)\s*:?\s*([^\n]+)`)
	reNameColon    = regexp.MustCompile(`\n\s*([^\n:]+)\s*:`)
	reRatingTail   = regexp.MustCompile(`Rating.*`)
)

// Attractions tries, in order: the whole text as JSON, the widest
// bracketed array, a flat array of flat objects, a numbered list with
// labelled fields, and "Name: text" lines.
func Attractions(text string) ([]domain.RawRecord, Stage, error) {
	if recs, ok := strictArray(text); ok {
		return recs, StageStrict, nil
	}
	if m := reArray.FindString(text); m != "" {
		if recs, ok := decodeArray(m); ok {
			return recs, StageArray, nil
		}
	}
	if m := reLenientArray.FindString(text); m != "" {
		if recs, ok := decodeArray(m); ok {
			return recs, StageLenient, nil
		}
	}
	if recs := numberedList(text); len(recs) > 0 {
		return recs, StageNumbered, nil
	}
	if recs := colonList(text); len(recs) > 0 {
		return recs, StageColon, nil
	}
	return nil, StageNone, ErrUnparseable
}

// strictArray accepts a bare array or an object wrapping exactly one
// array of objects ({"attractions": [...]}).
func strictArray(text string) ([]domain.RawRecord, bool) {
	text = strings.TrimSpace(text)
	if recs, ok := decodeArray(text); ok {
		return recs, true
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, false
	}
	var found []domain.RawRecord
	for _, v := range obj {
		if recs, ok := decodeArray(string(v)); ok {
			if found != nil {
				return nil, false
			}
			found = recs
		}
	}
	return found, found != nil
}

func decodeArray(s string) ([]domain.RawRecord, bool) {
	var items []map[string]any
	if err := json.Unmarshal([]byte(s), &items); err != nil || len(items) == 0 {
		return nil, false
	}
	out := make([]domain.RawRecord, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, domain.RawRecord(it))
		}
	}
	return out, len(out) > 0
}

func numberedList(text string) []domain.RawRecord {
	sections := reNumbered.Split(text, -1)
	if len(sections) < 2 {
		return nil
	}
	var out []domain.RawRecord
	for _, sec := range sections[1:] {
		name := reName.FindStringSubmatch(sec)
		if name == nil {
			continue
		}
		rec := domain.RawRecord{"name": strings.TrimSpace(name[1])}
		if m := reDescription.FindStringSubmatch(sec); m != nil {
			rec["description"] = strings.TrimSpace(m[1])
		}
		if m := reRating.FindStringSubmatch(sec); m != nil {
			rec["rating"] = m[1]
		}
		if m := reLocation.FindStringSubmatch(sec); m != nil {
			rec["location_context"] = strings.TrimSpace(m[1])
		}
		out = append(out, rec)
	}
	return out
}

// colonList reads "\nName: text" blocks; each block runs to the next label.
func colonList(text string) []domain.RawRecord {
	idx := reNameColon.FindAllStringSubmatchIndex(text, -1)
	var out []domain.RawRecord
	for k, m := range idx {
		end := len(text)
		if k+1 < len(idx) {
			end = idx[k+1][0]
		}
		name := strings.TrimSpace(text[m[2]:m[3]])
		content := strings.TrimSpace(text[m[1]:end])
		if name == "" {
			continue
		}
		rec := domain.RawRecord{
			"name":        name,
			"description": strings.TrimSpace(reRatingTail.ReplaceAllString(content, "")),
		}
		if r := reRated.FindStringSubmatch(content); r != nil {
			rec["rating"] = r[1]
		}
		out = append(out, rec)
	}
	return out
}

// Object decodes a JSON object, falling back to the span between the
// first '{' and the last '}'.
func Object(text string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &obj); err == nil && obj != nil {
		return obj, nil
	}
	start, end := strings.Index(text, "{"), strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, ErrUnparseable
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil || obj == nil {
		return nil, ErrUnparseable
	}
	return obj, nil
}
