package compose

import (
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// rootField is how gojsonschema reports errors on the top-level object.
const rootField = "(root)"

var requiredSections = []string{"summary", "travel_details", "accommodation", "daily_plans", "tips"}

const itinerarySchema = `{
  "type": "object",
  "required": ["summary", "travel_details", "accommodation", "daily_plans", "tips"],
  "properties": {
    "summary":        {"type": "string", "minLength": 1},
    "travel_details": {"type": "string", "minLength": 1},
    "accommodation":  {"type": "string", "minLength": 1},
    "daily_plans": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["date", "morning", "afternoon", "evening"],
        "properties": {
          "date":      {"type": "string"},
          "morning":   {"type": "string", "minLength": 1},
          "afternoon": {"type": "string", "minLength": 1},
          "evening":   {"type": "string", "minLength": 1}
        }
      }
    },
    "tips": {"type": "array", "minItems": 5, "items": {"type": "string", "minLength": 1}}
  }
}`

// report groups schema violations by itinerary section.
type report struct {
	missing  []string     // required top-level keys that are absent
	sections map[string]bool
	days     map[int]bool // invalid daily_plans entries by index
	plansBad bool         // daily_plans itself is not an array
}

func (r report) invalid(section string) bool { return r.sections[section] }

type validator struct {
	schema *gojsonschema.Schema
}

func newValidator() (*validator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(itinerarySchema))
	if err != nil {
		return nil, err
	}
	return &validator{schema: s}, nil
}

func (v *validator) check(obj map[string]any) (report, error) {
	rep := report{sections: map[string]bool{}, days: map[int]bool{}}
	res, err := v.schema.Validate(gojsonschema.NewGoLoader(obj))
	if err != nil {
		return rep, err
	}
	for _, e := range res.Errors() {
		field := e.Field()
		if field == rootField {
			if e.Type() == "required" {
				if p, ok := e.Details()["property"].(string); ok {
					rep.missing = append(rep.missing, p)
				}
			}
			continue
		}
		parts := strings.Split(field, ".")
		rep.sections[parts[0]] = true
		if parts[0] != "daily_plans" {
			continue
		}
		if len(parts) == 1 {
			rep.plansBad = true
			continue
		}
		if i, err := strconv.Atoi(parts[1]); err == nil {
			rep.days[i] = true
		}
	}
	return rep, nil
}
