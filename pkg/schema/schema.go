// Package schema exports JSON Schemas for the generative-UI component
// payloads. The backend's prompt builder consumes these so the model emits
// bodies that pkg/render can actually display.
package schema

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"

	"github.com/hireterm/hireterm/pkg/render"
)

// Components returns the schema for every supported component tag
func Components() map[string]*jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
	}

	reflect := func(v any, title string) *jsonschema.Schema {
		s := r.Reflect(v)
		s.Title = title
		s.Version = ""
		return s
	}

	return map[string]*jsonschema.Schema{
		render.TagCandidateCard: reflect(&render.CandidateCard{}, "Candidate Summary Card"),
		render.TagJobCard:       reflect(&render.JobCard{}, "Job Summary Card"),
		render.TagRankedList:    reflect(&render.RankedList{}, "Ranked List"),
		render.TagSkillsChart:   reflect(&render.SkillsChart{}, "Skills Proficiency Chart"),
		render.TagMatchSummary:  reflect(&render.MatchSummary{}, "Match Score Summary"),
	}
}

// MarshalIndent renders the component schemas as a single JSON document
// keyed by tag, with stable key order.
func MarshalIndent() ([]byte, error) {
	components := Components()

	tags := make([]string, 0, len(components))
	for tag := range components {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	ordered := make(map[string]json.RawMessage, len(components))
	for tag, s := range components {
		data, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal schema for %s: %w", tag, err)
		}
		ordered[tag] = data
	}

	return json.MarshalIndent(ordered, "", "  ")
}
