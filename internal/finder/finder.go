// Package finder implements the free-text part search used by the public
// catalog. Matching is shallow substring containment over every searchable
// field, scored so that name and code hits rank above incidental matches in
// long descriptions.
package finder

import (
	"sort"
	"strings"

	"motoparts/internal/domain"
)

// Field weights. A token can hit several fields; the best one counts.
const (
	weightName        = 5
	weightCode        = 4
	weightSubcategory = 3
	weightVehicle     = 3
	weightBrand       = 2
	weightOther       = 1
)

// Result pairs a matched record with its relevance score.
type Result struct {
	Record domain.Record
	Score  int
}

// Search ranks the records matching every token of the query. An empty query
// matches nothing; callers wanting "everything" list the catalog directly.
// Ties break on name so paging stays stable across polls.
func Search(records []domain.Record, query string) []Result {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil
	}
	var out []Result
	for _, r := range records {
		score, ok := scoreRecord(&r, tokens)
		if !ok {
			continue
		}
		out = append(out, Result{Record: r, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Record.Name < out[j].Record.Name
	})
	return out
}

// scoreRecord requires every token to hit at least one field and sums the
// best hit per token.
func scoreRecord(r *domain.Record, tokens []string) (int, bool) {
	total := 0
	for _, tok := range tokens {
		best := 0
		match := func(weight int, values ...string) {
			if weight <= best {
				return
			}
			for _, v := range values {
				if v != "" && strings.Contains(strings.ToLower(v), tok) {
					best = weight
					return
				}
			}
		}
		match(weightName, r.Name)
		match(weightCode, r.Code)
		match(weightSubcategory, r.Subcategory)
		match(weightVehicle, r.Applications...)
		match(weightVehicle, r.CompatibleModels...)
		match(weightBrand, r.Brand)
		match(weightOther, r.Description, r.OEM, r.Material, r.Specifications, r.Weight, r.Color, r.Warranty)
		if best == 0 {
			for _, v := range r.SpecificFields {
				if strings.Contains(strings.ToLower(v), tok) {
					best = weightOther
					break
				}
			}
		}
		if best == 0 {
			return 0, false
		}
		total += best
	}
	return total, true
}

func tokenize(query string) []string {
	var out []string
	for _, f := range strings.Fields(strings.ToLower(query)) {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
