package rating

import "math/rand"

// tieEpsilon bounds how close two ratings must be to be treated as a
// tie for acceptance purposes.
const tieEpsilon = 1e-9

// Candidate is one (u,v) rating result offered to SelectBest.
type Candidate struct {
	Vertex int32
	Rating float64
}

// SelectBest applies cfg's acceptance policy to pick one candidate.
// matched[v] reports whether v has already absorbed or been absorbed by
// another vertex earlier in the current coarsening pass; PreferUnmatched
// uses it to break ties. Returns false if candidates is empty.
func SelectBest(candidates []Candidate, matched []bool, cfg Config, rng *rand.Rand) (int32, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	best := candidates[0].Rating
	for _, c := range candidates[1:] {
		if c.Rating > best {
			best = c.Rating
		}
	}
	tied := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if best-c.Rating <= tieEpsilon {
			tied = append(tied, c)
		}
	}

	if cfg.Acceptance == PreferUnmatched && matched != nil {
		unmatched := tied[:0:0]
		for _, c := range tied {
			if !matched[c.Vertex] {
				unmatched = append(unmatched, c)
			}
		}
		if len(unmatched) > 0 {
			tied = unmatched
		}
	}

	if len(tied) == 1 || rng == nil {
		return tied[0].Vertex, true
	}
	return tied[rng.Intn(len(tied))].Vertex, true
}
