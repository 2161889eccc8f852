// core/pairing/pairing.go
package pairing

import (
	"fmt"
	"sort"

	"microseq-core/classify"
	"microseq-core/sampleid"
	"microseq-core/token"
)

// Options configure one pairing run.
type Options struct {
	EnforceWell bool
	Policy      Policy
}

type groupKey struct {
	sid  string
	well string // empty unless EnforceWell
}

type group struct {
	key     groupKey
	forward []classify.File
	reverse []classify.File
}

// Pair groups classified files by sample id (and well, when enforced),
// matches forward against reverse within each group, applies the duplicate
// policy, and returns the full report. The computation is pure and
// deterministic: identical inputs produce identical reports.
func Pair(files []classify.File, o Options) *Report {
	rep := &Report{DetectorHits: map[string]int{}}

	groups := map[groupKey]*group{}
	// sid -> orientations seen per well, for well-mismatch attribution.
	sidWells := map[string]map[string][2]bool{}

	for _, f := range files {
		if !f.Resolved() {
			rep.UnresolvedFiles++
			reason := ReasonUnrecognized
			if f.Ambiguous {
				reason = ReasonAmbiguous
			}
			rep.Skips = append(rep.Skips, Skip{
				SampleID: f.RawID,
				Well:     f.Well,
				Reason:   reason,
				Other:    []string{f.Path},
			})
			continue
		}

		rep.DetectorHits[f.DetectorID]++
		fwd := f.Orientation == token.Forward
		if fwd {
			rep.ForwardFiles++
		} else {
			rep.ReverseFiles++
		}

		// The well never participates in the sample id itself; when
		// enforcement is on it joins the grouping key instead.
		sid := sampleid.Resolve(f.Stem, f.TokenSpan, f.WellSpan, true)

		if o.EnforceWell && f.Well == "" {
			rep.Skips = append(rep.Skips, orientedSkip(sid, "", ReasonMissingWell, f, fwd))
			continue
		}

		k := groupKey{sid: sid}
		if o.EnforceWell {
			k.well = f.Well
			wells := sidWells[sid]
			if wells == nil {
				wells = map[string][2]bool{}
				sidWells[sid] = wells
			}
			seen := wells[f.Well]
			if fwd {
				seen[0] = true
			} else {
				seen[1] = true
			}
			wells[f.Well] = seen
		}

		g := groups[k]
		if g == nil {
			g = &group{key: k}
			groups[k] = g
		}
		if fwd {
			g.forward = append(g.forward, f)
		} else {
			g.reverse = append(g.reverse, f)
		}
	}

	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].sid != keys[j].sid {
			return keys[i].sid < keys[j].sid
		}
		return keys[i].well < keys[j].well
	})

	for _, k := range keys {
		resolveGroup(rep, groups[k], o, sidWells)
	}

	sort.Slice(rep.Skips, func(i, j int) bool {
		a, b := rep.Skips[i], rep.Skips[j]
		if a.SampleID != b.SampleID {
			return a.SampleID < b.SampleID
		}
		if a.Well != b.Well {
			return a.Well < b.Well
		}
		af, bf := a.Files(), b.Files()
		if len(af) > 0 && len(bf) > 0 && af[0] != bf[0] {
			return af[0] < bf[0]
		}
		return a.Reason < b.Reason
	})

	return rep
}

func resolveGroup(rep *Report, g *group, o Options, sidWells map[string]map[string][2]bool) {
	nf, nr := len(g.forward), len(g.reverse)

	if nf == 0 || nr == 0 {
		reason := ReasonMissingMate
		if o.EnforceWell && mateInOtherWell(sidWells[g.key.sid], g.key.well, nf == 0) {
			reason = ReasonWellMismatch
		}
		rep.Skips = append(rep.Skips, Skip{
			SampleID: g.key.sid,
			Well:     g.key.well,
			Reason:   reason,
			Forward:  paths(g.forward),
			Reverse:  paths(g.reverse),
		})
		return
	}

	dup := nf > 1 || nr > 1
	if !dup {
		rep.Outcomes = append(rep.Outcomes, outcome(g, paths(g.forward), paths(g.reverse), "paired", nil))
		return
	}

	switch o.Policy {
	case PolicyError:
		rep.Skips = append(rep.Skips, Skip{
			SampleID: g.key.sid,
			Well:     g.key.well,
			Reason:   ReasonDuplicate,
			Forward:  paths(g.forward),
			Reverse:  paths(g.reverse),
		})

	case PolicyKeepFirst:
		fsel, fdrop := pick(g.forward, false)
		rsel, rdrop := pick(g.reverse, false)
		rep.Outcomes = append(rep.Outcomes, outcome(g, fsel, rsel, string(PolicyKeepFirst), append(fdrop, rdrop...)))

	case PolicyKeepLast:
		fsel, fdrop := pick(g.forward, true)
		rsel, rdrop := pick(g.reverse, true)
		rep.Outcomes = append(rep.Outcomes, outcome(g, fsel, rsel, string(PolicyKeepLast), append(fdrop, rdrop...)))

	case PolicyMerge:
		rep.Outcomes = append(rep.Outcomes, outcome(g, paths(g.forward), paths(g.reverse), string(PolicyMerge), nil))

	case PolicyKeepSeparate:
		separate(rep, g)
	}
}

// separate emits one outcome per duplicate combination. Equal duplicate
// counts pair by index; a singleton side fans out across the other side's
// duplicates; unequal counts with duplicates on both sides cannot be aligned
// without inventing pairings, so the sample is skipped.
func separate(rep *Report, g *group) {
	nf, nr := len(g.forward), len(g.reverse)
	if nf > 1 && nr > 1 && nf != nr {
		rep.Skips = append(rep.Skips, Skip{
			SampleID: g.key.sid,
			Well:     g.key.well,
			Reason:   ReasonDuplicateMismatch,
			Forward:  paths(g.forward),
			Reverse:  paths(g.reverse),
		})
		return
	}

	var combos [][2]string
	switch {
	case nf == nr:
		for i := 0; i < nf; i++ {
			combos = append(combos, [2]string{g.forward[i].Path, g.reverse[i].Path})
		}
	case nf > nr: // nr == 1
		for i := 0; i < nf; i++ {
			combos = append(combos, [2]string{g.forward[i].Path, g.reverse[0].Path})
		}
	default: // nf == 1
		for i := 0; i < nr; i++ {
			combos = append(combos, [2]string{g.forward[0].Path, g.reverse[i].Path})
		}
	}

	for i, c := range combos {
		key := g.key.sid
		if len(combos) > 1 {
			key = fmt.Sprintf("%s_%d", g.key.sid, i+1)
		}
		rep.Outcomes = append(rep.Outcomes, Outcome{
			SampleID: g.key.sid,
			Key:      key,
			Well:     g.key.well,
			Forward:  []string{c[0]},
			Reverse:  []string{c[1]},
			Action:   string(PolicyKeepSeparate),
		})
	}
}

func outcome(g *group, fwd, rev []string, action string, discarded []string) Outcome {
	return Outcome{
		SampleID:  g.key.sid,
		Key:       g.key.sid,
		Well:      g.key.well,
		Forward:   fwd,
		Reverse:   rev,
		Action:    action,
		Discarded: discarded,
	}
}

// pick selects one file by encounter order; the rest are discarded from the
// pair but stay in the report (never deleted from disk).
func pick(fs []classify.File, last bool) (selected, discarded []string) {
	idx := 0
	if last {
		idx = len(fs) - 1
	}
	for i, f := range fs {
		if i == idx {
			selected = []string{f.Path}
		} else {
			discarded = append(discarded, f.Path)
		}
	}
	return
}

func paths(fs []classify.File) []string {
	if len(fs) == 0 {
		return nil
	}
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Path
	}
	return out
}

func orientedSkip(sid, well string, reason Reason, f classify.File, fwd bool) Skip {
	s := Skip{SampleID: sid, Well: well, Reason: reason}
	if fwd {
		s.Forward = []string{f.Path}
	} else {
		s.Reverse = []string{f.Path}
	}
	return s
}

// mateInOtherWell reports whether sid has the missing orientation present in
// a different well (needFwd: the group lacked forward files).
func mateInOtherWell(wells map[string][2]bool, well string, needFwd bool) bool {
	for w, seen := range wells {
		if w == well {
			continue
		}
		if needFwd && seen[0] {
			return true
		}
		if !needFwd && seen[1] {
			return true
		}
	}
	return false
}
