package rep

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-iir/dsp/polynomial"
)

// Pairing selects the pole/zero pairing strategy for ZPK2SOS.
type Pairing int

const (
	// PairNearest pairs every pole group with the geometrically nearest
	// remaining zero group. For odd orders a pole and a zero at the origin
	// are appended (leaving the transfer function unchanged) so the cascade
	// consists of full biquads only.
	PairNearest Pairing = iota

	// PairKeepOdd behaves like PairNearest but retains exactly one
	// first-order section for odd orders instead of augmenting at the
	// origin.
	PairKeepOdd
)

// conjTol is the relative tolerance for conjugate matching and for deciding
// whether a root is real.
const conjTol = 1e-8

// ZPK2SOS converts zero-pole-gain form into cascaded second-order sections.
//
// Poles are grouped into conjugate pairs (or pairs of reals); each group is
// then paired with the nearest remaining zero group to minimize per-section
// peak gain. When two zero groups are equidistant from a pole group, the one
// with the lowest index wins. Sections are ordered by the pole group's
// distance from the unit circle, farthest first, so the sharpest resonance
// is applied last; equal distances are broken by the lowest pole-group
// index. The overall gain is folded into the numerator of the first section.
func ZPK2SOS(z ZPK, pairing Pairing) (SOS, error) {
	if len(z.Zeros) > len(z.Poles) {
		return SOS{}, ErrTooManyZeros
	}

	if len(z.Poles) == 0 {
		return SOS{Sections: []Section{{B0: z.Gain, A0: 1}}}, nil
	}

	poles := z.Poles
	zeros := z.Zeros

	if pairing == PairNearest && len(poles)%2 != 0 {
		// A pole and a zero at the origin cancel exactly, keeping H(z)
		// unchanged while making both counts even.
		poles = append(append([]complex128{}, poles...), 0)
		zeros = append(append([]complex128{}, zeros...), 0)
	}

	poleGroups, err := groupConjugates(poles)
	if err != nil {
		return SOS{}, err
	}

	zeroGroups, err := groupConjugates(zeros)
	if err != nil {
		return SOS{}, err
	}

	assignments := pairGroups(poleGroups, zeroGroups)

	// Farthest pole group from the unit circle first; stable on group index.
	order := make([]int, len(poleGroups))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return unitCircleDistance(poleGroups[order[a]]) > unitCircleDistance(poleGroups[order[b]])
	})

	sections := make([]Section, len(poleGroups))
	for i, gi := range order {
		sections[i] = buildSection(poleGroups[gi], assignments[gi])
	}

	// Fold the overall gain into the first section.
	sections[0].B0 *= z.Gain
	sections[0].B1 *= z.Gain
	sections[0].B2 *= z.Gain

	return SOS{Sections: sections}, nil
}

// groupConjugates partitions roots into groups of at most two: complex
// conjugate pairs, pairs of real roots, and (for an odd real count) one
// single real root. Complex roots without a conjugate partner are rejected.
//
// Real roots are sorted by their distance from the unit circle and paired
// front to back, so the leftover single, if any, is the real root farthest
// from the unit circle.
func groupConjugates(roots []complex128) ([][]complex128, error) {
	var reals []complex128

	var cplx []complex128

	for _, r := range roots {
		if math.Abs(imag(r)) <= conjTol*math.Max(1, cmplx.Abs(r)) {
			reals = append(reals, complex(real(r), 0))
		} else {
			cplx = append(cplx, r)
		}
	}

	var groups [][]complex128

	// Greedy nearest-conjugate matching.
	used := make([]bool, len(cplx))

	for i, r := range cplx {
		if used[i] {
			continue
		}

		conj := cmplx.Conj(r)
		best := -1
		bestDist := math.MaxFloat64

		for j := i + 1; j < len(cplx); j++ {
			if used[j] {
				continue
			}

			if d := cmplx.Abs(cplx[j] - conj); d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best < 0 || bestDist > conjTol*math.Max(1, cmplx.Abs(r)) {
			return nil, ErrUnpairedRoots
		}

		used[i] = true
		used[best] = true
		groups = append(groups, []complex128{r, cplx[best]})
	}

	sort.SliceStable(reals, func(a, b int) bool {
		return math.Abs(cmplx.Abs(reals[a])-1) < math.Abs(cmplx.Abs(reals[b])-1)
	})

	for len(reals) >= 2 {
		groups = append(groups, []complex128{reals[0], reals[1]})
		reals = reals[2:]
	}

	if len(reals) == 1 {
		groups = append(groups, []complex128{reals[0]})
	}

	return groups, nil
}

// pairGroups assigns to each pole group a zero group (possibly empty),
// choosing for each pole group, nearest the unit circle first, the closest
// remaining zero group. A first-order pole group only accepts zero groups of
// at most one zero so every section stays causal.
func pairGroups(poleGroups, zeroGroups [][]complex128) [][]complex128 {
	assignments := make([][]complex128, len(poleGroups))
	taken := make([]bool, len(zeroGroups))

	// Visit pole groups nearest the unit circle first; they profit most from
	// a close zero group.
	visit := make([]int, len(poleGroups))
	for i := range visit {
		visit[i] = i
	}

	sort.SliceStable(visit, func(a, b int) bool {
		return unitCircleDistance(poleGroups[visit[a]]) < unitCircleDistance(poleGroups[visit[b]])
	})

	for _, pi := range visit {
		pg := poleGroups[pi]
		best := -1
		bestDist := math.MaxFloat64

		for zi, zg := range zeroGroups {
			if taken[zi] || (len(pg) == 1 && len(zg) > 1) {
				continue
			}

			if d := groupDistance(pg, zg); d < bestDist {
				bestDist = d
				best = zi
			}
		}

		if best >= 0 {
			taken[best] = true
			assignments[pi] = zeroGroups[best]
		}
	}

	return assignments
}

// groupDistance returns the smallest pairwise distance between two root
// groups.
func groupDistance(a, b []complex128) float64 {
	d := math.MaxFloat64
	for _, p := range a {
		for _, z := range b {
			if v := cmplx.Abs(p - z); v < d {
				d = v
			}
		}
	}

	return d
}

// unitCircleDistance returns the group's smallest distance from the unit
// circle.
func unitCircleDistance(group []complex128) float64 {
	d := math.MaxFloat64
	for _, p := range group {
		if v := math.Abs(cmplx.Abs(p) - 1); v < d {
			d = v
		}
	}

	return d
}

// buildSection expands one pole group and one zero group into a normalized
// second-order section.
func buildSection(poleGroup, zeroGroup []complex128) Section {
	a := polynomial.Poly(poleGroup)
	b := polynomial.Poly(zeroGroup)

	sec := Section{A0: 1}

	switch len(a) {
	case 3:
		sec.A1 = a[1]
		sec.A2 = a[2]
	case 2:
		sec.A1 = a[1]
	}

	switch len(b) {
	case 3:
		sec.B0 = b[0]
		sec.B1 = b[1]
		sec.B2 = b[2]
	case 2:
		sec.B0 = b[0]
		sec.B1 = b[1]
	default:
		sec.B0 = b[0]
	}

	return sec
}
