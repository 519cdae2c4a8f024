package solver

import "github.com/inkwell-labs/pageflow/internal/geom"

// resolveGrow splits total among the given Grow axes, clamping each share
// to its own (min,max) bound. Elements that hit their max are pinned and
// removed from the pool so the remainder keeps redistributing among the
// still-elastic siblings, mirroring a standard flex-grow resolution.
// Determinism falls out of plain float arithmetic; any residual left by
// floating-point rounding is folded into the earliest-index active share,
// so earlier siblings get the extra sub-point on a tie.
func resolveGrow(total float64, axes []geom.SizingAxis) []float64 {
	n := len(axes)
	result := make([]float64, n)
	if n == 0 {
		return result
	}
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}
	remaining := total

	for iter := 0; iter <= n; iter++ {
		activeCount := 0
		for _, a := range active {
			if a {
				activeCount++
			}
		}
		if activeCount == 0 || remaining <= 0 {
			break
		}
		share := remaining / float64(activeCount)
		pinnedAny := false
		for i, a := range active {
			if !a {
				continue
			}
			if result[i]+share >= axes[i].Max {
				result[i] = axes[i].Max
				active[i] = false
				pinnedAny = true
			}
		}
		if !pinnedAny {
			firstActive := -1
			for i, a := range active {
				if a {
					if firstActive == -1 {
						firstActive = i
					}
					result[i] += share
				}
			}
			// fold float rounding residual into the earliest active share
			sum := 0.0
			for _, v := range result {
				sum += v
			}
			if diff := total - sum; diff != 0 && firstActive >= 0 {
				result[firstActive] += diff
			}
			remaining = 0
			break
		}
		assignedSum := 0.0
		for i, a := range active {
			if !a {
				assignedSum += result[i]
			}
		}
		remaining = total - assignedSum
	}

	for i := range result {
		if result[i] < axes[i].Min {
			result[i] = axes[i].Min
		}
	}
	return result
}
