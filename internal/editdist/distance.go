package editdist

// Distance computes the true Damerau-Levenshtein distance (optimal string
// alignment variant: insertion, deletion, substitution, and adjacent
// transposition, each unit cost; no substring may be edited more than
// once) between a and b, over their Unicode code points.
func Distance(a, b string) int {
	return DistanceBounded(a, b, -1)
}

// DistanceBounded is Distance with an early-exit ceiling: once the true
// distance is known to exceed maxDistance, -1 is returned without
// completing the full computation. A negative maxDistance means
// unbounded.
func DistanceBounded(a, b string, maxDistance int) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)

	// Ensure the shorter string is first; the algorithm is symmetric.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if maxDistance >= 0 && len(rb)-len(ra) > maxDistance {
		return -1
	}

	ra, rb, _ = stripCommonAffixes(ra, rb)
	len1, len2 := len(ra), len(rb)

	if len1 == 0 {
		if maxDistance >= 0 && len2 > maxDistance {
			return -1
		}
		return len2
	}

	if maxDistance < 0 || maxDistance >= len2 {
		return damerauOSA(ra, rb, len1, len2)
	}
	return damerauOSABounded(ra, rb, len1, len2, maxDistance)
}

// stripCommonAffixes removes the common prefix and suffix of ra and rb,
// returning the residues and the offset at which they started (matched
// borders never participate in the optimal alignment, so they can be
// dropped before running the DP).
func stripCommonAffixes(ra, rb []rune) (residue1, residue2 []rune, start int) {
	len1, len2 := len(ra), len(rb)
	for start < len1 && start < len2 && ra[start] == rb[start] {
		start++
	}
	len1 -= start
	len2 -= start
	for len1 > 0 && len2 > 0 && ra[start+len1-1] == rb[start+len2-1] {
		len1--
		len2--
	}
	return ra[start : start+len1], rb[start : start+len2], start
}

// damerauOSA is the unbounded dynamic-programming core.
func damerauOSA(ra, rb []rune, len1, len2 int) int {
	char1Costs := make([]int, len2)
	prevChar1Costs := make([]int, len2)

	for j := 0; j < len2; j++ {
		char1Costs[j] = j + 1
	}
	var char1, prevChar1 rune
	var currentCost int
	for i := 0; i < len1; i++ {
		prevChar1 = char1
		char1 = ra[i]
		var char2, prevChar2 rune
		leftCharCost := i
		aboveCharCost := i
		nextTransCost := 0
		for j := 0; j < len2; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevChar1Costs[j]
			prevChar1Costs[j] = currentCost
			currentCost = leftCharCost
			leftCharCost = char1Costs[j]
			prevChar2 = char2
			char2 = rb[j]
			if char1 != char2 {
				if aboveCharCost < currentCost {
					currentCost = aboveCharCost // deletion
				}
				if leftCharCost < currentCost {
					currentCost = leftCharCost // insertion
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1 // adjacent transposition
				}
			}
			char1Costs[j] = currentCost
			aboveCharCost = currentCost
		}
	}
	return currentCost
}

// damerauOSABounded is the banded variant: only cells within maxDistance of
// the diagonal are computed, and the function bails out with -1 as soon as
// every cell in the current row exceeds the bound.
func damerauOSABounded(ra, rb []rune, len1, len2, maxDistance int) int {
	char1Costs := make([]int, len2)
	prevChar1Costs := make([]int, len2)

	for j := 0; j < maxDistance; j++ {
		char1Costs[j] = j + 1
	}
	for j := maxDistance; j < len2; j++ {
		char1Costs[j] = maxDistance + 1
	}

	lenDiff := len2 - len1
	jStartOffset := maxDistance - lenDiff
	jStart := 0
	jEnd := maxDistance
	var char1, prevChar1 rune
	var currentCost int
	for i := 0; i < len1; i++ {
		prevChar1 = char1
		char1 = ra[i]
		var char2, prevChar2 rune
		leftCharCost := i
		aboveCharCost := i
		nextTransCost := 0
		if i > jStartOffset {
			jStart++
		}
		if jEnd < len2 {
			jEnd++
		}
		for j := jStart; j < jEnd; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevChar1Costs[j]
			prevChar1Costs[j] = currentCost
			currentCost = leftCharCost
			leftCharCost = char1Costs[j]
			prevChar2 = char2
			char2 = rb[j]
			if char1 != char2 {
				if aboveCharCost < currentCost {
					currentCost = aboveCharCost
				}
				if leftCharCost < currentCost {
					currentCost = leftCharCost
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1
				}
			}
			char1Costs[j] = currentCost
			aboveCharCost = currentCost
		}
		if char1Costs[i+lenDiff] > maxDistance {
			return -1
		}
	}
	if currentCost <= maxDistance {
		return currentCost
	}
	return -1
}
