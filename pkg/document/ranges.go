package document

import "sort"

// Interval arithmetic over style and entity ranges. All spans are half-open
// rune spans [Start, End). Normalized style slices are sorted by style then
// start, and no two ranges of the same style overlap or touch.

// normalizeStyles sorts ranges and merges overlapping or adjacent ranges of
// the same style. Empty ranges are dropped.
func normalizeStyles(ranges []StyleRange) []StyleRange {
	if len(ranges) == 0 {
		return nil
	}

	byStyle := make(map[InlineStyle][]StyleRange)
	for _, r := range ranges {
		if r.Start >= r.End {
			continue
		}
		byStyle[r.Style] = append(byStyle[r.Style], r)
	}

	var out []StyleRange
	for _, style := range AllInlineStyles {
		rs := byStyle[style]
		if len(rs) == 0 {
			continue
		}
		sort.Slice(rs, func(i, j int) bool { return rs[i].Start < rs[j].Start })

		merged := rs[:1]
		for _, r := range rs[1:] {
			last := &merged[len(merged)-1]
			if r.Start <= last.End {
				if r.End > last.End {
					last.End = r.End
				}
				continue
			}
			merged = append(merged, r)
		}
		out = append(out, merged...)
	}
	return out
}

// coversSpan reports whether the given style covers every rune of
// [start, end) in a normalized range slice.
func coversSpan(ranges []StyleRange, style InlineStyle, start, end int) bool {
	pos := start
	for _, r := range ranges {
		if r.Style != style || r.End <= pos {
			continue
		}
		if r.Start > pos {
			return false
		}
		pos = r.End
		if pos >= end {
			return true
		}
	}
	return pos >= end
}

// subtractStyle removes style coverage over [start, end), splitting ranges
// that straddle the span boundaries.
func subtractStyle(ranges []StyleRange, style InlineStyle, start, end int) []StyleRange {
	var out []StyleRange
	for _, r := range ranges {
		if r.Style != style || r.End <= start || r.Start >= end {
			out = append(out, r)
			continue
		}
		if r.Start < start {
			out = append(out, StyleRange{Style: style, Start: r.Start, End: start})
		}
		if r.End > end {
			out = append(out, StyleRange{Style: style, Start: end, End: r.End})
		}
	}
	return normalizeStyles(out)
}

// shiftStylesOnInsert moves ranges right of the insertion point by n runes.
// A range spanning the point stretches to include the inserted text.
func shiftStylesOnInsert(ranges []StyleRange, at, n int) []StyleRange {
	out := make([]StyleRange, 0, len(ranges))
	for _, r := range ranges {
		switch {
		case r.End <= at:
			// Unaffected.
		case r.Start >= at:
			r.Start += n
			r.End += n
		default:
			r.End += n
		}
		out = append(out, r)
	}
	return normalizeStyles(out)
}

// shiftStylesOnDelete removes the span [start, end) from every range,
// shrinking or dropping ranges as needed.
func shiftStylesOnDelete(ranges []StyleRange, start, end int) []StyleRange {
	n := end - start
	out := make([]StyleRange, 0, len(ranges))
	for _, r := range ranges {
		r.Start = collapseOffset(r.Start, start, end, n)
		r.End = collapseOffset(r.End, start, end, n)
		if r.Start < r.End {
			out = append(out, r)
		}
	}
	return normalizeStyles(out)
}

// collapseOffset maps a rune offset across a deletion of [start, end).
func collapseOffset(v, start, end, n int) int {
	switch {
	case v <= start:
		return v
	case v >= end:
		return v - n
	default:
		return start
	}
}

// truncateStyles keeps the portion of each range before the cut offset.
func truncateStyles(ranges []StyleRange, cut int) []StyleRange {
	var out []StyleRange
	for _, r := range ranges {
		if r.Start >= cut {
			continue
		}
		if r.End > cut {
			r.End = cut
		}
		out = append(out, r)
	}
	return normalizeStyles(out)
}

// rebaseStyles keeps the portion of each range at or after the cut offset,
// rebased to start at zero.
func rebaseStyles(ranges []StyleRange, cut int) []StyleRange {
	var out []StyleRange
	for _, r := range ranges {
		if r.End <= cut {
			continue
		}
		if r.Start < cut {
			r.Start = cut
		}
		out = append(out, StyleRange{Style: r.Style, Start: r.Start - cut, End: r.End - cut})
	}
	return normalizeStyles(out)
}

// Entity range variants. Entities never overlap, so there is no merge step;
// an entity range cut by an edit is shrunk, and dropped when empty.

func sortEntities(ranges []EntityRange) []EntityRange {
	if len(ranges) == 0 {
		return nil
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })
	return ranges
}

func shiftEntitiesOnInsert(ranges []EntityRange, at, n int) []EntityRange {
	out := make([]EntityRange, 0, len(ranges))
	for _, r := range ranges {
		switch {
		case r.End <= at:
		case r.Start >= at:
			r.Start += n
			r.End += n
		default:
			r.End += n
		}
		out = append(out, r)
	}
	return sortEntities(out)
}

func shiftEntitiesOnDelete(ranges []EntityRange, start, end int) []EntityRange {
	n := end - start
	var out []EntityRange
	for _, r := range ranges {
		r.Start = collapseOffset(r.Start, start, end, n)
		r.End = collapseOffset(r.End, start, end, n)
		if r.Start < r.End {
			out = append(out, r)
		}
	}
	return sortEntities(out)
}

func truncateEntities(ranges []EntityRange, cut int) []EntityRange {
	var out []EntityRange
	for _, r := range ranges {
		if r.Start >= cut {
			continue
		}
		if r.End > cut {
			r.End = cut
		}
		out = append(out, r)
	}
	return sortEntities(out)
}

func rebaseEntities(ranges []EntityRange, cut int) []EntityRange {
	var out []EntityRange
	for _, r := range ranges {
		if r.End <= cut {
			continue
		}
		if r.Start < cut {
			r.Start = cut
		}
		out = append(out, EntityRange{Key: r.Key, Start: r.Start - cut, End: r.End - cut})
	}
	return sortEntities(out)
}

// removeEntitiesOverlapping drops every entity range intersecting
// [start, end) and returns the removed keys.
func removeEntitiesOverlapping(ranges []EntityRange, start, end int) ([]EntityRange, []string) {
	var kept []EntityRange
	var removed []string
	for _, r := range ranges {
		if r.End <= start || r.Start >= end {
			kept = append(kept, r)
			continue
		}
		removed = append(removed, r.Key)
	}
	return sortEntities(kept), removed
}
