package search

import (
	"sort"
	"strings"
)

// Range is a half-open range of rune offsets.
type Range struct {
	Start int
	End   int
}

// FindRanges returns the merged, case-insensitive occurrences of query in
// the plain string line.
func FindRanges(line, query string) []Range {
	if line == "" || query == "" {
		return nil
	}
	lowerRunes := []rune(strings.ToLower(line))
	queryRunes := []rune(strings.ToLower(query))
	if len(queryRunes) > len(lowerRunes) {
		return nil
	}

	var ranges []Range
	for i := 0; i <= len(lowerRunes)-len(queryRunes); i++ {
		match := true
		for j := range queryRunes {
			if lowerRunes[i+j] != queryRunes[j] {
				match = false
				break
			}
		}
		if match {
			ranges = append(ranges, Range{Start: i, End: i + len(queryRunes)})
		}
	}
	return mergeRanges(ranges)
}

// mergeRanges merges overlapping or adjacent ranges.
func mergeRanges(ranges []Range) []Range {
	if len(ranges) <= 1 {
		return ranges
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Start == ranges[j].Start {
			return ranges[i].End < ranges[j].End
		}
		return ranges[i].Start < ranges[j].Start
	})

	merged := make([]Range, 0, len(ranges))
	cur := ranges[0]
	for _, r := range ranges[1:] {
		if r.Start <= cur.End {
			cur.End = max(cur.End, r.End)
			continue
		}
		merged = append(merged, cur)
		cur = r
	}
	return append(merged, cur)
}

// Paint renders the plain string line, passing matched runs through mark
// and everything else through rest.
func Paint(line string, ranges []Range, mark, rest func(string) string) string {
	if len(ranges) == 0 {
		return rest(line)
	}
	runes := []rune(line)
	var b strings.Builder
	pos := 0
	for _, r := range ranges {
		start, end := min(r.Start, len(runes)), min(r.End, len(runes))
		if start > pos {
			b.WriteString(rest(string(runes[pos:start])))
		}
		if end > start {
			b.WriteString(mark(string(runes[start:end])))
		}
		pos = max(pos, end)
	}
	if pos < len(runes) {
		b.WriteString(rest(string(runes[pos:])))
	}
	return b.String()
}
