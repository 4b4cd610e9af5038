package diffview

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff computes a line-level diff of base against revised and returns it
// as segments. Concatenating the text of the non-Added segments yields base;
// the non-Removed segments yield revised.
func LineDiff(base, revised string) []Segment {
	if base == revised {
		if base == "" {
			return nil
		}
		return []Segment{{Text: base, Kind: Unchanged}}
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(base, revised)
	diffs := dmp.DiffMain(chars1, chars2, false)
	lineDiffs := dmp.DiffCharsToLines(diffs, lineArray)

	segs := make([]Segment, 0, len(lineDiffs))
	for _, d := range lineDiffs {
		if d.Text == "" {
			continue
		}
		segs = append(segs, Segment{Text: d.Text, Kind: kindOf(d.Type)})
	}
	return segs
}

func kindOf(op diffmatchpatch.Operation) Kind {
	switch op {
	case diffmatchpatch.DiffInsert:
		return Added
	case diffmatchpatch.DiffDelete:
		return Removed
	default:
		return Unchanged
	}
}
