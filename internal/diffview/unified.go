package diffview

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// ParseUnified turns a unified diff into segments. Consecutive lines of the
// same kind inside a hunk form one segment; file headers, hunk headers and
// "\ No newline" markers are dropped, and a new hunk always starts a new
// segment. A hunk ends once the line counts of its header are used up, so
// body lines that look like "---" or "+++" headers stay content.
func ParseUnified(unified string) ([]Segment, error) {
	s := bufio.NewScanner(strings.NewReader(unified))
	s.Buffer(make([]byte, 0, 64*1024), 10*1024*1024) // allow large lines

	segs := make([]Segment, 0, 64)
	var (
		buf     strings.Builder
		pending Kind
		open    bool
	)

	flush := func() {
		if open {
			segs = append(segs, Segment{Text: buf.String(), Kind: pending})
		}
		buf.Reset()
		open = false
	}
	push := func(kind Kind, text string) {
		if open && kind != pending {
			flush()
		}
		pending = kind
		open = true
		buf.WriteString(text)
		buf.WriteByte('\n')
	}

	// oldLeft and newLeft count the lines the current hunk still expects;
	// -1 means the header gave no usable count.
	inHunk := false
	oldLeft, newLeft := 0, 0
	consume := func(oldN, newN int) {
		if oldLeft > 0 {
			oldLeft -= oldN
		}
		if newLeft > 0 {
			newLeft -= newN
		}
		if oldLeft == 0 && newLeft == 0 {
			inHunk = false
		}
	}

	for s.Scan() {
		line := s.Text()
		if strings.HasPrefix(line, "@@ ") {
			flush()
			inHunk = true
			oldLeft, newLeft = hunkCounts(line)
			if oldLeft == 0 && newLeft == 0 {
				inHunk = false
			}
			continue
		}
		if !inHunk || oldLeft < 0 {
			if isFileHeader(line) {
				flush()
				inHunk = false
				continue
			}
		}
		if !inHunk {
			continue
		}

		if len(line) == 0 {
			// some tools strip the leading space from blank context lines
			push(Unchanged, "")
			consume(1, 1)
			continue
		}

		switch line[0] {
		case ' ':
			push(Unchanged, line[1:])
			consume(1, 1)
		case '-':
			push(Removed, line[1:])
			consume(1, 0)
		case '+':
			push(Added, line[1:])
			consume(0, 1)
		default:
			// "\ No newline at end of file" and anything unknown
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan unified diff: %w", err)
	}
	flush()
	return segs, nil
}

func isFileHeader(line string) bool {
	return strings.HasPrefix(line, "diff --git ") ||
		strings.HasPrefix(line, "index ") ||
		strings.HasPrefix(line, "--- ") ||
		strings.HasPrefix(line, "+++ ")
}

// hunkCounts reads the old and new line counts from "@@ -a,b +c,d @@". An
// omitted count means 1; an unreadable header yields -1, -1.
func hunkCounts(header string) (oldN, newN int) {
	fields := strings.Fields(header)
	if len(fields) < 3 || !strings.HasPrefix(fields[1], "-") || !strings.HasPrefix(fields[2], "+") {
		return -1, -1
	}
	oldN, okOld := rangeCount(fields[1][1:])
	newN, okNew := rangeCount(fields[2][1:])
	if !okOld || !okNew {
		return -1, -1
	}
	return oldN, newN
}

func rangeCount(r string) (int, bool) {
	_, count, found := strings.Cut(r, ",")
	if !found {
		return 1, true
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
