// Package diffcmd computes diffs with an external diff(1) command and parses
// its normal output format.
package diffcmd

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/fwojciec/giga"
)

// headerPattern matches "<n1>[,<n2>]{a|d|c}<n3>[,<n4>]".
var headerPattern = regexp.MustCompile(`^(\d+)(?:,(\d+))?([acd])(\d+)(?:,(\d+))?$`)

// Parse reads normal-format diff output. Only change headers are
// interpreted; content lines ("<", ">", "---") and "\ No newline" notes are
// skipped.
func Parse(r io.Reader) (giga.Diff, error) {
	var diff giga.Diff
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" || line[0] < '0' || line[0] > '9' {
			continue
		}
		p, err := ParseHeader(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		diff = append(diff, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return diff, nil
}

// ParseHeader converts one change header into a patch positioned on the
// working copy. Line numbers in the header are 1-based; the patch start is
// 0-based.
func ParseHeader(line string) (giga.Patch, error) {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return giga.Patch{}, fmt.Errorf("malformed diff header %q", line)
	}
	rhs, err := strconv.Atoi(m[4])
	if err != nil {
		return giga.Patch{}, fmt.Errorf("malformed diff header %q: %w", line, err)
	}
	start := max(rhs-1, 0)

	if m[3] == "d" {
		return giga.Patch{Kind: giga.PatchRemoved, Start: start}, nil
	}

	count := 1
	if m[5] != "" {
		end, err := strconv.Atoi(m[5])
		if err != nil {
			return giga.Patch{}, fmt.Errorf("malformed diff header %q: %w", line, err)
		}
		count = end - start
	}
	if count < 1 {
		return giga.Patch{}, fmt.Errorf("malformed diff header %q: empty range", line)
	}

	kind := giga.PatchModified
	if m[3] == "a" {
		kind = giga.PatchAdded
	}
	return giga.Patch{Kind: kind, Start: start, Count: count}, nil
}
