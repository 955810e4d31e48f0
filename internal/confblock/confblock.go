package confblock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// #region errors
var (
	// ErrNoRegion means the text contains no begin-marker at all.
	ErrNoRegion = errors.New("confblock: no config region found")

	// ErrUnterminated means a begin-marker was found but no end-marker after it.
	ErrUnterminated = errors.New("confblock: config region not terminated")
)

// #endregion errors

// #region extract
// Extract scans the text for the config region and parses KEY=value lines
// inside it. Unrecognized lines are ignored; any key that is missing,
// unparseable, or out of range keeps its default. A text with no begin-marker
// yields all defaults.
func Extract(text string) Config {
	cfg := Default()
	inRegion := false

	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, BeginMarker) {
			inRegion = true
			continue
		}
		if strings.Contains(line, EndMarker) {
			break
		}
		if !inRegion {
			continue
		}

		key, val, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		switch key {
		case KeyLearningRate:
			if f, err := strconv.ParseFloat(val, 64); err == nil && f >= MinLearningRate {
				cfg.LearningRate = f
			}
		case KeyMutationProb:
			if f, err := strconv.ParseFloat(val, 64); err == nil && f >= MinMutationProb && f <= MaxMutationProb {
				cfg.MutationProb = f
			}
		case KeyRecompileInterval:
			if n, err := strconv.Atoi(val); err == nil && n >= MinRecompileInterval {
				cfg.RecompileInterval = n
			}
		}
	}

	return cfg
}

// #endregion extract

// #region rewrite
// Rewrite replaces the interior of the config region with exactly one
// KEY=value line per Config field and returns the new text. Every byte
// outside the region, including both marker lines, is preserved unchanged.
// Floats are written at 6 decimal digits so the written form round-trips
// through Extract without drift accumulating across generations.
func Rewrite(text string, cfg Config) (string, error) {
	start, end, err := locateRegion(text)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(text) + 64)
	b.WriteString(text[:start])
	fmt.Fprintf(&b, "%s=%.6f\n", KeyLearningRate, cfg.LearningRate)
	fmt.Fprintf(&b, "%s=%.6f\n", KeyMutationProb, cfg.MutationProb)
	fmt.Fprintf(&b, "%s=%d\n", KeyRecompileInterval, cfg.RecompileInterval)
	b.WriteString(text[end:])
	return b.String(), nil
}

// locateRegion returns the byte offset just past the begin-marker line and
// the byte offset of the start of the end-marker line.
func locateRegion(text string) (int, int, error) {
	bi := strings.Index(text, BeginMarker)
	if bi < 0 {
		return 0, 0, ErrNoRegion
	}
	if strings.Contains(text[bi+len(BeginMarker):], BeginMarker) {
		return 0, 0, fmt.Errorf("confblock: more than one begin-marker")
	}

	nl := strings.IndexByte(text[bi:], '\n')
	if nl < 0 {
		return 0, 0, ErrUnterminated
	}
	start := bi + nl + 1

	ei := strings.Index(text[start:], EndMarker)
	if ei < 0 {
		return 0, 0, ErrUnterminated
	}
	end := start + ei

	// Back up to the start of the end-marker's line so indentation before the
	// marker survives the rewrite.
	for end > start && text[end-1] != '\n' {
		end--
	}
	return start, end, nil
}

// #endregion rewrite
