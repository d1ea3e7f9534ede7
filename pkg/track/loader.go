package track

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadFromFile loads a track from a level file.
//
// Each line holds a keyword followed by values:
//
//	interval 4000          sampling interval for both sequences
//	curve-interval 4000    curvature interval only
//	hill-interval 4000     elevation interval only
//	curve -10 -10 20 10    curvature points, appended in order
//	hill 0 300 300         elevation points, appended in order
//
// Blank lines and anything after '#' are ignored. Intervals default to
// DefaultInterval and a file without hill lines gives a flat road.
func LoadFromFile(filename string) (*Track, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open track file: %w", err)
	}
	defer file.Close()

	t, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return t, nil
}

// Parse reads a track in the level file format described by LoadFromFile.
func Parse(r io.Reader) (*Track, error) {
	var curvature, elevation []float64
	curveInterval := DefaultInterval
	hillInterval := DefaultInterval

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		values, err := parseValues(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		switch fields[0] {
		case "curve":
			curvature = append(curvature, values...)
		case "hill":
			elevation = append(elevation, values...)
		case "interval", "curve-interval", "hill-interval":
			if len(values) != 1 {
				return nil, fmt.Errorf("line %d: %s takes exactly one value, got %d", lineNo, fields[0], len(values))
			}
			if fields[0] != "hill-interval" {
				curveInterval = values[0]
			}
			if fields[0] != "curve-interval" {
				hillInterval = values[0]
			}
		default:
			return nil, fmt.Errorf("line %d: unknown keyword '%s'", lineNo, fields[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading track file: %w", err)
	}

	if len(elevation) == 0 {
		elevation = []float64{0}
	}
	return New(curvature, elevation, curveInterval, hillInterval)
}

func parseValues(fields []string) ([]float64, error) {
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value '%s': %w", f, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid value '%s': not a finite number", f)
		}
		values = append(values, v)
	}
	return values, nil
}
