// Package tsplib reads and writes the TSPLIB coordinate file format used
// for solver input and output (spec.md §6).
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/geotsp/geom"
)

const (
	nodeCoordSection = "NODE_COORD_SECTION"
	eofMarker        = "EOF"
)

// ParseNodeCoordSection reads r looking for a NODE_COORD_SECTION block and
// returns the points it lists. Each data line is split on whitespace;
// lines with fewer than 3 tokens are skipped; the second and third tokens
// are parsed as (possibly scientific-notation) float32 coordinates. A file
// with no NODE_COORD_SECTION marker yields an empty, error-free point set
// (spec.md §6): TSPLIB files describing only a tour or edge list are valid
// input to other tools in the ecosystem even though they carry nothing
// this solver can use.
func ParseNodeCoordSection(r io.Reader) ([]geom.Point, error) {
	scanner := bufio.NewScanner(r)

	inSection := false
	var points []geom.Point
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !inSection {
			if line == nodeCoordSection {
				inSection = true
			}
			continue
		}
		if line == eofMarker {
			break
		}
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) < 3 {
			continue
		}
		x, err := strconv.ParseFloat(tokens[1], 32)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(tokens[2], 32)
		if err != nil {
			continue
		}
		points = append(points, geom.Point{X: float32(x), Y: float32(y)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

// WriteTour writes tour's points to w in TSPLIB NODE_COORD_SECTION form:
// a minimal header, one 1-indexed coordinate line per point, and a
// trailing EOF marker (spec.md §6).
func WriteTour(w io.Writer, name string, points []geom.Point) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "NAME: %s\n", name)
	fmt.Fprintf(bw, "TYPE: TOUR\n")
	fmt.Fprintf(bw, "DIMENSION: %d\n", len(points))
	fmt.Fprintf(bw, "%s\n", nodeCoordSection)
	for i, p := range points {
		fmt.Fprintf(bw, "%d %g %g\n", i+1, p.X, p.Y)
	}
	fmt.Fprintf(bw, "%s\n", eofMarker)

	return bw.Flush()
}

// ResolveOutputPath picks the output file location relative to the
// current working directory (spec.md §6), checking existing directories
// in preference order before creating anything: backend/output/OUT.tsp if
// backend/output already exists, else output/OUT.tsp if output already
// exists, else output/OUT.tsp after creating output.
func ResolveOutputPath() (string, error) {
	backendOutput := filepath.Join("backend", "output")
	if info, err := os.Stat(backendOutput); err == nil && info.IsDir() {
		return filepath.Join(backendOutput, "OUT.tsp"), nil
	}

	if info, err := os.Stat("output"); err == nil && info.IsDir() {
		return filepath.Join("output", "OUT.tsp"), nil
	}

	if err := os.MkdirAll("output", 0o755); err != nil {
		return "", err
	}
	return filepath.Join("output", "OUT.tsp"), nil
}
