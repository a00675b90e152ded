// Package instance reads knapsack instance files and writes solution files.
//
// An instance file holds one instance per line:
//
//	id number capacity w1 c1 w2 c2 ... wN cN
//
// A solution file holds one line per solved instance:
//
//	id number cost  b1 b2 ... bN
//
// with two spaces between the cost and the 0/1 combination. Both files may be
// compressed; Open and Create pick the codec from the file extension.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/knapsack/knapsack"
)

// MaxLineBytes bounds a single instance line.
const MaxLineBytes = 16 << 20

// ErrMalformedLine is wrapped by every parse failure.
var ErrMalformedLine = errors.New("instance: malformed line")

// ParseLine parses one instance line. The line must hold at least id, number
// and capacity, then exactly number weight/cost pairs; number, capacity,
// weights and costs must be non-negative.
func ParseLine(line string) (knapsack.Instance, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return knapsack.Instance{}, fmt.Errorf("%w: need at least 3 values (id, number, capacity), got %d", ErrMalformedLine, len(fields))
	}

	values := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return knapsack.Instance{}, fmt.Errorf("%w: value %d %q: %w", ErrMalformedLine, i+1, f, err)
		}
		values[i] = v
	}

	id, number, capacity := values[0], values[1], values[2]
	if number < 0 {
		return knapsack.Instance{}, fmt.Errorf("%w: number of items %d: %w", ErrMalformedLine, number, knapsack.ErrItemCountMismatch)
	}
	if capacity < 0 {
		return knapsack.Instance{}, fmt.Errorf("%w: capacity %d: %w", ErrMalformedLine, capacity, knapsack.ErrNegativeCapacity)
	}
	if want := 3 + 2*number; int64(len(values)) != want {
		return knapsack.Instance{}, fmt.Errorf("%w: expected %d values, got %d: %w", ErrMalformedLine, want, len(values), knapsack.ErrItemCountMismatch)
	}

	items := make([]knapsack.Item, number)
	for i := range items {
		w, c := values[3+2*i], values[4+2*i]
		if w < 0 {
			return knapsack.Instance{}, fmt.Errorf("%w: item %d weight %d: %w", ErrMalformedLine, i, w, knapsack.ErrNegativeWeight)
		}
		if c < 0 {
			return knapsack.Instance{}, fmt.Errorf("%w: item %d cost %d: %w", ErrMalformedLine, i, c, knapsack.ErrNegativeCost)
		}
		items[i] = knapsack.Item{Weight: w, Cost: c}
	}

	return knapsack.Instance{
		ID:       int(id),
		Number:   int(number),
		Capacity: capacity,
		Items:    items,
	}, nil
}

// Read parses every non-blank line of r. Errors name the 1-based line.
func Read(r io.Reader) ([]knapsack.Instance, error) {
	var (
		sc     = bufio.NewScanner(r)
		out    []knapsack.Instance
		lineNo int
	)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		inst, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, inst)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: read after line %d: %w", lineNo, err)
	}

	return out, nil
}

// ReadFile opens path with Open and parses it with Read.
func ReadFile(path string) ([]knapsack.Instance, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	out, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return out, nil
}
