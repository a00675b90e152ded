package instance

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/knapsack/knapsack"
)

// FormatSolution renders one solution line without the trailing newline:
// "id number cost  b1 b2 ... bN".
func FormatSolution(id, number int, res knapsack.Result) string {
	buf := make([]byte, 0, 32+2*len(res.Combination))
	buf = appendSolution(buf, id, number, res)

	return string(buf)
}

func appendSolution(buf []byte, id, number int, res knapsack.Result) []byte {
	buf = strconv.AppendInt(buf, int64(id), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(number), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, res.Cost, 10)
	buf = append(buf, ' ', ' ')
	for i, v := range res.Combination {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}

	return buf
}

// Writer writes solution lines through a buffer. Call Flush when done.
type Writer struct {
	bw      *bufio.Writer
	scratch []byte
}

// NewSolutionWriter returns a Writer over w.
func NewSolutionWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Write appends the solution line of inst.
func (w *Writer) Write(inst knapsack.Instance, res knapsack.Result) error {
	w.scratch = appendSolution(w.scratch[:0], inst.ID, inst.Number, res)
	w.scratch = append(w.scratch, '\n')
	_, err := w.bw.Write(w.scratch)

	return err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error { return w.bw.Flush() }
