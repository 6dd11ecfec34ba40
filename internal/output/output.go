package output

import (
	"fmt"
	"io"
	"os"
)

// Result is the outcome of a single query. Exactly one of Value and Values
// is meaningful, depending on the operation: scalar queries (check, next,
// previous, nth) populate Value when Found is true; sequence queries
// (between, factor) populate Values. A Found of false is the absent
// result: the query had no answer, which is not an error.
type Result struct {
	Op     string   `json:"op"`
	Args   []uint64 `json:"args"`
	Found  bool     `json:"found"`
	Value  uint64   `json:"value,omitempty"`
	Values []uint64 `json:"values"`
}

// Scalar builds a found single-value result.
func Scalar(op string, args []uint64, value uint64) *Result {
	return &Result{Op: op, Args: args, Found: true, Value: value}
}

// Sequence builds a found multi-value result. An empty sequence is still a
// found result: the query succeeded and the answer is "no primes here".
// A nil slice is normalized to an empty one so sequence results always
// render as an array.
func Sequence(op string, args []uint64, values []uint64) *Result {
	if values == nil {
		values = []uint64{}
	}
	return &Result{Op: op, Args: args, Found: true, Values: values}
}

// Absent builds a not-found result.
func Absent(op string, args []uint64) *Result {
	return &Result{Op: op, Args: args}
}

// Writer writes a result in a specific format.
type Writer interface {
	Write(w io.Writer, res *Result) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteResult writes the result to the specified output (file path or
// stdout).
func WriteResult(res *Result, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, res)
}
