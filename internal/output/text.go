package output

import (
	"fmt"
	"io"
)

// TextWriter outputs plain values, one per line. Absent results print
// "none" so that pipelines always see a line of output.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, res *Result) error {
	if !res.Found {
		_, err := fmt.Fprintln(w, "none")
		return err
	}
	if res.Values != nil {
		for _, v := range res.Values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(w, res.Value)
	return err
}
