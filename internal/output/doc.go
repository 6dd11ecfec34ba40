// Package output formats query results for display or machine consumption.
//
// Two formats are supported:
//   - text — one value per line, suitable for shell pipelines (default)
//   - json — full structured result
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*Result]. [WriteResult] is a
// convenience helper that handles destination selection.
package output
