// Package output provides the combined output buffer that captures a child
// process's standard output and standard error.
//
// A Buffer hands out one io.Writer per stream. Every Write appends a chunk to
// a single mutex-protected sequence, so the buffer reflects the order in which
// the runtime delivered chunks from either stream:
//
//	buf := output.NewBuffer()
//	cmd.Stdout = buf.Writer(output.Stdout)
//	cmd.Stderr = buf.Writer(output.Stderr)
//	_ = cmd.Run()
//	text := buf.String()
//
// Relative ordering between the two streams is best effort: it is whatever
// order the pipes were drained in, nothing more.
package output
