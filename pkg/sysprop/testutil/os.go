package testutil

import (
	"bytes"
	"io"
	"os"
)

// StdoutOutputForFunc runs f and returns everything it wrote to os.Stdout.
func StdoutOutputForFunc(f func()) string {
	r, w, _ := os.Pipe()

	old := os.Stdout
	os.Stdout = w

	f()

	_ = w.Close()

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	os.Stdout = old

	return buf.String()
}

// StderrOutputForFunc runs f and returns everything it wrote to os.Stderr.
func StderrOutputForFunc(f func()) string {
	r, w, _ := os.Pipe()

	old := os.Stderr
	os.Stderr = w

	f()

	_ = w.Close()

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	os.Stderr = old

	return buf.String()
}
