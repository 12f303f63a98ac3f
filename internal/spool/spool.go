// Package spool buffers resolved assignments until all prompting has
// finished, then emits them in order.
//
// Deferring the flush keeps prompt text and assignment output from
// interleaving when both streams point at the same terminal, and guarantees
// an interrupted run never produces partial output.
package spool

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Spool is an ordered, append-only buffer of NAME="value" lines backed by a
// temporary file. The file is unlinked as soon as it is created, so an
// interrupted run leaves nothing on the filesystem; appended entries remain
// readable through the open handle.
type Spool struct {
	f *os.File

	// cleanup holds the file path when the early unlink failed (some
	// platforms refuse to remove an open file) and removal must wait for
	// Close.
	cleanup string
}

// New creates a spool in the system temporary directory.
func New() (*Spool, error) {
	path := filepath.Join(os.TempDir(), "prompt-env-"+uuid.NewString())
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return nil, err
	}

	s := &Spool{f: f}
	if err := os.Remove(path); err != nil {
		s.cleanup = path
	}
	return s, nil
}

// Append records one assignment as a NAME="value" line. The value is written
// verbatim; embedded quotes are not escaped.
func (s *Spool) Append(name, value string) error {
	_, err := fmt.Fprintf(s.f, "%s=\"%s\"\n", name, value)
	return err
}

// Flush copies every appended line, in append order, to w.
func (s *Spool) Flush(w io.Writer) error {
	if _, err := s.f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	_, err := io.Copy(w, s.f)
	return err
}

// Close releases the backing file. Safe to call after Flush.
func (s *Spool) Close() error {
	err := s.f.Close()
	if s.cleanup != "" {
		if rmErr := os.Remove(s.cleanup); err == nil {
			err = rmErr
		}
		s.cleanup = ""
	}
	return err
}
