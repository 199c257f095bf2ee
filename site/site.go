package site

import (
	"io"

	"github.com/go-git/go-billy/v5"
)

// Source is the single configured file served to every client. Reads go
// back to the filesystem each time, so edits to the file show up on the
// next request.
type Source struct {
	fs   billy.Filesystem
	name string
}

func NewSource(fs billy.Filesystem, name string) *Source {
	return &Source{fs: fs, name: name}
}

func (s *Source) Name() string {
	return s.name
}

// Read returns the full contents of the configured file.
func (s *Source) Read() ([]byte, error) {
	f, err := s.fs.Open(s.name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Send streams the configured file into a transport's ReaderFrom.
func (s *Source) Send(rf io.ReaderFrom) error {
	f, err := s.fs.Open(s.name)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = rf.ReadFrom(f)
	return err
}
