package source

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// fileSource streams a plain text file line by line. Lines have no length
// limit; trailing "\r\n" or "\n" is removed.
type fileSource struct {
	name string
	file *os.File
}

func openFile(path string) (*fileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	return &fileSource{name: path, file: f}, nil
}

func (s *fileSource) Name() string { return s.name }

func (s *fileSource) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		r := bufio.NewReader(s.file)
		for {
			line, err := r.ReadString('\n')
			if err != nil && err != io.EOF {
				yield("", fmt.Errorf("%w: reading %s: %w", ErrInputUnavailable, s.name, err))
				return
			}
			if line != "" {
				if !yield(strings.TrimRight(line, "\r\n"), nil) {
					return
				}
			}
			if err == io.EOF {
				return
			}
		}
	}
}

func (s *fileSource) Close() error {
	return s.file.Close()
}
