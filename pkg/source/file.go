package source

import (
	"context"
	"fmt"
	"os"
)

type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return s.path
}

func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return "", fmt.Errorf("source open: %w", err)
	}
	defer f.Close()

	return readText(f)
}
