package feed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileProvider serves pages out of a YAML file holding a list of items:
//
//	items:
//	  - id: a1
//	    title: First
type FileProvider struct {
	Path  string
	items []Item
}

type fileDoc struct {
	Items []Item `yaml:"items"`
}

// LoadFile reads and parses path.
func LoadFile(path string) (*FileProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feed file: %w", err)
	}
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse feed file: %w", err)
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("feed file %s has no items", path)
	}
	return &FileProvider{Path: path, items: doc.Items}, nil
}

func (f *FileProvider) FetchPage(ctx context.Context, number, size int) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	return slice(f.items, number, size)
}
