package storage

import "time"

// Asset represents a stored input or output document
type Asset struct {
	URL     string    `json:"url" yaml:"url"`
	Name    string    `json:"name" yaml:"name"`
	Size    int64     `json:"size,omitempty" yaml:"size,omitempty"`
	ModTime time.Time `json:"modTime,omitempty" yaml:"modTime,omitempty"`
}
