// Package storage lists, reads and writes planning documents through afs, so
// inputs and outputs may live on the local disk, in memory or in any other
// afs supported location.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/option"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// Service provides document I/O
type Service struct {
	fs      afs.Service
	options []storage.Option
}

// List returns files under baseURL whose name matches pattern, sorted by URL.
// Directories are skipped. An empty pattern matches every file.
func (s *Service) List(ctx context.Context, baseURL, pattern string, recursive bool) ([]*Asset, error) {
	if pattern != "" {
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
	}
	listOptions := append([]storage.Option{}, s.options...)
	if recursive {
		listOptions = append(listOptions, option.NewRecursive(true))
	}
	objects, err := s.fs.List(ctx, baseURL, listOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects at %s: %w", baseURL, err)
	}
	assets := make([]*Asset, 0, len(objects))
	for _, obj := range objects {
		if obj.IsDir() {
			continue
		}
		name := path.Base(url.Path(obj.URL()))
		if pattern != "" {
			if ok, _ := path.Match(pattern, name); !ok {
				continue
			}
		}
		assets = append(assets, &Asset{URL: obj.URL(), Name: name, Size: obj.Size(), ModTime: obj.ModTime()})
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].URL < assets[j].URL })
	return assets, nil
}

// Download returns the content of URL
func (s *Service) Download(ctx context.Context, URL string) ([]byte, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to download data from %s: %w", URL, err)
	}
	return data, nil
}

// Upload writes data to URL, replacing any existing content.
func (s *Service) Upload(ctx context.Context, URL string, data []byte) (*Asset, error) {
	uploadOptions := append([]storage.Option{}, s.options...)
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data), uploadOptions...); err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", URL, err)
	}
	return &Asset{URL: URL, Name: path.Base(url.Path(URL)), Size: int64(len(data))}, nil
}

// Exists reports whether URL exists
func (s *Service) Exists(ctx context.Context, URL string) (bool, error) {
	exists, err := s.fs.Exists(ctx, URL, s.options...)
	if err != nil {
		return false, fmt.Errorf("failed to check if %s exists: %w", URL, err)
	}
	return exists, nil
}

// EnsureDir creates the directory at URL when it does not exist.
func (s *Service) EnsureDir(ctx context.Context, URL string) error {
	exists, err := s.Exists(ctx, URL)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err = s.fs.Create(ctx, URL, file.DefaultDirOsMode, true, s.options...); err != nil {
		return fmt.Errorf("failed to create %s: %w", URL, err)
	}
	return nil
}

// Join returns URL of name within baseURL
func (s *Service) Join(baseURL, name string) string {
	return url.Join(baseURL, name)
}

// New creates a storage service; a nil fs defaults to afs.New().
func New(fs afs.Service, options ...storage.Option) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs, options: options}
}
