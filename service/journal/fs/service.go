// Package fs provides a filesystem journal writing one JSON document per
// snapshot through the afs abstraction, so the target may be a local
// directory, memory:// or any other scheme afs supports.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/maitre/model"
	"github.com/viant/maitre/service/journal"
)

// Config holds the filesystem journal settings.
type Config struct {
	// BaseURL is the directory snapshots are written under.
	BaseURL string
}

// Service writes sequential snapshot documents under a base URL.
type Service struct {
	fs     afs.Service
	config Config
	mu     sync.Mutex
}

// New creates a filesystem journal.
func New(fs afs.Service, config Config) (*Service, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("journal base URL cannot be empty")
	}
	return &Service{fs: fs, config: config}, nil
}

// Record marshals the snapshot and uploads it as
// <baseURL>/<sequence>-<status>.json.
func (s *Service) Record(ctx context.Context, snapshot *model.Snapshot) error {
	if snapshot == nil {
		return nil
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %v: %w", snapshot.Sequence, err)
	}
	URL := url.Join(s.config.BaseURL, fmt.Sprintf("%06d-%s.json", snapshot.Sequence, snapshot.Status))
	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write snapshot %v: %w", snapshot.Sequence, err)
	}
	return nil
}

// ensure Service implements journal.Service
var _ journal.Service = (*Service)(nil)
