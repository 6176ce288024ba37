package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/hammem/monarchmoney/schema"
	"github.com/viant/afs"
)

// DefaultSessionURL is where the file store persists the session unless told
// otherwise, mirroring the service's conventional dot directory.
const DefaultSessionURL = ".mm/session.json"

// FileStore persists the session as JSON at an afs URL, so plain paths,
// file://, mem:// and remote schemes all work. The stored blob round-trips
// byte-for-byte through Save/Load.
type FileStore struct {
	fs  afs.Service
	url string
}

// NewFileStore creates a store persisting the session at the given URL.
// An empty URL selects DefaultSessionURL.
func NewFileStore(url string) *FileStore {
	if url == "" {
		url = DefaultSessionURL
	}
	return &FileStore{fs: afs.New(), url: url}
}

// URL returns the persistence location.
func (f *FileStore) URL() string { return f.url }

func (f *FileStore) Save(ctx context.Context, session *schema.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err = f.fs.Upload(ctx, f.url, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to persist session at %v: %w", f.url, err)
	}
	return nil
}

func (f *FileStore) Load(ctx context.Context) (*schema.Session, error) {
	if ok, _ := f.fs.Exists(ctx, f.url); !ok {
		return nil, fmt.Errorf("%w at %v", schema.ErrSessionNotFound, f.url)
	}
	data, err := f.fs.DownloadWithURL(ctx, f.url)
	if err != nil {
		return nil, fmt.Errorf("failed to read session at %v: %w", f.url, err)
	}
	session := &schema.Session{}
	if err = json.Unmarshal(data, session); err != nil {
		return nil, fmt.Errorf("%w at %v: %v", schema.ErrSessionCorrupt, f.url, err)
	}
	if session.Token == "" {
		return nil, fmt.Errorf("%w at %v: missing token", schema.ErrSessionCorrupt, f.url)
	}
	return session, nil
}

func (f *FileStore) Delete(ctx context.Context) error {
	if ok, _ := f.fs.Exists(ctx, f.url); !ok {
		return nil
	}
	return f.fs.Delete(ctx, f.url)
}
