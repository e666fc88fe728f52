// Package store persists access messages in their structured external
// representation. A message store is a single JSON file of records with
// stable identifiers, used as a send queue snapshot, a fixture set for
// tests, or a human-inspectable archive.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/btmesh-protocol/btmesh-go/pkg/access"
	"github.com/btmesh-protocol/btmesh-go/pkg/version"
)

// StoreVersion is the current version of the store file format.
const StoreVersion = 1

// StoredMessage is one persisted access message.
type StoredMessage struct {
	// ID is a UUID assigned when the message is appended.
	ID string `json:"id"`

	// StoredAt is when the message was appended.
	StoredAt time.Time `json:"stored_at"`

	// Record is the message in external form.
	Record access.Record `json:"record"`
}

// storeFile is the on-disk layout.
type storeFile struct {
	Version  int             `json:"version"`
	Protocol string          `json:"protocol_version"`
	SavedAt  time.Time       `json:"saved_at"`
	Messages []StoredMessage `json:"messages,omitempty"`
}

// MessageStore manages persistence of access messages to a JSON file.
// All methods are safe for concurrent use.
type MessageStore struct {
	mu   sync.Mutex
	path string
}

// NewMessageStore creates a store backed by the given file path.
// The file is created on first Append.
func NewMessageStore(path string) *MessageStore {
	return &MessageStore{path: path}
}

// Append validates the message, assigns it a UUID, and persists it.
// The assigned ID is returned.
func (s *MessageStore) Append(msg *access.Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return "", err
	}

	stored := StoredMessage{
		ID:       uuid.NewString(),
		StoredAt: time.Now(),
		Record:   msg.Record(),
	}
	file.Messages = append(file.Messages, stored)

	if err := s.save(file); err != nil {
		return "", err
	}
	return stored.ID, nil
}

// List returns all stored messages in append order.
func (s *MessageStore) List() ([]StoredMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}
	return file.Messages, nil
}

// Message parses the stored record with the given ID back into a
// validated access message.
func (s *MessageStore) Message(id string) (*access.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, stored := range file.Messages {
		if stored.ID == id {
			return access.FromRecord(stored.Record)
		}
	}
	return nil, fmt.Errorf("message %s not found", id)
}

// Clear removes the store file.
func (s *MessageStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// load reads the store file. A missing file yields an empty store.
// Caller must hold s.mu.
func (s *MessageStore) load() (*storeFile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &storeFile{Version: StoreVersion}, nil
	}
	if err != nil {
		return nil, err
	}

	file := &storeFile{}
	if err := json.Unmarshal(data, file); err != nil {
		return nil, err
	}
	if file.Protocol != "" {
		stamped, err := version.Parse(file.Protocol)
		if err != nil {
			return nil, fmt.Errorf("store %s: %w", s.path, err)
		}
		current, err := version.Parse(version.Current)
		if err != nil {
			return nil, err
		}
		if !current.Compatible(stamped) {
			return nil, fmt.Errorf("store %s: written by protocol %s, incompatible with %s", s.path, stamped, current)
		}
	}
	return file, nil
}

// save writes the store file. Caller must hold s.mu.
func (s *MessageStore) save(file *storeFile) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file.Version = StoreVersion
	file.Protocol = version.Current
	file.SavedAt = time.Now()

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
