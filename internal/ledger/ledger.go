// Package ledger records a manifest for every generation run so a later run
// with the same inputs can be checked against it.
package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"pkg.jsn.cam/slippage/pkg/storage"
)

const runsBucket = "runs"

// ErrRunNotFound is returned by Get for an unknown run ID
var ErrRunNotFound = errors.New("run not found")

// FileDigest identifies one output file by content
type FileDigest struct {
	Name   string `json:"name"` // relative to the run directory
	SHA256 string `json:"sha256"`
	Bytes  int64  `json:"bytes"`
}

// Manifest describes one generation run. It holds run metadata only; the
// records themselves live in the CSV files.
type Manifest struct {
	RunID            string       `json:"run_id"`
	CreatedAt        time.Time    `json:"created_at"`
	Seed             uint64       `json:"seed"`
	Profile          string       `json:"profile"`
	Strategy         string       `json:"strategy"`
	RequestedSlips   int          `json:"requested_slips"`
	RequestedMembers int          `json:"requested_members"`
	Slips            int          `json:"slips"`
	Members          int          `json:"members"`
	Dir              string       `json:"dir"`
	Files            []FileDigest `json:"files"`
}

// Ledger stores manifests in a storage.Backend
type Ledger struct {
	backend storage.Backend
}

// New wraps backend, creating the runs bucket if needed
func New(backend storage.Backend) (*Ledger, error) {
	if err := backend.CreateBucket(runsBucket); err != nil {
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}
	return &Ledger{backend: backend}, nil
}

// Open returns a ledger on the bbolt file at path, or an in-memory one when
// path is empty
func Open(path string) (*Ledger, error) {
	var backend storage.Backend
	if path == "" {
		backend = storage.NewMemoryBackend()
	} else {
		b, err := storage.NewBboltBackend(path)
		if err != nil {
			return nil, err
		}
		backend = b
	}

	l, err := New(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return l, nil
}

// Close closes the underlying backend
func (l *Ledger) Close() error {
	return l.backend.Close()
}

// Record assigns a run ID and timestamp when missing and stores m
func (l *Ledger) Record(m *Manifest) error {
	if m.RunID == "" {
		m.RunID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	if err := storage.PutJSON(l.backend, runsBucket, m.RunID, m); err != nil {
		return fmt.Errorf("failed to record run %s: %w", m.RunID, err)
	}
	log.Printf("[LEDGER] Recorded run %s (seed %d, %d slips, %d members)", m.RunID, m.Seed, m.Slips, m.Members)
	return nil
}

// Get loads one manifest
func (l *Ledger) Get(runID string) (*Manifest, error) {
	var m Manifest
	found, err := storage.GetJSON(l.backend, runsBucket, runID, &m)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return &m, nil
}

// List returns every manifest, newest first
func (l *Ledger) List() ([]Manifest, error) {
	runs, err := storage.ListJSON[Manifest](l.backend, runsBucket, func(key string, err error) {
		log.Printf("[LEDGER] Warning: Failed to decode run %s: %v", key, err)
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	return runs, nil
}

// Mismatch is one file whose current content differs from its manifest entry
type Mismatch struct {
	Name     string
	Expected string
	Actual   string // empty when the file could not be read
	Err      error
}

func (m Mismatch) String() string {
	if m.Err != nil {
		return fmt.Sprintf("%s: %v", m.Name, m.Err)
	}
	return fmt.Sprintf("%s: expected sha256 %s, got %s", m.Name, m.Expected, m.Actual)
}

// Verify re-digests every file of m found under dir (m.Dir when dir is empty)
func Verify(m *Manifest, dir string) []Mismatch {
	if dir == "" {
		dir = m.Dir
	}

	var mismatches []Mismatch
	for _, f := range m.Files {
		got, err := DigestRunFile(dir, filepath.FromSlash(f.Name))
		if err != nil {
			mismatches = append(mismatches, Mismatch{Name: f.Name, Expected: f.SHA256, Err: err})
			continue
		}
		if got.SHA256 != f.SHA256 {
			mismatches = append(mismatches, Mismatch{Name: f.Name, Expected: f.SHA256, Actual: got.SHA256})
		}
	}
	return mismatches
}

// DigestRunFile hashes name under dir and records name as given, so a
// manifest entry keeps any subdirectory it was written to
func DigestRunFile(dir, name string) (FileDigest, error) {
	d, err := DigestFile(filepath.Join(dir, name))
	if err != nil {
		return FileDigest{}, err
	}
	d.Name = filepath.ToSlash(name)
	return d, nil
}

// DigestFile hashes the file at path
func DigestFile(path string) (FileDigest, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileDigest{}, err
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return FileDigest{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return FileDigest{
		Name:   filepath.Base(path),
		SHA256: hex.EncodeToString(h.Sum(nil)),
		Bytes:  n,
	}, nil
}
