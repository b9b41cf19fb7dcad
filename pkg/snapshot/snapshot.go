// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/safety"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
)

const (
	// ManifestVersion is bumped whenever the data file layout changes.
	ManifestVersion = 1

	// createdAtFormat is fixed width so manifests sort as strings.
	createdAtFormat = "2006-01-02T15:04:05.000000000Z"
)

var (
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")
	ErrUnsupported      = errors.New("unsupported snapshot version")
	ErrNoSnapshot       = errors.New("no snapshot found")
)

// Manifest describes one exported ledger.
type Manifest struct {
	Version      int    `json:"version"`
	CreatedAt    string `json:"created_at"`
	Data         File   `json:"data"`
	Participants int    `json:"participants"`
	Balances     int    `json:"balances"`
	MarketCap    uint64 `json:"market_cap"`
	Milestone    uint8  `json:"milestone"`
}

func (m *Manifest) Created() (time.Time, error) {
	return time.Parse(createdAtFormat, m.CreatedAt)
}

// File is a single data file of a snapshot.
type File struct {
	Name   string `json:"name"`
	Bytes  int64  `json:"bytes"`
	SHA256 string `json:"sha256"`
}

// Source is anything that can produce a full ledger dump.
type Source interface {
	Dump() (*ledger.Dump, error)
}

// Target is anything that can load a full ledger dump.
type Target interface {
	Restore(dump *ledger.Dump) error
}

// hashWriter counts and hashes everything written to the underlying file.
type hashWriter struct {
	f *os.File
	n int64
	h hash.Hash
}

func newHashWriter(path string) (*hashWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &hashWriter{f: f, h: sha256.New()}, nil
}

func (hw *hashWriter) Write(p []byte) (int, error) {
	n, err := hw.f.Write(p)
	if n > 0 {
		_, _ = hw.h.Write(p[:n])
		hw.n += int64(n)
	}
	return n, err
}

func (hw *hashWriter) Close() (File, error) {
	if err := hw.f.Close(); err != nil {
		return File{}, err
	}
	return File{
		Name:   filepath.Base(hw.f.Name()),
		Bytes:  hw.n,
		SHA256: hex.EncodeToString(hw.h.Sum(nil)),
	}, nil
}

// Export streams src as zstd compressed JSON into dir and writes the
// manifest next to it.
func Export(src Source, dir string) (*Manifest, error) {
	dump, err := src.Dump()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, constants.DefaultPerms755); err != nil {
		return nil, err
	}

	// Setup pipeline: json -> zstd -> hashWriter -> disk
	hw, err := newHashWriter(filepath.Join(dir, constants.SnapshotDataFileName))
	if err != nil {
		return nil, err
	}
	zw, err := zstd.NewWriter(hw, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		_, _ = hw.Close()
		return nil, fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if err := json.NewEncoder(zw).Encode(dump); err != nil {
		zw.Close()
		_, _ = hw.Close()
		return nil, fmt.Errorf("failed to encode ledger: %w", err)
	}
	if err := zw.Close(); err != nil {
		_, _ = hw.Close()
		return nil, fmt.Errorf("failed to close zstd writer: %w", err)
	}
	data, err := hw.Close()
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{
		Version:      ManifestVersion,
		CreatedAt:    time.Now().UTC().Format(createdAtFormat),
		Data:         data,
		Participants: len(dump.Participants),
		Balances:     len(dump.Balances),
		MarketCap:    dump.Global.CurrentMarketCap,
		Milestone:    dump.Global.CurrentMilestone,
	}
	if err := writeManifest(dir, manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

// Import verifies the snapshot in dir and restores it into dst.
func Import(dir string, dst Target) (*Manifest, error) {
	manifest, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}
	if manifest.Version != ManifestVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupported, manifest.Version)
	}

	dataPath := filepath.Join(dir, manifest.Data.Name)
	if err := verify(dataPath, manifest.Data); err != nil {
		return nil, err
	}

	f, err := os.Open(dataPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	dump := &ledger.Dump{}
	if err := json.NewDecoder(zr).Decode(dump); err != nil {
		return nil, fmt.Errorf("failed to decode ledger: %w", err)
	}
	if err := dst.Restore(dump); err != nil {
		return nil, err
	}
	return manifest, nil
}

func verify(path string, want File) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return err
	}
	if n != want.Bytes || hex.EncodeToString(h.Sum(nil)) != want.SHA256 {
		return fmt.Errorf("%w: %s", ErrChecksumMismatch, want.Name)
	}
	return nil
}

// ReadManifest loads the manifest of the snapshot in dir.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, constants.SnapshotManifestFileName))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest in %s: %w", dir, err)
	}
	return &m, nil
}

func writeManifest(dir string, manifest *Manifest) error {
	manifestData, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, constants.SnapshotManifestFileName), manifestData, constants.WriteReadReadPerms)
}

// Entry is a named snapshot under a Manager root.
type Entry struct {
	Name     string
	Dir      string
	Manifest *Manifest
}

// Manager keeps named snapshots under one root directory.
type Manager struct {
	baseDir string
	policy  safety.Policy
}

// NewManager only deletes below baseDir until a wider policy is supplied
// with WithPolicy.
func NewManager(baseDir string) *Manager {
	return &Manager{
		baseDir: baseDir,
		policy:  safety.Policy{BaseDir: baseDir, AllowPrefixes: []string{baseDir}},
	}
}

func (m *Manager) WithPolicy(policy safety.Policy) *Manager {
	m.policy = policy
	return m
}

func (m *Manager) Dir(name string) string {
	return filepath.Join(m.baseDir, name)
}

// Create exports src as the snapshot called name.
func (m *Manager) Create(name string, src Source) (*Manifest, error) {
	return Export(src, m.Dir(name))
}

// Restore imports the snapshot called name into dst.
func (m *Manager) Restore(name string, dst Target) (*Manifest, error) {
	return Import(m.Dir(name), dst)
}

// Remove deletes the snapshot called name.
func (m *Manager) Remove(name string) error {
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		return fmt.Errorf("invalid snapshot name %q", name)
	}
	if _, err := ReadManifest(m.Dir(name)); err != nil {
		return fmt.Errorf("snapshot %s: %w", name, err)
	}
	return safety.RemoveAll(m.policy, m.Dir(name))
}

// listConcurrency bounds the manifests read at once by List.
const listConcurrency = 8

// List returns every snapshot with a readable manifest, newest first.
func (m *Manager) List() ([]Entry, error) {
	dirs, err := os.ReadDir(m.baseDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	found := make([]*Entry, len(dirs))
	var g errgroup.Group
	g.SetLimit(listConcurrency)
	for i, d := range dirs {
		if !d.IsDir() {
			continue
		}
		g.Go(func() error {
			manifest, err := ReadManifest(m.Dir(d.Name()))
			if err != nil {
				// not a snapshot
				return nil
			}
			found[i] = &Entry{Name: d.Name(), Dir: m.Dir(d.Name()), Manifest: manifest}
			return nil
		})
	}
	_ = g.Wait()

	var entries []Entry
	for _, e := range found {
		if e != nil {
			entries = append(entries, *e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Manifest.CreatedAt > entries[j].Manifest.CreatedAt
	})
	return entries, nil
}

// Latest returns the newest snapshot.
func (m *Manager) Latest() (Entry, error) {
	entries, err := m.List()
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, ErrNoSnapshot
	}
	return entries[0], nil
}
