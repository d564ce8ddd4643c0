package world

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"sandbox/pkg/sectors"
)

// Store manages sector generation and on-disk caching. Sectors are
// generated on demand, written to the world directory as raw block
// bytes, and neighbor sectors are queued for background generation.
type Store struct {
	dir        string
	seed       int64
	inFlight   map[string]chan struct{}
	inFlightMu sync.Mutex
	genQueue   chan sectors.Index
	wg         sync.WaitGroup
}

// NewStore creates a sector store backed by the given directory.
func NewStore(dir string, seed int64, workers int) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create world directory: %w", err)
	}

	st := &Store{
		dir:      dir,
		seed:     seed,
		inFlight: make(map[string]chan struct{}),
		genQueue: make(chan sectors.Index, 1000),
	}

	// Background workers for neighbor pregeneration
	for i := 0; i < workers; i++ {
		st.wg.Add(1)
		go st.worker()
	}

	return st, nil
}

func (st *Store) worker() {
	defer st.wg.Done()
	for idx := range st.genQueue {
		st.loadSector(idx)
	}
}

// Close shuts down the store's background workers.
func (st *Store) Close() {
	close(st.genQueue)
	st.wg.Wait()
}

// Seed returns the world seed the store generates with.
func (st *Store) Seed() int64 {
	return st.seed
}

// sectorPath returns the file path for a cached sector.
func (st *Store) sectorPath(idx sectors.Index) string {
	return filepath.Join(st.dir, fmt.Sprintf("%d_%d_%d.sec", idx.X, idx.Y, idx.Z))
}

// GetSector returns the sector's block data, generating and caching
// it if necessary, and queues its neighbors for pregeneration.
func (st *Store) GetSector(idx sectors.Index) (*SectorData, error) {
	data, err := st.loadSector(idx)
	if err != nil {
		return nil, err
	}

	st.queuePregen(idx)

	return data, nil
}

// loadSector reads a sector from disk, falling back to generation.
func (st *Store) loadSector(idx sectors.Index) (*SectorData, error) {
	key := idx.String()
	path := st.sectorPath(idx)

	if raw, err := os.ReadFile(path); err == nil {
		return DecodeSectorData(raw)
	}

	// Check if generation is already in progress
	st.inFlightMu.Lock()
	if ch, exists := st.inFlight[key]; exists {
		st.inFlightMu.Unlock()
		<-ch // Wait for the in-flight generation to complete
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("sector %s vanished after generation: %w", key, err)
		}
		return DecodeSectorData(raw)
	}

	ch := make(chan struct{})
	st.inFlight[key] = ch
	st.inFlightMu.Unlock()

	defer func() {
		st.inFlightMu.Lock()
		delete(st.inFlight, key)
		close(ch)
		st.inFlightMu.Unlock()
	}()

	data := Generate(idx, st.seed)

	if err := os.WriteFile(path, data.Encode(), 0644); err != nil {
		// Log but don't fail - we still have the data
		fmt.Printf("Warning: failed to cache sector %s: %v\n", key, err)
	}

	return data, nil
}

// queuePregen adds adjacent sectors to the generation queue.
func (st *Store) queuePregen(idx sectors.Index) {
	for _, adj := range sectors.Neighbors(idx) {
		select {
		case st.genQueue <- adj:
		default:
			// Queue full, skip this sector
		}
	}
}

// IsCached checks if a sector is already on disk.
func (st *Store) IsCached(idx sectors.Index) bool {
	_, err := os.Stat(st.sectorPath(idx))
	return err == nil
}
