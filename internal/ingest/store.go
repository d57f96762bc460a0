package ingest

import (
	"sync/atomic"
	"time"

	"github.com/sunidhi090894/kidsvids-backend/internal/domain"
	"github.com/sunidhi090894/kidsvids-backend/internal/search"
)

// Snapshot is one immutable generation of the loaded dataset together with
// the engine built over it. Consumers read whole snapshots; nothing inside a
// snapshot is ever mutated after Replace publishes it.
type Snapshot struct {
	Videos     []domain.Video
	Engine     *search.Engine
	Generation uint64
	LoadedAt   time.Time
	Skipped    int
}

// Store holds the current dataset snapshot behind an atomic pointer. Reads
// never block and never observe a partially-replaced collection; a reload
// swaps the whole pointer or leaves the previous snapshot untouched on
// failure. Lifecycle: empty -> loaded -> loaded (generation N+1).
type Store struct {
	current atomic.Pointer[Snapshot]
	gen     atomic.Uint64
}

// NewStore returns an empty Store. Current returns nil until the first
// successful Replace.
func NewStore() *Store { return &Store{} }

// Current returns the active snapshot, or nil when nothing has been loaded
// yet. The returned snapshot is read-only for its whole lifetime.
func (s *Store) Current() *Snapshot { return s.current.Load() }

// Replace publishes a new generation built from videos and the engine over
// them. The previous snapshot remains valid for readers that already hold it.
func (s *Store) Replace(videos []domain.Video, eng *search.Engine, skipped int) *Snapshot {
	snap := &Snapshot{
		Videos:     videos,
		Engine:     eng,
		Generation: s.gen.Add(1),
		LoadedAt:   time.Now().UTC(),
		Skipped:    skipped,
	}
	s.current.Store(snap)
	return snap
}
