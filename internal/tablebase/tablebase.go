package tablebase

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// EmptyPath disables the tables.
const EmptyPath = "<empty>"

// Tables tracks the Syzygy files found on the configured path and the probe
// settings. Probing itself is done by the search.
type Tables struct {
	mu         sync.RWMutex
	logger     zerolog.Logger
	paths      []string
	wdl, dtz   int
	maxPieces  int
	rule50     bool
	probeDepth int
	probeLimit int
}

func New(logger zerolog.Logger) *Tables {
	return &Tables{
		logger:     logger,
		rule50:     true,
		probeDepth: 1,
		probeLimit: 7,
	}
}

// Init rescans the directories of path, separated by the OS list separator,
// and returns the number of table files found.
func (t *Tables) Init(path string) int {
	var paths []string
	if path != "" && path != EmptyPath {
		for _, p := range filepath.SplitList(path) {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
	}

	var wdl, dtz, maxPieces int
	for _, dir := range paths {
		var entries, err = os.ReadDir(dir)
		if err != nil {
			t.logger.Warn().Err(err).Str("path", dir).Msg("tablebase directory skipped")
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			var name = entry.Name()
			switch strings.ToLower(filepath.Ext(name)) {
			case ".rtbw":
				wdl++
			case ".rtbz":
				dtz++
			default:
				continue
			}
			maxPieces = max(maxPieces, pieceCount(name))
		}
	}

	t.mu.Lock()
	t.paths = paths
	t.wdl, t.dtz, t.maxPieces = wdl, dtz, maxPieces
	t.mu.Unlock()

	if len(paths) != 0 {
		t.logger.Info().Int("wdl", wdl).Int("dtz", dtz).Int("pieces", maxPieces).
			Msgf("found %d tablebases", wdl+dtz)
	}
	return wdl + dtz
}

// pieceCount reads the material signature of a file name such as KRPvKR.rtbw.
func pieceCount(name string) int {
	var signature = strings.TrimSuffix(name, filepath.Ext(name))
	var n = 0
	for _, c := range signature {
		if strings.ContainsRune("KQRBNP", c) {
			n++
		}
	}
	return n
}

func (t *Tables) SetRule50(v bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rule50 = v
}

func (t *Tables) SetProbeDepth(depth int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.probeDepth = depth
}

func (t *Tables) SetProbeLimit(limit int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.probeLimit = limit
}

func (t *Tables) Rule50() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rule50
}

func (t *Tables) ProbeDepth() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.probeDepth
}

// Cardinality is the largest piece count that may be probed.
func (t *Tables) Cardinality() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return min(t.maxPieces, t.probeLimit)
}

func (t *Tables) Paths() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.paths...)
}
