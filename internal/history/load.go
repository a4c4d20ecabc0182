package history

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// SkipRecord counts how often one track was skipped, carrying display names
// for rendering.
type SkipRecord struct {
	Track  string
	Artist string
	Count  int
}

// Result is the outcome of one ingestion pass over a set of export files for
// one event kind. It is immutable once returned; re-ranking with a different
// top-N re-reads nothing and works from the same Result.
type Result struct {
	// Plays holds every accepted event. Order within a file is preserved;
	// order across files is not part of the contract, so anything needing
	// chronological order sorts by Played explicitly.
	Plays []PlayEvent

	// PlaysByYear partitions Plays exactly: every event is in the bucket for
	// its calendar year and no other.
	PlaysByYear map[int][]PlayEvent

	// SkipCounts maps track URI to its skip record. Only populated when
	// ingesting track events.
	SkipCounts map[string]*SkipRecord

	ShuffleCount int

	// Countries maps connection country to listen count. Events with no
	// country are counted under UnknownCountry.
	Countries map[string]int
}

// Years returns the years present in PlaysByYear, ascending.
func (r *Result) Years() []int {
	years := make([]int, 0, len(r.PlaysByYear))
	for y := range r.PlaysByYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Loader reads Spotify history export files.
type Loader struct {
	// Location is used to extract the calendar year from event timestamps.
	// Defaults to the local time zone, matching what a listener sees.
	Location *time.Location

	// Warnf receives per-file parse warnings. Defaults to stderr.
	Warnf func(format string, args ...any)
}

func NewLoader() *Loader {
	return &Loader{
		Location: time.Local,
		Warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
}

// LoadDir ingests every .json file directly under dir.
func (l *Loader) LoadDir(dir string, kind EventKind) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading history directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == ".json" {
			paths = append(paths, entry.Name())
		}
	}
	sort.Strings(paths)

	return l.Load(os.DirFS(dir), paths, kind), nil
}

// Load ingests the named files from fsys for the given event kind. Files are
// read and parsed concurrently; a file that fails to read or parse is warned
// about and excluded, never fatal. If every file fails the result is simply
// empty - callers treat zero totals as "no data".
func (l *Loader) Load(fsys fs.FS, paths []string, kind EventKind) *Result {
	// Fan out one read-and-parse task per file. Each task owns its partial
	// slice; nothing shared is written until the sequential merge below.
	accepted := make([][]PlayEvent, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			events, err := l.readFile(fsys, path, kind)
			if err != nil {
				l.Warnf("skipping %s: %v", path, err)
				return
			}
			accepted[i] = events
		}(i, path)
	}
	wg.Wait()

	result := &Result{
		PlaysByYear: make(map[int][]PlayEvent),
		SkipCounts:  make(map[string]*SkipRecord),
		Countries:   make(map[string]int),
	}
	for _, events := range accepted {
		for _, e := range events {
			result.add(e, kind)
		}
	}
	return result
}

func (l *Loader) readFile(fsys fs.FS, path string, kind EventKind) ([]PlayEvent, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	var events []PlayEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}

	var out []PlayEvent
	for _, e := range events {
		if kind.identifier(&e) == "" {
			continue
		}
		played, err := time.Parse(time.RFC3339, e.Ts)
		if err != nil {
			l.Warnf("skipping event in %s: bad timestamp %q", path, e.Ts)
			continue
		}
		e.Played = played.In(l.Location)
		out = append(out, e)
	}
	return out, nil
}

func (r *Result) add(e PlayEvent, kind EventKind) {
	r.Plays = append(r.Plays, e)

	year := e.Played.Year()
	r.PlaysByYear[year] = append(r.PlaysByYear[year], e)

	if kind == KindTrack && e.Skipped {
		record := r.SkipCounts[e.TrackURI]
		if record == nil {
			record = &SkipRecord{Track: e.TrackName, Artist: e.ArtistName}
			r.SkipCounts[e.TrackURI] = record
		}
		record.Count++
	}

	if e.Shuffle {
		r.ShuffleCount++
	}

	country := e.ConnCountry
	if country == "" {
		country = UnknownCountry
	}
	r.Countries[country]++
}
