package numfile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/expansions"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Fragment is the progress event broadcast for every loaded-and-parsed
// fragment of a numeric text file.
type Fragment struct {
	Pos    int64 // approximate byte offset of the fragment start
	Values int   // number of values parsed in this fragment
}

// numFile represents an OS file which will be loaded as an expansion.
type numFile struct {
	path      string
	info      os.FileInfo
	file      *os.File
	cast      *caster.Caster // broadcaster for fragment-loaded events
	lastError error          // remember last I/O or parse error
}

// Loader drives the load of one numeric text file.
//
// The pipeline starts with the first call to Sum; Subscribe must be called
// before Sum to observe all fragment events.
type Loader struct {
	nf       *numFile
	fragSize int64
	once     sync.Once
	partials chan expansions.Expansion
}

// Load reads a file of whitespace-separated decimal numbers and sums all
// values exactly into one compressed expansion. Clients may indicate a
// recommended fragment length; a fragSize of 0 lets Load use sensible
// defaults derived from the file size.
//
// Loading and parsing of large files is pipelined, but this is transparent
// to the client. An empty file loads as the zero expansion.
func Load(name string, fragSize int64) (expansions.Expansion, error) {
	ld, err := Open(name, fragSize)
	if err != nil {
		return expansions.Expansion{}, err
	}
	return ld.Sum()
}

// Open prepares a loader for a numeric text file. Opening is always done
// synchronously; fragment loading begins with the first call to Sum.
func Open(name string, fragSize int64) (*Loader, error) {
	nf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	size := nf.info.Size()
	if fragSize <= 0 || fragSize > tenKb {
		if size < 64 {
			fragSize = 64
		} else if size < 1024 {
			fragSize = 64
		} else if size < tenKb {
			fragSize = 256
		} else if size < hundredKb {
			fragSize = 512
		} else if size < oneMb {
			fragSize = twoKb
		} else {
			fragSize = sixKb
		}
	}
	return &Loader{
		nf:       nf,
		fragSize: fragSize,
		partials: make(chan expansions.Expansion, 8),
	}, nil
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*numFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, ErrNoRegularFile
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	nf := &numFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
	}
	return nf, nil
}

// Subscribe returns a channel of Fragment progress events. The channel is
// closed when loading completes. Subscribe before calling Sum, or events
// published in the meantime will be missed.
func (ld *Loader) Subscribe() (<-chan interface{}, bool) {
	return ld.nf.cast.Sub(context.Background(), 16)
}

// Sum waits for loading to complete and returns the exact sum of all values
// in the file as a compressed expansion.
func (ld *Loader) Sum() (expansions.Expansion, error) {
	ld.once.Do(func() {
		go ld.loadAllFragments()
	})
	parts := make([]expansions.Expansion, 0, 8)
	for p := range ld.partials {
		parts = append(parts, p)
	}
	if ld.nf.lastError != nil {
		return expansions.Expansion{}, ld.nf.lastError
	}
	if len(parts) == 0 {
		return expansions.From(0), nil
	}
	e, err := expansions.Distill(parts...)
	if err != nil {
		return expansions.Expansion{}, err
	}
	return expansions.Compress(e), nil
}

// --- File loading goroutine ------------------------------------------------

// loadAllFragments scans the file word by word, batches values into
// fragments of roughly fragSize bytes, and hands each fragment's partial
// expansion to the accumulator. Every completed fragment is broadcast to
// subscribers.
func (ld *Loader) loadAllFragments() {
	defer close(ld.partials)
	defer ld.nf.cast.Close()
	defer ld.nf.file.Close()
	//
	scanner := bufio.NewScanner(ld.nf.file)
	scanner.Split(bufio.ScanWords)
	b := expansions.NewBuilder()
	values := 0
	var used, start int64
	flush := func() {
		if values == 0 {
			return
		}
		ld.partials <- b.Expansion()
		ld.nf.cast.Pub(Fragment{Pos: start, Values: values})
		tracer().Debugf("numfile: fragment at %d with %d values", start, values)
		b.Reset()
		values = 0
		start = used
	}
	for scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			ld.nf.lastError = fmt.Errorf("token %q: %w", tok, ErrNotANumber)
			return
		}
		if err := b.Append(v); err != nil {
			ld.nf.lastError = err
			return
		}
		values++
		used += int64(len(tok)) + 1
		if used-start >= ld.fragSize {
			flush()
		}
	}
	if err := scanner.Err(); err != nil {
		ld.nf.lastError = fmt.Errorf("error loading fragment: %w", err)
		return
	}
	flush()
}
