package state

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

// #region store-struct
// Store owns the mapped record. Single-writer: the running process is the
// only expected mutator between its own generations.
type Store struct {
	f    *os.File
	data []byte
	path string
}

// #endregion store-struct

// #region open
// Open maps the record file at path, creating and sizing it if needed. A
// missing file or an unmatched magic/version pair is reinitialized to
// defaults and flushed before Open returns. Errors from Open mean the process
// cannot keep durable state and should not enter the loop.
func Open(path string) (*Store, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open state file: %w", err)
	}
	if err := f.Truncate(RecordSize); err != nil {
		f.Close()
		return nil, fmt.Errorf("size state file: %w", err)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, RecordSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("map state file: %w", err)
	}

	s := &Store{f: f, data: data, path: path}
	if s.u64(offMagic) != Magic || s.u64(offVersion) != LayoutVersion {
		if err := s.reinit(); err != nil {
			s.Close()
			return nil, err
		}
	}
	return s, nil
}

// reinit zero-fills the record and writes defaults. The magic is written
// last so the magic/version pair is only ever observed together.
func (s *Store) reinit() error {
	for i := range s.data {
		s.data[i] = 0
	}
	s.putU64(offVersion, LayoutVersion)
	s.SetIteration(0)
	s.SetWeight(DefaultWeight)
	s.SetBias(DefaultBias)
	s.SetRunningReward(0)
	s.putU64(offMagic, Magic)
	if err := s.Flush(); err != nil {
		return fmt.Errorf("flush fresh state: %w", err)
	}
	return nil
}

// #endregion open

// #region flush-close
// Flush forces pending writes to the backing file. It must run before any
// action that might replace or terminate the process, or this tick's updates
// are lost.
func (s *Store) Flush() error {
	if err := unix.Msync(s.data, unix.MS_SYNC); err != nil {
		return fmt.Errorf("msync state: %w", err)
	}
	return nil
}

// Close unmaps the record and closes the file.
func (s *Store) Close() error {
	if err := unix.Munmap(s.data); err != nil {
		s.f.Close()
		return fmt.Errorf("munmap state: %w", err)
	}
	s.data = nil
	return s.f.Close()
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// #endregion flush-close

// #region accessors
func (s *Store) Iteration() uint64      { return s.u64(offIteration) }
func (s *Store) Weight() float64        { return s.f64(offWeight) }
func (s *Store) Bias() float64          { return s.f64(offBias) }
func (s *Store) RunningReward() float64 { return s.f64(offRunReward) }

func (s *Store) SetIteration(v uint64)      { s.putU64(offIteration, v) }
func (s *Store) SetWeight(v float64)        { s.putF64(offWeight, v) }
func (s *Store) SetBias(v float64)          { s.putF64(offBias, v) }
func (s *Store) SetRunningReward(v float64) { s.putF64(offRunReward, v) }

// Scratch returns the scratch text up to the first NUL.
func (s *Store) Scratch() string {
	buf := s.data[offScratch : offScratch+ScratchSize]
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

// SetScratch writes the scratch text, truncating to the buffer size and
// NUL-padding the remainder.
func (s *Store) SetScratch(text string) {
	buf := s.data[offScratch : offScratch+ScratchSize]
	n := copy(buf[:ScratchSize-1], text)
	for i := n; i < ScratchSize; i++ {
		buf[i] = 0
	}
}

// Snapshot copies the current field values without mutating them.
func (s *Store) Snapshot() Record {
	return Record{
		Iteration:     s.Iteration(),
		Weight:        s.Weight(),
		Bias:          s.Bias(),
		RunningReward: s.RunningReward(),
		Scratch:       s.Scratch(),
	}
}

// #endregion accessors

// #region read-record
// ReadRecord decodes the record at path without mapping or modifying the
// file, so a corrupt record can be inspected as found. It returns an error
// when the file is missing, short, or fails the magic/version check, which
// the self-healing Open would instead reinitialize.
func ReadRecord(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("read state file: %w", err)
	}
	if len(data) < RecordSize {
		return Record{}, fmt.Errorf("state file %s is %d bytes, want %d", path, len(data), RecordSize)
	}

	u64 := func(off int) uint64 { return binary.LittleEndian.Uint64(data[off:]) }
	if m := u64(offMagic); m != Magic {
		return Record{}, fmt.Errorf("state file %s has magic %#x, want %#x", path, m, uint64(Magic))
	}
	if v := u64(offVersion); v != LayoutVersion {
		return Record{}, fmt.Errorf("state file %s has layout version %d, want %d", path, v, LayoutVersion)
	}

	scratch := data[offScratch : offScratch+ScratchSize]
	if i := bytes.IndexByte(scratch, 0); i >= 0 {
		scratch = scratch[:i]
	}
	return Record{
		Iteration:     u64(offIteration),
		Weight:        math.Float64frombits(u64(offWeight)),
		Bias:          math.Float64frombits(u64(offBias)),
		RunningReward: math.Float64frombits(u64(offRunReward)),
		Scratch:       string(scratch),
	}, nil
}

// #endregion read-record

// #region encoding
func (s *Store) u64(off int) uint64 {
	return binary.LittleEndian.Uint64(s.data[off:])
}

func (s *Store) putU64(off int, v uint64) {
	binary.LittleEndian.PutUint64(s.data[off:], v)
}

func (s *Store) f64(off int) float64 {
	return math.Float64frombits(s.u64(off))
}

func (s *Store) putF64(off int, v float64) {
	s.putU64(off, math.Float64bits(v))
}

// #endregion encoding
