package intcode

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Snapshot captures the complete state of a program, so that it may be
// resumed later, possibly by another process.
type Snapshot struct {
	PC           int64       `cbor:"1,keyasint"`
	RelativeBase int64       `cbor:"2,keyasint"`
	State        State       `cbor:"3,keyasint"`
	Steps        uint64      `cbor:"4,keyasint"`
	Memory       []MemoryRun `cbor:"5,keyasint"`
}

// MemoryRun is a contiguous run of memory values starting at Base.
type MemoryRun struct {
	Base   int64   `cbor:"1,keyasint"`
	Values []int64 `cbor:"2,keyasint"`
}

// canonical encoding keeps snapshots of identical states byte-identical
var snapshotEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("intcode: failed to create CBOR enc mode: %v", err))
	}
	snapshotEncMode = em
}

// Snapshot captures the program's current state. Memory is recorded as runs
// of non-zero values.
func (p *Program) Snapshot() *Snapshot {
	snap := &Snapshot{
		PC:           p.pc,
		RelativeBase: p.tape.RelativeBase(),
		State:        p.state,
		Steps:        p.steps,
	}
	p.tape.runs(func(base int64, values []int64) {
		for i := 0; i < len(values); {
			if values[i] == 0 {
				i++
				continue
			}
			j := i + 1
			for j < len(values) && values[j] != 0 {
				j++
			}
			snap.Memory = appendRun(snap.Memory, base+int64(i), values[i:j])
			i = j
		}
	})
	return snap
}

// appendRun appends a copy of values, merging it with the last run if the two
// are adjacent, as happens at page boundaries.
func appendRun(runs []MemoryRun, base int64, values []int64) []MemoryRun {
	if i := len(runs) - 1; i >= 0 {
		if last := &runs[i]; last.Base+int64(len(last.Values)) == base {
			last.Values = append(last.Values, values...)
			return runs
		}
	}
	return append(runs, MemoryRun{base, append([]int64(nil), values...)})
}

// Restore creates a program that continues from the given snapshot.
func Restore(snap *Snapshot, opts ...Option) (*Program, error) {
	if snap.State != Running && snap.State != Terminated {
		return nil, fmt.Errorf("invalid snapshot state %v", int(snap.State))
	}
	p := &Program{
		tape:  &Tape{},
		pc:    snap.PC,
		state: snap.State,
		steps: snap.Steps,
	}
	options(opts).apply(p)
	for _, run := range snap.Memory {
		if err := p.tape.Stor(run.Base, run.Values...); err != nil {
			return nil, fmt.Errorf("invalid snapshot memory: %w", err)
		}
	}
	p.tape.SetRelativeBase(snap.RelativeBase)
	return p, nil
}

// Encode encodes the snapshot as canonical CBOR.
func (snap *Snapshot) Encode() ([]byte, error) {
	return snapshotEncMode.Marshal(snap)
}

// DecodeSnapshot decodes a snapshot encoded by Snapshot.Encode.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("intcode: unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// WriteFile saves the snapshot to a file.
func (snap *Snapshot) WriteFile(path string) error {
	data, err := snap.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSnapshot loads a snapshot saved by WriteFile.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	snap, err := DecodeSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return snap, nil
}
