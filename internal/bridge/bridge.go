// Package bridge fills vertex buffers owned by a host runtime.
//
// Host runtimes such as the JVM hand out array storage through an
// acquire/release pair: the native side pins or copies the array, writes
// into it, and releases it with a mode that says whether the writes must be
// copied back. Fill drives that protocol around pagemesh.Generate.
package bridge

import (
	"errors"
	"fmt"

	"github.com/peyilo/pagemesh"
)

// ReleaseMode tells the host what to do with the acquired elements.
type ReleaseMode int

const (
	// ReleaseCommit copies the elements back into the host array, if they
	// were copied out, and frees the native view (JNI mode 0).
	ReleaseCommit ReleaseMode = 0

	// ReleaseAbort frees the native view without copying back (JNI_ABORT).
	ReleaseAbort ReleaseMode = 2
)

func (m ReleaseMode) String() string {
	switch m {
	case ReleaseCommit:
		return "commit"
	case ReleaseAbort:
		return "abort"
	default:
		return fmt.Sprintf("ReleaseMode(%d)", int(m))
	}
}

// HostArray is a float array owned by the host runtime.
type HostArray interface {
	// Len returns the array length, or a negative value if the array
	// handle is null.
	Len() int

	// Acquire returns a writable view of the array elements.
	Acquire() ([]float32, error)

	// Release gives the view back to the host. It is called exactly once
	// after a successful Acquire.
	Release(mode ReleaseMode)
}

// Fill writes the mesh grid described by s into arr.
//
// The array length is checked before acquiring the elements so that a
// wrongly sized array is never pinned. The view is released with
// ReleaseCommit when the grid was written and ReleaseAbort otherwise.
// Acquisition failures are reported as pagemesh.ErrInvalidBuffer.
func Fill(arr HostArray, s pagemesh.Spec, opts ...pagemesh.Option) (err error) {
	log := pagemesh.Logger()
	defer func() {
		if err != nil {
			log.Warn("bridge: mesh buffer rejected", "spec", s.String(), "error", err)
		}
	}()

	if err := s.Validate(); err != nil {
		return err
	}
	if arr == nil {
		return pagemesh.ErrInvalidBuffer
	}
	n := arr.Len()
	if n < 0 {
		return pagemesh.ErrInvalidBuffer
	}
	if want := s.BufferLen(); n != want {
		return &pagemesh.SizeError{Want: want, Got: n}
	}

	verts, err := arr.Acquire()
	if err != nil {
		return fmt.Errorf("%w: %w", pagemesh.ErrInvalidBuffer, err)
	}
	if verts == nil {
		// A host that returned no error but no storage either still holds
		// nothing we may release.
		return pagemesh.ErrInvalidBuffer
	}

	mode := ReleaseAbort
	defer func() { arr.Release(mode) }()

	if err := pagemesh.Generate(verts, s, opts...); err != nil {
		return err
	}
	mode = ReleaseCommit
	return nil
}

// ErrAcquire is a convenience error for HostArray implementations whose
// host returned a null element pointer.
var ErrAcquire = errors.New("bridge: host returned no array elements")
