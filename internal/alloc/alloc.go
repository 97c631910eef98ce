// Package alloc implements the Scoped Allocator collaborator spec.md §6
// consumes from the host: a Mark()/Release(mark) pair bracketing the
// per-element scratch buffers the Input Normalizer and Replacement Engine
// produce.
//
// Go's garbage collector makes an explicit arena unnecessary for
// correctness, but the scope discipline spec.md §3's Lifecycle section asks
// for — "per-element normalized buffers live only until the element's row
// of results is produced" — is still worth modeling: it bounds how many
// scratch buffers are retained concurrently and lets every per-element
// scratch buffer be returned to a pool instead of re-allocated, the same
// sync.Pool idiom github.com/coregx/coregex/meta's search_state.go uses
// for per-search VM state.
package alloc

import "sync"

var bufPool = sync.Pool{
	New: func() any { return new([]byte) },
}

// Scope is one bracketed allocation region, corresponding to one element's
// worth of scratch work.
type Scope struct {
	bufs []*[]byte
}

// Mark opens a new scope. Callers must call Release when the element's
// row of results has been produced.
func Mark() *Scope {
	return &Scope{}
}

// Get returns a scratch buffer with at least n bytes of capacity, reset to
// zero length. The buffer is valid until Release is called on this scope.
func (s *Scope) Get(n int) []byte {
	bp := bufPool.Get().(*[]byte)
	buf := *bp
	if cap(buf) < n {
		buf = make([]byte, 0, n)
	} else {
		buf = buf[:0]
	}
	s.bufs = append(s.bufs, bp)
	*bp = buf
	return buf
}

// Release returns every scratch buffer acquired in this scope to the pool.
// It must be called on every exit path, including error paths, per
// spec.md §3's Lifecycle section.
func (s *Scope) Release() {
	for _, bp := range s.bufs {
		*bp = (*bp)[:0]
		bufPool.Put(bp)
	}
	s.bufs = nil
}
