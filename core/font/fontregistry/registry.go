package fontregistry

import (
	"sync"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/fontrun/core/font"
	"github.com/npillmayer/schuko/tracing"
)

// Registry is a type for holding font faces added by a client.
//
// Faces are kept in slots in insertion order. Deleting a face empties its slot
// instead of compacting the slots, which keeps iterators valid.
// A query must not run concurrently with mutations of the registry it
// consults; the registry itself is safe for concurrent use.
type Registry struct {
	sync.Mutex
	slots   []*FontFace    // nil for deleted faces
	index   map[uint64]int // face id -> slot
	loading *hashset.Set   // of face ids
	loaded  *hashset.Set   // of face ids
	failed  *hashset.Set   // of face ids
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold font faces.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index:   make(map[uint64]int),
		loading: hashset.New(),
		loaded:  hashset.New(),
		failed:  hashset.New(),
	}
}

// Add pushes a face into the registry if it isn't contained yet.
// It returns false if face is nil or already present.
func (fr *Registry) Add(face *FontFace) bool {
	if face == nil {
		tracer().Errorf("registry cannot store null font face")
		return false
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.index[face.id]; ok {
		return false
	}
	fr.index[face.id] = len(fr.slots)
	fr.slots = append(fr.slots, face)
	fr.track(face, face.Status())
	tracer().Debugf("registry stores font face #%d (%s)", face.id, face.Family())
	return true
}

// Has returns true if face is contained in the registry.
func (fr *Registry) Has(face *FontFace) bool {
	if face == nil {
		return false
	}
	fr.Lock()
	defer fr.Unlock()
	_, ok := fr.index[face.id]
	return ok
}

// Delete removes a face from the registry. It returns false if the face
// has not been registered.
func (fr *Registry) Delete(face *FontFace) bool {
	if face == nil {
		return false
	}
	fr.Lock()
	defer fr.Unlock()
	slot, ok := fr.index[face.id]
	if !ok {
		return false
	}
	fr.slots[slot] = nil
	delete(fr.index, face.id)
	fr.loading.Remove(face.id)
	fr.loaded.Remove(face.id)
	fr.failed.Remove(face.id)
	tracer().Debugf("registry deleted font face #%d", face.id)
	return true
}

// Clear removes all faces from the registry.
func (fr *Registry) Clear() {
	fr.Lock()
	defer fr.Unlock()
	for i := range fr.slots {
		fr.slots[i] = nil
	}
	fr.index = make(map[uint64]int)
	fr.loading.Clear()
	fr.loaded.Clear()
	fr.failed.Clear()
}

// Size returns the number of faces in the registry.
func (fr *Registry) Size() int {
	fr.Lock()
	defer fr.Unlock()
	return len(fr.index)
}

// Faces returns the faces of the registry in insertion order.
func (fr *Registry) Faces() []*FontFace {
	fr.Lock()
	defer fr.Unlock()
	faces := make([]*FontFace, 0, len(fr.index))
	for _, face := range fr.slots {
		if face != nil {
			faces = append(faces, face)
		}
	}
	return faces
}

// Descriptors returns the font descriptors of all faces, in insertion order.
// The descriptors are the faces' own, not copies.
func (fr *Registry) Descriptors() []*font.Descriptor {
	faces := fr.Faces()
	descs := make([]*font.Descriptor, len(faces))
	for i, face := range faces {
		descs[i] = face.desc
	}
	return descs
}

// Status returns the loading status of a face as tracked by the registry.
// The second return value is false if face is not registered.
func (fr *Registry) Status(face *FontFace) (Status, bool) {
	if !fr.Has(face) {
		return StatusUnloaded, false
	}
	return face.Status(), true
}

// Loading returns all faces which are currently being loaded.
func (fr *Registry) Loading() []*FontFace {
	return fr.facesIn(fr.loading)
}

// Loaded returns all faces which have been loaded successfully.
func (fr *Registry) Loaded() []*FontFace {
	return fr.facesIn(fr.loaded)
}

// Failed returns all faces for which loading failed.
func (fr *Registry) Failed() []*FontFace {
	return fr.facesIn(fr.failed)
}

func (fr *Registry) facesIn(set *hashset.Set) []*FontFace {
	fr.Lock()
	defer fr.Unlock()
	var faces []*FontFace
	for _, face := range fr.slots {
		if face != nil && set.Contains(face.id) {
			faces = append(faces, face)
		}
	}
	return faces
}

// transition moves a registered face between status sets. Faces deleted in
// the meantime are left alone.
func (fr *Registry) transition(face *FontFace, s Status, loading bool) {
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.index[face.id]; !ok {
		return
	}
	fr.track(face, s)
	if loading {
		fr.loading.Add(face.id)
	}
}

func (fr *Registry) track(face *FontFace, s Status) {
	fr.loading.Remove(face.id)
	fr.loaded.Remove(face.id)
	fr.failed.Remove(face.id)
	switch s {
	case StatusLoaded:
		fr.loaded.Add(face.id)
	case StatusError:
		fr.failed.Add(face.id)
	}
}

// LogFontList is a helper function to dump the list of faces
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered font faces ---")
	for _, face := range fr.Faces() {
		tracer().Infof("face %s", face)
	}
	tracer().Infof("-----------------------------")
	tracer().SetTraceLevel(level)
}

// --- Iteration -------------------------------------------------------------

// Iterator walks the faces of a registry in insertion order. Faces deleted
// after the iterator has been created are skipped, faces added will be
// visited.
//
//	it := registry.Iterator()
//	for it.Next() {
//	    face := it.Face()
//	    …
//	}
//
type Iterator struct {
	registry *Registry
	pos      int
	face     *FontFace
}

// Iterator returns an iterator positioned before the first face.
func (fr *Registry) Iterator() *Iterator {
	return &Iterator{registry: fr, pos: -1}
}

// Next moves to the next face and returns false if there is none.
func (it *Iterator) Next() bool {
	it.registry.Lock()
	defer it.registry.Unlock()
	for it.pos+1 < len(it.registry.slots) {
		it.pos++
		if face := it.registry.slots[it.pos]; face != nil {
			it.face = face
			return true
		}
	}
	it.face = nil
	return false
}

// Face returns the face the iterator is positioned on.
func (it *Iterator) Face() *FontFace {
	return it.face
}
