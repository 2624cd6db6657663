// Package uniformtest provides an in-memory uniform.Setter for tests.
package uniformtest

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Write is a single recorded uniform upload.
type Write struct {
	Name  string
	Value any
}

// Recorder keeps every write in order and the last value per name.
type Recorder struct {
	Writes []Write
	last   map[string]any
}

func NewRecorder() *Recorder {
	return &Recorder{last: make(map[string]any)}
}

func (r *Recorder) record(name string, v any) {
	if r.last == nil {
		r.last = make(map[string]any)
	}
	r.Writes = append(r.Writes, Write{Name: name, Value: v})
	r.last[name] = v
}

func (r *Recorder) SetBool(name string, value bool)       { r.record(name, value) }
func (r *Recorder) SetInt(name string, value int32)       { r.record(name, value) }
func (r *Recorder) SetFloat(name string, value float32)   { r.record(name, value) }
func (r *Recorder) SetVec2(name string, value mgl32.Vec2) { r.record(name, value) }
func (r *Recorder) SetVec3(name string, value mgl32.Vec3) { r.record(name, value) }
func (r *Recorder) SetVec4(name string, value mgl32.Vec4) { r.record(name, value) }
func (r *Recorder) SetMat4(name string, value mgl32.Mat4) { r.record(name, value) }

// SetSampler2D records the slot as an int32, the same as SetInt.
func (r *Recorder) SetSampler2D(name string, slot int32) { r.record(name, slot) }

// Last returns the most recent value written under name.
func (r *Recorder) Last(name string) (any, bool) {
	v, ok := r.last[name]
	return v, ok
}

// Has reports whether name was ever written.
func (r *Recorder) Has(name string) bool {
	_, ok := r.last[name]
	return ok
}

// Reset forgets all writes.
func (r *Recorder) Reset() {
	r.Writes = nil
	r.last = make(map[string]any)
}

// Since returns the writes recorded after the first n.
func (r *Recorder) Since(n int) []Write {
	if n >= len(r.Writes) {
		return nil
	}
	out := make([]Write, len(r.Writes)-n)
	copy(out, r.Writes[n:])
	return out
}
