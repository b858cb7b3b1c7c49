package testutil

import (
	"os"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// Call is one recorded filesystem operation.
type Call struct {
	Op   string
	Path string
}

// RecordingFs wraps an afero.Fs and records every operation made through it.
// Operations listed in FailOn return the configured error instead of
// reaching the wrapped filesystem.
type RecordingFs struct {
	afero.Fs

	// FailOn maps an operation name (for example "Mkdir" or "OpenFile") to
	// the error it should return.
	FailOn map[string]error

	mu    sync.Mutex
	calls []Call
}

// NewRecordingFs wraps fsys. A nil fsys is replaced by an in-memory filesystem.
func NewRecordingFs(fsys afero.Fs) *RecordingFs {
	if fsys == nil {
		fsys = afero.NewMemMapFs()
	}
	return &RecordingFs{Fs: fsys, FailOn: make(map[string]error)}
}

// Calls returns a copy of the recorded operations.
func (r *RecordingFs) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallCount returns the number of recorded operations.
func (r *RecordingFs) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Count returns how many times op was recorded.
func (r *RecordingFs) Count(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset clears the recorded operations.
func (r *RecordingFs) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *RecordingFs) record(op, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Op: op, Path: path})
	return r.FailOn[op]
}

func (r *RecordingFs) Create(name string) (afero.File, error) {
	if err := r.record("Create", name); err != nil {
		return nil, err
	}
	return r.Fs.Create(name)
}

func (r *RecordingFs) Mkdir(name string, perm os.FileMode) error {
	if err := r.record("Mkdir", name); err != nil {
		return err
	}
	return r.Fs.Mkdir(name, perm)
}

func (r *RecordingFs) MkdirAll(path string, perm os.FileMode) error {
	if err := r.record("MkdirAll", path); err != nil {
		return err
	}
	return r.Fs.MkdirAll(path, perm)
}

func (r *RecordingFs) Open(name string) (afero.File, error) {
	if err := r.record("Open", name); err != nil {
		return nil, err
	}
	return r.Fs.Open(name)
}

func (r *RecordingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if err := r.record("OpenFile", name); err != nil {
		return nil, err
	}
	return r.Fs.OpenFile(name, flag, perm)
}

func (r *RecordingFs) Remove(name string) error {
	if err := r.record("Remove", name); err != nil {
		return err
	}
	return r.Fs.Remove(name)
}

func (r *RecordingFs) RemoveAll(path string) error {
	if err := r.record("RemoveAll", path); err != nil {
		return err
	}
	return r.Fs.RemoveAll(path)
}

func (r *RecordingFs) Rename(oldname, newname string) error {
	if err := r.record("Rename", oldname); err != nil {
		return err
	}
	return r.Fs.Rename(oldname, newname)
}

func (r *RecordingFs) Stat(name string) (os.FileInfo, error) {
	if err := r.record("Stat", name); err != nil {
		return nil, err
	}
	return r.Fs.Stat(name)
}

func (r *RecordingFs) Name() string {
	return "RecordingFs"
}

func (r *RecordingFs) Chmod(name string, mode os.FileMode) error {
	if err := r.record("Chmod", name); err != nil {
		return err
	}
	return r.Fs.Chmod(name, mode)
}

func (r *RecordingFs) Chown(name string, uid, gid int) error {
	if err := r.record("Chown", name); err != nil {
		return err
	}
	return r.Fs.Chown(name, uid, gid)
}

func (r *RecordingFs) Chtimes(name string, atime, mtime time.Time) error {
	if err := r.record("Chtimes", name); err != nil {
		return err
	}
	return r.Fs.Chtimes(name, atime, mtime)
}
