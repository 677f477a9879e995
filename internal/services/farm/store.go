package farm

import (
	"errors"
	"io/fs"

	"github.com/Argeon482/Pet-Farm/internal/services/snapshot"
)

// Store persists committed farm states
type Store interface {
	Save(st snapshot.State) error
}

// FileStore keeps the state in a single YAML file
type FileStore struct {
	Path string
}

// Save writes st to the file
func (f FileStore) Save(st snapshot.State) error {
	return snapshot.Save(f.Path, st)
}

// Load reads the state file. When it does not exist yet, fresh is returned and
// created reports true; nothing is written until the first commit.
func (f FileStore) Load(fresh func() snapshot.State) (st snapshot.State, created bool, err error) {
	st, err = snapshot.Load(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return fresh(), true, nil
	}
	if err != nil {
		return snapshot.State{}, false, err
	}
	return st, false, nil
}

// MemoryStore records saved states. It is used where no file should be touched.
type MemoryStore struct {
	Saved []snapshot.State
	// Err, when set, fails every Save
	Err error
}

// Save appends a copy of st
func (m *MemoryStore) Save(st snapshot.State) error {
	if m.Err != nil {
		return m.Err
	}
	m.Saved = append(m.Saved, st.Clone())
	return nil
}

// Last returns the most recently saved state
func (m *MemoryStore) Last() (snapshot.State, bool) {
	if len(m.Saved) == 0 {
		return snapshot.State{}, false
	}
	return m.Saved[len(m.Saved)-1], true
}
