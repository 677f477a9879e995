package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
)

// ProfilesRegistry holds the list of known farm profiles
type ProfilesRegistry struct {
	Profiles       []Profile `json:"profiles"`
	DefaultProfile string    `json:"defaultProfile"`
}

// Profile is a named farm with its own state file
type Profile struct {
	Name      string `json:"name"`
	StatePath string `json:"statePath"`
}

var (
	// ErrProfileNotFound is returned when a profile doesn't exist in the registry
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when trying to add a profile that already exists
	ErrDuplicateProfile = errors.New("profile already exists")
	// ErrEmptyName is returned when the profile name is empty
	ErrEmptyName = errors.New("profile name cannot be empty")
	// ErrInvalidName is returned for names that cannot be used as a file name
	ErrInvalidName = errors.New("profile name may only contain letters, digits, '-' and '_'")
)

var profileName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// LoadProfilesRegistry loads the profiles registry from disk.
// Returns an empty registry if the file doesn't exist.
func LoadProfilesRegistry() (*ProfilesRegistry, error) {
	path, err := registryPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &ProfilesRegistry{Profiles: []Profile{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var registry ProfilesRegistry
	if err := json.Unmarshal(data, &registry); err != nil {
		return nil, err
	}
	return &registry, nil
}

// SaveProfilesRegistry saves the profiles registry to disk
func SaveProfilesRegistry(reg *ProfilesRegistry) error {
	path, err := registryPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Add registers a profile. An empty statePath places the state file next to
// the registry as <name>.yaml. The first profile becomes the default.
func (r *ProfilesRegistry) Add(name, statePath string) error {
	if name == "" {
		return ErrEmptyName
	}
	if !profileName.MatchString(name) {
		return ErrInvalidName
	}
	if r.index(name) >= 0 {
		return ErrDuplicateProfile
	}

	if statePath == "" {
		reg, err := registryPath()
		if err != nil {
			return err
		}
		statePath = filepath.Join(filepath.Dir(reg), name+".yaml")
	}

	r.Profiles = append(r.Profiles, Profile{Name: name, StatePath: statePath})
	if len(r.Profiles) == 1 {
		r.DefaultProfile = name
	}
	return nil
}

// Remove drops a profile from the registry. Its state file is left on disk.
func (r *ProfilesRegistry) Remove(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	i := r.index(name)
	if i < 0 {
		return ErrProfileNotFound
	}
	r.Profiles = append(r.Profiles[:i], r.Profiles[i+1:]...)

	if r.DefaultProfile == name {
		r.DefaultProfile = ""
		if len(r.Profiles) > 0 {
			r.DefaultProfile = r.Profiles[0].Name
		}
	}
	return nil
}

// SetDefault sets the default profile
func (r *ProfilesRegistry) SetDefault(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if r.index(name) < 0 {
		return ErrProfileNotFound
	}
	r.DefaultProfile = name
	return nil
}

// Get retrieves a profile by name
func (r *ProfilesRegistry) Get(name string) (*Profile, error) {
	if i := r.index(name); i >= 0 {
		p := r.Profiles[i]
		return &p, nil
	}
	return nil, ErrProfileNotFound
}

// GetDefault returns the default profile, or nil if none is set
func (r *ProfilesRegistry) GetDefault() *Profile {
	if r.DefaultProfile == "" {
		return nil
	}
	p, err := r.Get(r.DefaultProfile)
	if err != nil {
		return nil
	}
	return p
}

// ResolveStatePath picks the state file: an explicit profile name wins, then
// the default profile, then fallback.
func (r *ProfilesRegistry) ResolveStatePath(name, fallback string) (string, error) {
	if name != "" {
		p, err := r.Get(name)
		if err != nil {
			return "", err
		}
		return p.StatePath, nil
	}
	if p := r.GetDefault(); p != nil {
		return p.StatePath, nil
	}
	return fallback, nil
}

func (r *ProfilesRegistry) index(name string) int {
	for i, p := range r.Profiles {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// registryPath is a variable holding the function that returns the path to the profiles registry file.
// This allows it to be overridden in tests.
var registryPath = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "petfarm", "profiles.json"), nil
}
