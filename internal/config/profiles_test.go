package config

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

func TestProfilesRegistry_Add(t *testing.T) {
	tests := []struct {
		name    string
		initial []Profile
		addName string
		addPath string
		wantErr error
		wantLen int
	}{
		{
			name:    "add first profile",
			initial: []Profile{},
			addName: "main",
			addPath: "/tmp/main.yaml",
			wantErr: nil,
			wantLen: 1,
		},
		{
			name: "add second profile",
			initial: []Profile{
				{Name: "existing", StatePath: "/tmp/existing.yaml"},
			},
			addName: "alt",
			addPath: "/tmp/alt.yaml",
			wantErr: nil,
			wantLen: 2,
		},
		{
			name: "duplicate name",
			initial: []Profile{
				{Name: "main", StatePath: "/tmp/main.yaml"},
			},
			addName: "main",
			addPath: "/tmp/other.yaml",
			wantErr: ErrDuplicateProfile,
			wantLen: 1,
		},
		{
			name:    "empty name",
			initial: []Profile{},
			addName: "",
			addPath: "/tmp/x.yaml",
			wantErr: ErrEmptyName,
			wantLen: 0,
		},
		{
			name:    "name with path separator",
			initial: []Profile{},
			addName: "../evil",
			addPath: "",
			wantErr: ErrInvalidName,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &ProfilesRegistry{
				Profiles: tt.initial,
			}

			err := reg.Add(tt.addName, tt.addPath)

			if err != tt.wantErr {
				t.Errorf("Add() error = %v, wantErr %v", err, tt.wantErr)
			}

			if len(reg.Profiles) != tt.wantLen {
				t.Errorf("Add() profiles length = %d, want %d", len(reg.Profiles), tt.wantLen)
			}

			// Check default is set for first profile
			if tt.wantLen == 1 && tt.wantErr == nil {
				if reg.DefaultProfile != tt.addName {
					t.Errorf("Add() default profile = %s, want %s", reg.DefaultProfile, tt.addName)
				}
			}
		})
	}
}

func TestProfilesRegistry_AddDefaultStatePath(t *testing.T) {
	tmpDir := t.TempDir()
	withRegistryPath(t, filepath.Join(tmpDir, "profiles.json"))

	reg := &ProfilesRegistry{}
	if err := reg.Add("weekend", ""); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	want := filepath.Join(tmpDir, "weekend.yaml")
	if reg.Profiles[0].StatePath != want {
		t.Errorf("Add() state path = %s, want %s", reg.Profiles[0].StatePath, want)
	}
}

func TestProfilesRegistry_Remove(t *testing.T) {
	tests := []struct {
		name           string
		initial        []Profile
		defaultProfile string
		removeName     string
		wantErr        error
		wantLen        int
		wantDefault    string
	}{
		{
			name: "remove non-default profile",
			initial: []Profile{
				{Name: "main", StatePath: "/tmp/main.yaml"},
				{Name: "alt", StatePath: "/tmp/alt.yaml"},
			},
			defaultProfile: "alt",
			removeName:     "main",
			wantLen:        1,
			wantDefault:    "alt",
		},
		{
			name: "remove default profile",
			initial: []Profile{
				{Name: "main", StatePath: "/tmp/main.yaml"},
				{Name: "alt", StatePath: "/tmp/alt.yaml"},
			},
			defaultProfile: "main",
			removeName:     "main",
			wantLen:        1,
			wantDefault:    "alt",
		},
		{
			name: "remove last profile",
			initial: []Profile{
				{Name: "main", StatePath: "/tmp/main.yaml"},
			},
			defaultProfile: "main",
			removeName:     "main",
			wantLen:        0,
			wantDefault:    "",
		},
		{
			name: "remove non-existent profile",
			initial: []Profile{
				{Name: "main", StatePath: "/tmp/main.yaml"},
			},
			defaultProfile: "main",
			removeName:     "missing",
			wantErr:        ErrProfileNotFound,
			wantLen:        1,
			wantDefault:    "main",
		},
		{
			name:           "remove empty name",
			initial:        []Profile{{Name: "main", StatePath: "/tmp/main.yaml"}},
			defaultProfile: "main",
			removeName:     "",
			wantErr:        ErrEmptyName,
			wantLen:        1,
			wantDefault:    "main",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &ProfilesRegistry{
				Profiles:       tt.initial,
				DefaultProfile: tt.defaultProfile,
			}

			err := reg.Remove(tt.removeName)

			if err != tt.wantErr {
				t.Errorf("Remove() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(reg.Profiles) != tt.wantLen {
				t.Errorf("Remove() profiles length = %d, want %d", len(reg.Profiles), tt.wantLen)
			}
			if reg.DefaultProfile != tt.wantDefault {
				t.Errorf("Remove() default profile = %s, want %s", reg.DefaultProfile, tt.wantDefault)
			}
		})
	}
}

func TestProfilesRegistry_SetDefault(t *testing.T) {
	reg := &ProfilesRegistry{
		Profiles: []Profile{
			{Name: "main", StatePath: "/tmp/main.yaml"},
			{Name: "alt", StatePath: "/tmp/alt.yaml"},
		},
		DefaultProfile: "main",
	}

	if err := reg.SetDefault("alt"); err != nil {
		t.Fatalf("SetDefault() error = %v", err)
	}
	if reg.DefaultProfile != "alt" {
		t.Errorf("SetDefault() default profile = %s, want alt", reg.DefaultProfile)
	}
	if err := reg.SetDefault("missing"); err != ErrProfileNotFound {
		t.Errorf("SetDefault() error = %v, want %v", err, ErrProfileNotFound)
	}
	if err := reg.SetDefault(""); err != ErrEmptyName {
		t.Errorf("SetDefault() error = %v, want %v", err, ErrEmptyName)
	}
}

func TestProfilesRegistry_ResolveStatePath(t *testing.T) {
	reg := &ProfilesRegistry{
		Profiles: []Profile{
			{Name: "main", StatePath: "/tmp/main.yaml"},
			{Name: "alt", StatePath: "/tmp/alt.yaml"},
		},
		DefaultProfile: "main",
	}
	empty := &ProfilesRegistry{}

	tests := []struct {
		name    string
		reg     *ProfilesRegistry
		profile string
		want    string
		wantErr error
	}{
		{"explicit profile", reg, "alt", "/tmp/alt.yaml", nil},
		{"default profile", reg, "", "/tmp/main.yaml", nil},
		{"fallback", empty, "", "/tmp/fallback.yaml", nil},
		{"unknown profile", reg, "missing", "", ErrProfileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.reg.ResolveStatePath(tt.profile, "/tmp/fallback.yaml")
			if err != tt.wantErr {
				t.Fatalf("ResolveStatePath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveStatePath() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLoadSaveProfilesRegistry(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "profiles.json")
	withRegistryPath(t, configPath)

	// Loading a non-existent file yields an empty registry
	reg, err := LoadProfilesRegistry()
	if err != nil {
		t.Fatalf("LoadProfilesRegistry() error = %v, want nil", err)
	}
	if len(reg.Profiles) != 0 {
		t.Errorf("LoadProfilesRegistry() profiles length = %d, want 0", len(reg.Profiles))
	}

	if err := reg.Add("main", "/tmp/main.yaml"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := SaveProfilesRegistry(reg); err != nil {
		t.Fatalf("SaveProfilesRegistry() error = %v", err)
	}

	loaded, err := LoadProfilesRegistry()
	if err != nil {
		t.Fatalf("LoadProfilesRegistry() error = %v", err)
	}
	if len(loaded.Profiles) != 1 || loaded.Profiles[0].StatePath != "/tmp/main.yaml" {
		t.Errorf("LoadProfilesRegistry() profiles = %v", loaded.Profiles)
	}
	if loaded.DefaultProfile != "main" {
		t.Errorf("LoadProfilesRegistry() default profile = %s, want main", loaded.DefaultProfile)
	}
}

func TestProfilesRegistry_JSON(t *testing.T) {
	reg := &ProfilesRegistry{
		Profiles:       []Profile{{Name: "main", StatePath: "/tmp/main.yaml"}},
		DefaultProfile: "main",
	}

	data, err := json.Marshal(reg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if raw["defaultProfile"] != "main" {
		t.Errorf("defaultProfile = %v, want main", raw["defaultProfile"])
	}
}

// withRegistryPath points the registry at path for the duration of the test
func withRegistryPath(t *testing.T, path string) {
	t.Helper()
	original := registryPath
	registryPath = func() (string, error) { return path, nil }
	t.Cleanup(func() { registryPath = original })
}
