// Package snapshot persists the whole farm state as a single YAML file and
// provides built-in example scenarios.
package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Argeon482/Pet-Farm/internal/domain"
)

// CurrentVersion is the state file format version
const CurrentVersion = 1

// DefaultCash is the starting balance of a fresh farm
const DefaultCash = 490_000_000

// State is the full application snapshot
type State struct {
	Version   int                 `yaml:"version"`
	ProfileID string              `yaml:"profileId"`
	Houses    []domain.House      `yaml:"houses"`
	Warehouse domain.Warehouse    `yaml:"warehouse"`
	Cash      float64             `yaml:"cash"`
	Prices    domain.PriceConfig  `yaml:"prices"`
	Collected domain.Collection   `yaml:"collected"`
	Sales     []domain.SaleRecord `yaml:"sales"`
	Checkins  domain.Schedule     `yaml:"checkinHours"`
	// Scenario names the example the state was built from, empty for a real farm
	Scenario  string    `yaml:"scenario,omitempty"`
	UpdatedAt time.Time `yaml:"updatedAt,omitempty"`
}

// New returns an empty farm: no houses, the default warehouse and the given
// balance, prices and check-in hours.
func New(cash float64, prices domain.PriceConfig, checkins domain.Schedule) State {
	hours := make(domain.Schedule, len(checkins))
	copy(hours, checkins)
	return State{
		Version:   CurrentVersion,
		ProfileID: uuid.NewString(),
		Houses:    []domain.House{},
		Warehouse: domain.DefaultWarehouse(),
		Cash:      cash,
		Prices:    prices.Clone(),
		Collected: domain.Collection{},
		Sales:     []domain.SaleRecord{},
		Checkins:  hours,
	}
}

// Clone returns a deep copy
func (s State) Clone() State {
	out := s
	out.Houses = domain.CloneHouses(s.Houses)
	out.Warehouse = s.Warehouse.Clone()
	out.Prices = s.Prices.Clone()
	out.Collected = append(domain.Collection(nil), s.Collected...)
	out.Sales = append([]domain.SaleRecord(nil), s.Sales...)
	out.Checkins = append(domain.Schedule(nil), s.Checkins...)
	return out
}

// Validate checks the invariants a loaded state must satisfy
func (s State) Validate() error {
	ids := make(map[int]bool, len(s.Houses))
	for _, h := range s.Houses {
		if ids[h.ID] {
			return fmt.Errorf("snapshot: duplicate house id %d", h.ID)
		}
		ids[h.ID] = true
		if !h.Division.Valid() {
			return fmt.Errorf("snapshot: house %d: unknown division %q", h.ID, h.Division)
		}
		if err := h.Validate(); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		for i, sl := range h.Slots {
			if sl.NPC.Days != 0 && !domain.ValidNPCDays(sl.NPC.Days) {
				return fmt.Errorf("snapshot: house %d slot %d: NPC lifetime %d days, want 7 or 15", h.ID, i+1, sl.NPC.Days)
			}
		}
	}
	for _, item := range s.Warehouse {
		if item.Stock < 0 || item.SafetyStock < 0 {
			return fmt.Errorf("snapshot: warehouse item %s: negative stock", item.ID)
		}
	}
	if _, err := domain.NewSchedule(s.Checkins...); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// Parse decodes and validates a state payload
func Parse(data []byte) (State, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return State{}, errors.New("snapshot: state payload is empty")
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("snapshot: decode state: %w", err)
	}
	if st.Version > CurrentVersion {
		return State{}, fmt.Errorf("snapshot: state version %d is newer than supported version %d", st.Version, CurrentVersion)
	}
	if st.Version == 0 {
		st.Version = CurrentVersion
	}
	if st.ProfileID == "" {
		st.ProfileID = uuid.NewString()
	}
	if st.Prices.Pets == nil {
		st.Prices.Pets = map[domain.Rank]float64{}
	}
	if err := st.Validate(); err != nil {
		return State{}, err
	}
	return st, nil
}

// Load reads the state file. A missing file is reported with an error that
// satisfies errors.Is(err, fs.ErrNotExist).
func Load(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, fmt.Errorf("snapshot: read %s: %w", path, err)
	}
	st, err := Parse(data)
	if err != nil {
		return State{}, fmt.Errorf("%s: %w", path, err)
	}
	return st, nil
}

// Marshal encodes the state as YAML
func Marshal(st State) ([]byte, error) {
	st.Version = CurrentVersion
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(st); err != nil {
		return nil, fmt.Errorf("snapshot: encode state: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("snapshot: encode state: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the state to path, replacing the previous file atomically.
// Parent directories are created as needed.
func Save(path string, st State) error {
	data, err := Marshal(st)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: create dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".petfarm-state-*")
	if err != nil {
		return fmt.Errorf("snapshot: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("snapshot: replace %s: %w", path, err)
	}
	return nil
}
