package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound          = errors.New("not found")
	ErrUnknownRank       = errors.New("unknown rank")
	ErrInvalidSchedule   = errors.New("invalid check-in schedule")
	ErrDuplicateRank     = errors.New("rank already assigned in this house")
	ErrNoNPC             = errors.New("slot has no NPC")
	ErrNoDuration        = errors.New("NPC has no duration")
	ErrSlotBusy          = errors.New("slot already has a pet")
	ErrNoPet             = errors.New("slot has no pet")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNotActiveTask     = errors.New("complete higher-priority tasks first")
	ErrNoChampion        = errors.New("no champion house")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// FarmError carries the operation and location of a failed farm mutation
type FarmError struct {
	Op      string // Operation: "start-pet", "set-npc", "sell", ...
	HouseID int    // Optional: 0 when not house specific
	Slot    int    // 0-based slot index, only meaningful with HouseID
	Err     error  // Underlying error
}

func (e *FarmError) Error() string {
	if e.HouseID != 0 {
		return fmt.Sprintf("%s [house %d slot %d]: %v", e.Op, e.HouseID, e.Slot+1, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed", e.Op)
}

func (e *FarmError) Unwrap() error {
	return e.Err
}

// ConfigError reports an invalid configuration value
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
