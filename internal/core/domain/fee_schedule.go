package domain

import (
	"time"

	"revenue-distribution-engine/pkg/apperror"

	"github.com/google/uuid"
)

// FeeSchedule is an explicit, versioned fee configuration. Nothing about
// fees is ambient or global: the application layer resolves the schedule in
// force and passes the resulting FeePercentage into every creation call.
// Grandfathered users are a keyed override lookup, preserved across schedule
// versions by copying them forward.
type FeeSchedule struct {
	Version     int64                       `json:"version"`
	Phase       string                      `json:"phase"` // platform growth phase label
	DefaultFee  FeePercentage               `json:"default_fee"`
	Overrides   map[uuid.UUID]FeePercentage `json:"overrides,omitempty"`
	EffectiveAt time.Time                   `json:"effective_at"`
}

// NewFeeSchedule validates and builds a fee schedule version.
func NewFeeSchedule(version int64, phase string, defaultPercent float64, effectiveAt time.Time) (*FeeSchedule, error) {
	if version <= 0 {
		return nil, apperror.ErrInvalidInput("fee schedule version must be positive")
	}
	if phase == "" {
		return nil, apperror.ErrInvalidInput("fee schedule phase is required")
	}
	fee, err := NewFeePercentage(defaultPercent)
	if err != nil {
		return nil, err
	}
	return &FeeSchedule{
		Version:     version,
		Phase:       phase,
		DefaultFee:  fee,
		Overrides:   make(map[uuid.UUID]FeePercentage),
		EffectiveAt: effectiveAt,
	}, nil
}

// Grandfather pins a user to a fee rate that survives schedule changes.
func (s *FeeSchedule) Grandfather(userID uuid.UUID, percent float64) error {
	if userID == uuid.Nil {
		return apperror.ErrInvalidInput("user id is required")
	}
	fee, err := NewFeePercentage(percent)
	if err != nil {
		return err
	}
	if s.Overrides == nil {
		s.Overrides = make(map[uuid.UUID]FeePercentage)
	}
	s.Overrides[userID] = fee
	return nil
}

// FeeFor resolves the fee for a user: grandfathered override first, default
// otherwise.
func (s *FeeSchedule) FeeFor(userID uuid.UUID) FeePercentage {
	if fee, ok := s.Overrides[userID]; ok {
		return fee
	}
	return s.DefaultFee
}
