package service

import (
	"context"
	"time"

	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// FraudConfig holds the rule thresholds for the fraud engine.
type FraudConfig struct {
	HighAmountMinor     int64
	CriticalAmountMinor int64
	VelocityLimit       int64
	VelocityWindow      time.Duration
}

// Risk score cutoffs per action tier.
const (
	fraudBlockScore   = 80
	fraudVerifyScore  = 60
	fraudMonitorScore = 40
)

// RuleFraudService implements ports.FraudDetectionService with additive
// rule scoring. Each triggered rule contributes points and an indicator;
// the total decides the action tier.
type RuleFraudService struct {
	velocity ports.VelocityStore
	cfg      FraudConfig
	log      zerolog.Logger
}

// NewRuleFraudService creates a new RuleFraudService.
func NewRuleFraudService(velocity ports.VelocityStore, cfg FraudConfig, log zerolog.Logger) *RuleFraudService {
	return &RuleFraudService{velocity: velocity, cfg: cfg, log: log}
}

// AnalyzePayment scores the payment and records the attempt in the payer's
// velocity window. Velocity store failures degrade to scoring without the
// velocity rule rather than blocking the payment path.
func (s *RuleFraudService) AnalyzePayment(ctx context.Context, payment *domain.Payment) (*ports.FraudAssessment, error) {
	score := 0
	var indicators []string

	switch {
	case payment.Amount.Value >= s.cfg.CriticalAmountMinor:
		score += 45
		indicators = append(indicators, "critical_amount")
	case payment.Amount.Value >= s.cfg.HighAmountMinor:
		score += 30
		indicators = append(indicators, "high_amount")
	}

	if payment.PayerID == payment.PayeeID {
		score += 50
		indicators = append(indicators, "self_payment")
	}

	if payment.Metadata["flagged"] == "true" {
		score += 35
		indicators = append(indicators, "flagged_source")
	}

	if err := s.velocity.Record(ctx, payment.PayerID, s.cfg.VelocityWindow); err != nil {
		s.log.Warn().Err(err).Str("payer_id", payment.PayerID.String()).Msg("velocity record failed")
	}
	count, err := s.velocity.CountRecent(ctx, payment.PayerID, s.cfg.VelocityWindow)
	if err != nil {
		s.log.Warn().Err(err).Str("payer_id", payment.PayerID.String()).Msg("velocity count failed, skipping velocity rule")
	} else {
		switch {
		case count > s.cfg.VelocityLimit:
			score += 40
			indicators = append(indicators, "velocity_exceeded")
		case count > s.cfg.VelocityLimit/2:
			score += 25
			indicators = append(indicators, "velocity_elevated")
		}
	}

	action := ports.FraudAllow
	switch {
	case score >= fraudBlockScore:
		action = ports.FraudBlock
	case score >= fraudVerifyScore:
		action = ports.FraudRequireVerification
	case score >= fraudMonitorScore:
		action = ports.FraudMonitor
	}

	if action != ports.FraudAllow {
		s.log.Info().
			Str("payment_id", payment.ID.String()).
			Int("risk_score", score).
			Strs("indicators", indicators).
			Str("action", string(action)).
			Msg("fraud rules triggered")
	}

	return &ports.FraudAssessment{
		RiskScore:  score,
		Indicators: indicators,
		Action:     action,
	}, nil
}
