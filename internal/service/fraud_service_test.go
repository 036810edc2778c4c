package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/internal/core/ports"
	"revenue-distribution-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fraudTestConfig() FraudConfig {
	return FraudConfig{
		HighAmountMinor:     500_000,
		CriticalAmountMinor: 900_000_000,
		VelocityLimit:       20,
		VelocityWindow:      time.Hour,
	}
}

func fraudTestPayment(value int64, payerID, payeeID uuid.UUID) *domain.Payment {
	return &domain.Payment{
		ID:       uuid.New(),
		PayerID:  payerID,
		PayeeID:  payeeID,
		Amount:   domain.MustAmount(value, domain.CurrencyUSD),
		Metadata: map[string]string{},
	}
}

func TestRuleFraudService_AnalyzePayment(t *testing.T) {
	payer := uuid.New()
	payee := uuid.New()

	tests := []struct {
		name           string
		payment        *domain.Payment
		velocityCount  int64
		wantScore      int
		wantAction     ports.FraudAction
		wantIndicators []string
	}{
		{
			name:       "small payment allowed",
			payment:    fraudTestPayment(10_000, payer, payee),
			wantScore:  0,
			wantAction: ports.FraudAllow,
		},
		{
			name:           "high amount alone allowed",
			payment:        fraudTestPayment(600_000, payer, payee),
			wantScore:      30,
			wantAction:     ports.FraudAllow,
			wantIndicators: []string{"high_amount"},
		},
		{
			name:           "critical amount alone monitored",
			payment:        fraudTestPayment(950_000_000, payer, payee),
			wantScore:      45,
			wantAction:     ports.FraudMonitor,
			wantIndicators: []string{"critical_amount"},
		},
		{
			name:           "self payment with high amount blocked",
			payment:        fraudTestPayment(600_000, payer, payer),
			wantScore:      80,
			wantAction:     ports.FraudBlock,
			wantIndicators: []string{"high_amount", "self_payment"},
		},
		{
			name:           "flagged source with high amount requires verification",
			payment:        withMetadata(fraudTestPayment(600_000, payer, payee), "flagged", "true"),
			wantScore:      65,
			wantAction:     ports.FraudRequireVerification,
			wantIndicators: []string{"high_amount", "flagged_source"},
		},
		{
			name:           "elevated velocity adds points",
			payment:        fraudTestPayment(600_000, payer, payee),
			velocityCount:  15,
			wantScore:      55,
			wantAction:     ports.FraudMonitor,
			wantIndicators: []string{"high_amount", "velocity_elevated"},
		},
		{
			name:           "velocity limit exceeded",
			payment:        fraudTestPayment(600_000, payer, payee),
			velocityCount:  25,
			wantScore:      70,
			wantAction:     ports.FraudRequireVerification,
			wantIndicators: []string{"high_amount", "velocity_exceeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			velocity := mocks.NewMockVelocityStore(ctrl)
			velocity.EXPECT().Record(gomock.Any(), tt.payment.PayerID, time.Hour).Return(nil)
			velocity.EXPECT().CountRecent(gomock.Any(), tt.payment.PayerID, time.Hour).Return(tt.velocityCount, nil)

			svc := NewRuleFraudService(velocity, fraudTestConfig(), zerolog.Nop())
			assessment, err := svc.AnalyzePayment(context.Background(), tt.payment)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, assessment.RiskScore)
			assert.Equal(t, tt.wantAction, assessment.Action)
			assert.Equal(t, tt.wantIndicators, assessment.Indicators)
		})
	}
}

func TestRuleFraudService_VelocityStoreDownDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payment := fraudTestPayment(600_000, uuid.New(), uuid.New())

	velocity := mocks.NewMockVelocityStore(ctrl)
	velocity.EXPECT().Record(gomock.Any(), payment.PayerID, time.Hour).Return(errors.New("redis down"))
	velocity.EXPECT().CountRecent(gomock.Any(), payment.PayerID, time.Hour).Return(int64(0), errors.New("redis down"))

	svc := NewRuleFraudService(velocity, fraudTestConfig(), zerolog.Nop())
	assessment, err := svc.AnalyzePayment(context.Background(), payment)
	require.NoError(t, err)
	// Amount rule still applies; velocity rule silently skipped.
	assert.Equal(t, 30, assessment.RiskScore)
	assert.Equal(t, ports.FraudAllow, assessment.Action)
}

func withMetadata(p *domain.Payment, key, value string) *domain.Payment {
	p.Metadata[key] = value
	return p
}
