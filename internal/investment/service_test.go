package investment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mrodrig/grana/internal/investment"
	"github.com/mrodrig/grana/internal/ownership"
	"github.com/mrodrig/grana/internal/transaction"
)

func TestService_RecordMovement(t *testing.T) {
	owner := uuid.New()
	invID := uuid.New()
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	fees := dec("10.00")

	held := &investment.Investment{
		ID:     invID,
		UserID: owner,
		Name:   "Tesla",
		Symbol: "TSLA",
	}

	type testCase struct {
		name      string
		userID    uuid.UUID
		params    investment.MovementParams
		setupMock func(repo *investment.MockRepository, synth *investment.MockSynthesizer)
		wantErr   error
		wantMv    bool
		wantTx    bool
	}

	tests := []testCase{
		{
			name:   "PurchasePostsTransaction",
			userID: owner,
			params: investment.MovementParams{
				InvestmentID: invID,
				Kind:         investment.MovementPurchase,
				Quantity:     dec("5"),
				UnitPrice:    dec("200"),
				Amount:       dec("1000.00"),
				Fees:         &fees,
				Date:         date,
			},
			setupMock: func(repo *investment.MockRepository, synth *investment.MockSynthesizer) {
				repo.EXPECT().GetInvestment(gomock.Any(), invID).Return(held, nil)
				repo.EXPECT().
					CreateMovement(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m *investment.Movement) error {
						m.ID = uuid.New()
						m.CreatedAt = time.Now()
						return nil
					})
				synth.EXPECT().
					FromMovement(gomock.Any(), gomock.Any(), held, owner).
					Return(&transaction.Transaction{ID: uuid.New()}, nil)
			},
			wantMv: true,
			wantTx: true,
		},
		{
			name:   "NotOwner",
			userID: uuid.New(),
			params: investment.MovementParams{
				InvestmentID: invID,
				Kind:         investment.MovementSale,
				Amount:       dec("500"),
				Date:         date,
			},
			setupMock: func(repo *investment.MockRepository, _ *investment.MockSynthesizer) {
				repo.EXPECT().GetInvestment(gomock.Any(), invID).Return(held, nil)
			},
			wantErr: ownership.ErrAccessDenied,
		},
		{
			name:   "UnknownKind",
			userID: owner,
			params: investment.MovementParams{
				InvestmentID: invID,
				Kind:         investment.MovementKind("transfer"),
				Date:         date,
			},
			wantErr: investment.ErrInvalidState,
		},
		{
			name:   "NegativeAmount",
			userID: owner,
			params: investment.MovementParams{
				InvestmentID: invID,
				Kind:         investment.MovementPurchase,
				Amount:       dec("-10"),
				Date:         date,
			},
			wantErr: investment.ErrInvalidState,
		},
		{
			name:   "InvestmentMissing",
			userID: owner,
			params: investment.MovementParams{
				InvestmentID: invID,
				Kind:         investment.MovementPurchase,
				Amount:       dec("10"),
				Date:         date,
			},
			setupMock: func(repo *investment.MockRepository, _ *investment.MockSynthesizer) {
				repo.EXPECT().GetInvestment(gomock.Any(), invID).Return(nil, investment.ErrNotFound)
			},
			wantErr: investment.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := investment.NewMockRepository(ctrl)
			synth := investment.NewMockSynthesizer(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, synth)
			}

			svc := investment.NewService(repo, synth)
			mv, tx, err := svc.RecordMovement(context.Background(), tt.userID, tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMv, mv != nil)
			assert.Equal(t, tt.wantTx, tx != nil)
		})
	}
}

func TestService_RecordMovement_SynthesisFailureKeepsMovement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	invID := uuid.New()
	held := &investment.Investment{ID: invID, UserID: owner}

	repo := investment.NewMockRepository(ctrl)
	synth := investment.NewMockSynthesizer(ctrl)

	repo.EXPECT().GetInvestment(gomock.Any(), invID).Return(held, nil)
	repo.EXPECT().
		CreateMovement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *investment.Movement) error {
			m.ID = uuid.New()
			return nil
		})

	synthErr := errors.New("category insert failed")
	synth.EXPECT().
		FromMovement(gomock.Any(), gomock.Any(), held, owner).
		Return(nil, synthErr)

	svc := investment.NewService(repo, synth)

	mv, tx, err := svc.RecordMovement(context.Background(), owner, investment.MovementParams{
		InvestmentID: invID,
		Kind:         investment.MovementSale,
		Amount:       dec("500.00"),
		Date:         time.Now(),
	})

	// The movement is durable even though its ledger entry is missing.
	assert.ErrorIs(t, err, synthErr)
	require.NotNil(t, mv)
	assert.NotEmpty(t, mv.ID)
	assert.Nil(t, tx)
}

func TestService_RecordMovement_DefaultsFeesToZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	invID := uuid.New()
	held := &investment.Investment{ID: invID, UserID: owner}

	repo := investment.NewMockRepository(ctrl)
	synth := investment.NewMockSynthesizer(ctrl)

	repo.EXPECT().GetInvestment(gomock.Any(), invID).Return(held, nil)
	repo.EXPECT().
		CreateMovement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *investment.Movement) error {
			assert.True(t, m.Fees.IsZero())
			return nil
		})
	synth.EXPECT().
		FromMovement(gomock.Any(), gomock.Any(), held, owner).
		Return(&transaction.Transaction{}, nil)

	svc := investment.NewService(repo, synth)

	_, _, err := svc.RecordMovement(context.Background(), owner, investment.MovementParams{
		InvestmentID: invID,
		Kind:         investment.MovementDividend,
		Amount:       dec("42.00"),
		Date:         time.Now(),
	})
	require.NoError(t, err)
}

func TestService_Valuation_OwnershipEnforced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	invID := uuid.New()

	repo := investment.NewMockRepository(ctrl)
	repo.EXPECT().
		GetInvestment(gomock.Any(), invID).
		Return(&investment.Investment{ID: invID, UserID: owner, Quantity: dec("2"), TotalInvested: dec("100")}, nil)

	svc := investment.NewService(repo, investment.NewMockSynthesizer(ctrl))

	_, err := svc.Valuation(context.Background(), uuid.New(), invID, dec("60"))
	assert.ErrorIs(t, err, ownership.ErrAccessDenied)
}
