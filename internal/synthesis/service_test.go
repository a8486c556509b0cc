package synthesis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mrodrig/grana/internal/category"
	"github.com/mrodrig/grana/internal/investment"
	"github.com/mrodrig/grana/internal/ownership"
	"github.com/mrodrig/grana/internal/recurring"
	"github.com/mrodrig/grana/internal/synthesis"
	"github.com/mrodrig/grana/internal/transaction"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthlySchedule(owner uuid.UUID, next time.Time) *recurring.Schedule {
	return &recurring.Schedule{
		ID:             uuid.New(),
		UserID:         owner,
		CategoryID:     uuid.New(),
		Kind:           transaction.TypeExpense,
		Amount:         dec("49.90"),
		Description:    "Streaming subscription",
		PaymentMethod:  transaction.PaymentCreditCard,
		StartDate:      date(2024, time.January, 1),
		Frequency:      recurring.FrequencyMonthly,
		NextOccurrence: next,
		Active:         true,
	}
}

func TestService_FromSchedule_FiresAndAdvances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	asOf := date(2024, time.June, 10)
	sched := monthlySchedule(owner, asOf)

	repo := synthesis.NewMockRepository(ctrl)
	ftx := synthesis.NewMockFiringTx(ctrl)

	repo.EXPECT().BeginFiring(gomock.Any(), sched.ID).Return(ftx, nil)
	ftx.EXPECT().Schedule(gomock.Any()).Return(sched, nil)
	ftx.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()

			assert.True(t, tx.Amount.Equal(dec("49.90")))
			assert.Equal(t, transaction.TypeExpense, tx.Type)
			assert.Equal(t, sched.CategoryID, tx.CategoryID)
			assert.Equal(t, "Streaming subscription", tx.Description)
			assert.Equal(t, asOf, tx.Date)
			require.NotNil(t, tx.ScheduleID)
			assert.Equal(t, sched.ID, *tx.ScheduleID)

			return nil
		})
	ftx.EXPECT().AdvanceSchedule(gomock.Any(), date(2024, time.July, 10)).Return(nil)
	ftx.EXPECT().Commit().Return(nil)
	ftx.EXPECT().Rollback().Return(nil)

	svc := synthesis.NewService(repo)

	tx, err := svc.FromSchedule(context.Background(), sched.ID, owner, asOf)
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.NotEmpty(t, tx.ID)
}

func TestService_FromSchedule_AdvancesStrictlyForward(t *testing.T) {
	freqs := map[recurring.Frequency]time.Time{
		recurring.FrequencyDaily:   date(2024, time.June, 11),
		recurring.FrequencyWeekly:  date(2024, time.June, 17),
		recurring.FrequencyMonthly: date(2024, time.July, 10),
		recurring.FrequencyAnnual:  date(2025, time.June, 10),
	}

	for freq, wantNext := range freqs {
		t.Run(string(freq), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			owner := uuid.New()
			asOf := date(2024, time.June, 10)
			sched := monthlySchedule(owner, asOf)
			sched.Frequency = freq

			repo := synthesis.NewMockRepository(ctrl)
			ftx := synthesis.NewMockFiringTx(ctrl)

			repo.EXPECT().BeginFiring(gomock.Any(), sched.ID).Return(ftx, nil)
			ftx.EXPECT().Schedule(gomock.Any()).Return(sched, nil)
			ftx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
			ftx.EXPECT().
				AdvanceSchedule(gomock.Any(), wantNext).
				DoAndReturn(func(_ context.Context, next time.Time) error {
					assert.True(t, next.After(asOf), "next occurrence must move forward")
					return nil
				})
			ftx.EXPECT().Commit().Return(nil)
			ftx.EXPECT().Rollback().Return(nil)

			svc := synthesis.NewService(repo)

			_, err := svc.FromSchedule(context.Background(), sched.ID, owner, asOf)
			require.NoError(t, err)
		})
	}
}

func TestService_FromSchedule_AlreadyAdvancedIsNoOp(t *testing.T) {
	// Second firing of the same due date: the committed first firing
	// already advanced next occurrence, so this one must post nothing.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	asOf := date(2024, time.June, 10)
	sched := monthlySchedule(owner, date(2024, time.July, 10))

	repo := synthesis.NewMockRepository(ctrl)
	ftx := synthesis.NewMockFiringTx(ctrl)

	repo.EXPECT().BeginFiring(gomock.Any(), sched.ID).Return(ftx, nil)
	ftx.EXPECT().Schedule(gomock.Any()).Return(sched, nil)
	ftx.EXPECT().Rollback().Return(nil)

	svc := synthesis.NewService(repo)

	tx, err := svc.FromSchedule(context.Background(), sched.ID, owner, asOf)
	require.NoError(t, err)
	assert.Nil(t, tx)
}

func TestService_FromSchedule_InactiveIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	asOf := date(2024, time.June, 10)
	sched := monthlySchedule(owner, asOf)
	sched.Active = false

	repo := synthesis.NewMockRepository(ctrl)
	ftx := synthesis.NewMockFiringTx(ctrl)

	repo.EXPECT().BeginFiring(gomock.Any(), sched.ID).Return(ftx, nil)
	ftx.EXPECT().Schedule(gomock.Any()).Return(sched, nil)
	ftx.EXPECT().Rollback().Return(nil)

	svc := synthesis.NewService(repo)

	tx, err := svc.FromSchedule(context.Background(), sched.ID, owner, asOf)
	require.NoError(t, err)
	assert.Nil(t, tx)
}

func TestService_FromSchedule_OwnershipEnforced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	asOf := date(2024, time.June, 10)
	sched := monthlySchedule(uuid.New(), asOf)

	repo := synthesis.NewMockRepository(ctrl)
	ftx := synthesis.NewMockFiringTx(ctrl)

	repo.EXPECT().BeginFiring(gomock.Any(), sched.ID).Return(ftx, nil)
	ftx.EXPECT().Schedule(gomock.Any()).Return(sched, nil)
	ftx.EXPECT().Rollback().Return(nil)

	svc := synthesis.NewService(repo)

	_, err := svc.FromSchedule(context.Background(), sched.ID, uuid.New(), asOf)
	assert.ErrorIs(t, err, ownership.ErrAccessDenied)
}

func TestService_FromSchedule_PersistFailureIsRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	asOf := date(2024, time.June, 10)
	sched := monthlySchedule(owner, asOf)

	repo := synthesis.NewMockRepository(ctrl)
	ftx := synthesis.NewMockFiringTx(ctrl)

	repo.EXPECT().BeginFiring(gomock.Any(), sched.ID).Return(ftx, nil)
	ftx.EXPECT().Schedule(gomock.Any()).Return(sched, nil)
	ftx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	ftx.EXPECT().Rollback().Return(nil)

	svc := synthesis.NewService(repo)

	_, err := svc.FromSchedule(context.Background(), sched.ID, owner, asOf)
	require.Error(t, err)
	assert.True(t, synthesis.Retryable(err))
}

func heldInvestment(owner uuid.UUID) *investment.Investment {
	return &investment.Investment{
		ID:     uuid.New(),
		UserID: owner,
		Name:   "Tesla",
		Symbol: "TSLA",
	}
}

func movement(kind investment.MovementKind, amount, fees string) *investment.Movement {
	return &investment.Movement{
		ID:     uuid.New(),
		UserID: uuid.Nil,
		Kind:   kind,
		Amount: dec(amount),
		Fees:   dec(fees),
		Date:   date(2024, time.June, 10),
	}
}

func TestService_FromMovement_PurchaseIncludesFees(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	inv := heldInvestment(owner)
	mv := movement(investment.MovementPurchase, "1000.00", "10.00")

	existing := &category.Category{
		ID:   uuid.New(),
		Name: "investments",
		Type: transaction.TypeExpense,
	}

	repo := synthesis.NewMockRepository(ctrl)
	ptx := synthesis.NewMockPostingTx(ctrl)

	repo.EXPECT().BeginPosting(gomock.Any()).Return(ptx, nil)
	ptx.EXPECT().
		FindAvailableCategories(gomock.Any(), owner, transaction.TypeExpense).
		Return([]*category.Category{existing}, nil)
	ptx.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()

			assert.Equal(t, transaction.TypeExpense, tx.Type)
			assert.True(t, tx.Amount.Equal(dec("1010.00")), "fees carried into the expense, got %s", tx.Amount)
			assert.Equal(t, existing.ID, tx.CategoryID)
			assert.Equal(t, "Purchase - Tesla (TSLA)", tx.Description)
			require.NotNil(t, tx.InvestmentID)
			assert.Equal(t, inv.ID, *tx.InvestmentID)

			return nil
		})
	ptx.EXPECT().Commit().Return(nil)
	ptx.EXPECT().Rollback().Return(nil)

	svc := synthesis.NewService(repo)

	tx, err := svc.FromMovement(context.Background(), mv, inv, owner)
	require.NoError(t, err)
	require.NotNil(t, tx)
}

func TestService_FromMovement_SaleExcludesFees(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	inv := heldInvestment(owner)
	mv := movement(investment.MovementSale, "500.00", "5.00")

	existing := &category.Category{
		ID:      uuid.New(),
		Name:    "Investments",
		Type:    transaction.TypeIncome,
		Default: true,
	}

	repo := synthesis.NewMockRepository(ctrl)
	ptx := synthesis.NewMockPostingTx(ctrl)

	repo.EXPECT().BeginPosting(gomock.Any()).Return(ptx, nil)
	ptx.EXPECT().
		FindAvailableCategories(gomock.Any(), owner, transaction.TypeIncome).
		Return([]*category.Category{existing}, nil)
	ptx.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, transaction.TypeIncome, tx.Type)
			assert.True(t, tx.Amount.Equal(dec("500.00")), "fees excluded from income, got %s", tx.Amount)
			assert.Equal(t, "Sale - Tesla (TSLA)", tx.Description)

			return nil
		})
	ptx.EXPECT().Commit().Return(nil)
	ptx.EXPECT().Rollback().Return(nil)

	svc := synthesis.NewService(repo)

	_, err := svc.FromMovement(context.Background(), mv, inv, owner)
	require.NoError(t, err)
}

func TestService_FromMovement_CreatesCategoryOnFirstUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	inv := heldInvestment(owner)
	mv := movement(investment.MovementDividend, "42.00", "0")

	repo := synthesis.NewMockRepository(ctrl)
	ptx := synthesis.NewMockPostingTx(ctrl)

	created := uuid.New()

	repo.EXPECT().BeginPosting(gomock.Any()).Return(ptx, nil)
	ptx.EXPECT().
		FindAvailableCategories(gomock.Any(), owner, transaction.TypeIncome).
		Return([]*category.Category{
			{ID: uuid.New(), Name: "Salary", Type: transaction.TypeIncome, Default: true},
		}, nil)
	ptx.EXPECT().
		UpsertCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *category.Category) error {
			c.ID = created

			assert.Equal(t, "Investments", c.Name)
			assert.Equal(t, transaction.TypeIncome, c.Type)
			assert.NotEmpty(t, c.Color)
			assert.NotEmpty(t, c.Icon)
			require.NotNil(t, c.UserID)
			assert.Equal(t, owner, *c.UserID)

			return nil
		})
	ptx.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, created, tx.CategoryID)
			return nil
		})
	ptx.EXPECT().Commit().Return(nil)
	ptx.EXPECT().Rollback().Return(nil)

	svc := synthesis.NewService(repo)

	_, err := svc.FromMovement(context.Background(), mv, inv, owner)
	require.NoError(t, err)
}

func TestService_FromMovement_AdjustmentIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	inv := heldInvestment(owner)
	mv := movement(investment.MovementAdjustment, "100.00", "0")

	svc := synthesis.NewService(synthesis.NewMockRepository(ctrl))

	tx, err := svc.FromMovement(context.Background(), mv, inv, owner)
	require.NoError(t, err)
	assert.Nil(t, tx)
}

func TestService_FromMovement_OwnershipEnforced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inv := heldInvestment(uuid.New())
	mv := movement(investment.MovementSale, "100.00", "0")

	svc := synthesis.NewService(synthesis.NewMockRepository(ctrl))

	_, err := svc.FromMovement(context.Background(), mv, inv, uuid.New())
	assert.ErrorIs(t, err, ownership.ErrAccessDenied)
}

func TestService_FromMovement_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	inv := heldInvestment(owner)
	mv := movement(investment.MovementKind("transfer"), "100.00", "0")

	svc := synthesis.NewService(synthesis.NewMockRepository(ctrl))

	_, err := svc.FromMovement(context.Background(), mv, inv, owner)
	assert.ErrorIs(t, err, synthesis.ErrInvalidState)
}

func TestService_FromMovement_CategoryFailureIsRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	inv := heldInvestment(owner)
	mv := movement(investment.MovementYield, "12.00", "0")

	repo := synthesis.NewMockRepository(ctrl)
	ptx := synthesis.NewMockPostingTx(ctrl)

	repo.EXPECT().BeginPosting(gomock.Any()).Return(ptx, nil)
	ptx.EXPECT().
		FindAvailableCategories(gomock.Any(), owner, transaction.TypeIncome).
		Return(nil, nil)
	ptx.EXPECT().UpsertCategory(gomock.Any(), gomock.Any()).Return(errors.New("unique violation"))
	ptx.EXPECT().Rollback().Return(nil)

	svc := synthesis.NewService(repo)

	_, err := svc.FromMovement(context.Background(), mv, inv, owner)
	require.Error(t, err)
	assert.True(t, synthesis.Retryable(err))
}
