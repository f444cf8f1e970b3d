package loan_test

import (
	"testing"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/loan"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newLoan(principal int64, percent int64) loan.Loan {
	p := decimal.NewFromInt(principal)
	return loan.Loan{
		Principal:             p,
		MonthlyPaymentPercent: decimal.NewFromInt(percent),
		Balance:               p,
		Status:                loan.StatusActive,
	}
}

func TestMonthlyPayment(t *testing.T) {
	got := loan.MonthlyPayment(decimal.NewFromInt(5000), decimal.NewFromInt(10))
	assert.Equal(t, "500.00", got.StringFixed(2))
}

func TestPaymentForPeriodHalvesShortPeriods(t *testing.T) {
	l := newLoan(5000, 10)

	for _, days := range []int{14, 15, 16} {
		got := loan.PaymentForPeriod(l, days, loan.StrategyPeriodFactor)
		assert.Equal(t, "250.00", got.StringFixed(2), "days=%d", days)
	}
}

func TestPaymentForPeriodFullForLongPeriods(t *testing.T) {
	l := newLoan(5000, 10)

	got := loan.PaymentForPeriod(l, 17, loan.StrategyPeriodFactor)
	assert.Equal(t, "500.00", got.StringFixed(2))
}

func TestPaymentForPeriodFullMonthlyIgnoresLength(t *testing.T) {
	l := newLoan(5000, 10)

	got := loan.PaymentForPeriod(l, 14, loan.StrategyFullMonthly)
	assert.Equal(t, "500.00", got.StringFixed(2))
}

func TestPaymentForPeriodClampedToBalance(t *testing.T) {
	l := newLoan(5000, 10)
	l.Balance = decimal.NewFromInt(100)

	got := loan.PaymentForPeriod(l, 15, loan.StrategyPeriodFactor)
	assert.Equal(t, "100.00", got.StringFixed(2))
}

func TestApplyReducesBalance(t *testing.T) {
	l := newLoan(5000, 10)

	balance, status := loan.Apply(l, decimal.NewFromInt(250))
	assert.Equal(t, "4750.00", balance.StringFixed(2))
	assert.Equal(t, loan.StatusActive, status)
}

func TestApplyCompletesExactlyAtZero(t *testing.T) {
	l := newLoan(5000, 10)
	l.Balance = decimal.NewFromInt(250)

	balance, status := loan.Apply(l, decimal.NewFromInt(250))
	assert.True(t, balance.IsZero())
	assert.Equal(t, loan.StatusCompleted, status)
}

// Twenty semi-monthly releases pay off a 5000 loan at 10% monthly,
// with no residual balance and no overpayment.
func TestSequentialReleasesAmortizeToZero(t *testing.T) {
	l := newLoan(5000, 10)

	releases := 0
	for l.Status == loan.StatusActive {
		payment := loan.PaymentForPeriod(l, 15, loan.StrategyPeriodFactor)
		assert.True(t, payment.IsPositive())

		balance, status := loan.Apply(l, payment)
		assert.False(t, balance.IsNegative())

		l.Balance = balance
		l.Status = status
		releases++

		if releases > 100 {
			t.Fatal("amortization did not terminate")
		}
	}

	assert.Equal(t, 20, releases)
	assert.True(t, l.Balance.IsZero())
}
