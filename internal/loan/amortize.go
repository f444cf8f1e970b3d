package loan

import "github.com/shopspring/decimal"

// Strategy names how a loan's monthly payment maps onto one pay period.
type Strategy string

const (
	// StrategyPeriodFactor halves the monthly payment for periods of 16
	// days or less, approximating a semi-monthly cycle. Canonical: it is
	// the only strategy whose live preview matches the release-time
	// payment for semi-monthly periods.
	StrategyPeriodFactor Strategy = "period_factor"
	// StrategyFullMonthly applies the whole monthly payment every release.
	StrategyFullMonthly Strategy = "full_monthly"
)

// DefaultStrategy is the policy wired into the payroll engine.
const DefaultStrategy = StrategyPeriodFactor

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// MonthlyPayment is principal × percent / 100.
func MonthlyPayment(principal, monthlyPercent decimal.Decimal) decimal.Decimal {
	return principal.Mul(monthlyPercent).Div(hundred)
}

// PaymentForPeriod prices one period's loan payment under the strategy.
// The payment never exceeds the remaining balance.
func PaymentForPeriod(l Loan, periodDays int, strategy Strategy) decimal.Decimal {
	monthly := MonthlyPayment(l.Principal, l.MonthlyPaymentPercent)

	payment := monthly
	if strategy == StrategyPeriodFactor && periodDays <= 16 {
		payment = monthly.Mul(half)
	}
	payment = payment.Round(2)

	if payment.GreaterThan(l.Balance) {
		return l.Balance
	}
	return payment
}

// Apply reduces the balance by the payment, clamped at zero, and returns
// the new balance with the resulting status. COMPLETED exactly at zero.
func Apply(l Loan, payment decimal.Decimal) (decimal.Decimal, string) {
	newBalance := l.Balance.Sub(payment)
	if newBalance.IsNegative() || newBalance.IsZero() {
		return decimal.Zero, StatusCompleted
	}
	return newBalance, StatusActive
}
