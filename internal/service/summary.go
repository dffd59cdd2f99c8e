package service

import (
	"math"

	"github.com/hance08/fintrack/internal/model"
	"github.com/shopspring/decimal"
)

// Summary holds the totals over a ledger. Amounts are accumulated as decimals
// so the result does not depend on the order of the transactions.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal

	IncomeCount  int
	ExpenseCount int
	// Ignored counts entries with an unknown kind or a non-finite amount.
	Ignored int
}

// Summarize computes income, expense and balance. Kinds other than income
// and expense are not counted in either total.
func Summarize(txs []model.Transaction) Summary {
	var sum Summary
	income := decimal.Zero
	expense := decimal.Zero

	for _, tx := range txs {
		if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
			sum.Ignored++
			continue
		}

		switch tx.Kind {
		case model.KindIncome:
			income = income.Add(decimal.NewFromFloat(tx.Amount))
			sum.IncomeCount++
		case model.KindExpense:
			expense = expense.Add(decimal.NewFromFloat(tx.Amount))
			sum.ExpenseCount++
		default:
			sum.Ignored++
		}
	}

	sum.TotalIncome = income
	sum.TotalExpense = expense
	sum.Balance = income.Sub(expense)
	return sum
}

// Totals returns (totalIncome, totalExpense, balance) as floats.
func (s Summary) Totals() (float64, float64, float64) {
	return s.TotalIncome.InexactFloat64(), s.TotalExpense.InexactFloat64(), s.Balance.InexactFloat64()
}
