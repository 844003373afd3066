package service

import (
	"github.com/shopspring/decimal"

	"github.com/nairapay/payroll-engine/internal/domain"
	"github.com/nairapay/payroll-engine/pkg/utils"
)

// CalculateAnnualPAYE computes annual PAYE over a progressive bracket
// table. Each bracket consumes min(remaining, width) of taxable income at
// its rate; an unbounded final bracket absorbs the rest. The sum is rounded
// once, at the end.
func CalculateAnnualPAYE(annualTaxable decimal.Decimal, table domain.BracketTable) decimal.Decimal {
	remaining := annualTaxable
	totalTax := decimal.Zero

	for _, bracket := range table.Brackets {
		if remaining.Sign() <= 0 {
			break
		}

		taxableInBracket := remaining
		if !bracket.Unbounded() {
			taxableInBracket = decimal.Min(remaining, bracket.Width)
		}

		totalTax = totalTax.Add(taxableInBracket.Mul(bracket.Rate))
		remaining = remaining.Sub(taxableInBracket)
	}

	return utils.RoundMoney(totalTax)
}
