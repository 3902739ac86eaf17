package accounting

import "github.com/shopspring/decimal"

// MoneyScale is the minor-unit precision every booked amount is rounded to.
const MoneyScale int32 = 2

// FXDifference is the base-currency effect of clearing amount at clearedRate
// after it was booked at bookedRate. Positive means more base currency at clearing.
func FXDifference(amount, bookedRate, clearedRate decimal.Decimal) decimal.Decimal {
	return amount.Mul(clearedRate.Sub(bookedRate)).Round(MoneyScale)
}

// ConvertAmount converts amount by rate and rounds to the money scale.
func ConvertAmount(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(MoneyScale)
}
