// Package fee computes marketplace fee amounts for a sale price.
package fee

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// BasisPointsDenominator is the number of basis points in 100%.
const BasisPointsDenominator = 10000

var (
	// ErrInvalidState is returned when fees leave no positive residual price.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidAmount is returned for a price that is negative or fractional.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidBasisPoints is returned for a negative fee.
	ErrInvalidBasisPoints = errors.New("invalid basis points")
	// ErrInvalidRecipient is returned when a fee recipient is not an EVM address.
	ErrInvalidRecipient = errors.New("invalid fee recipient")
)

var denominator = decimal.NewFromInt(BasisPointsDenominator)

// Fee is a single fee recipient and its share of the price in basis points.
type Fee struct {
	Recipient   string
	BasisPoints int64
}

// Amount is a computed fee.
type Amount struct {
	Recipient   string
	BasisPoints int64
	Amount      decimal.Decimal
}

// Quote holds the fee breakdown for a price.
type Quote struct {
	Price         decimal.Decimal
	Fees          []Amount
	AdjustedPrice decimal.Decimal
}

// Compute returns each fee as floor(price * bps / 10000) and the price left
// after subtracting all of them. Fees are floored independently per recipient,
// so their sum may fall short of the exact total by up to len(fees)-1 units.
func Compute(price decimal.Decimal, fees []Fee) (*Quote, error) {
	if price.IsNegative() || !price.Equal(price.Truncate(0)) {
		return nil, fmt.Errorf("%w: price %s must be a non-negative integer", ErrInvalidAmount, price.String())
	}

	quote := &Quote{
		Price: price,
		Fees:  make([]Amount, 0, len(fees)),
	}

	total := decimal.Zero
	for _, f := range fees {
		if f.BasisPoints < 0 {
			return nil, fmt.Errorf("%w: %d for recipient %s", ErrInvalidBasisPoints, f.BasisPoints, f.Recipient)
		}

		amount := price.Mul(decimal.NewFromInt(f.BasisPoints)).Div(denominator).Floor()
		total = total.Add(amount)

		quote.Fees = append(quote.Fees, Amount{
			Recipient:   f.Recipient,
			BasisPoints: f.BasisPoints,
			Amount:      amount,
		})
	}

	quote.AdjustedPrice = price.Sub(total)
	if !quote.AdjustedPrice.IsPositive() {
		return nil, fmt.Errorf("%w: fees %s leave no proceeds from price %s",
			ErrInvalidState, total.String(), price.String())
	}

	return quote, nil
}

// ParsePrice parses a price in the smallest unit.
func ParsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, s, err)
	}
	return price, nil
}

// ParseFees parses a comma separated list of "recipient:bps" pairs.
func ParseFees(s string) ([]Fee, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	fees := make([]Fee, 0, len(parts))
	for _, part := range parts {
		f, err := ParseFee(part)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, nil
}

// ParseFee parses a single "recipient:bps" pair.
func ParseFee(s string) (Fee, error) {
	recipient, bpsStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Fee{}, fmt.Errorf("invalid fee %q: expected recipient:bps", s)
	}
	if !common.IsHexAddress(recipient) {
		return Fee{}, fmt.Errorf("%w: %q", ErrInvalidRecipient, recipient)
	}

	bps, err := strconv.ParseInt(strings.TrimSpace(bpsStr), 10, 64)
	if err != nil {
		return Fee{}, fmt.Errorf("%w: %q: %v", ErrInvalidBasisPoints, bpsStr, err)
	}

	return Fee{
		Recipient:   common.HexToAddress(recipient).Hex(),
		BasisPoints: bps,
	}, nil
}
