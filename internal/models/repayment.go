package models

// Repayment represents money handed from one traveler to another to clear debts.
type Repayment struct {
	// ID is the unique identifier for the repayment (UUID format).
	ID string

	// FromID is the traveler who paid (debtor settling up).
	FromID string

	// ToID is the traveler who received payment (creditor being paid).
	ToID string

	// Amount is the payment amount in base-currency units.
	Amount int64

	// Note is an optional description.
	Note string

	// CreatedAt is the Unix timestamp in milliseconds when it was recorded.
	CreatedAt int64
}
