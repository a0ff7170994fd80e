package models

// Expense represents a single payment made by one traveler on behalf of others.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// PayerID is the traveler who paid.
	PayerID string

	// Amount is the paid amount in base-currency units.
	Amount int64

	// Description is free text (e.g. "BBQ dinner").
	Description string

	// CreatedAt is the Unix timestamp in milliseconds, used for ordering only.
	CreatedAt int64

	// SharedWith lists the travelers who owe an equal split of Amount.
	// The payer may be included, in which case they owe their own share too.
	SharedWith []string
}
