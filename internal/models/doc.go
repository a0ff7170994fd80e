// Package models defines the core domain models for tripmate.
//
// # Models
//
//   - Traveler: a person sharing the trip (fixed set, loaded from the trip file)
//   - Expense: a payment by one traveler on behalf of a subset of travelers
//   - Repayment: money actually handed from one traveler to another
//   - ItineraryItem: one entry of the day-by-day plan
//   - Place, Route: results of the explorer lookups
//
// # Money
//
// Amounts are int64 counts of base-currency units (won for a Seoul trip).
// Conversion to a display currency happens only at presentation time.
//
// # Design Principles
//
//  1. Relationships use ID strings, never pointers
//  2. Derived data (balances, settlement plans) is not modelled here; it lives
//     in the calculator and is recomputed on every change
package models
