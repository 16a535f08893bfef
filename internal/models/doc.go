// Package models defines the persisted domain models for tripsplit.
//
// # Models
//
//   - Trip: a journey shared by a group of people
//   - Participant: someone on a trip's roster
//   - Expense: money one participant paid on behalf of others, with shares
//   - ExpenseShare: the part of an expense owed by one participant
//   - Transfer: money that already moved between two participants
//
// Balances and debts are not models: they are derived on demand by the
// calculator package and never stored.
//
// # Conventions
//
//  1. IDs are UUID strings generated by the store when left empty
//  2. Relationships are ID strings, never pointers
//  3. Timestamps are Unix seconds; calendar dates are YYYY-MM-DD strings
//  4. Money is decimal.Decimal, never float64
package models
