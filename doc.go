// Package budget provides a personal-finance ledger of income, expense and
// investment records.
//
// The core functionalities include:
//   - Record Lifecycle: creating, updating and deleting records in a Session,
//     rejecting expenses and investments the balance cannot cover.
//   - Interest Accrual: investments grow at a daily compound rate; their current
//     value is a pure function of principal, rate and elapsed days.
//   - Balance: the sum of every amount plus the current value of investments.
//   - Filtering: selecting records by date parts, category and amount bounds.
//   - Aggregation: totals by category and by month, including earned interest.
//   - Data Persistence: encoding and decoding the ledger as a human-readable
//     JSON document.
//
// This package serves as the foundational logic for the `bgt` command-line
// tool.
package budget
