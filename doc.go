// Package wealth provides the types and functions to classify and value the
// activities of a personal portfolio.
//
// An Activity is one transaction line: a deposit, a trade, a dividend, a fee,
// a split... The package answers two kinds of questions about it:
//   - Classification: pure predicates over the activity type and, sometimes,
//     the asset symbol (is it a cash movement, an income, a trade, does it
//     need a symbol at all...).
//   - Valuation: the signed monetary value of the activity, computed from its
//     type, quantity, unit price, fee and amount, rounded to 6 decimals.
//
// Both are stateless and never fail: missing or malformed numbers degrade to
// zero. Stricter checks live in Validate, which upstream layers (import,
// forms, the HTTP API) run before an activity is persisted in a JSONL file.
package wealth
