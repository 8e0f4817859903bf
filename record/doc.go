// Package record defines the searchable record model and the preprocessing step
// that prepares records for matching.
//
// A Record wraps an ordered Object of raw fields and carries two derived values:
//
//   - SearchValues: the normalized concatenation of every searchable value,
//     used for substring matching and occurrence counting.
//   - KeyValue: the normalized value of the key field, used for relevance
//     bonuses and alphabetical listing.
//
// Derived values are computed once. Processing an indexed record again returns
// it untouched.
package record
