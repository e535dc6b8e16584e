// Package runner holds the respondent-side navigation model of a form.
//
// [Machine] is the single state machine behind every runner front end:
//
//	Loading -> Presenting(index) -> Submitting -> Finished
//	   \              \                  |
//	    +--------------+---> Errored     +--> Presenting (submit failed)
//
// Per-type answer parsing and validation live in [QuestionKind]
// implementations, one per [models.QuestionType]. Nothing in this package
// touches key material or ciphertext.
package runner
