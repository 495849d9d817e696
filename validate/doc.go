// Package validate classifies edit batches before any mutation.
//
// Structural issues (unresolvable targets, unknown ops, missing
// required fields) always block the offending instruction.  Content
// quality issues are warnings by default and block only under strict
// mode, except truncation and corruption signals, which block by
// default because they indicate generation artifacts rather than
// intended edits.
package validate
