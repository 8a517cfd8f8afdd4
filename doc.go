// Package payledger maintains per-client account balances from an ordered
// stream of transaction records, applying dispute, resolve and chargeback
// semantics before rendering a final per-client balance summary.
//
// The core is a single-threaded state machine: records are validated,
// routed to their client's account (created lazily on first sight) and
// applied one at a time in arrival order. Business-rule rejections are
// silent no-ops; only structurally malformed input stops consumption, and
// even then everything already applied remains reportable.
package payledger
