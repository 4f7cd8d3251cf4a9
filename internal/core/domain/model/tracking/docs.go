// Package tracking provides the audit-trail entity for the parcel tracking
// system: the tracking Event.
//
// The ledger of a parcel is the ordered sequence of its Events, one per
// successful status transition (including creation). Events are immutable
// once constructed and are never edited or deleted; the ledger is trusted as
// an independent record even if a caller later disputes a transition, so this
// package performs no lifecycle validation of its own. Whether a transition
// was legal is decided by the parcel aggregate before an event is written.
package tracking
