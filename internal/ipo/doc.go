// Package ipo provides the canonical data model for Korean IPO (공모주)
// schedules and the derivation of calendar events from them.
//
// A Schedule captures one company's offering timeline as collected from a
// public source. Milestones (demand forecast, subscription, refund, listing,
// lockup expiry) form a closed enumeration; each populated milestone on a
// Schedule expands into one calendar event carrying a deterministic
// MD5-based identity tag, enabling reliable find-or-create across runs.
package ipo
