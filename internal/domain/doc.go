// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/member, domain/ledger,
// domain/replan, domain/group). This root package holds the sentinel errors
// and the field-level ValidationError shared by all of them.
package domain
