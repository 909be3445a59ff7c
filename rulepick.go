// Package rulepick maps elements of an article page to a structured rule file.
// Its core synthesizes short CSS selectors for elements picked by a user so
// that the selectors keep matching the analogous elements on other pages of
// the same site.
//
// This package contains domain types and interfaces following the Standard
// Package Layout. Implementations live in subdirectories named after their
// primary dependency (e.g., goquery/, sqlite/, rod/).
package rulepick
