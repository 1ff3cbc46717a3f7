// Package validate adapts the external validation stack to the single
// contract the prompt loop consumes: take a candidate string, return a
// typed (possibly normalized) value or a *ValidationError whose message
// tells the user what to fix.
//
// # Overview
//
// Format checks (email addresses, URLs, IP addresses) delegate to
// go-playground/validator. Dates and times parse against Go layout
// lists. Numbers parse with strconv and optional bounds. Every function
// first runs the shared pre-validation pass: strip rules, allowlist
// patterns that pass unconditionally, blocklist patterns that fail
// unconditionally, and blank handling.
//
// # Error Contract
//
// All failures surface as *ValidationError so callers can distinguish
// rejected input from programming errors. Wrapping the third-party
// validators here keeps their error types out of the public API.
package validate
