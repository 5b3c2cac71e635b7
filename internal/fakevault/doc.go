// Package fakevault implements a local, in-memory stand-in for the
// PatientVault API.
//
// It serves the four endpoints the example calls, issues HS256 session
// tokens on authentication and requires "Authorization: Session <token>" on
// every other route. Data is seeded at start-up and never changes.
package fakevault
