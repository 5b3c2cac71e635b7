// Package workflow runs the PatientVault example: authenticate, list
// patients, list activities, then fetch the CCDA category of the first
// attachment of the first activity.
//
// Steps run strictly in that order on the caller's goroutine. The session
// and the captured attachment identifier travel in an explicit [State]; no
// step mutates shared configuration. The first failing step ends the run
// with a [*StepError].
package workflow
