// Package cli is responsible for validating the invocation and handling
// process-level concerns like exit codes. It translates the raw argument
// vector into the application's internal configuration.
package cli
