// Package mocks provides hand-written mock implementations of the
// store interfaces for use in tests. Each mock has overridable function
// fields plus a sensible in-memory default behavior.
package mocks
