// Package store defines the persistence interfaces consumed by the API
// layer, along with the sentinel errors implementations must return.
// Concrete implementations live under internal/platform.
package store
