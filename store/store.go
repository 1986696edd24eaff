// Package store persists the dashboard's language preference.
package store

// Store is a small key-value slot for session preferences. Get returns an
// empty string for an unset key; errors indicate the backing storage is
// unavailable, which callers treat as "no preference".
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}
