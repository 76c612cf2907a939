package reactive

import "errors"

var (
	// ErrKeyNotFound is returned by Store.Get when the key has no value.
	ErrKeyNotFound = errors.New("reactive: key not found")

	// ErrStoreUnavailable is returned by RedisStore when the underlying
	// client cannot serve the request.
	ErrStoreUnavailable = errors.New("reactive: store unavailable")
)
