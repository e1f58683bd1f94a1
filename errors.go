package art

import "errors"

// ErrNotFound is returned by Search and Delete when the given key is not
// present in the tree.
var ErrNotFound = errors.New("goart: key not found")

// ErrEmpty is returned by Minimum and Maximum when the tree holds no
// entries.
var ErrEmpty = errors.New("goart: tree is empty")

// ErrInvalidKey is returned by every operation taking a key when that
// key is nil. A zero-length, non-nil key is valid and addresses the
// root of the tree.
var ErrInvalidKey = errors.New("goart: key must not be nil")

// CallbackError is not a distinct error type: it names the contract that
// Visit and VisitPrefix return exactly the error their callback
// returned, unmodified, the moment the callback returns a non-nil error.
// Callers wrap or inspect their own callback errors; this package never
// wraps them.
