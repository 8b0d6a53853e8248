package facade

import "errors"

// ErrNilStore marks construction of a Facade with a nil Model Store.
var ErrNilStore = errors.New("facade: model store must not be nil")
