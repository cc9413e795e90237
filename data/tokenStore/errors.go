package tokenStore

import "errors"

var ErrNotFound = errors.New("error token not found")
