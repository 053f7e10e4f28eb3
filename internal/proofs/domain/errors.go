package domain

import "errors"

var ErrNotFound = errors.New("proof not found")
