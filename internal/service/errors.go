package service

import "errors"

// ErrFamilyNotFound is returned when the requested family row is absent
var ErrFamilyNotFound = errors.New("family not found")
