package repository

import "errors"

// ErrNotFound возвращается командами, которые не затронули ни одной строки
var ErrNotFound = errors.New("not found")
