package db

import "errors"

var ErrPageNotFound = errors.New("scanned page not found")
