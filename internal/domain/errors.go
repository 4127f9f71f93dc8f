package domain

import "errors"

// ErrNoRawRecords indicates that no raw records were supplied at all, e.g.
// every upstream scraper failed. This is the only fatal condition in the
// pipeline; all per-record and per-field problems degrade to empty fields.
var ErrNoRawRecords = errors.New("no raw records to process")
