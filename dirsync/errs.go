package dirsync

import "errors"

var (
	// ErrNoReference means the document the others sync against is
	// absent. Nothing can run without it.
	ErrNoReference = errors.New("missing reference document")
	// ErrNoLocale means the locale named for a single document sync
	// has no document in the directory.
	ErrNoLocale = errors.New("missing locale document")
)
