package source

import "errors"

var (
	// ErrAccessDenied reports that scoped access to a resource could not be
	// acquired (permissions, sandbox, locked file).
	ErrAccessDenied = errors.New("resource access denied")

	// ErrNoImage reports that the clipboard holds no compatible image.
	ErrNoImage = errors.New("no image available")
)
