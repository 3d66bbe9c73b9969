package bundle

import "errors"

// Every failure aborts the whole build; callers match these with errors.Is.
var (
	ErrInvalidOptions = errors.New("invalid options")
	ErrDiscovery      = errors.New("file discovery failed")
	ErrRead           = errors.New("file read failed")
	ErrWrite          = errors.New("output write failed")
)
