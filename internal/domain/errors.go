package domain

import "errors"

// Fatal pipeline errors. Callers match them with errors.Is; each is wrapped
// with context where it is raised.
var (
	ErrDocumentUnavailable = errors.New("forecast document unavailable")
	ErrRegionNotFound      = errors.New("forecast region not found")
	ErrNoPeriodsParsed     = errors.New("no forecast periods parsed")
	ErrUnknownPeriod       = errors.New("unknown forecast period")
	ErrInvalidRequest      = errors.New("invalid departure request")
)
