package pipeline

import "errors"

var (
	// ErrNoSources means discovery found nothing to compose.
	ErrNoSources = errors.New("no source clips found")

	// ErrSourceNotFound means a clip the layout requires is missing. Scan
	// scenarios degrade to blank slots instead; only fixed rosters (the
	// action grid) return this.
	ErrSourceNotFound = errors.New("required clip missing")

	// ErrDecodeExhausted means a source produced zero frames, so there is
	// nothing to hold or loop.
	ErrDecodeExhausted = errors.New("clip yielded no frames")
)
