package model

import "time"

// Shared defaults for the hero effect and the site chrome.
const (
	DefaultMaxConcurrent   = 3
	DefaultTypingSpeed     = 240 * time.Millisecond
	DefaultVisibleDuration = 4000 * time.Millisecond
	DefaultFadeDuration    = 2000 * time.Millisecond

	DefaultInitialSpawns   = 2
	DefaultInitialInterval = 3000 * time.Millisecond
	DefaultSpawnDelayMin   = 3000 * time.Millisecond
	DefaultSpawnDelayMax   = 7000 * time.Millisecond

	DefaultSnippetWidth  = 250.0 // px
	DefaultSnippetHeight = 150.0 // px
	DefaultMinDistance   = 300.0 // px
	DefaultMaxAttempts   = 50

	DefaultScrollThreshold = 24 // px
	DefaultHeaderOffset    = 80 // px

	DefaultContainerID = "hero-code-background"
	DefaultSkin        = "default"
)
