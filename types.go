package main

import (
	"sync"
	"time"

	"forca/internal/engine"

	"golang.org/x/time/rate"
)

type contextKey string

// App holds the server's shared state and configuration.
type App struct {
	WordBank *engine.WordBank
	Rand     engine.RandSource // nil draws from crypto/rand

	Sessions     map[string]*playerSession
	SessionMutex sync.RWMutex // Guards Sessions and each session's lastAccess

	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex

	IsProduction   bool
	CookieMaxAge   time.Duration
	SessionTimeout time.Duration
	SweepInterval  time.Duration
	StaticCacheAge time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	StartTime      time.Time
}

// playerSession is one browser's game. mu serialises every use of game and
// notices; a Game is not safe for concurrent use.
type playerSession struct {
	mu      sync.Mutex
	game    *engine.Game
	notices []engine.Notice

	lastAccess time.Time
}

// takeNotices returns and clears the notices emitted since the last call.
// Callers must hold ps.mu.
func (ps *playerSession) takeNotices() []engine.Notice {
	out := ps.notices
	ps.notices = nil
	return out
}
