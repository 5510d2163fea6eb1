// Package cli provides the cobra commands for the syndicate application.
package cli

import (
	gocontext "context"

	"github.com/example/syndicate/internal/wire"
)

// loadGame returns the session commands run against. Tests swap it out.
var loadGame = wire.Session

// NewContext creates a context.Background() tagged with the game's session ID.
// CLI commands should use this instead of context.Background() directly.
func NewContext(g *wire.Game) gocontext.Context {
	return g.Context(gocontext.Background())
}
