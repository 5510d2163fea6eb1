// Package wire provides dependency injection for the syndicate application.
// It builds one game session from configuration, lazily and once per process.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	cliadapter "github.com/example/syndicate/internal/adapters/cli"
	"github.com/example/syndicate/internal/adapters/eventdeck"
	"github.com/example/syndicate/internal/adapters/memory"
	"github.com/example/syndicate/internal/adapters/random"
	"github.com/example/syndicate/internal/adapters/sqlite"
	"github.com/example/syndicate/internal/app"
	"github.com/example/syndicate/internal/config"
	"github.com/example/syndicate/internal/ctxutil"
	"github.com/example/syndicate/internal/db"
	"github.com/example/syndicate/internal/logging"
	"github.com/example/syndicate/internal/ports/primary"
	"github.com/example/syndicate/internal/ports/secondary"
)

// Game is one play session: the engine, its services and the reference
// collaborators they run against.
type Game struct {
	Config    *config.Config
	SessionID string
	Seed      int64
	Logger    zerolog.Logger

	Engine    primary.MissionEngine
	Garage    primary.GarageService
	Notoriety primary.NotorietyService
	Crackdown primary.CrackdownService
	Log       primary.MissionLogService

	Heat    *memory.HeatSystem
	Economy *memory.Economy
	City    *memory.City

	database *sql.DB
}

// NewGame builds a session from cfg. Logs go to logOut. An empty DBPath keeps
// the mission log in memory.
func NewGame(cfg *config.Config, logOut io.Writer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := random.New(cfg.Seed)
	sessionID := uuid.NewString()
	logger := logging.WithSession(logging.New(cfg.LogLevel, logOut), sessionID).
		With().Int64("seed", rng.Seed()).Logger()

	g := &Game{
		Config:    cfg,
		SessionID: sessionID,
		Seed:      rng.Seed(),
		Logger:    logger,
		Heat:      memory.NewHeatSystem(0),
		Economy:   memory.NewEconomy(cfg.StartingFunds),
		City:      memory.NewCity(rng.Seed(), nil),
	}

	var logRepo secondary.MissionLogRepository
	if cfg.DBPath == "" {
		logRepo = memory.NewMissionLogRepository()
	} else {
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		g.database = database
		logRepo = sqlite.NewMissionLogRepository(database)
	}

	state := app.NewGameState(memory.StarterProfile("Boss"), memory.StarterCrew(), memory.StarterGarage())
	storyline := memory.NewStoryline()

	notoriety := app.NewNotorietyService(state, logger)
	crackdown := app.NewCrackdownService(state, g.Heat, notoriety, logger)
	board := app.NewContractBoard(state, notoriety, g.City, storyline, logger, cfg.PoolSize)
	executor := app.NewEffectExecutor(state, app.ExecutorDeps{
		Heat:      g.Heat,
		Economy:   g.Economy,
		City:      g.City,
		Storyline: storyline,
		Notoriety: notoriety,
		Board:     board,
		Logger:    logger,
	})

	g.Engine = app.NewMissionEngine(state, app.EngineConfig{AutoResolve: cfg.AutoResolve}, app.EngineDeps{
		Safehouse:  memory.NewSafehouse(cfg.SafehouseCapacity, g.City),
		Deck:       eventdeck.NewGenerator(rng.Seed()),
		MissionLog: logRepo,
		Random:     rng,
		Crackdown:  crackdown,
		Notoriety:  notoriety,
		Board:      board,
		Executor:   executor,
		Logger:     logger,
	})
	g.Garage = app.NewGarageService(state, g.Economy, logger)
	g.Notoriety = notoriety
	g.Crackdown = crackdown
	g.Log = app.NewMissionLogService(logRepo)

	logger.Debug().Str("db_path", cfg.DBPath).Msg("game session wired")
	return g, nil
}

// Context tags ctx with the session ID so log entries can be traced back.
func (g *Game) Context(ctx context.Context) context.Context {
	return ctxutil.WithSessionID(ctx, g.SessionID)
}

// Close releases the database, if one was opened.
func (g *Game) Close() error {
	if g.database == nil {
		return nil
	}
	return g.database.Close()
}

// EngineAdapter returns a new EngineAdapter over g writing to out.
func (g *Game) EngineAdapter(out io.Writer) *cliadapter.EngineAdapter {
	return cliadapter.NewEngineAdapter(g.Engine, g.Notoriety, g.Crackdown, out)
}

// GarageAdapter returns a new GarageAdapter over g writing to out.
func (g *Game) GarageAdapter(out io.Writer) *cliadapter.GarageAdapter {
	return cliadapter.NewGarageAdapter(g.Garage, out)
}

// LogAdapter returns a new LogAdapter over g writing to out.
func (g *Game) LogAdapter(out io.Writer) *cliadapter.LogAdapter {
	return cliadapter.NewLogAdapter(g.Log, out)
}

var (
	game    *Game
	gameErr error
	once    sync.Once
)

// Session returns the singleton game built from the working directory's config.
func Session() (*Game, error) {
	once.Do(initGame)
	return game, gameErr
}

// initGame loads configuration and builds the session.
// This is called once via sync.Once.
func initGame() {
	wd, err := os.Getwd()
	if err != nil {
		gameErr = fmt.Errorf("failed to get working directory: %w", err)
		return
	}
	cfg, err := config.LoadConfig(wd)
	if err != nil {
		gameErr = err
		return
	}
	game, gameErr = NewGame(cfg, os.Stderr)
}

// Close releases the singleton session's resources, if it was built.
func Close() error {
	if game == nil {
		return nil
	}
	return game.Close()
}
