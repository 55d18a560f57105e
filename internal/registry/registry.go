// Package registry maps game identifiers to factories. Game variants register
// themselves in init(), so the CLI, menu and SSH server can list and create
// them without importing each one.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the contract between a game and the platform layer.
// Games hold pure logic; timing, key mapping and terminal output belong to
// the platform.
type Game interface {
	// ID returns the variant identifier used by the CLI and score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a fresh game. RuntimeConfig carries the screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. The screen is cleared first.
	Render(dst *core.Screen)

	// State returns score, high score, pause and game-over flags.
	State() core.GameState
}

// Resizable is implemented by games that can re-layout without a reset.
type Resizable interface {
	Resize(w, h int)
}

// HighScorer is implemented by games that track a best score seeded from storage.
type HighScorer interface {
	SetHighScore(score int)
	HighScore() int
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id. Panics on duplicate ids.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
