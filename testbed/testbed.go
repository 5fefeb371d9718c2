// Package testbed holds small games used to try the engine out.
package testbed

import (
	"fmt"

	"github.com/spaghettifunk/pixello/engine"
)

// NewGame returns the demo registered under name, configured with config.
// A nil config selects the demo's own defaults.
func NewGame(name string, config *engine.ApplicationConfig) (*engine.Game, error) {
	switch name {
	case "basic":
		return NewBasicGame(config).Game, nil
	case "isometric":
		return NewIsometricGame(config).Game, nil
	}
	return nil, fmt.Errorf("unknown demo %q", name)
}
