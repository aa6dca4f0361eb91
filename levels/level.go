package levels

import (
	"fmt"

	"github.com/milk9111/coindash/common"
	"gopkg.in/yaml.v3"
)

// DefaultName is the level loaded when none is requested.
const DefaultName = "grasslands"

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Box struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemySpawn places a patrolling enemy. PatrolLeft/PatrolRight are the fixed
// x-bounds the enemy reverses direction at.
type EnemySpawn struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	PatrolLeft  float64 `yaml:"patrol_left"`
	PatrolRight float64 `yaml:"patrol_right"`
}

// Level is a YAML level definition: static platform geometry plus entity
// placements for one playing session.
type Level struct {
	Name      string       `yaml:"name"`
	Lives     int          `yaml:"lives"`
	Spawn     Point        `yaml:"spawn"`
	Platforms []Box        `yaml:"platforms"`
	Enemies   []EnemySpawn `yaml:"enemies"`
	Coins     []Point      `yaml:"coins"`
}

// Load reads and validates the named level, preferring a file on disk under
// levels/ over the embedded copy. The .yaml suffix is optional.
func Load(name string) (*Level, error) {
	data, err := readFile(name)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return &lvl, nil
}

// Validate rejects definitions the game loop cannot run on.
func (l *Level) Validate() error {
	if l.Lives <= 0 {
		return fmt.Errorf("lives must be positive, got %d", l.Lives)
	}
	if len(l.Platforms) == 0 {
		return fmt.Errorf("level has no platforms")
	}
	// a coin-less level would be won on the first tick
	if len(l.Coins) == 0 {
		return fmt.Errorf("level has no coins")
	}
	for i, p := range l.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("platform %d has non-positive size %gx%g", i, p.Width, p.Height)
		}
	}
	for i, e := range l.Enemies {
		if e.PatrolLeft >= e.PatrolRight {
			return fmt.Errorf("enemy %d patrol bounds inverted: left %g >= right %g", i, e.PatrolLeft, e.PatrolRight)
		}
	}
	return nil
}

// PlatformRects returns the platform geometry as collision rects.
func (l *Level) PlatformRects() []common.Rect {
	rects := make([]common.Rect, 0, len(l.Platforms))
	for _, p := range l.Platforms {
		rects = append(rects, common.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height})
	}
	return rects
}
