// Package levels reads the campaign manifest that lists the mazes to play
// and the assets that go with each one.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"batteryrush/pkg/game/generator"
)

// Level describes one maze and its presentation.
type Level struct {
	Name         string `yaml:"name"`
	Maze         string `yaml:"maze"`
	Music        string `yaml:"music"`
	VictorySound string `yaml:"victory_sound"`
	Dialog       string `yaml:"dialog"`
	Victory      string `yaml:"victory"`

	// Generator, when set, replaces Maze with a random maze from the named
	// algorithm. Seed 0 picks a fresh seed each time the level is entered.
	Generator string `yaml:"generator"`
	Seed      int64  `yaml:"seed"`
}

// Campaign is an ordered list of levels.
type Campaign struct {
	Levels []Level `yaml:"levels"`
}

// DefaultLevel is the single level played when no manifest exists.
func DefaultLevel() Level {
	return Level{
		Name:         "Raichu's Battery Rush",
		Maze:         "maze.txt",
		Music:        "audio/club_viridia.wav",
		VictorySound: "audio/RaichuCry.wav",
		Dialog:       "artwork/dialog.jpg",
		Victory:      "artwork/forest_win.jpg",
	}
}

// Default returns a campaign of just DefaultLevel.
func Default() *Campaign {
	return &Campaign{Levels: []Level{DefaultLevel()}}
}

// Load reads the manifest at path. A missing manifest yields Default.
// Relative paths inside the manifest are resolved against the manifest's
// directory.
func Load(path string) (*Campaign, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", path).Info("No campaign manifest, playing the default level")
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read campaign %s: %w", path, err)
	}

	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("campaign %s: %w", path, err)
	}
	c.resolve(filepath.Dir(path))

	log.WithFields(log.Fields{
		"path":   path,
		"levels": len(c.Levels),
	}).Info("Campaign loaded")
	return c, nil
}

// Parse decodes and validates a manifest. Blank asset fields are filled
// from DefaultLevel so a manifest only has to name its mazes.
func Parse(b []byte) (*Campaign, error) {
	var c Campaign
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	def := DefaultLevel()
	for i := range c.Levels {
		lvl := &c.Levels[i]
		if lvl.Name == "" {
			lvl.Name = fmt.Sprintf("Level %d", i+1)
		}
		if lvl.Music == "" {
			lvl.Music = def.Music
		}
		if lvl.VictorySound == "" {
			lvl.VictorySound = def.VictorySound
		}
		if lvl.Dialog == "" {
			lvl.Dialog = def.Dialog
		}
		if lvl.Victory == "" {
			lvl.Victory = def.Victory
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the campaign has levels and every level names a maze
// file or a known generator.
func (c *Campaign) Validate() error {
	if len(c.Levels) == 0 {
		return errors.New("campaign has no levels")
	}
	for i, lvl := range c.Levels {
		if lvl.Generator != "" {
			if _, err := generator.ByName(lvl.Generator); err != nil {
				return fmt.Errorf("level %d (%s): %w", i+1, lvl.Name, err)
			}
			continue
		}
		if lvl.Maze == "" {
			return fmt.Errorf("level %d (%s) has no maze", i+1, lvl.Name)
		}
	}
	return nil
}

// Source describes where a level's maze comes from, for logs and notices.
func (l Level) Source() string {
	if l.Generator != "" {
		return l.Generator + " generator"
	}
	return l.Maze
}

// Len returns the number of levels.
func (c *Campaign) Len() int {
	return len(c.Levels)
}

// Level returns the level at index i.
func (c *Campaign) Level(i int) (Level, bool) {
	if i < 0 || i >= len(c.Levels) {
		return Level{}, false
	}
	return c.Levels[i], true
}

// HasNext reports whether a level follows index i.
func (c *Campaign) HasNext(i int) bool {
	return i+1 < len(c.Levels)
}

// resolve makes maze paths relative to dir. Asset paths stay relative to the
// asset directory.
func (c *Campaign) resolve(dir string) {
	if dir == "" || dir == "." {
		return
	}
	for i := range c.Levels {
		if c.Levels[i].Maze != "" && !filepath.IsAbs(c.Levels[i].Maze) {
			c.Levels[i].Maze = filepath.Join(dir, c.Levels[i].Maze)
		}
	}
}
