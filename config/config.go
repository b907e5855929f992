// Package config loads the decoration style used by the commands. The
// style is read once, turned into an explicit box.Style value and
// passed into every operation; there are no ambient style globals.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/rjkroege/semibox/box"
)

// Config is the on-disk shape of a decoration style.
type Config struct {
	TopCorner    string `toml:"top-corner"`
	BottomCorner string `toml:"bottom-corner"`
	TopAndTail   string `toml:"top-and-tail"`
	Side         string `toml:"side"`
	TitleFormat  string `toml:"title-format"`
	FillWidth    int    `toml:"fill-width"`
}

// Default returns the stock configuration.
func Default() Config {
	s := box.Default()
	return Config{
		TopCorner:    s.TopCorner,
		BottomCorner: s.BottomCorner,
		TopAndTail:   s.TopAndTail,
		Side:         s.Side,
		TitleFormat:  s.TitleFormat,
		FillWidth:    box.DefaultFillWidth,
	}
}

// Path returns the conventional configuration file location.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "semibox", "style.toml")
}

// Load reads the configuration at path, or at Path() when path is
// empty. A missing file is not an error: fields keep their defaults.
// Fields absent from the file keep their defaults too.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		path = Path()
		if path == "" {
			return c, nil
		}
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}

// Style converts the configuration to the value the box operations
// take.
func (c Config) Style() *box.Style {
	return &box.Style{
		TopCorner:    c.TopCorner,
		BottomCorner: c.BottomCorner,
		TopAndTail:   c.TopAndTail,
		Side:         c.Side,
		TitleFormat:  c.TitleFormat,
	}
}
