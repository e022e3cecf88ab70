package generator

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/zyedidia/generic"

	"dungeongen/pkg/engine/rng"
)

var (
	// ErrUnknownOption is returned for an option name Config does not have
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidOption is returned when an option value cannot be parsed
	ErrInvalidOption = errors.New("invalid option value")
)

// Mode selects how a Generator spends its work
type Mode int

const (
	// ModeStepped performs one unit of work per Step, so a caller can
	// animate the run.
	ModeStepped Mode = iota
	// ModeImmediate runs to completion inside a single Step.
	ModeImmediate
)

// String returns the option spelling of a mode
func (m Mode) String() string {
	switch m {
	case ModeStepped:
		return "stepped"
	case ModeImmediate:
		return "immediate"
	default:
		return "unknown"
	}
}

// ParseMode parses "stepped" or "immediate"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stepped", "step":
		return ModeStepped, nil
	case "immediate", "instant":
		return ModeImmediate, nil
	}
	return ModeStepped, fmt.Errorf("%w: execution_mode %q", ErrInvalidOption, s)
}

// Limits applied by Normalize
const (
	maxSize            = 4096
	maxIntersectLength = 8
	defaultFillBatch   = 100

	randomSizeMin = 50
	randomSizeMax = 200
	randomDimMin  = 5
	randomDimMax  = 30

	randomIntersectMin = 2
)

// Config holds the parameters of a generation run
type Config struct {
	Size                int    // side of the square bounds
	MinWidth            int    // minimum room width
	MinHeight           int    // minimum room height
	IntersectLength     int    // overlap band between adjacent rooms, also the door side
	DeletePercent       int    // share of rooms the pruner tries to remove
	UseSeed             bool   // seed from Seed instead of entropy
	Seed                string // integer or free text
	Mode                Mode
	GraphTree           bool // reduce the door graph to a spanning tree
	FillBatch           int  // flood-fill cells per unit of work
	RandomizeDimensions bool // draw Size and minimum dims from the seeded source
}

// DefaultConfig returns the stock configuration
func DefaultConfig() Config {
	return Config{
		Size:            100,
		MinWidth:        5,
		MinHeight:       5,
		IntersectLength: 1,
		DeletePercent:   0,
		Mode:            ModeStepped,
		GraphTree:       true,
		FillBatch:       defaultFillBatch,
	}
}

// Normalize clamps every field into its valid range
func (c Config) Normalize() Config {
	c.IntersectLength = generic.Clamp(c.IntersectLength, 1, maxIntersectLength)
	c.MinWidth = generic.Clamp(c.MinWidth, 1, maxSize)
	c.MinHeight = generic.Clamp(c.MinHeight, 1, maxSize)
	c.Size = generic.Clamp(c.Size, c.minViableSize(), maxSize)
	c.MinWidth = min(c.MinWidth, c.Size)
	c.MinHeight = min(c.MinHeight, c.Size)
	c.DeletePercent = generic.Clamp(c.DeletePercent, 0, 100)
	if c.FillBatch <= 0 {
		c.FillBatch = defaultFillBatch
	}
	if c.Mode != ModeStepped && c.Mode != ModeImmediate {
		c.Mode = ModeStepped
	}
	return c
}

// minViableSize is the smallest bounds that still hold one room with its
// overlap bands
func (c Config) minViableSize() int {
	return min(max(c.MinWidth, c.MinHeight)+2*c.IntersectLength+1, maxSize)
}

// randomized draws Size and the minimum room dimensions from src, and raises
// IntersectLength to randomIntersectMin
func (c Config) randomized(src *rng.Source) Config {
	c.Size = src.Range(randomSizeMin, randomSizeMax)
	c.MinWidth = src.Range(randomDimMin, randomDimMax)
	c.MinHeight = src.Range(randomDimMin, randomDimMax)
	c.IntersectLength = max(c.IntersectLength, randomIntersectMin)
	return c
}

// Set assigns one option by its flat name
func (c *Config) Set(name, value string) error {
	value = strings.TrimSpace(value)
	var err error
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "size":
		err = setInt(&c.Size, name, value)
	case "min_width":
		err = setInt(&c.MinWidth, name, value)
	case "min_height":
		err = setInt(&c.MinHeight, name, value)
	case "intersect_length":
		err = setInt(&c.IntersectLength, name, value)
	case "delete_percent":
		err = setInt(&c.DeletePercent, name, value)
	case "use_seed":
		err = setBool(&c.UseSeed, name, value)
	case "seed":
		c.Seed = value
	case "execution_mode":
		var m Mode
		if m, err = ParseMode(value); err == nil {
			c.Mode = m
		}
	case "graph_tree":
		err = setBool(&c.GraphTree, name, value)
	case "fill_batch":
		err = setInt(&c.FillBatch, name, value)
	case "randomize_dimensions":
		err = setBool(&c.RandomizeDimensions, name, value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
	return err
}

// Options returns the flat form of the configuration, the inverse of ParseOptions
func (c Config) Options() map[string]string {
	return map[string]string{
		"size":                 strconv.Itoa(c.Size),
		"min_width":            strconv.Itoa(c.MinWidth),
		"min_height":           strconv.Itoa(c.MinHeight),
		"intersect_length":     strconv.Itoa(c.IntersectLength),
		"delete_percent":       strconv.Itoa(c.DeletePercent),
		"use_seed":             strconv.FormatBool(c.UseSeed),
		"seed":                 c.Seed,
		"execution_mode":       c.Mode.String(),
		"graph_tree":           strconv.FormatBool(c.GraphTree),
		"fill_batch":           strconv.Itoa(c.FillBatch),
		"randomize_dimensions": strconv.FormatBool(c.RandomizeDimensions),
	}
}

// ParseOptions builds a Config from flat name/value pairs on top of
// DefaultConfig. Names are applied in sorted order and the first failure is
// returned.
func ParseOptions(opts map[string]string) (Config, error) {
	cfg := DefaultConfig()
	for _, name := range slices.Sorted(maps.Keys(opts)) {
		if err := cfg.Set(name, opts[name]); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// setInt leaves dst untouched when value does not parse
func setInt(dst *int, name, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrInvalidOption, name, value)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, name, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrInvalidOption, name, value)
	}
	*dst = b
	return nil
}
