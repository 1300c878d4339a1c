package tiles

import (
	_ "embed"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"gopkg.in/yaml.v3"

	"bluemanor/pkg/engine/world"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is the process-wide registry of tile definitions.
type Catalog struct {
	tiles  []*Tile
	byName map[string]*Tile
	start  *Tile
}

// Default parses the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// catalog document schema
type catalogDoc struct {
	Tiles []tileDoc `yaml:"tiles"`
}

type tileDoc struct {
	Name    string      `yaml:"name"`
	Image   string      `yaml:"image"`
	Ports   []string    `yaml:"ports"`
	Cost    int         `yaml:"cost"`
	Rarity  int         `yaml:"rarity"`
	Zone    string      `yaml:"zone"`
	Color   string      `yaml:"color"`
	OnEnter []effectDoc `yaml:"on_enter"`
	OnDraw  []effectDoc `yaml:"on_draw"`
}

type effectDoc struct {
	Type    string `yaml:"type"`
	Amount  int    `yaml:"amount"`
	Spawn   string `yaml:"spawn"`
	Upgrade string `yaml:"upgrade"`
	Color   string `yaml:"color"`
	Tile    string `yaml:"tile"`
}

var portByName = map[string]world.Direction{
	"north": world.North,
	"east":  world.East,
	"south": world.South,
	"west":  world.West,
}

var zoneByName = map[string]Zone{
	"":       ZoneAny,
	"any":    ZoneAny,
	"edge":   ZoneEdge,
	"corner": ZoneCorner,
	"center": ZoneCenter,
}

var validColors = map[string]bool{
	"blue":   true,
	"green":  true,
	"purple": true,
	"orange": true,
}

// Parse decodes and validates a YAML catalog. A malformed catalog is a
// configuration error, not a game condition: Parse fails loudly rather than
// skipping bad entries.
func Parse(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if len(doc.Tiles) == 0 {
		return nil, fmt.Errorf("catalog defines no tiles")
	}

	c := &Catalog{byName: make(map[string]*Tile, len(doc.Tiles))}
	seen := mapset.New[string]()

	for _, td := range doc.Tiles {
		t, err := buildTile(td)
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", td.Name, err)
		}
		if seen.Has(t.Name) {
			return nil, fmt.Errorf("duplicate tile name %q", t.Name)
		}
		seen.Put(t.Name)
		c.tiles = append(c.tiles, t)
		c.byName[t.Name] = t
	}

	if err := c.validateCrossReferences(); err != nil {
		return nil, err
	}
	return c, nil
}

func buildTile(td tileDoc) (*Tile, error) {
	if td.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	if td.Cost < 0 {
		return nil, fmt.Errorf("negative cost %d", td.Cost)
	}
	if td.Rarity < 0 {
		return nil, fmt.Errorf("negative rarity %d", td.Rarity)
	}
	zone, ok := zoneByName[td.Zone]
	if !ok {
		return nil, fmt.Errorf("unknown zone %q", td.Zone)
	}
	if !validColors[td.Color] {
		return nil, fmt.Errorf("unknown color %q", td.Color)
	}

	var ports Ports
	for _, name := range td.Ports {
		d, ok := portByName[name]
		if !ok {
			return nil, fmt.Errorf("unknown port direction %q", name)
		}
		if ports[d] {
			return nil, fmt.Errorf("duplicate port direction %q", name)
		}
		ports[d] = true
	}

	t := &Tile{
		Name:    td.Name,
		ImageID: td.Image,
		Ports:   ports,
		Cost:    td.Cost,
		Rarity:  td.Rarity,
		Zone:    zone,
		Color:   td.Color,
	}

	var err error
	if t.OnEnter, err = buildEffects(td.OnEnter, false); err != nil {
		return nil, fmt.Errorf("on_enter: %w", err)
	}
	if t.OnDraw, err = buildEffects(td.OnDraw, true); err != nil {
		return nil, fmt.Errorf("on_draw: %w", err)
	}
	return t, nil
}

func buildEffects(docs []effectDoc, onDraw bool) ([]Effect, error) {
	var out []Effect
	for _, ed := range docs {
		kind, ok := effectKindByName[ed.Type]
		if !ok {
			return nil, fmt.Errorf("unknown effect type %q", ed.Type)
		}
		if onDraw && onEnterOnly[kind] {
			return nil, fmt.Errorf("effect %q is only valid on_enter", kind)
		}
		e := Effect{
			Kind:    kind,
			Amount:  ed.Amount,
			Spawn:   ed.Spawn,
			Upgrade: ed.Upgrade,
			Color:   ed.Color,
			Tile:    ed.Tile,
		}
		if err := e.validate(); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// validateCrossReferences checks catalog-wide invariants: exactly one start
// tile, at least one goal, and IncreaseWeight targets that actually exist.
func (c *Catalog) validateCrossReferences() error {
	goals := 0
	for _, t := range c.tiles {
		for _, e := range t.OnEnter {
			switch e.Kind {
			case EffectStart:
				if c.start != nil {
					return fmt.Errorf("tiles %q and %q both declare the start effect", c.start.Name, t.Name)
				}
				c.start = t
			case EffectGoal:
				goals++
			}
		}
		for _, list := range [][]Effect{t.OnEnter, t.OnDraw} {
			for _, e := range list {
				if e.Kind != EffectIncreaseWeight {
					continue
				}
				if e.Tile != "" {
					if _, ok := c.byName[e.Tile]; !ok {
						return fmt.Errorf("tile %q boosts unknown tile %q", t.Name, e.Tile)
					}
				}
				if e.Color != "" && len(c.ByColor(e.Color)) == 0 {
					return fmt.Errorf("tile %q boosts color %q with no tiles", t.Name, e.Color)
				}
			}
		}
	}
	if c.start == nil {
		return fmt.Errorf("catalog has no start tile")
	}
	if c.start.Ports.Count() == 0 {
		return fmt.Errorf("start tile %q has no ports", c.start.Name)
	}
	if goals == 0 {
		return fmt.Errorf("catalog has no goal tile")
	}
	return nil
}

// Tiles returns all tile definitions in catalog order.
func (c *Catalog) Tiles() []*Tile {
	return c.tiles
}

// Len returns the number of tile definitions.
func (c *Catalog) Len() int {
	return len(c.tiles)
}

// ByName looks up a tile definition by name.
func (c *Catalog) ByName(name string) (*Tile, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// ByColor returns all tiles carrying the given color tag.
func (c *Catalog) ByColor(color string) []*Tile {
	var out []*Tile
	for _, t := range c.tiles {
		if t.Color == color {
			out = append(out, t)
		}
	}
	return out
}

// Start returns the fixed start tile.
func (c *Catalog) Start() *Tile {
	return c.start
}
