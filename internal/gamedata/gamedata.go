// Package gamedata parses the static species, clause and format tables the
// format rule table is built from.
package gamedata

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// The embedded tables are sample data: a few dozen species in total
// with partial learnsets. Deployments load full tables from a directory.
//
//go:embed data
var embedded embed.FS

// Team rules a clause can enforce across a whole roster.
const (
	TeamRuleUniqueSpecies = "unique_species"
	TeamRuleUniqueItems   = "unique_items"
)

// SpeciesDef is one species entry of a generation's dex.
type SpeciesDef struct {
	Name      string   `yaml:"name"`
	Abilities []string `yaml:"abilities"`
	Learnset  []string `yaml:"learnset"`
}

// Dex lists the species available in one generation.
type Dex struct {
	Generation int          `yaml:"generation"`
	Species    []SpeciesDef `yaml:"species"`
}

// ClauseDef describes a clause: either a team rule or a set of bans.
type ClauseDef struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	TeamRule  string   `yaml:"team_rule"`
	Moves     []string `yaml:"moves"`
	Abilities []string `yaml:"abilities"`
	Items     []string `yaml:"items"`
}

// FormatDef is the raw definition of a battle format.
type FormatDef struct {
	ID              string   `yaml:"id" toml:"id"`
	Name            string   `yaml:"name" toml:"name"`
	Generation      int      `yaml:"generation" toml:"generation"`
	Tier            string   `yaml:"tier" toml:"tier"`
	Inherits        string   `yaml:"inherits" toml:"inherits"`
	MaxLevel        int      `yaml:"max_level" toml:"max_level"`
	Clauses         []string `yaml:"clauses" toml:"clauses"`
	BannedSpecies   []string `yaml:"banned_species" toml:"banned_species"`
	BannedMoves     []string `yaml:"banned_moves" toml:"banned_moves"`
	BannedAbilities []string `yaml:"banned_abilities" toml:"banned_abilities"`
	BannedItems     []string `yaml:"banned_items" toml:"banned_items"`
}

type clausesFile struct {
	Clauses []ClauseDef `yaml:"clauses"`
}

type formatsFile struct {
	Formats []FormatDef `yaml:"formats" toml:"formats"`
}

// Bundle is everything parsed from one game data source.
type Bundle struct {
	Dexes   map[int]*Dex
	Clauses []ClauseDef
	Formats []FormatDef
}

// Embedded returns the game data compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}

// Load parses the dex, clause and format files found in fsys. Files are
// decoded concurrently; the first failure cancels the rest.
//
// Layout: dex/gen<N>.yaml, clauses.yaml, formats/*.yaml|*.yml|*.toml.
func Load(ctx context.Context, fsys fs.FS) (*Bundle, error) {
	dexFiles, err := fs.Glob(fsys, "dex/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list dex files: %w", err)
	}
	if len(dexFiles) == 0 {
		return nil, fmt.Errorf("no dex files found")
	}
	formatFiles, err := listFormatFiles(fsys)
	if err != nil {
		return nil, err
	}

	dexes := make([]*Dex, len(dexFiles))
	formatSets := make([][]FormatDef, len(formatFiles))
	var clauses clausesFile

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range dexFiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var dex Dex
			if err := decodeFile(fsys, name, &dex); err != nil {
				return err
			}
			dexes[i] = &dex
			return nil
		})
	}
	for i, name := range formatFiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var file formatsFile
			if err := decodeFile(fsys, name, &file); err != nil {
				return err
			}
			formatSets[i] = file.Formats
			return nil
		})
	}
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		return decodeFile(fsys, "clauses.yaml", &clauses)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bundle := &Bundle{
		Dexes:   make(map[int]*Dex, len(dexes)),
		Clauses: clauses.Clauses,
	}
	for i, dex := range dexes {
		if dex.Generation < 1 || dex.Generation > 9 {
			return nil, fmt.Errorf("%s: generation %d out of range", dexFiles[i], dex.Generation)
		}
		if _, dup := bundle.Dexes[dex.Generation]; dup {
			return nil, fmt.Errorf("%s: duplicate dex for generation %d", dexFiles[i], dex.Generation)
		}
		bundle.Dexes[dex.Generation] = dex
	}
	for _, set := range formatSets {
		bundle.Formats = append(bundle.Formats, set...)
	}
	// Keep the output independent of file listing order.
	sort.SliceStable(bundle.Formats, func(a, b int) bool {
		return bundle.Formats[a].ID < bundle.Formats[b].ID
	})

	return bundle, nil
}

func listFormatFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, "formats")
	if err != nil {
		return nil, fmt.Errorf("list format files: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch path.Ext(entry.Name()) {
		case ".yaml", ".yml", ".toml":
			files = append(files, path.Join("formats", entry.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no format files found")
	}
	return files, nil
}

func decodeFile(fsys fs.FS, name string, target interface{}) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		err = toml.Unmarshal(raw, target)
	default:
		err = yaml.Unmarshal(raw, target)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
