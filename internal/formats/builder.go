package formats

import (
	"fmt"
	"strings"

	"pokehub-backend/internal/gamedata"
	"pokehub-backend/internal/pokemon"
)

// Build resolves every format definition of the bundle into a Ruleset,
// keyed by format id. Inherited bans and clauses are merged in; any
// inconsistency in the data is reported instead of silently skipped.
func Build(bundle *gamedata.Bundle) (map[string]*Ruleset, error) {
	clauses := make(map[string]gamedata.ClauseDef, len(bundle.Clauses))
	for _, c := range bundle.Clauses {
		id := pokemon.ToID(c.ID)
		if _, dup := clauses[id]; dup {
			return nil, fmt.Errorf("duplicate clause %q", c.ID)
		}
		switch c.TeamRule {
		case "", gamedata.TeamRuleUniqueSpecies, gamedata.TeamRuleUniqueItems:
		default:
			return nil, fmt.Errorf("clause %q: unknown team rule %q", c.ID, c.TeamRule)
		}
		clauses[id] = c
	}

	defs := make(map[string]gamedata.FormatDef, len(bundle.Formats))
	for _, def := range bundle.Formats {
		if def.ID != pokemon.BuildFormatID(def.Generation, def.Tier) {
			return nil, fmt.Errorf("format %q: id does not match generation %d and tier %q", def.ID, def.Generation, def.Tier)
		}
		if _, _, err := ParseFormatID(def.ID); err != nil {
			return nil, fmt.Errorf("format %q: %w", def.ID, err)
		}
		if _, dup := defs[def.ID]; dup {
			return nil, fmt.Errorf("duplicate format %q", def.ID)
		}
		if _, ok := bundle.Dexes[def.Generation]; !ok {
			return nil, fmt.Errorf("format %q: no dex for generation %d", def.ID, def.Generation)
		}
		defs[def.ID] = def
	}

	b := &builder{
		bundle:   bundle,
		clauses:  clauses,
		defs:     defs,
		species:  make(map[int]map[string]*speciesEntry),
		resolved: make(map[string]*Ruleset, len(defs)),
		visiting: make(map[string]bool),
	}
	for id := range defs {
		if _, err := b.resolve(id); err != nil {
			return nil, err
		}
	}
	return b.resolved, nil
}

type builder struct {
	bundle   *gamedata.Bundle
	clauses  map[string]gamedata.ClauseDef
	defs     map[string]gamedata.FormatDef
	species  map[int]map[string]*speciesEntry
	resolved map[string]*Ruleset
	visiting map[string]bool
}

func (b *builder) resolve(id string) (*Ruleset, error) {
	if rs, ok := b.resolved[id]; ok {
		return rs, nil
	}
	def, ok := b.defs[id]
	if !ok {
		return nil, fmt.Errorf("unknown format %q", id)
	}
	if b.visiting[id] {
		return nil, fmt.Errorf("format %q: inheritance cycle", id)
	}
	b.visiting[id] = true
	defer delete(b.visiting, id)

	species, err := b.speciesFor(def.Generation)
	if err != nil {
		return nil, err
	}

	rs := &Ruleset{
		id:            def.ID,
		name:          def.Name,
		generation:    def.Generation,
		tier:          def.Tier,
		maxLevel:      def.MaxLevel,
		species:       species,
		bannedSpecies: make(map[string]struct{}),
		moveBans:      make(map[string]Ban),
		abilityBans:   make(map[string]Ban),
		itemBans:      make(map[string]Ban),
	}
	if rs.name == "" {
		rs.name = def.ID
	}

	var clauseIDs []string
	if def.Inherits != "" {
		parent, err := b.resolve(def.Inherits)
		if err != nil {
			return nil, fmt.Errorf("format %q: %w", def.ID, err)
		}
		for sid := range parent.bannedSpecies {
			rs.bannedSpecies[sid] = struct{}{}
		}
		for _, c := range parent.clauses {
			clauseIDs = append(clauseIDs, c.ID)
		}
		copyFormatBans(rs.moveBans, parent.moveBans)
		copyFormatBans(rs.abilityBans, parent.abilityBans)
		copyFormatBans(rs.itemBans, parent.itemBans)
		if rs.maxLevel == 0 {
			rs.maxLevel = parent.maxLevel
		}
	}
	clauseIDs = append(clauseIDs, def.Clauses...)

	for _, name := range def.BannedSpecies {
		rs.bannedSpecies[pokemon.ToID(name)] = struct{}{}
	}
	addBans(rs.moveBans, def.BannedMoves, "")
	addBans(rs.abilityBans, def.BannedAbilities, "")
	addBans(rs.itemBans, def.BannedItems, "")

	seen := make(map[string]bool, len(clauseIDs))
	for _, raw := range clauseIDs {
		cid := pokemon.ToID(raw)
		if seen[cid] {
			continue
		}
		seen[cid] = true
		c, ok := b.clauses[cid]
		if !ok {
			return nil, fmt.Errorf("format %q: unknown clause %q", def.ID, raw)
		}
		rs.clauses = append(rs.clauses, Clause{ID: cid, Name: c.Name, TeamRule: c.TeamRule})
		addBans(rs.moveBans, c.Moves, c.Name)
		addBans(rs.abilityBans, c.Abilities, c.Name)
		addBans(rs.itemBans, c.Items, c.Name)
	}

	b.resolved[id] = rs
	return rs, nil
}

// speciesFor indexes a generation's dex once; rulesets of the same
// generation share the read-only index.
func (b *builder) speciesFor(generation int) (map[string]*speciesEntry, error) {
	if idx, ok := b.species[generation]; ok {
		return idx, nil
	}
	dex := b.bundle.Dexes[generation]
	idx := make(map[string]*speciesEntry, len(dex.Species))
	for _, s := range dex.Species {
		id := pokemon.ToID(s.Name)
		if id == "" {
			return nil, fmt.Errorf("gen %d dex: species with empty name", generation)
		}
		if _, dup := idx[id]; dup {
			return nil, fmt.Errorf("gen %d dex: duplicate species %q", generation, s.Name)
		}
		idx[id] = &speciesEntry{
			name:      strings.TrimSpace(s.Name),
			abilities: toIDSet(s.Abilities),
			learnset:  toIDSet(s.Learnset),
		}
	}
	b.species[generation] = idx
	return idx, nil
}

func toIDSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[pokemon.ToID(n)] = struct{}{}
	}
	return set
}

// addBans records bans, keeping an existing format-wide ban over a clause ban.
func addBans(dst map[string]Ban, names []string, clause string) {
	for _, n := range names {
		id := pokemon.ToID(n)
		if existing, ok := dst[id]; ok && existing.Clause == "" {
			continue
		}
		dst[id] = Ban{Clause: clause}
	}
}

// copyFormatBans copies inherited format-wide bans; clause bans are
// re-derived from the clause list.
func copyFormatBans(dst, src map[string]Ban) {
	for id, ban := range src {
		if ban.Clause == "" {
			dst[id] = ban
		}
	}
}
