// Package formats holds the format rule table: one immutable Ruleset per
// fully-qualified format id, built once from static game data.
package formats

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	apperrors "pokehub-backend/internal/errors"
	"pokehub-backend/internal/pokemon"
)

var formatIDPattern = regexp.MustCompile(`^gen([1-9])([a-z0-9]+)$`)

// ParseFormatID splits "gen9ou" into its generation and tier. Anything not
// shaped like gen<N><tier> is a configuration error.
func ParseFormatID(formatID string) (int, string, error) {
	m := formatIDPattern.FindStringSubmatch(formatID)
	if m == nil {
		return 0, "", fmt.Errorf("%w: %q", apperrors.ErrMalformedFormatID, formatID)
	}
	generation, _ := strconv.Atoi(m[1])
	return generation, m[2], nil
}

// Clause is a team-composition rule active in a format.
type Clause struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	TeamRule string `json:"team_rule,omitempty"`
}

// Ban explains why a move, ability or item is illegal. Clause is empty for
// bans listed by the format itself.
type Ban struct {
	Clause string
}

type speciesEntry struct {
	name      string
	abilities map[string]struct{}
	learnset  map[string]struct{}
}

// Ruleset is the resolved rule set of one format. It is never modified
// after Build returns, so concurrent readers need no locking.
type Ruleset struct {
	id         string
	name       string
	generation int
	tier       string
	maxLevel   int

	species       map[string]*speciesEntry
	bannedSpecies map[string]struct{}
	moveBans      map[string]Ban
	abilityBans   map[string]Ban
	itemBans      map[string]Ban
	clauses       []Clause
}

func (r *Ruleset) ID() string      { return r.id }
func (r *Ruleset) Name() string    { return r.name }
func (r *Ruleset) Generation() int { return r.generation }
func (r *Ruleset) Tier() string    { return r.tier }

// MaxLevel is the level cap of the format; Pokémon above it are scaled down.
func (r *Ruleset) MaxLevel() int {
	if r.maxLevel == 0 {
		return pokemon.MaxLevel
	}
	return r.maxLevel
}

// Clauses returns the active clauses in definition order.
func (r *Ruleset) Clauses() []Clause {
	out := make([]Clause, len(r.clauses))
	copy(out, r.clauses)
	return out
}

// TeamRule returns the clause enforcing rule, if the format has one.
func (r *Ruleset) TeamRule(rule string) (Clause, bool) {
	for _, c := range r.clauses {
		if c.TeamRule == rule {
			return c, true
		}
	}
	return Clause{}, false
}

// KnowsSpecies reports whether the species exists in the format's generation.
func (r *Ruleset) KnowsSpecies(species string) bool {
	_, ok := r.species[pokemon.ToID(species)]
	return ok
}

// IsSpeciesLegal reports whether the species may be used in the format.
func (r *Ruleset) IsSpeciesLegal(species string) bool {
	id := pokemon.ToID(species)
	if _, ok := r.species[id]; !ok {
		return false
	}
	_, banned := r.bannedSpecies[id]
	return !banned
}

// CanHaveAbility reports whether the ability is in the species' ability pool.
func (r *Ruleset) CanHaveAbility(species, ability string) bool {
	entry, ok := r.species[pokemon.ToID(species)]
	if !ok {
		return false
	}
	_, ok = entry.abilities[pokemon.ToID(ability)]
	return ok
}

// CanLearn reports whether the species learns the move in this generation.
func (r *Ruleset) CanLearn(species, move string) bool {
	entry, ok := r.species[pokemon.ToID(species)]
	if !ok {
		return false
	}
	_, ok = entry.learnset[pokemon.ToID(move)]
	return ok
}

// MoveBan reports whether the move is banned and by what.
func (r *Ruleset) MoveBan(move string) (Ban, bool) {
	ban, ok := r.moveBans[pokemon.ToID(move)]
	return ban, ok
}

// AbilityBan reports whether the ability is banned and by what.
func (r *Ruleset) AbilityBan(ability string) (Ban, bool) {
	ban, ok := r.abilityBans[pokemon.ToID(ability)]
	return ban, ok
}

// ItemBan reports whether the item is banned and by what.
func (r *Ruleset) ItemBan(item string) (Ban, bool) {
	ban, ok := r.itemBans[pokemon.ToID(item)]
	return ban, ok
}

// LegalSpecies lists the display names of every usable species, sorted.
func (r *Ruleset) LegalSpecies() []string {
	names := make([]string, 0, len(r.species))
	for id, entry := range r.species {
		if _, banned := r.bannedSpecies[id]; banned {
			continue
		}
		names = append(names, entry.name)
	}
	sort.Strings(names)
	return names
}
