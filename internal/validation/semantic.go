package validation

import (
	"fmt"
	"sort"
	"strings"

	"pokehub-backend/internal/formats"
	"pokehub-backend/internal/gamedata"
	"pokehub-backend/internal/pokemon"
)

// RecommendedEVTotal is the most EVs that can be spent without waste: 508
// splits into 252/252/4.
const RecommendedEVTotal = 508

// abilityGeneration is the first generation with abilities.
const abilityGeneration = 3

// PokemonResult is the legality outcome of one slot.
type PokemonResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// FormatValidationResult is the legality outcome of a whole team in one
// format. Errors holds team-level problems; PokemonResults is keyed by the
// zero-based slot index and has an entry for every slot.
type FormatValidationResult struct {
	FormatID       string                 `json:"formatId"`
	IsValid        bool                   `json:"isValid"`
	Errors         []string               `json:"errors"`
	Warnings       []string               `json:"warnings"`
	PokemonResults map[int]*PokemonResult `json:"pokemonResults"`
}

// PokemonErrors returns the errors of every slot that has at least one.
func (r *FormatValidationResult) PokemonErrors() map[int][]string {
	out := make(map[int][]string)
	if r == nil {
		return out
	}
	for slot, res := range r.PokemonResults {
		if len(res.Errors) > 0 {
			out[slot] = res.Errors
		}
	}
	return out
}

// Slots returns the slot indices of PokemonResults in ascending order.
func (r *FormatValidationResult) Slots() []int {
	if r == nil {
		return nil
	}
	slots := make([]int, 0, len(r.PokemonResults))
	for slot := range r.PokemonResults {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	return slots
}

// ValidateAgainstRuleset checks every slot and the team-level clauses of rs.
// The team is read only; nil and empty teams are reported as a team error.
func ValidateAgainstRuleset(team *pokemon.Team, rs *formats.Ruleset) *FormatValidationResult {
	result := &FormatValidationResult{
		FormatID:       rs.ID(),
		Errors:         []string{},
		Warnings:       []string{},
		PokemonResults: make(map[int]*PokemonResult),
	}
	if team == nil || len(team.Pokemon) == 0 {
		result.Errors = append(result.Errors, "Team has no Pokémon")
		return result
	}

	for slot := range team.Pokemon {
		res := validateSlot(&team.Pokemon[slot], rs)
		result.PokemonResults[slot] = res
		result.Warnings = append(result.Warnings, res.Warnings...)
	}

	if clause, ok := rs.TeamRule(gamedata.TeamRuleUniqueSpecies); ok {
		for _, species := range duplicates(team.Pokemon, func(p *pokemon.PokemonInTeam) string { return p.Species }) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: You cannot have more than one %s", clause.Name, species))
		}
	}
	if clause, ok := rs.TeamRule(gamedata.TeamRuleUniqueItems); ok {
		for _, item := range duplicates(team.Pokemon, func(p *pokemon.PokemonInTeam) string { return p.Item }) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: You cannot have more than one %s", clause.Name, item))
		}
	}

	result.IsValid = len(result.Errors) == 0
	for _, res := range result.PokemonResults {
		if !res.IsValid {
			result.IsValid = false
			break
		}
	}
	return result
}

func validateSlot(p *pokemon.PokemonInTeam, rs *formats.Ruleset) *PokemonResult {
	res := &PokemonResult{Errors: []string{}, Warnings: []string{}}
	species := strings.TrimSpace(p.Species)
	known := rs.KnowsSpecies(species)

	// A blank species is a structural error; there is nothing to look up.
	if species != "" && !rs.IsSpeciesLegal(species) {
		res.Errors = append(res.Errors, fmt.Sprintf("%s is banned in %s", species, rs.ID()))
	}

	// Pools are only known for species in the dex.
	if ability := strings.TrimSpace(p.Ability); ability != "" {
		if ban, banned := rs.AbilityBan(ability); banned {
			res.Errors = append(res.Errors, banMessage(ban, ability, rs.ID()))
		} else if known && !rs.CanHaveAbility(species, ability) {
			res.Errors = append(res.Errors, fmt.Sprintf("%s can't have %s", species, ability))
		}
	} else if known && rs.Generation() >= abilityGeneration {
		res.Errors = append(res.Errors, fmt.Sprintf("%s needs an ability", species))
	}

	for _, move := range p.Moves {
		move = strings.TrimSpace(move)
		if move == "" {
			continue
		}
		if ban, banned := rs.MoveBan(move); banned {
			res.Errors = append(res.Errors, banMessage(ban, move, rs.ID()))
		} else if known && !rs.CanLearn(species, move) {
			res.Errors = append(res.Errors, fmt.Sprintf("%s can't learn %s", species, move))
		}
	}

	if item := strings.TrimSpace(p.Item); item != "" {
		if ban, banned := rs.ItemBan(item); banned {
			res.Errors = append(res.Errors, banMessage(ban, item, rs.ID()))
		}
	}

	if p.Level > rs.MaxLevel() {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%s is level %d and will be scaled down to level %d", species, p.Level, rs.MaxLevel()))
	}
	if total := p.EVs.Total(); total < RecommendedEVTotal {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%s has %d unused EVs", species, RecommendedEVTotal-total))
	}

	res.IsValid = len(res.Errors) == 0
	return res
}

func banMessage(ban formats.Ban, name, formatID string) string {
	if ban.Clause == "" {
		return fmt.Sprintf("%s is banned in %s", name, formatID)
	}
	return fmt.Sprintf("%s: %s is banned", ban.Clause, name)
}

// duplicates returns, in order of first appearance, the names whose id
// occurs on more than one slot. Blank values are ignored.
func duplicates(roster []pokemon.PokemonInTeam, value func(*pokemon.PokemonInTeam) string) []string {
	counts := make(map[string]int, len(roster))
	first := make(map[string]string, len(roster))
	var order []string
	for i := range roster {
		name := strings.TrimSpace(value(&roster[i]))
		id := pokemon.ToID(name)
		if id == "" {
			continue
		}
		if counts[id] == 0 {
			first[id] = name
			order = append(order, id)
		}
		counts[id]++
	}

	var out []string
	for _, id := range order {
		if counts[id] > 1 {
			out = append(out, first[id])
		}
	}
	return out
}
