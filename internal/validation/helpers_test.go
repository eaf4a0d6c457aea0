package validation_test

import (
	"pokehub-backend/internal/pokemon"
)

func slot(species, ability, item string, moves ...string) pokemon.PokemonInTeam {
	return pokemon.PokemonInTeam{
		Species: species,
		Ability: ability,
		Item:    item,
		Nature:  "Jolly",
		Level:   100,
		Moves:   moves,
		EVs:     pokemon.EVSpread{Atk: 252, SpD: 4, Spe: 252},
		IVs:     pokemon.PerfectIVs(),
	}
}

// validTeam returns a legal gen9ou team of six distinct species.
func validTeam() *pokemon.Team {
	return &pokemon.Team{
		Name:       "Sand Offense",
		Generation: 9,
		Format:     "ou",
		Pokemon: []pokemon.PokemonInTeam{
			slot("Garchomp", "Rough Skin", "Rocky Helmet", "Earthquake", "Dragon Claw", "Swords Dance", "Stealth Rock"),
			slot("Great Tusk", "Protosynthesis", "Booster Energy", "Headlong Rush", "Close Combat", "Ice Spinner", "Rapid Spin"),
			slot("Kingambit", "Supreme Overlord", "Leftovers", "Kowtow Cleave", "Sucker Punch", "Iron Head", "Swords Dance"),
			slot("Gholdengo", "Good as Gold", "Choice Scarf", "Make It Rain", "Shadow Ball", "Nasty Plot", "Recover"),
			slot("Corviknight", "Pressure", "Leftovers", "Brave Bird", "Roost", "Defog", "U-turn"),
			slot("Toxapex", "Regenerator", "Black Sludge", "Toxic", "Recover", "Haze", "Toxic Spikes"),
		},
	}
}

// singleSlotTeam returns a gen9ou team holding only p.
func singleSlotTeam(p pokemon.PokemonInTeam) *pokemon.Team {
	return &pokemon.Team{Name: "T", Generation: 9, Format: "ou", Pokemon: []pokemon.PokemonInTeam{p}}
}

func cloneTeam(t *pokemon.Team) *pokemon.Team {
	out := *t
	out.Pokemon = make([]pokemon.PokemonInTeam, len(t.Pokemon))
	for i, p := range t.Pokemon {
		p.Moves = append([]string(nil), p.Moves...)
		out.Pokemon[i] = p
	}
	return &out
}
