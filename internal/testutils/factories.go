package testutils

import (
	"time"

	"pokehub-backend/internal/database/models"
	"pokehub-backend/internal/pokemon"

	"github.com/google/uuid"
)

// PokemonFactory provides methods to create test team slots
type PokemonFactory struct{}

// NewPokemonFactory creates a new PokemonFactory
func NewPokemonFactory() *PokemonFactory {
	return &PokemonFactory{}
}

// Create creates a gen9ou-legal Garchomp
func (f *PokemonFactory) Create() pokemon.PokemonInTeam {
	return f.WithSpecies("Garchomp", "Rough Skin", "Earthquake", "Dragon Claw", "Swords Dance", "Stealth Rock")
}

// WithSpecies creates a slot with the given species, ability and moves
func (f *PokemonFactory) WithSpecies(species, ability string, moves ...string) pokemon.PokemonInTeam {
	return pokemon.PokemonInTeam{
		Species: species,
		Ability: ability,
		Item:    "Leftovers",
		Nature:  "Jolly",
		Level:   100,
		Moves:   moves,
		EVs:     pokemon.EVSpread{Atk: 252, SpD: 4, Spe: 252},
		IVs:     pokemon.PerfectIVs(),
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct {
	pokemon *PokemonFactory
}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{pokemon: NewPokemonFactory()}
}

// Create creates a legal gen9ou team of six distinct species
func (f *TeamFactory) Create() *pokemon.Team {
	p := f.pokemon
	return &pokemon.Team{
		Name:       "Test Team",
		Generation: 9,
		Format:     "ou",
		Pokemon: []pokemon.PokemonInTeam{
			p.Create(),
			p.WithSpecies("Great Tusk", "Protosynthesis", "Headlong Rush", "Close Combat", "Ice Spinner", "Rapid Spin"),
			p.WithSpecies("Kingambit", "Supreme Overlord", "Kowtow Cleave", "Sucker Punch", "Iron Head", "Swords Dance"),
			p.WithSpecies("Gholdengo", "Good as Gold", "Make It Rain", "Shadow Ball", "Nasty Plot", "Recover"),
			p.WithSpecies("Corviknight", "Pressure", "Brave Bird", "Roost", "Defog", "U-turn"),
			p.WithSpecies("Toxapex", "Regenerator", "Toxic", "Recover", "Haze", "Toxic Spikes"),
		},
	}
}

// WithName creates a legal team with a custom name
func (f *TeamFactory) WithName(name string) *pokemon.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithBannedSpecies creates a team whose first slot is banned in gen9ou
func (f *TeamFactory) WithBannedSpecies() *pokemon.Team {
	team := f.Create()
	team.Pokemon[0] = f.pokemon.WithSpecies("Mewtwo", "Pressure", "Psystrike", "Ice Beam", "Aura Sphere", "Recover")
	return team
}

// Model creates a persisted-looking row for userID
func (f *TeamFactory) Model(userID string) *models.Team {
	row, err := models.NewTeam(userID, f.Create())
	if err != nil {
		panic(err)
	}
	row.BaseModel = models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	return row
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Pokemon *PokemonFactory
	Team    *TeamFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Pokemon: NewPokemonFactory(),
		Team:    NewTeamFactory(),
	}
}
