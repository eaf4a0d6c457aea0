package pokemon

import "fmt"

// Team size and stat limits shared by the validators and the editor.
const (
	MinTeamSize    = 1
	MaxTeamSize    = 6
	MinMoves       = 1
	MaxMoves       = 4
	MinLevel       = 1
	MaxLevel       = 100
	MaxEVPerStat   = 252
	MaxEVTotal     = 510
	MaxIVPerStat   = 31
	MinGeneration  = 1
	MaxGeneration  = 9
	MaxTeamNameLen = 100
)

// EVSpread holds the effort values of one Pokémon.
type EVSpread struct {
	HP  int `json:"hp" yaml:"hp" validate:"min=0,max=252"`
	Atk int `json:"atk" yaml:"atk" validate:"min=0,max=252"`
	Def int `json:"def" yaml:"def" validate:"min=0,max=252"`
	SpA int `json:"spa" yaml:"spa" validate:"min=0,max=252"`
	SpD int `json:"spd" yaml:"spd" validate:"min=0,max=252"`
	Spe int `json:"spe" yaml:"spe" validate:"min=0,max=252"`
}

// Total returns the sum of all six effort values.
func (e EVSpread) Total() int {
	return e.HP + e.Atk + e.Def + e.SpA + e.SpD + e.Spe
}

// IVSpread holds the individual values of one Pokémon.
type IVSpread struct {
	HP  int `json:"hp" yaml:"hp" validate:"min=0,max=31"`
	Atk int `json:"atk" yaml:"atk" validate:"min=0,max=31"`
	Def int `json:"def" yaml:"def" validate:"min=0,max=31"`
	SpA int `json:"spa" yaml:"spa" validate:"min=0,max=31"`
	SpD int `json:"spd" yaml:"spd" validate:"min=0,max=31"`
	Spe int `json:"spe" yaml:"spe" validate:"min=0,max=31"`
}

// PerfectIVs is the IV spread the editor starts new slots with.
func PerfectIVs() IVSpread {
	return IVSpread{HP: 31, Atk: 31, Def: 31, SpA: 31, SpD: 31, Spe: 31}
}

// PokemonInTeam is one team slot as submitted by a client. The
// distinct_ids tag is registered by the validation package.
type PokemonInTeam struct {
	Species string   `json:"species" yaml:"species" validate:"notblank"`
	Name    string   `json:"name" yaml:"name"`
	Ability string   `json:"ability" yaml:"ability"`
	Item    string   `json:"item" yaml:"item"`
	Nature  string   `json:"nature" yaml:"nature"`
	Gender  string   `json:"gender" yaml:"gender" validate:"omitempty,oneof=M F N"`
	Level   int      `json:"level" yaml:"level" validate:"min=1,max=100"`
	Moves   []string `json:"moves" yaml:"moves" validate:"min=1,max=4,distinct_ids,dive,notblank"`
	EVs     EVSpread `json:"evs" yaml:"evs"`
	IVs     IVSpread `json:"ivs" yaml:"ivs"`
}

// Team is an ordered roster plus the format it is built for.
type Team struct {
	Name       string          `json:"name" yaml:"name" validate:"notblank,max=100"`
	Generation int             `json:"generation" yaml:"generation" validate:"min=1,max=9"`
	Format     string          `json:"format" yaml:"format" validate:"required,lowercase,alphanum"`
	Pokemon    []PokemonInTeam `json:"pokemon" yaml:"pokemon" validate:"min=1,max=6,dive"`
}

// FormatID returns the fully-qualified format identifier, e.g. "gen9ou".
func (t *Team) FormatID() string {
	return BuildFormatID(t.Generation, t.Format)
}

// BuildFormatID concatenates a generation and a tier suffix.
func BuildFormatID(generation int, format string) string {
	return fmt.Sprintf("gen%d%s", generation, format)
}
