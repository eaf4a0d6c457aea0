package formats_test

import (
	"context"
	"testing"

	apperrors "pokehub-backend/internal/errors"
	"pokehub-backend/internal/formats"
	"pokehub-backend/internal/gamedata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RulesetTestSuite checks the rulesets built from the embedded game data
type RulesetTestSuite struct {
	suite.Suite
	rulesets map[string]*formats.Ruleset
}

func (suite *RulesetTestSuite) SetupSuite() {
	bundle, err := gamedata.Load(context.Background(), gamedata.Embedded())
	suite.Require().NoError(err)

	suite.rulesets, err = formats.Build(bundle)
	suite.Require().NoError(err)
}

func (suite *RulesetTestSuite) ruleset(id string) *formats.Ruleset {
	rs, ok := suite.rulesets[id]
	suite.Require().True(ok, "missing format %s", id)
	return rs
}

func (suite *RulesetTestSuite) TestMetadata() {
	ou := suite.ruleset("gen9ou")
	suite.Equal("gen9ou", ou.ID())
	suite.Equal("[Gen 9] OU", ou.Name())
	suite.Equal(9, ou.Generation())
	suite.Equal("ou", ou.Tier())
	suite.Equal(100, ou.MaxLevel())

	vgc := suite.ruleset("gen9vgc2024")
	suite.Equal(50, vgc.MaxLevel())
	suite.Equal("vgc2024", vgc.Tier())
}

func (suite *RulesetTestSuite) TestSpeciesLegality() {
	ou := suite.ruleset("gen9ou")

	suite.True(ou.IsSpeciesLegal("Garchomp"))
	suite.True(ou.IsSpeciesLegal("great tusk"))
	suite.False(ou.IsSpeciesLegal("Mewtwo"))
	suite.True(ou.KnowsSpecies("Mewtwo"))
	suite.False(ou.IsSpeciesLegal("Missingno"))
	suite.False(ou.KnowsSpecies("Missingno"))
	suite.True(ou.IsSpeciesLegal("Flabebe"))

	ubers := suite.ruleset("gen9ubers")
	suite.True(ubers.IsSpeciesLegal("Mewtwo"))

	gen8 := suite.ruleset("gen8ou")
	suite.False(gen8.KnowsSpecies("Great Tusk"))
	suite.False(gen8.IsSpeciesLegal("Zacian"))
}

func (suite *RulesetTestSuite) TestAbilitiesAndMoves() {
	ou := suite.ruleset("gen9ou")

	suite.True(ou.CanHaveAbility("Pikachu", "Lightning Rod"))
	suite.False(ou.CanHaveAbility("Pikachu", "Levitate"))
	suite.False(ou.CanHaveAbility("Missingno", "Static"))

	suite.True(ou.CanLearn("Pikachu", "Volt Tackle"))
	suite.True(ou.CanLearn("Landorus-Therian", "u-turn"))
	suite.False(ou.CanLearn("Pikachu", "Psystrike"))
	suite.False(ou.CanLearn("Missingno", "Tackle"))
}

func (suite *RulesetTestSuite) TestBans() {
	ou := suite.ruleset("gen9ou")

	ban, banned := ou.MoveBan("Baton Pass")
	suite.True(banned)
	suite.Equal("", ban.Clause)

	ban, banned = ou.MoveBan("Sheer Cold")
	suite.True(banned)
	suite.Equal("OHKO Clause", ban.Clause)

	_, banned = ou.MoveBan("Earthquake")
	suite.False(banned)

	ban, banned = ou.AbilityBan("Sand Veil")
	suite.True(banned)
	suite.Equal("Evasion Abilities Clause", ban.Clause)

	ban, banned = ou.AbilityBan("Shadow Tag")
	suite.True(banned)
	suite.Equal("", ban.Clause)

	_, banned = ou.ItemBan("King's Rock")
	suite.True(banned)
	_, banned = ou.ItemBan("Leftovers")
	suite.False(banned)
}

func (suite *RulesetTestSuite) TestClauses() {
	ou := suite.ruleset("gen9ou")
	clause, ok := ou.TeamRule(gamedata.TeamRuleUniqueSpecies)
	suite.True(ok)
	suite.Equal("Species Clause", clause.Name)
	_, ok = ou.TeamRule(gamedata.TeamRuleUniqueItems)
	suite.False(ok)

	vgc := suite.ruleset("gen9vgc2024")
	clause, ok = vgc.TeamRule(gamedata.TeamRuleUniqueItems)
	suite.True(ok)
	suite.Equal("Item Clause", clause.Name)

	ag := suite.ruleset("gen9ag")
	suite.Empty(ag.Clauses())

	// Clauses returns a copy.
	clauses := ou.Clauses()
	clauses[0].Name = "mutated"
	suite.Equal("Species Clause", ou.Clauses()[0].Name)
}

func (suite *RulesetTestSuite) TestInheritance() {
	uu := suite.ruleset("gen9uu")

	suite.False(uu.IsSpeciesLegal("Mewtwo"), "inherited ban")
	suite.False(uu.IsSpeciesLegal("Great Tusk"), "own ban")
	suite.True(uu.IsSpeciesLegal("Arcanine"))

	_, banned := uu.MoveBan("Baton Pass")
	suite.True(banned)
	ban, banned := uu.MoveBan("Fissure")
	suite.True(banned)
	suite.Equal("OHKO Clause", ban.Clause)

	_, ok := uu.TeamRule(gamedata.TeamRuleUniqueSpecies)
	suite.True(ok)
}

func (suite *RulesetTestSuite) TestLegalSpecies() {
	ou := suite.ruleset("gen9ou")
	names := ou.LegalSpecies()

	suite.Contains(names, "Pikachu")
	suite.Contains(names, "Flabébé")
	suite.NotContains(names, "Mewtwo")
	suite.IsIncreasing(names)
}

func TestRulesetTestSuite(t *testing.T) {
	suite.Run(t, new(RulesetTestSuite))
}

func TestParseFormatID(t *testing.T) {
	testCases := []struct {
		id         string
		generation int
		tier       string
		malformed  bool
	}{
		{id: "gen9ou", generation: 9, tier: "ou"},
		{id: "gen8vgc2024", generation: 8, tier: "vgc2024"},
		{id: "gen1ubers", generation: 1, tier: "ubers"},
		{id: "gen9", malformed: true},
		{id: "gen0ou", malformed: true},
		{id: "gen10ou", malformed: true},
		{id: "Gen9OU", malformed: true},
		{id: "ou", malformed: true},
		{id: "", malformed: true},
		{id: "gen9 ou", malformed: true},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			generation, tier, err := formats.ParseFormatID(tc.id)
			if tc.malformed {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrMalformedFormatID)
				assert.True(t, apperrors.IsConfiguration(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.generation, generation)
			assert.Equal(t, tc.tier, tier)
		})
	}
}
