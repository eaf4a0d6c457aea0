package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"pokehub-backend/internal/api/handlers"
	apperrors "pokehub-backend/internal/errors"
	"pokehub-backend/internal/mocks"
	"pokehub-backend/internal/service"
	"pokehub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUser = "ash"

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
	factories   *testutils.FactorySet
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.factories = testutils.NewFactorySet()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	teams := v1.Group("/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
	}
	v1.GET("/formats/:id/audit", suite.handler.AuditFormat)
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) teamResponse() *service.TeamResponse {
	team := suite.factories.Team.Create()
	return &service.TeamResponse{
		ID:         uuid.New(),
		UserID:     testUser,
		Name:       team.Name,
		Generation: team.Generation,
		Format:     team.Format,
		FormatID:   team.FormatID(),
		Pokemon:    team.Pokemon,
		CreatedAt:  time.Now().Format(time.RFC3339),
		UpdatedAt:  time.Now().Format(time.RFC3339),
	}
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_Success() {
	team := suite.factories.Team.Create()
	expected := suite.teamResponse()

	suite.mockService.EXPECT().
		CreateTeam(gomock.Any(), testUser, gomock.Any()).
		Return(expected, nil)

	recorder := suite.httpSuite.MakeUserRequest(http.MethodPost, "/api/v1/teams", testUser, team)

	var resp service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	assert.Equal(suite.T(), expected.ID, resp.ID)
	assert.Equal(suite.T(), "gen9ou", resp.FormatID)
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_Unauthenticated() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", suite.factories.Team.Create())

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "user id not found")
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_InvalidJSON() {
	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/teams", testUser, "invalid json")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid request body")
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_StructuralRejection() {
	suite.mockService.EXPECT().
		CreateTeam(gomock.Any(), testUser, gomock.Any()).
		Return(nil, &apperrors.TeamValidationError{Fields: []apperrors.FieldViolation{
			{Field: "pokemon.0.moves", Message: "Pokémon must have between 1 and 4 moves"},
		}})

	recorder := suite.httpSuite.MakeUserRequest(http.MethodPost, "/api/v1/teams", testUser, suite.factories.Team.Create())

	var body handlers.TeamValidationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &body)
	assert.Equal(suite.T(), "Team validation failed", body.Message)
	require.Len(suite.T(), body.Errors, 1)
	assert.Equal(suite.T(), "pokemon.0.moves", body.Errors[0].Field)
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_IllegalInFormat() {
	suite.mockService.EXPECT().
		CreateTeam(gomock.Any(), testUser, gomock.Any()).
		Return(nil, &apperrors.FormatLegalityError{
			FormatID:      "gen9ou",
			Errors:        []string{"Species Clause: You cannot have more than one Pikachu"},
			PokemonErrors: map[int][]string{2: {"Mewtwo is banned in gen9ou"}},
		})

	recorder := suite.httpSuite.MakeUserRequest(http.MethodPost, "/api/v1/teams", testUser, suite.factories.Team.Create())

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	assert.JSONEq(suite.T(), `{
		"message": "Team is not legal in gen9ou",
		"formatId": "gen9ou",
		"errors": ["Species Clause: You cannot have more than one Pikachu"],
		"pokemonErrors": {"2": ["Mewtwo is banned in gen9ou"]}
	}`, recorder.Body.String())
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_ConfigurationErrorIsInternal() {
	suite.mockService.EXPECT().
		CreateTeam(gomock.Any(), testUser, gomock.Any()).
		Return(nil, apperrors.ErrRulesetLoadFailed)

	recorder := suite.httpSuite.MakeUserRequest(http.MethodPost, "/api/v1/teams", testUser, suite.factories.Team.Create())

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Format rules are unavailable")
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_DuplicateName() {
	suite.mockService.EXPECT().
		CreateTeam(gomock.Any(), testUser, gomock.Any()).
		Return(nil, apperrors.ErrTeamExists)

	recorder := suite.httpSuite.MakeUserRequest(http.MethodPost, "/api/v1/teams", testUser, suite.factories.Team.Create())

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	expected := suite.teamResponse()

	testCases := []struct {
		name           string
		id             string
		setup          func()
		expectedStatus int
	}{
		{
			name: "Success",
			id:   expected.ID.String(),
			setup: func() {
				suite.mockService.EXPECT().GetTeam(gomock.Any(), testUser, expected.ID).Return(expected, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid ID",
			id:             "not-a-uuid",
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Not found",
			id:   expected.ID.String(),
			setup: func() {
				suite.mockService.EXPECT().GetTeam(gomock.Any(), testUser, expected.ID).Return(nil, apperrors.ErrTeamNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Another user's team",
			id:   expected.ID.String(),
			setup: func() {
				suite.mockService.EXPECT().GetTeam(gomock.Any(), testUser, expected.ID).Return(nil, apperrors.ErrTeamAccessDenied)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.setup()
			recorder := suite.httpSuite.MakeUserRequest(http.MethodGet, "/api/v1/teams/"+tc.id, testUser, nil)
			assert.Equal(suite.T(), tc.expectedStatus, recorder.Code)
		})
	}
}

func (suite *TeamHandlerTestSuite) TestListTeams_Pagination() {
	suite.mockService.EXPECT().
		GetTeamsByUserID(gomock.Any(), testUser, 2, 20).
		Return(&service.TeamListResponse{Teams: []service.TeamResponse{*suite.teamResponse()}, Total: 21, Page: 2, PageSize: 20}, nil)

	recorder := suite.httpSuite.MakeUserRequest(http.MethodGet, "/api/v1/teams?page=2&page_size=500", testUser, nil)

	var resp service.TeamListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), int64(21), resp.Total)
	assert.Len(suite.T(), resp.Teams, 1)
}

func (suite *TeamHandlerTestSuite) TestListTeams_ServiceError() {
	suite.mockService.EXPECT().
		GetTeamsByUserID(gomock.Any(), testUser, 1, 20).
		Return(nil, errors.New("database down"))

	recorder := suite.httpSuite.MakeUserRequest(http.MethodGet, "/api/v1/teams", testUser, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Internal server error")
	assert.NotContains(suite.T(), recorder.Body.String(), "database down")
}

func (suite *TeamHandlerTestSuite) TestUpdateTeam_Success() {
	expected := suite.teamResponse()
	suite.mockService.EXPECT().
		UpdateTeam(gomock.Any(), testUser, expected.ID, gomock.Any()).
		Return(expected, nil)

	recorder := suite.httpSuite.MakeUserRequest(http.MethodPut, "/api/v1/teams/"+expected.ID.String(), testUser, suite.factories.Team.Create())

	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, nil)
}

func (suite *TeamHandlerTestSuite) TestUpdateTeam_InvalidJSON() {
	recorder := suite.httpSuite.MakeRawRequest(http.MethodPut, "/api/v1/teams/"+uuid.NewString(), testUser, "{")

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteTeam(gomock.Any(), testUser, id).Return(nil)

	recorder := suite.httpSuite.MakeUserRequest(http.MethodDelete, "/api/v1/teams/"+id.String(), testUser, nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteTeam(gomock.Any(), testUser, id).Return(apperrors.ErrTeamNotFound)

	recorder := suite.httpSuite.MakeUserRequest(http.MethodDelete, "/api/v1/teams/"+id.String(), testUser, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
}

func (suite *TeamHandlerTestSuite) TestAuditFormat() {
	suite.mockService.EXPECT().
		AuditFormat(gomock.Any(), testUser, "gen9ou").
		Return(&service.FormatAuditResponse{FormatID: "gen9ou", Checked: 3, Illegal: []service.IllegalTeam{}}, nil)

	recorder := suite.httpSuite.MakeUserRequest(http.MethodGet, "/api/v1/formats/gen9ou/audit", testUser, nil)

	var resp service.FormatAuditResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), 3, resp.Checked)
}

func (suite *TeamHandlerTestSuite) TestAuditFormat_ScopedToCaller() {
	suite.mockService.EXPECT().
		AuditFormat(gomock.Any(), "misty", "gen9ou").
		Return(&service.FormatAuditResponse{FormatID: "gen9ou", Checked: 1, Illegal: []service.IllegalTeam{}}, nil)

	recorder := suite.httpSuite.MakeUserRequest(http.MethodGet, "/api/v1/formats/gen9ou/audit", "misty", nil)

	var resp service.FormatAuditResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), 1, resp.Checked)
}

func (suite *TeamHandlerTestSuite) TestAuditFormat_Unauthenticated() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/formats/gen9ou/audit", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "user id not found")
}

func (suite *TeamHandlerTestSuite) TestAuditFormat_UnknownFormat() {
	suite.mockService.EXPECT().
		AuditFormat(gomock.Any(), testUser, "gen9zz").
		Return(nil, apperrors.ErrFormatUnknown)

	recorder := suite.httpSuite.MakeUserRequest(http.MethodGet, "/api/v1/formats/gen9zz/audit", testUser, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "format not found")
}

func (suite *TeamHandlerTestSuite) TestErrorBodies() {
	suite.mockService.EXPECT().
		AuditFormat(gomock.Any(), testUser, "gen9ou").
		Return(nil, apperrors.ErrRulesetLoadFailed)

	recorder := suite.httpSuite.MakeUserRequest(http.MethodGet, "/api/v1/formats/gen9ou/audit", testUser, nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(suite.T(), `{"error":"Format rules are unavailable"}`, recorder.Body.String())

	recorder = suite.httpSuite.MakeUserRequest(http.MethodGet, "/api/v1/teams/not-a-uuid", testUser, nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	assert.JSONEq(suite.T(), `{"error":"invalid team ID"}`, recorder.Body.String())
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
