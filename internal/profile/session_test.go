package profile_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dream-bot-discord/internal/availability"
	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
	"github.com/KirkDiggler/dream-bot-discord/internal/profile"
	mockprofile "github.com/KirkDiggler/dream-bot-discord/internal/profile/mock"
	"github.com/KirkDiggler/dream-bot-discord/internal/slots"
	"github.com/KirkDiggler/dream-bot-discord/internal/sprite"
	mocksprite "github.com/KirkDiggler/dream-bot-discord/internal/sprite/mock"
	"github.com/KirkDiggler/dream-bot-discord/internal/testutils"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type renderEvent struct {
	kind profile.SlotKind
	cell slots.Cell
}

type SessionTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	prober   *mocksprite.MockProber
	gateway  *mockprofile.MockGateway
	session  *profile.Session
	rendered []renderEvent
}

func (s *SessionTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.prober = mocksprite.NewMockProber(s.ctrl)
	s.gateway = mockprofile.NewMockGateway(s.ctrl)
	s.rendered = nil

	s.session = profile.NewSession(&profile.SessionConfig{
		Catalog:  testutils.CreateTestCatalog(),
		Resolver: sprite.NewResolver(s.prober),
		OnRender: func(kind profile.SlotKind, cell slots.Cell) {
			s.rendered = append(s.rendered, renderEvent{kind: kind, cell: cell})
		},
	})
}

func (s *SessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) TestLoad_SnapshotRoundTrip() {
	doc := testutils.CreateTestDocument(testutils.VersionWhite2)
	// a form above the catalog's highest survives untouched until edited
	doc.Encounters[1].Form = 27

	s.session.Load(doc)
	req := s.session.Snapshot()

	s.Equal(doc.Encounters, req.Encounters)
	s.Equal(doc.Items, req.Items)
	s.Equal(doc.AvenueVisitors, req.AvenueVisitors)
	s.Equal("forest.bin", req.CGearSkin)
	s.Equal(profile.NoDLC, req.DexSkin)
	s.Equal(profile.NoDLC, req.Musical)
	s.Equal(3, req.GainedLevels)
	s.Equal(availability.TierExtended, s.session.Tier())
	s.True(s.session.Extended())
	s.Equal(profile.DLCCGear2, s.session.CGearType())
}

func (s *SessionTestSuite) TestLoad_AbsentVersusEmpty() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionBlack))
	s.Equal(profile.DLCCGear, s.session.CGearType())

	s.session.Load(&profile.Document{GameVersion: testutils.VersionBlack})
	s.Equal(2, s.session.Size(profile.SlotEncounters), "absent keeps contents")
	s.Equal(1, s.session.Size(profile.SlotItems))

	s.session.Load(&profile.Document{
		GameVersion:    testutils.VersionBlack,
		Encounters:     []profile.Encounter{},
		Items:          []profile.Item{},
		AvenueVisitors: []profile.Visitor{},
	})
	s.Equal(0, s.session.Size(profile.SlotEncounters), "empty replaces contents")
	s.Equal(0, s.session.Size(profile.SlotItems))
	s.Equal(0, s.session.Size(profile.SlotVisitors))

	req := s.session.Snapshot()
	s.NotNil(req.Encounters)
	s.Empty(req.Encounters)
}

func (s *SessionTestSuite) TestLoad_MissingGenderDefaults() {
	s.session.Load(&profile.Document{
		GameVersion: testutils.VersionBlack,
		Encounters:  []profile.Encounter{{Species: 25, Animation: profile.AnimationSpinLeft}},
	})

	s.Equal(profile.GenderGenderless, s.session.Encounters()[0].Gender)
}

func (s *SessionTestSuite) TestCommit_UnavailableSpeciesOnOriginalGame() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionBlack))

	s.Require().NoError(s.session.BeginEdit(profile.SlotEncounters, 2))
	s.Require().NoError(s.session.EditEncounter(profile.EncounterChange{Species: intPtr(600)}))

	err := s.session.Commit(s.ctx, profile.SlotEncounters)

	s.True(dnderr.IsValidation(err))
	s.Equal(2, s.session.Size(profile.SlotEncounters))
	s.Equal(2, s.session.EditIndex(profile.SlotEncounters))
	s.NotNil(s.session.Drafts().Encounter)
}

func (s *SessionTestSuite) TestCommit_ClampsForm() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionBlack))
	s.prober.EXPECT().Exists(gomock.Any(), "/sprites/pokemon/normal/201-3.png").Return(true)

	s.Require().NoError(s.session.BeginEdit(profile.SlotEncounters, 1))
	s.Require().NoError(s.session.EditEncounter(profile.EncounterChange{Form: intPtr(27)}))
	s.Require().NoError(s.session.Commit(s.ctx, profile.SlotEncounters))

	s.Equal(3, s.session.Encounters()[1].Form)
	s.Nil(s.session.Drafts().Encounter)
	s.Require().Len(s.rendered, 1)
	s.Equal(profile.SlotEncounters, s.rendered[0].kind)
	s.Equal(1, s.rendered[0].cell.Index)
	s.Equal("/sprites/pokemon/normal/201-3.png", s.rendered[0].cell.Sprite)
	s.Equal("Unown (D)", s.rendered[0].cell.Label)
}

func intPtr(v int) *int {
	return &v
}

func (s *SessionTestSuite) TestEditEncounter_SpeciesChangeResetsForm() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionBlack))
	s.Require().NoError(s.session.BeginEdit(profile.SlotEncounters, 1))

	s.Require().NoError(s.session.EditEncounter(profile.EncounterChange{Species: intPtr(422)}))
	s.Equal(0, s.session.Drafts().Encounter.Form)

	s.Require().NoError(s.session.EditEncounter(profile.EncounterChange{Species: intPtr(201), Form: intPtr(2)}))
	s.Equal(2, s.session.Drafts().Encounter.Form)

	// same species keeps the form
	s.Require().NoError(s.session.EditEncounter(profile.EncounterChange{Species: intPtr(201)}))
	s.Equal(2, s.session.Drafts().Encounter.Form)
}

func (s *SessionTestSuite) TestEditEncounter_ExplicitFormMatchingPrevious() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionBlack))
	s.Require().NoError(s.session.BeginEdit(profile.SlotEncounters, 1))
	s.Require().NoError(s.session.EditEncounter(profile.EncounterChange{Species: intPtr(422), Form: intPtr(1)}))

	s.Require().NoError(s.session.EditEncounter(profile.EncounterChange{Species: intPtr(201), Form: intPtr(1)}))

	draft := s.session.Drafts().Encounter
	s.Equal(201, draft.Species)
	s.Equal(1, draft.Form)
}

func (s *SessionTestSuite) TestBeginEdit_NewEncounterSkipsUnavailableDefault() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionBlack))

	s.Require().NoError(s.session.BeginEdit(profile.SlotEncounters, 9))

	draft := s.session.Drafts().Encounter
	s.Require().NotNil(draft)
	s.Equal(2, s.session.EditIndex(profile.SlotEncounters))
	s.Equal(1, draft.Species)
	s.Equal(profile.AnimationLookAround, draft.Animation)
}

func (s *SessionTestSuite) TestEdit_NotEditing() {
	err := s.session.EditItem(func(item *profile.Item) { item.Quantity = 3 })
	s.True(dnderr.IsInvalidArgument(err))

	err = s.session.Commit(s.ctx, profile.SlotItems)
	s.True(dnderr.IsInvalidArgument(err))

	s.True(dnderr.IsInvalidArgument(s.session.BeginEdit("pokeblocks", 0)))
}

func (s *SessionTestSuite) TestVisitors_OnlyOnExtendedGames() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionBlack))

	s.False(s.session.Supports(profile.SlotVisitors))
	s.True(s.session.Supports(profile.SlotItems))

	err := s.session.BeginEdit(profile.SlotVisitors, 0)
	s.True(dnderr.IsValidation(err))
	s.Equal(profile.MsgVisitorsExtendedOnly, dnderr.UserMessage(err))
	s.Nil(s.session.Drafts().Visitor)

	err = s.session.Commit(s.ctx, profile.SlotVisitors)
	s.True(dnderr.IsValidation(err))
	s.Equal(1, s.session.Size(profile.SlotVisitors))

	s.session.Load(testutils.CreateTestDocument(testutils.VersionWhite2))
	s.True(s.session.Supports(profile.SlotVisitors))
	s.NoError(s.session.BeginEdit(profile.SlotVisitors, 0))
}

func (s *SessionTestSuite) TestEditItem_ClampsQuantity() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionBlack))
	s.Require().NoError(s.session.BeginEdit(profile.SlotItems, 0))

	s.Require().NoError(s.session.EditItem(func(item *profile.Item) { item.Quantity = 50 }))

	s.Equal(20, s.session.Drafts().Item.Quantity)
}

func (s *SessionTestSuite) TestEditVisitor_CountryChangeSelectsSubregion() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionWhite2))
	s.Require().NoError(s.session.BeginEdit(profile.SlotVisitors, 1))

	s.Require().NoError(s.session.EditVisitor(func(v *profile.Visitor) { v.CountryCode = 49 }))
	s.Equal(6, s.session.Drafts().Visitor.StateProvinceCode, "first by name is California")

	s.Require().NoError(s.session.EditVisitor(func(v *profile.Visitor) { v.CountryCode = 98 }))
	s.Equal(0, s.session.Drafts().Visitor.StateProvinceCode)
}

func (s *SessionTestSuite) TestCommit_DuplicateVisitorName() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionWhite2))
	s.Require().NoError(s.session.BeginEdit(profile.SlotVisitors, 1))
	s.Require().NoError(s.session.EditVisitor(func(v *profile.Visitor) { v.Name = "Ash" }))

	err := s.session.Commit(s.ctx, profile.SlotVisitors)

	s.Equal(profile.MsgVisitorNameTaken, dnderr.UserMessage(err))
	s.Equal(1, s.session.Size(profile.SlotVisitors))
	s.Empty(s.rendered)
}

func (s *SessionTestSuite) TestRemove_RerendersShiftedCells() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionBlack))
	s.prober.EXPECT().Exists(gomock.Any(), "/sprites/pokemon/normal/201-3.png").Return(false)

	s.Require().NoError(s.session.BeginEdit(profile.SlotEncounters, 0))
	s.Require().NoError(s.session.Remove(s.ctx, profile.SlotEncounters))

	s.Equal(1, s.session.Size(profile.SlotEncounters))
	s.Require().Len(s.rendered, 2)
	s.Equal("/sprites/pokemon/normal/201.png", s.rendered[0].cell.Sprite)
	s.True(s.rendered[1].cell.Empty)
	s.Equal("/sprites/pokemon/normal/0.png", s.rendered[1].cell.Sprite)
	s.Nil(s.session.Drafts().Encounter)
}

func (s *SessionTestSuite) TestRender_ItemAndVisitorFallbacks() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionWhite2))
	s.prober.EXPECT().Exists(gomock.Any(), "/sprites/items/50.png").Return(false)
	s.prober.EXPECT().Exists(gomock.Any(), "/sprites/trainers/ace_trainer_male.png").Return(true)

	items, err := s.session.Render(s.ctx, profile.SlotItems)
	s.Require().NoError(err)
	s.Len(items, profile.MaxItems)
	s.Equal("/sprites/items/0.png", items[0].Sprite)
	s.Equal("x5", items[0].Caption)
	s.Equal("Rare Candy", items[0].Label)
	s.True(items[1].Empty)

	visitors, err := s.session.Render(s.ctx, profile.SlotVisitors)
	s.Require().NoError(err)
	s.Len(visitors, profile.MaxVisitors)
	s.Equal("/sprites/trainers/ace_trainer_male.png", visitors[0].Sprite)
	s.Equal("/sprites/trainers/none.png", visitors[1].Sprite)
}

func (s *SessionTestSuite) TestRender_SameStateSameCells() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionWhite2))
	s.prober.EXPECT().Exists(gomock.Any(), "/sprites/items/50.png").Return(false).Times(2)

	first, err := s.session.Render(s.ctx, profile.SlotItems)
	s.Require().NoError(err)
	second, err := s.session.Render(s.ctx, profile.SlotItems)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *SessionTestSuite) TestSave_ReturnsServerMessage() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionBlack))
	expected := s.session.Snapshot()

	s.gateway.EXPECT().UpdateProfile(gomock.Any(), expected).
		Return(&profile.Status{Message: "Profile data was NOT saved: Species is out of range.", Error: true}, nil)

	status, err := s.session.Save(s.ctx, s.gateway)

	s.Require().NoError(err)
	s.True(status.Error)
	s.Equal("Profile data was NOT saved: Species is out of range.", status.Message)
}

func (s *SessionTestSuite) TestSave_GatewayError() {
	s.gateway.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).
		Return(nil, dnderr.AuthExpired("fetching /profile"))

	_, err := s.session.Save(s.ctx, s.gateway)

	s.True(dnderr.IsAuthExpired(err))
}

func (s *SessionTestSuite) TestStateRestore() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionWhite2))
	s.Require().NoError(s.session.BeginEdit(profile.SlotItems, 1))
	s.Require().NoError(s.session.EditItem(func(item *profile.Item) { item.ID = 638 }))
	s.session.SetGainedLevels(120)

	state := s.session.State()

	restored := profile.NewSession(&profile.SessionConfig{Catalog: testutils.CreateTestCatalog()})
	restored.Restore(state)

	s.Equal(s.session.Snapshot(), restored.Snapshot())
	s.Equal(99, restored.GainedLevels())
	s.Equal(1, restored.EditIndex(profile.SlotItems))
	s.Equal(638, restored.Drafts().Item.ID)
	s.True(restored.Extended())
	s.Require().NoError(restored.Commit(s.ctx, profile.SlotItems))
	s.Equal(2, restored.Size(profile.SlotItems))
}

func (s *SessionTestSuite) TestRestore_DropsStaleDrafts() {
	item := profile.Item{ID: 1, Quantity: 1}
	s.session.Restore(&profile.State{
		GameVersion: testutils.VersionBlack,
		ItemEdit:    slots.NoEdit,
		Drafts:      profile.Drafts{Item: &item},
	})

	s.Nil(s.session.Drafts().Item)
}

func (s *SessionTestSuite) TestDLC() {
	s.session.Load(testutils.CreateTestDocument(testutils.VersionBlack))

	s.session.ReconcileDLC(profile.DLCCGear, []string{"forest.bin", "ocean.bin"})
	s.Equal("forest.bin", s.session.DLC(profile.DLCCGear))

	s.session.ReconcileDLC(profile.DLCCGear, []string{"ocean.bin"})
	s.Equal(profile.NoDLC, s.session.DLC(profile.DLCCGear))

	s.Require().NoError(s.session.SelectDLC(profile.DLCMusical, "opera.bin"))
	s.Equal("opera.bin", s.session.Snapshot().Musical)

	s.Require().NoError(s.session.SelectDLC(profile.DLCMusical, ""))
	s.Equal(profile.NoDLC, s.session.DLC(profile.DLCMusical))

	s.True(dnderr.IsInvalidArgument(s.session.SelectDLC("BADGE", "x")))
}

func (s *SessionTestSuite) TestSave_RequiresGateway() {
	_, err := s.session.Save(s.ctx, nil)
	s.True(dnderr.IsInvalidArgument(err))
}
