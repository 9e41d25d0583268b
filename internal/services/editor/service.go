package editor

//go:generate mockgen -destination=mock/mock_service.go -package=mockeditor -source=service.go

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/dream-bot-discord/internal/catalog"
	"github.com/KirkDiggler/dream-bot-discord/internal/clients/dashboard"
	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
	"github.com/KirkDiggler/dream-bot-discord/internal/profile"
	"github.com/KirkDiggler/dream-bot-discord/internal/repositories/editors"
	"github.com/KirkDiggler/dream-bot-discord/internal/slots"
	"github.com/KirkDiggler/dream-bot-discord/internal/sprite"
	"golang.org/x/sync/errgroup"
)

// MsgNoEditor is shown when a user interacts without an open editor
const MsgNoEditor = "You don't have a profile open. Use /dream login first."

// Service runs one Discord user's profile editor. Every call is one user
// event: it loads the stored editor, applies the event and stores the result.
type Service interface {
	// Login starts a dashboard session for a Game Sync ID and loads the profile
	Login(ctx context.Context, userID, gsid string) (*Overview, error)

	// Open re-fetches the profile, discarding unsaved edits
	Open(ctx context.Context, userID string) (*Overview, error)

	// Overview summarizes the open profile
	Overview(ctx context.Context, userID string) (*Overview, error)

	// Grid renders every slot of a collection
	Grid(ctx context.Context, userID string, kind profile.SlotKind) (*Grid, error)

	// BeginEdit opens the edit surface on a slot
	BeginEdit(ctx context.Context, userID string, kind profile.SlotKind, index int) (*Edit, error)

	// Draft returns the open edit surface without changing it
	Draft(ctx context.Context, userID string, kind profile.SlotKind) (*Edit, error)

	// UpdateEncounterDraft changes fields of the open encounter draft
	UpdateEncounterDraft(ctx context.Context, userID string, input *EncounterInput) (*Edit, error)

	// UpdateItemDraft changes fields of the open item draft
	UpdateItemDraft(ctx context.Context, userID string, input *ItemInput) (*Edit, error)

	// UpdateVisitorDraft changes fields of the open visitor draft
	UpdateVisitorDraft(ctx context.Context, userID string, input *VisitorInput) (*Edit, error)

	// Commit writes the open draft to its slot
	Commit(ctx context.Context, userID string, kind profile.SlotKind) (*Grid, error)

	// Cancel closes the edit surface
	Cancel(ctx context.Context, userID string, kind profile.SlotKind) (*Grid, error)

	// Remove deletes the slot under edit
	Remove(ctx context.Context, userID string, kind profile.SlotKind) (*Grid, error)

	// SelectDLC picks a skin or musical, or profile.NoDLC
	SelectDLC(ctx context.Context, userID string, dlcType profile.DLCType, value string) (*Overview, error)

	// SetGainedLevels sets the gained levels counter
	SetGainedLevels(ctx context.Context, userID string, levels int) (*Overview, error)

	// Search looks up options for a text field, filtered to what the profile may use
	Search(ctx context.Context, userID string, field Field, query string, limit int) ([]catalog.Match, error)

	// Save pushes the whole profile to the dashboard
	Save(ctx context.Context, userID string) (*profile.Status, error)

	// Logout ends the dashboard session and drops the editor
	Logout(ctx context.Context, userID string) error
}

type service struct {
	client     dashboard.Client
	repository editors.Repository
	catalog    *catalog.Catalog
	resolver   *sprite.Resolver
	locks      *userLocks
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client     dashboard.Client   // Required
	Repository editors.Repository // Required
	Catalog    *catalog.Catalog   // Required
	Resolver   *sprite.Resolver   // Optional, sprites fall back to placeholders without one
}

// NewService creates a new editor service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Client == nil {
		panic("dashboard client is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	return &service{
		client:     cfg.Client,
		repository: cfg.Repository,
		catalog:    cfg.Catalog,
		resolver:   cfg.Resolver,
		locks:      newUserLocks(),
	}
}

// editor is a loaded record with its live session
type editor struct {
	record  *editors.Record
	session *profile.Session
	updated map[profile.SlotKind][]slots.Cell
}

func (s *service) newEditor(record *editors.Record) *editor {
	ed := &editor{
		record:  record,
		updated: make(map[profile.SlotKind][]slots.Cell),
	}
	ed.session = profile.NewSession(&profile.SessionConfig{
		Catalog:  s.catalog,
		Resolver: s.resolver,
		OnRender: func(kind profile.SlotKind, cell slots.Cell) {
			ed.updated[kind] = append(ed.updated[kind], cell)
		},
	})
	return ed
}

func (s *service) load(ctx context.Context, userID string) (*editor, error) {
	if userID == "" {
		return nil, dnderr.InvalidArgument("user ID is required")
	}

	record, err := s.repository.GetByUser(ctx, userID)
	if err != nil {
		if dnderr.IsNotFound(err) {
			return nil, dnderr.Wrap(err, MsgNoEditor)
		}
		return nil, dnderr.Wrapf(err, "failed to load editor for user %s", userID)
	}

	ed := s.newEditor(record)
	ed.session.Restore(record.State)
	return ed, nil
}

func (s *service) store(ctx context.Context, ed *editor) error {
	ed.record.State = ed.session.State()
	if err := s.repository.Update(ctx, ed.record); err != nil {
		return dnderr.Wrapf(err, "failed to store editor for user %s", ed.record.UserID)
	}
	return nil
}

// read runs fn on the user's editor without storing it
func (s *service) read(ctx context.Context, userID string, fn func(ed *editor) error) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	ed, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	return fn(ed)
}

// mutate runs fn on the user's editor and stores the result when fn succeeds
func (s *service) mutate(ctx context.Context, userID string, fn func(ed *editor) error) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	ed, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if err := fn(ed); err != nil {
		return err
	}
	return s.store(ctx, ed)
}

// expire drops the editor after the dashboard rejected its session
func (s *service) expire(ctx context.Context, record *editors.Record, err error) error {
	if !dnderr.IsAuthExpired(err) {
		return err
	}

	log.Printf("[Editor] dashboard session expired for user %s", record.UserID)
	if delErr := s.repository.Delete(ctx, record.ID); delErr != nil && !dnderr.IsNotFound(delErr) {
		log.Printf("[Editor] failed to drop expired editor %s: %v", record.ID, delErr)
	}
	return err
}

func (s *service) Login(ctx context.Context, userID, gsid string) (*Overview, error) {
	if userID == "" {
		return nil, dnderr.InvalidArgument("user ID is required")
	}
	gsid = strings.TrimSpace(gsid)
	if gsid == "" {
		return nil, dnderr.Validation("Enter your Game Sync ID.")
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	if existing, err := s.repository.GetByUser(ctx, userID); err == nil {
		_ = s.client.Logout(ctx, dashboard.Session(existing.DashboardSession))
		if err := s.repository.Delete(ctx, existing.ID); err != nil && !dnderr.IsNotFound(err) {
			return nil, dnderr.Wrapf(err, "failed to replace editor for user %s", userID)
		}
	}

	session, status, err := s.client.Login(ctx, gsid)
	if err != nil {
		return nil, err
	}
	if session == "" {
		message := "Login failed."
		if status != nil && status.Message != "" {
			message = status.Message
		}
		return nil, dnderr.Validation(message).WithMeta("user_id", userID)
	}

	doc, err := s.client.GetProfile(ctx, session)
	if err != nil {
		return nil, err
	}

	ed := s.newEditor(&editors.Record{
		UserID:           userID,
		DashboardSession: string(session),
	})
	ed.session.Load(doc)

	dlc, err := s.fetchDLC(ctx, session, ed.session)
	if err != nil {
		return nil, err
	}
	ed.record.DLC = dlc

	ed.record.State = ed.session.State()
	if err := s.repository.Create(ctx, ed.record); err != nil {
		return nil, dnderr.Wrapf(err, "failed to create editor for user %s", userID)
	}

	log.Printf("[Editor] user %s logged in to %s", userID, ed.session.GameVersion())
	return s.overview(ed), nil
}

// fetchDLC loads the three DLC lists the profile can choose from. A current
// selection the server no longer offers is reset.
func (s *service) fetchDLC(ctx context.Context, session dashboard.Session, ps *profile.Session) (map[profile.DLCType][]string, error) {
	types := []profile.DLCType{ps.CGearType(), profile.DLCDexSkin, profile.DLCMusical}
	lists := make([][]string, len(types))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range types {
		g.Go(func() error {
			names, err := s.client.ListDLC(gctx, session, t)
			if err != nil {
				return err
			}
			lists[i] = names
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dlc := make(map[profile.DLCType][]string, len(types))
	for i, t := range types {
		dlc[t] = lists[i]
		ps.ReconcileDLC(t, lists[i])
	}
	return dlc, nil
}

func (s *service) Open(ctx context.Context, userID string) (*Overview, error) {
	var view *Overview
	err := s.mutate(ctx, userID, func(ed *editor) error {
		doc, err := s.client.GetProfile(ctx, dashboard.Session(ed.record.DashboardSession))
		if err != nil {
			return s.expire(ctx, ed.record, err)
		}

		fresh := s.newEditor(ed.record)
		fresh.session.Load(doc)
		for t, names := range ed.record.DLC {
			fresh.session.ReconcileDLC(t, names)
		}
		*ed = *fresh

		view = s.overview(ed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) Overview(ctx context.Context, userID string) (*Overview, error) {
	var view *Overview
	err := s.read(ctx, userID, func(ed *editor) error {
		view = s.overview(ed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) Save(ctx context.Context, userID string) (*profile.Status, error) {
	var status *profile.Status
	err := s.read(ctx, userID, func(ed *editor) error {
		gateway := dashboard.Bind(s.client, dashboard.Session(ed.record.DashboardSession))

		var err error
		status, err = ed.session.Save(ctx, gateway)
		if err != nil {
			return s.expire(ctx, ed.record, err)
		}

		log.Printf("[Editor] user %s saved profile: %q (error=%t)", userID, status.Message, status.Error)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}

func (s *service) Logout(ctx context.Context, userID string) error {
	if userID == "" {
		return dnderr.InvalidArgument("user ID is required")
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	record, err := s.repository.GetByUser(ctx, userID)
	if err != nil {
		if dnderr.IsNotFound(err) {
			return nil
		}
		return dnderr.Wrapf(err, "failed to load editor for user %s", userID)
	}

	// the dashboard logout cannot fail from our side
	_ = s.client.Logout(ctx, dashboard.Session(record.DashboardSession))

	if err := s.repository.Delete(ctx, record.ID); err != nil && !dnderr.IsNotFound(err) {
		return dnderr.Wrapf(err, "failed to drop editor for user %s", userID)
	}
	return nil
}
