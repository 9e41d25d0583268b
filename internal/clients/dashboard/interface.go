package dashboard

//go:generate mockgen -destination=mock/mock_client.go -package=mockdashboard . Client

import (
	"context"

	"github.com/KirkDiggler/dream-bot-discord/internal/profile"
)

// Session is the cookie header that identifies a logged-in dashboard user
type Session string

type Client interface {
	// Login starts a dashboard session for a Game Sync ID. A rejected login
	// returns an empty session and the server's status message.
	Login(ctx context.Context, gsid string) (Session, *profile.Status, error)
	GetProfile(ctx context.Context, session Session) (*profile.Document, error)
	UpdateProfile(ctx context.Context, session Session, req *profile.UpdateRequest) (*profile.Status, error)
	ListDLC(ctx context.Context, session Session, dlcType profile.DLCType) ([]string, error)
	Logout(ctx context.Context, session Session) error

	// PreviewURL links to the rendered preview of a skin
	PreviewURL(dlcType profile.DLCType, name string) string
}
