package editors

import (
	"context"
	"time"

	"github.com/KirkDiggler/dream-bot-discord/internal/profile"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/KirkDiggler/dream-bot-discord/internal/repositories/editors Repository

// Record is one Discord user's editor session
type Record struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	// DashboardSession is the cookie header of the dashboard login
	DashboardSession string `json:"dashboard_session"`

	State *profile.State `json:"state"`

	// DLC holds the skin and musical names the dashboard offered at load
	DLC map[profile.DLCType][]string `json:"dlc,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository defines the interface for editor session storage
type Repository interface {
	Create(ctx context.Context, record *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	GetByUser(ctx context.Context, userID string) (*Record, error)
	Update(ctx context.Context, record *Record) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Record, error)
}
