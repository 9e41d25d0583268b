package editors

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
	"github.com/KirkDiggler/dream-bot-discord/internal/uuid"
)

// InMemoryRepository keeps editor sessions in process memory
type InMemoryRepository struct {
	mu            sync.RWMutex
	records       map[string][]byte
	byUser        map[string]string
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// NewInMemoryRepository creates an empty in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		records:       make(map[string][]byte),
		byUser:        make(map[string]string),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		timeProvider:  &RealTimeProvider{},
	}
}

// Create stores a new record, replacing any record the user already has
func (r *InMemoryRepository) Create(ctx context.Context, record *Record) error {
	if record == nil {
		return dnderr.InvalidArgument("record cannot be nil")
	}
	if record.UserID == "" {
		return dnderr.InvalidArgument("user ID is required")
	}
	if record.ID == "" {
		record.ID = r.uuidGenerator.New()
	}

	now := r.timeProvider.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID]; exists {
		return dnderr.AlreadyExistsf("editor session '%s' already exists", record.ID).
			WithMeta("editor_id", record.ID)
	}
	if previous, ok := r.byUser[record.UserID]; ok {
		delete(r.records, previous)
	}

	return r.put(record)
}

// put stores a copy so callers cannot mutate stored state; caller holds the lock
func (r *InMemoryRepository) put(record *Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal editor session")
	}
	r.records[record.ID] = data
	r.byUser[record.UserID] = record.ID
	return nil
}

// Get retrieves a record by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("editor ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.get(id)
}

func (r *InMemoryRepository) get(id string) (*Record, error) {
	data, exists := r.records[id]
	if !exists {
		return nil, dnderr.NotFoundf("editor session '%s' not found", id).
			WithMeta("editor_id", id)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, dnderr.Wrap(err, "failed to unmarshal editor session")
	}
	return &record, nil
}

// GetByUser retrieves the record owned by a Discord user
func (r *InMemoryRepository) GetByUser(ctx context.Context, userID string) (*Record, error) {
	if userID == "" {
		return nil, dnderr.InvalidArgument("user ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUser[userID]
	if !ok {
		return nil, dnderr.NotFoundf("no editor session for user '%s'", userID).
			WithMeta("user_id", userID)
	}
	return r.get(id)
}

// Update overwrites an existing record
func (r *InMemoryRepository) Update(ctx context.Context, record *Record) error {
	if record == nil {
		return dnderr.InvalidArgument("record cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID]; !exists {
		return dnderr.NotFoundf("editor session '%s' not found", record.ID).
			WithMeta("editor_id", record.ID)
	}

	record.UpdatedAt = r.timeProvider.Now()
	return r.put(record)
}

// Delete removes a record
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, err := r.get(id)
	if err != nil {
		return err
	}

	delete(r.records, id)
	if r.byUser[record.UserID] == id {
		delete(r.byUser, record.UserID)
	}
	return nil
}

// List returns every record, oldest first
func (r *InMemoryRepository) List(ctx context.Context) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*Record, 0, len(r.records))
	for id := range r.records {
		record, err := r.get(id)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}
