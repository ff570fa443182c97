package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/petcare-service/internal/config"
	"github.com/spec-kit/petcare-service/internal/domain"
	"github.com/spec-kit/petcare-service/internal/events"
)

// In-memory repositories for service tests. They mirror the Postgres
// implementations' contract, including pgx.ErrNoRows on misses.

type memUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
}

func newMemUserRepo(seed ...*domain.User) *memUserRepo {
	r := &memUserRepo{users: map[string]*domain.User{}}
	for _, u := range seed {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) SetVerified(ctx context.Context, id string, verified bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	user.Verified = verified
	return user, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) ListAll(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

func (r *memUserRepo) ListVerifiedByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0)
	for _, user := range r.users {
		if user.Role == role && user.Verified {
			out = append(out, user)
		}
	}
	return out, nil
}

type memPetRepo struct {
	mu   sync.Mutex
	seq  int
	pets map[string]*domain.Pet
}

func newMemPetRepo(seed ...*domain.Pet) *memPetRepo {
	r := &memPetRepo{pets: map[string]*domain.Pet{}}
	for _, p := range seed {
		r.pets[p.ID] = p
	}
	return r
}

func (r *memPetRepo) Create(ctx context.Context, pet *domain.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	pet.ID = fmt.Sprintf("pet-%d", r.seq)
	r.pets[pet.ID] = pet
	return nil
}

func (r *memPetRepo) GetByID(ctx context.Context, id string) (*domain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pet, ok := r.pets[id]; ok {
		return pet, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memPetRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Pet, 0)
	for _, pet := range r.pets {
		if pet.OwnerID == ownerID {
			out = append(out, pet)
		}
	}
	return out, nil
}

type memCareRequestRepo struct {
	mu       sync.Mutex
	seq      int
	requests map[string]*domain.CareRequest
}

func newMemCareRequestRepo(seed ...*domain.CareRequest) *memCareRequestRepo {
	r := &memCareRequestRepo{requests: map[string]*domain.CareRequest{}}
	for _, cr := range seed {
		r.requests[cr.ID] = cr
	}
	return r
}

func (r *memCareRequestRepo) Create(ctx context.Context, request *domain.CareRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	request.ID = fmt.Sprintf("req-%d", r.seq)
	r.requests[request.ID] = request
	return nil
}

func (r *memCareRequestRepo) GetByID(ctx context.Context, id string) (*domain.CareRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if request, ok := r.requests[id]; ok {
		copied := *request
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memCareRequestRepo) UpdateStatus(ctx context.Context, id string, status domain.CareRequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return pgx.ErrNoRows
	}
	request.Status = status
	return nil
}

func (r *memCareRequestRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.CareRequest, error) {
	return r.list(func(cr *domain.CareRequest) bool { return cr.OwnerID == ownerID })
}

func (r *memCareRequestRepo) ListByCaretaker(ctx context.Context, caretakerID string) ([]*domain.CareRequest, error) {
	return r.list(func(cr *domain.CareRequest) bool { return cr.CaretakerID == caretakerID })
}

func (r *memCareRequestRepo) ListAll(ctx context.Context) ([]*domain.CareRequest, error) {
	return r.list(func(*domain.CareRequest) bool { return true })
}

func (r *memCareRequestRepo) list(keep func(*domain.CareRequest) bool) ([]*domain.CareRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.CareRequest, 0)
	for _, request := range r.requests {
		if keep(request) {
			out = append(out, request)
		}
	}
	return out, nil
}

type memActivityRepo struct {
	mu         sync.Mutex
	seq        int
	activities []*domain.Activity
}

func (r *memActivityRepo) Create(ctx context.Context, activity *domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	activity.ID = fmt.Sprintf("act-%d", r.seq)
	r.activities = append(r.activities, activity)
	return nil
}

func (r *memActivityRepo) ListByCareRequest(ctx context.Context, careRequestID string) ([]*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Activity, 0)
	for _, activity := range r.activities {
		if activity.CareRequestID == careRequestID {
			out = append(out, activity)
		}
	}
	return out, nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (d *recordingDispatcher) recorded() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}

func testAuthConfig(secret string) config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     secret,
			TokenTTLHours: 168,
			// MinCost keeps the hashing in tests fast.
			BcryptCost: 4,
		},
	}
}
