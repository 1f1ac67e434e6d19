package storage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devadharshani13/SmartPlate/internal/db"
	"github.com/Devadharshani13/SmartPlate/internal/geo"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/repository"
)

var errUnused = errors.New("not used by this test")

// memDB hands out transactions backed by an undo log. The repositories below apply
// writes immediately, enforce the compare-and-set themselves and register how to revert
// each write, which Rollback replays newest first. Written rows stay locked until the
// transaction ends, like UPDATE row locks.
type memDB struct{}

func (memDB) Get(context.Context, interface{}, string, ...interface{}) error { return errUnused }
func (memDB) Select(context.Context, interface{}, string, ...interface{}) error { return errUnused }
func (memDB) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, errUnused
}
func (memDB) ExecQueryRow(context.Context, string, ...interface{}) pgx.Row { return nil }
func (memDB) BeginTx(context.Context) (db.Tx, error) { return &memTx{}, nil }

type memTx struct {
	undo  []func()
	locks []func()
	done  bool
}

func (tx *memTx) Commit(context.Context) error {
	if tx.done {
		return pgx.ErrTxClosed
	}
	tx.finish()
	return nil
}

func (tx *memTx) Rollback(context.Context) error {
	if tx.done {
		return pgx.ErrTxClosed
	}
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.finish()
	return nil
}

func (tx *memTx) finish() {
	for _, unlock := range tx.locks {
		unlock()
	}
	tx.done, tx.undo, tx.locks = true, nil, nil
}

func (*memTx) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, errUnused
}
func (*memTx) Get(context.Context, interface{}, string, ...interface{}) error { return errUnused }
func (*memTx) Select(context.Context, interface{}, string, ...interface{}) error { return errUnused }

func onRollback(tx db.Tx, revert func()) {
	if mt, ok := tx.(*memTx); ok {
		mt.undo = append(mt.undo, revert)
	}
}

// rowLocks holds a row for the transaction that wrote it first.
type rowLocks struct {
	mu   sync.Mutex
	cond *sync.Cond
	held map[string]*memTx
}

func newRowLocks() *rowLocks {
	l := &rowLocks{held: map[string]*memTx{}}
	l.cond = sync.NewCond(&l.mu)
	return l
}

func (l *rowLocks) lock(tx db.Tx, key string) {
	mt, ok := tx.(*memTx)
	if !ok {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for l.held[key] != nil && l.held[key] != mt {
		l.cond.Wait()
	}
	if l.held[key] == mt {
		return
	}
	l.held[key] = mt
	mt.locks = append(mt.locks, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
		l.cond.Broadcast()
	})
}

type memRequests struct {
	locks *rowLocks
	mu    sync.Mutex
	rows  map[string]repository.FoodRequest
}

func (m *memRequests) CreateTx(_ context.Context, tx db.Tx, req *repository.FoodRequest) error {
	m.locks.lock(tx, "request:"+req.ID)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[req.ID] = *req
	id := req.ID
	onRollback(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.rows, id)
	})
	return nil
}

func (m *memRequests) GetByID(_ context.Context, id string) (*repository.FoodRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	return &row, nil
}

func (m *memRequests) GetByIDTx(ctx context.Context, _ db.Tx, id string) (*repository.FoodRequest, error) {
	return m.GetByID(ctx, id)
}

func (m *memRequests) UpdateTx(_ context.Context, tx db.Tx, req *repository.FoodRequest, expectedStatus string, expectedVersion int64) (bool, error) {
	m.locks.lock(tx, "request:"+req.ID)
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[req.ID]
	if !ok || cur.Status != expectedStatus || cur.Version != expectedVersion {
		return false, nil
	}
	m.rows[req.ID] = *req
	onRollback(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.rows[cur.ID] = cur
	})
	return true, nil
}

func (m *memRequests) ListByNGO(context.Context, string) ([]*repository.FoodRequest, error) {
	return nil, nil
}
func (m *memRequests) ListByDonor(context.Context, string) ([]*repository.FoodRequest, error) {
	return nil, nil
}
func (m *memRequests) ListByVolunteer(context.Context, string) ([]*repository.FoodRequest, error) {
	return nil, nil
}
func (m *memRequests) ListByStatus(context.Context, string, int) ([]*repository.FoodRequest, error) {
	return nil, nil
}
func (m *memRequests) ListAwaitingVolunteer(context.Context, int) ([]*repository.FoodRequest, error) {
	return nil, nil
}
func (m *memRequests) ListAwaitingCoVolunteer(context.Context, int) ([]*repository.FoodRequest, error) {
	return nil, nil
}
func (m *memRequests) ListActive(context.Context) ([]lifecycle.FoodRequest, error) { return nil, nil }

// memUsers only tracks task slots.
type memUsers struct {
	locks    *rowLocks
	mu       sync.Mutex
	capacity map[string]int
	active   map[string]int
}

func (m *memUsers) Create(context.Context, *repository.User) error { return nil }
func (m *memUsers) GetByID(context.Context, string) (*repository.User, error) {
	return nil, repository.ErrObjectNotFound
}
func (m *memUsers) GetByIDTx(context.Context, db.Tx, string) (*repository.User, error) {
	return nil, repository.ErrObjectNotFound
}
func (m *memUsers) UpdateVerificationTx(context.Context, db.Tx, *repository.User, string) (bool, error) {
	return false, errUnused
}

func (m *memUsers) ReserveTaskSlotTx(_ context.Context, tx db.Tx, id string) (bool, error) {
	m.locks.lock(tx, "user:"+id)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active[id] >= m.capacity[id] {
		return false, nil
	}
	m.active[id]++
	onRollback(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.active[id]--
	})
	return true, nil
}

func (m *memUsers) ReleaseTaskSlotTx(_ context.Context, tx db.Tx, id string) error {
	m.locks.lock(tx, "user:"+id)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active[id] > 0 {
		m.active[id]--
		onRollback(tx, func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.active[id]++
		})
	}
	return nil
}

func (m *memUsers) activeTasks(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active[id]
}

func (m *memUsers) IncrementCounterTx(context.Context, db.Tx, string, repository.Counter) error {
	return nil
}
func (m *memUsers) UpdateAvailability(context.Context, string, bool, int, *float64, *float64) error {
	return nil
}
func (m *memUsers) ListAssignableVolunteers(context.Context) ([]*repository.User, error) {
	return nil, nil
}
func (m *memUsers) ListByVerification(context.Context, string) ([]*repository.User, error) {
	return nil, nil
}
func (m *memUsers) List(context.Context, string, int) ([]*repository.User, error) {
	return nil, nil
}

type memLog struct {
	mu     sync.Mutex
	audits []repository.AuditLogEntry
	outbox []repository.OutboxTask
}

func (m *memLog) CreateTx(_ context.Context, tx db.Tx, entry *repository.AuditLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.audits = append(m.audits, *entry)
	id := entry.ID
	onRollback(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, a := range m.audits {
			if a.ID == id {
				m.audits = append(m.audits[:i], m.audits[i+1:]...)
				return
			}
		}
	})
	return nil
}

func (m *memLog) List(context.Context, int) ([]*repository.AuditLogEntry, error) { return nil, nil }

type memOutbox struct{ log *memLog }

func (o memOutbox) CreateTx(_ context.Context, tx db.Tx, task *repository.OutboxTask) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	o.log.mu.Lock()
	defer o.log.mu.Unlock()
	o.log.outbox = append(o.log.outbox, *task)
	id := task.ID
	onRollback(tx, func() {
		o.log.mu.Lock()
		defer o.log.mu.Unlock()
		for i, t := range o.log.outbox {
			if t.ID == id {
				o.log.outbox = append(o.log.outbox[:i], o.log.outbox[i+1:]...)
				return
			}
		}
	})
	return nil
}
func (memOutbox) GetProcessableTasksTx(context.Context, db.Tx, int, int) ([]*repository.OutboxTask, error) {
	return nil, nil
}
func (memOutbox) UpdateTaskStatusTx(context.Context, db.Tx, uuid.UUID, repository.TaskStatus, int, *string, *time.Time) error {
	return nil
}
func (memOutbox) UpdateTaskStatus(context.Context, db.DB, uuid.UUID, repository.TaskStatus, int, *string, *time.Time) error {
	return nil
}

type staticDirectory []lifecycle.User

func (d staticDirectory) Candidates(context.Context, *geo.Point, ...string) ([]lifecycle.User, error) {
	return append([]lifecycle.User(nil), d...), nil
}
func (d staticDirectory) LiveLocation(_ context.Context, u lifecycle.User) *geo.Point { return u.Point }

func newMemStorage(t *testing.T, volunteers ...lifecycle.User) (*Storage, *memRequests, *memUsers, *memLog) {
	t.Helper()
	locks := newRowLocks()
	requests := &memRequests{locks: locks, rows: map[string]repository.FoodRequest{}}
	users := &memUsers{locks: locks, capacity: map[string]int{}, active: map[string]int{}}
	for _, v := range volunteers {
		users.capacity[v.ID] = v.TaskCapacity
	}
	log := &memLog{}
	s := NewStorage(memDB{}, requests, users, log, memOutbox{log: log}, Options{
		Engine:    lifecycle.NewEngine(time.UTC),
		Directory: staticDirectory(volunteers),
	})
	return s, requests, users, log
}

func TestConcurrentAccept(t *testing.T) {
	ctx := context.Background()
	const donors = 8

	volunteer := lifecycle.User{
		ID:           "vol-1",
		Role:         lifecycle.RoleVolunteer,
		Verification: lifecycle.VerificationVerified,
		Available:    true,
		TaskCapacity: 1,
	}
	s, requests, users, log := newMemStorage(t, volunteer)

	ngo := lifecycle.Actor{ID: "ngo-1", Role: lifecycle.RoleNGO, Verification: lifecycle.VerificationVerified}
	req, err := s.CreateRequest(ctx, ngo, lifecycle.CreateInput{
		FoodType:       "bread",
		FoodCategory:   "bakery",
		Quantity:       20,
		QuantityUnit:   "loaves",
		PeopleCount:    20,
		RequiredDate:   time.Now().UTC().Format("2006-01-02"),
		PickupLocation: "T Nagar",
	})
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		results = make([]error, donors)
	)
	start := make(chan struct{})
	for i := 0; i < donors; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			donor := lifecycle.Actor{ID: "donor-" + string(rune('a'+i)), Role: lifecycle.RoleDonor}
			_, results[i] = s.Accept(ctx, donor, req.ID, lifecycle.AcceptInput{AvailabilityTime: "15:00", FoodCondition: "fresh"})
		}(i)
	}
	close(start)
	wg.Wait()

	var won, lost int
	for _, err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, lifecycle.ErrAlreadyAccepted), errors.Is(err, ErrConcurrentUpdate):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, donors-1, lost)

	row, err := requests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, string(lifecycle.StatusAssignedToVolunteer), row.Status)
	assert.Equal(t, "vol-1", row.VolunteerID)
	assert.Equal(t, int64(2), row.Version)

	// Losers that reserved the slot before their compare-and-set failed must have
	// handed it back, or the winner could not have been assigned.
	assert.Equal(t, 1, users.activeTasks("vol-1"))

	accepted := 0
	for _, entry := range log.audits {
		if entry.Action == AuditDonationAccepted {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted)
	// one new_request, one acceptance, one assignment
	assert.Len(t, log.outbox, 3)
}

func TestMemTx_RollbackRevertsWrites(t *testing.T) {
	ctx := context.Background()
	s, requests, users, log := newMemStorage(t, lifecycle.User{ID: "vol-1", TaskCapacity: 1})

	errBoom := errors.New("boom")
	err := db.WithTx(ctx, s.db, func(tx db.Tx) error {
		require.NoError(t, requests.CreateTx(ctx, tx, &repository.FoodRequest{ID: "req-1", Status: "pending", Version: 1}))
		ok, err := users.ReserveTaskSlotTx(ctx, tx, "vol-1")
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, log.CreateTx(ctx, tx, &repository.AuditLogEntry{ID: uuid.New(), Action: "x"}))
		require.NoError(t, memOutbox{log: log}.CreateTx(ctx, tx, &repository.OutboxTask{ID: uuid.New()}))
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, err = requests.GetByID(ctx, "req-1")
	assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	assert.Zero(t, users.activeTasks("vol-1"))
	assert.Empty(t, log.audits)
	assert.Empty(t, log.outbox)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "9876543210", want: "9876543210"},
		{in: "(987) 654-3210", want: "9876543210"},
		{in: "98765 43210", want: "9876543210"},
		{in: "12345", wantErr: true},
		{in: "98765432101", wantErr: true},
		{in: "98765abc10", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizePhone(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, lifecycle.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProfileInput_User(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	lat, lng := 13.0, 80.2

	ngo, err := ProfileInput{Name: "Annam", Email: "hello@annam.org", Organization: "Annam Trust", Latitude: &lat, Longitude: &lng}.
		user("ngo-1", lifecycle.RoleNGO, now)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.VerificationPending, ngo.Verification)
	require.NotNil(t, ngo.Point)

	donor, err := ProfileInput{Name: "Hotel", Email: "desk@hotel.in", DonorType: "restaurant"}.user("donor-1", lifecycle.RoleDonor, now)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.VerificationNone, donor.Verification)
	assert.True(t, donor.Verified())

	_, err = ProfileInput{Name: "Annam", Email: "hello@annam.org"}.user("ngo-2", lifecycle.RoleNGO, now)
	assert.ErrorIs(t, err, lifecycle.ErrInvalidInput, "organization is required")

	_, err = ProfileInput{Name: "Ravi", Email: "ravi@example.org", TransportMode: "jetpack"}.user("vol-1", lifecycle.RoleVolunteer, now)
	assert.ErrorIs(t, err, lifecycle.ErrInvalidInput)

	far := 200.0
	_, err = ProfileInput{Name: "Ravi", Email: "ravi@example.org", TransportMode: "car", Latitude: &far, Longitude: &lng}.
		user("vol-1", lifecycle.RoleVolunteer, now)
	assert.ErrorIs(t, err, lifecycle.ErrInvalidInput)
}
