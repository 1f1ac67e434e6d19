package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_database "github.com/Devadharshani13/SmartPlate/internal/db/mocks"
	"github.com/Devadharshani13/SmartPlate/internal/repository"
	mock_storage "github.com/Devadharshani13/SmartPlate/internal/storage/mocks"
)

type sentMessage struct {
	topic string
	key   string
	value string
}

type recordingProducer struct {
	mu     sync.Mutex
	sent   []sentMessage
	err    error
	closed bool
}

func (p *recordingProducer) SendMessage(_ context.Context, topic string, key []byte, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, sentMessage{topic: topic, key: string(key), value: string(value)})
	return nil
}

func (p *recordingProducer) Close() error {
	p.closed = true
	return nil
}

func setupPublisher(t *testing.T, producer Producer) (*Publisher, *mock_database.MockDB, *mock_database.MockTx, *mock_storage.MockOutboxTaskRepository) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := mock_storage.NewMockOutboxTaskRepository(ctrl)
	p := NewPublisher(mockDB, repo, producer, PublisherConfig{PollInterval: time.Second, BatchSize: 5, MaxAttempts: 3}, zap.NewNop())
	return p, mockDB, mockTx, repo
}

func TestPublisher_ProcessBatch(t *testing.T) {
	fixed := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = time.Now })

	task := &repository.OutboxTask{
		ID:       uuid.New(),
		Status:   repository.TaskStatusCreated,
		Payload:  []byte(`{"type":"new_request","request_id":"req-1"}`),
		Topic:    "events",
		Key:      "req-1",
		Attempts: 0,
	}

	t.Run("sends claimed tasks with the request key", func(t *testing.T) {
		producer := &recordingProducer{}
		p, mockDB, mockTx, repo := setupPublisher(t, producer)
		ctx := context.Background()

		mockDB.EXPECT().BeginTx(ctx).Return(mockTx, nil)
		repo.EXPECT().GetProcessableTasksTx(ctx, mockTx, 5, 3).Return([]*repository.OutboxTask{task}, nil)
		repo.EXPECT().UpdateTaskStatusTx(ctx, mockTx, task.ID, repository.TaskStatusProcessing, 0, nil, nil).Return(nil)
		mockTx.EXPECT().Commit(ctx).Return(nil)
		repo.EXPECT().UpdateTaskStatus(ctx, mockDB, task.ID, repository.TaskStatusDone, 0, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, _ uuid.UUID, _ repository.TaskStatus, _ int, _ *string, completedAt *time.Time) error {
				require.NotNil(t, completedAt)
				assert.True(t, fixed.Equal(*completedAt))
				return nil
			})

		n, err := p.ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		require.Len(t, producer.sent, 1)
		assert.Equal(t, sentMessage{topic: "events", key: "req-1", value: string(task.Payload)}, producer.sent[0])
	})

	t.Run("failed send is recorded with one more attempt", func(t *testing.T) {
		producer := &recordingProducer{err: errors.New("broker down")}
		p, mockDB, mockTx, repo := setupPublisher(t, producer)
		ctx := context.Background()

		mockDB.EXPECT().BeginTx(ctx).Return(mockTx, nil)
		repo.EXPECT().GetProcessableTasksTx(ctx, mockTx, 5, 3).Return([]*repository.OutboxTask{task}, nil)
		repo.EXPECT().UpdateTaskStatusTx(ctx, mockTx, task.ID, repository.TaskStatusProcessing, 0, nil, nil).Return(nil)
		mockTx.EXPECT().Commit(ctx).Return(nil)
		repo.EXPECT().UpdateTaskStatus(ctx, mockDB, task.ID, repository.TaskStatusFailed, 1, gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, _ interface{}, _ uuid.UUID, _ repository.TaskStatus, _ int, lastError *string, _ *time.Time) error {
				require.NotNil(t, lastError)
				assert.Equal(t, "broker down", *lastError)
				return nil
			})

		n, err := p.ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("empty batch commits and sends nothing", func(t *testing.T) {
		producer := &recordingProducer{}
		p, mockDB, mockTx, repo := setupPublisher(t, producer)
		ctx := context.Background()

		mockDB.EXPECT().BeginTx(ctx).Return(mockTx, nil)
		repo.EXPECT().GetProcessableTasksTx(ctx, mockTx, 5, 3).Return(nil, nil)
		mockTx.EXPECT().Commit(ctx).Return(nil)

		n, err := p.ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, producer.sent)
	})

	t.Run("fetch error rolls back", func(t *testing.T) {
		producer := &recordingProducer{}
		p, mockDB, mockTx, repo := setupPublisher(t, producer)
		ctx := context.Background()

		mockDB.EXPECT().BeginTx(ctx).Return(mockTx, nil)
		repo.EXPECT().GetProcessableTasksTx(ctx, mockTx, 5, 3).Return(nil, errors.New("db is down"))
		mockTx.EXPECT().Rollback(ctx).Return(nil)

		_, err := p.ProcessBatch(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db is down")
		assert.Empty(t, producer.sent)
	})
}

func TestPublisher_ShutdownClosesProducer(t *testing.T) {
	producer := &recordingProducer{}
	p, _, _, _ := setupPublisher(t, producer)

	p.Shutdown()
	p.Shutdown()

	assert.True(t, producer.closed)
}
