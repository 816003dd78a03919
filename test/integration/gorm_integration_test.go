package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"project-collab-be/internal/chat"
	"project-collab-be/internal/entity"
	"project-collab-be/internal/repository/specification"
	"project-collab-be/internal/repository/unitofwork"
	"project-collab-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ChatMessageRepository())
	assert.NotNil(t, uow.UnreadCounterRepository())

	sqlDB, _ := gormDB.DB()
	require.NoError(t, sqlDB.Ping())

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Unread counter upsert is atomic per row", func(t *testing.T) {
		ctx := context.Background()
		userId := uuid.New()
		key := chat.ConversationKey(uuid.New(), uuid.New())

		counters := uow.UnreadCounterRepository()

		// Missing row reads as zero.
		count, err := counters.Get(ctx, key, userId)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		for i := 1; i <= 3; i++ {
			count, err = counters.Increment(ctx, key, userId)
			require.NoError(t, err)
			assert.Equal(t, i, count)
		}

		require.NoError(t, counters.Reset(ctx, key, userId))
		count, err = counters.Get(ctx, key, userId)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Chat messages round trip in timestamp order", func(t *testing.T) {
		ctx := context.Background()
		a, b := uuid.New(), uuid.New()

		messages := uow.ChatMessageRepository()
		base := time.Now().UTC()
		for i, content := range []string{"first", "second"} {
			err := messages.Create(ctx, &entity.ChatMessage{
				Id:          uuid.New(),
				SenderId:    a,
				RecipientId: b,
				Content:     content,
				Timestamp:   base.Add(time.Duration(i) * time.Second),
			})
			require.NoError(t, err)
		}

		stored, err := messages.FindAll(ctx,
			specification.BetweenUsers{UserA: b, UserB: a},
			specification.OrderByTimestampAsc{},
		)
		require.NoError(t, err)
		require.Len(t, stored, 2)
		assert.Equal(t, "first", stored[0].Content)
		assert.Equal(t, "second", stored[1].Content)
	})
}
