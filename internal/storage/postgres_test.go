package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/waifuisalie/ChallengeChain/internal/database/testutil"
)

func TestPostgresStorage(t *testing.T) {
	runStorageContract(t, func(t *testing.T) Storage {
		testDB := testutil.SetupTestDatabase(t)
		return NewPostgresStorage(testDB.DB)
	})
}

func TestPostgresStorage_Ping(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	require.NoError(t, testDB.DB.Ping(context.Background()))
}
