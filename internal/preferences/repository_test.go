package preferences_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrcode-api/internal/preferences"
	"qrcode-api/internal/qrcode"
	"qrcode-api/internal/testutil"
)

func TestCreateAndGet(t *testing.T) {
	db := testutil.NewDB(t)
	repo := preferences.NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.Create(ctx, preferences.NewDefaults(userID)))

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, qrcode.MinSize, got.DefaultSize)
	assert.Equal(t, qrcode.LevelM, got.ErrorCorrectionLevel)
	assert.Equal(t, qrcode.FormatSVG, got.OutputFormat)
	assert.Equal(t, "black", got.Color)
	assert.Equal(t, "white", got.BackgroundColor)
}

func TestUpdateMissingRow(t *testing.T) {
	db := testutil.NewDB(t)
	repo := preferences.NewRepository(db)

	prefs := preferences.NewDefaults(uuid.New())
	err := repo.Update(context.Background(), prefs)
	require.ErrorIs(t, err, preferences.ErrNotFound)
}

func TestUpdatePersistsAllFields(t *testing.T) {
	db := testutil.NewDB(t)
	repo := preferences.NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.Create(ctx, preferences.NewDefaults(userID)))

	updated := &preferences.Preferences{
		UserID:               userID,
		DefaultSize:          5.5,
		ErrorCorrectionLevel: qrcode.LevelH,
		OutputFormat:         qrcode.FormatPNG,
		Color:                "navy",
		BackgroundColor:      "ivory",
	}
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 5.5, got.DefaultSize)
	assert.Equal(t, qrcode.LevelH, got.ErrorCorrectionLevel)
	assert.Equal(t, qrcode.FormatPNG, got.OutputFormat)
	assert.Equal(t, "navy", got.Color)
	assert.Equal(t, "ivory", got.BackgroundColor)
}

func TestGetByUserIDNotFound(t *testing.T) {
	db := testutil.NewDB(t)
	repo := preferences.NewRepository(db)

	_, err := repo.GetByUserID(context.Background(), uuid.New())
	require.ErrorIs(t, err, preferences.ErrNotFound)
}
