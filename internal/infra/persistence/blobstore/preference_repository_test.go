package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"alvaqth/internal/domain/constants"
	"alvaqth/internal/domain/entity"
	"alvaqth/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

func newMemRepository(t *testing.T) (repository.PreferenceRepository, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewPreferenceRepository(bucket), bucket
}

func TestPreferenceRepository_GetEmpty(t *testing.T) {
	repo, _ := newMemRepository(t)

	pref, err := repo.Get(context.Background())
	require.ErrorIs(t, err, repository.ErrPreferenceNotFound)
	assert.Nil(t, pref)
}

func TestPreferenceRepository_SetThenGet(t *testing.T) {
	repo, _ := newMemRepository(t)
	ctx := context.Background()

	err := repo.Set(ctx, &entity.LocationPreference{
		Coordinates: entity.Coordinates{Latitude: 30.0444, Longitude: 31.2357},
		DisplayName: "Cairo",
		Source:      entity.LocationSourceSearch,
	})
	require.NoError(t, err)

	pref, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30.0444, pref.Coordinates.Latitude)
	assert.Equal(t, 31.2357, pref.Coordinates.Longitude)
	assert.Equal(t, "Cairo", pref.DisplayName)
	assert.Equal(t, entity.LocationSourceSaved, pref.Source)
}

func TestPreferenceRepository_SetOverwrites(t *testing.T) {
	repo, _ := newMemRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, &entity.LocationPreference{
		Coordinates: entity.Coordinates{Latitude: 30.0444, Longitude: 31.2357},
		DisplayName: "Cairo",
	}))
	require.NoError(t, repo.Set(ctx, &entity.LocationPreference{
		Coordinates: entity.Coordinates{Latitude: 21.4225, Longitude: 39.8262},
	}))

	pref, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 21.4225, pref.Coordinates.Latitude)
	assert.Empty(t, pref.DisplayName)
}

func TestPreferenceRepository_SetRejectsInvalidCoordinates(t *testing.T) {
	repo, _ := newMemRepository(t)

	err := repo.Set(context.Background(), &entity.LocationPreference{
		Coordinates: entity.Coordinates{Latitude: 120, Longitude: 0},
	})
	require.ErrorIs(t, err, entity.ErrInvalidCoordinates)

	_, err = repo.Get(context.Background())
	require.ErrorIs(t, err, repository.ErrPreferenceNotFound)
}

func TestPreferenceRepository_Clear(t *testing.T) {
	repo, _ := newMemRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Clear(ctx), "clearing an empty store is not an error")

	require.NoError(t, repo.Set(ctx, &entity.LocationPreference{
		Coordinates: entity.Coordinates{Latitude: 1, Longitude: 2},
	}))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Get(ctx)
	require.ErrorIs(t, err, repository.ErrPreferenceNotFound)
}

func TestPreferenceRepository_PartialDocumentIsAbsent(t *testing.T) {
	repo, bucket := newMemRepository(t)
	ctx := context.Background()

	require.NoError(t, bucket.WriteAll(ctx, constants.PreferenceObjectKey, []byte(`{"user_lat":51.5}`), nil))

	_, err := repo.Get(ctx)
	require.ErrorIs(t, err, repository.ErrPreferenceNotFound)
}

func TestPreferenceRepository_CorruptDocument(t *testing.T) {
	repo, bucket := newMemRepository(t)
	ctx := context.Background()

	require.NoError(t, bucket.WriteAll(ctx, constants.PreferenceObjectKey, []byte(`not json`), nil))

	_, err := repo.Get(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrPreferenceNotFound)
}

func TestPreferenceRepository_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := fileblob.OpenBucket(dir, nil)
	require.NoError(t, err)
	require.NoError(t, NewPreferenceRepository(first).Set(ctx, &entity.LocationPreference{
		Coordinates: entity.Coordinates{Latitude: 30.0444, Longitude: 31.2357},
		DisplayName: "Cairo",
	}))
	require.NoError(t, first.Close())

	_, err = os.Stat(filepath.Join(dir, "preferences", "location.json"))
	require.NoError(t, err)

	second, err := fileblob.OpenBucket(dir, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	pref, err := NewPreferenceRepository(second).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cairo", pref.DisplayName)
}
