package blobstore

import (
	"context"
	"encoding/json"
	"sync"

	"alvaqth/internal/domain/constants"
	"alvaqth/internal/domain/entity"
	"alvaqth/internal/domain/repository"
	"alvaqth/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// locationDocument is the stored form. Coordinates are written together or not at all.
type locationDocument struct {
	Latitude  *float64 `json:"user_lat"`
	Longitude *float64 `json:"user_lng"`
	City      string   `json:"user_city,omitempty"`
}

type preferenceRepository struct {
	bucket *blob.Bucket
	key    string

	// serialises read-modify-write against concurrent Set and Clear
	mu sync.Mutex
}

// NewPreferenceRepository creates a preference repository backed by bucket
func NewPreferenceRepository(bucket *blob.Bucket) repository.PreferenceRepository {
	return &preferenceRepository{
		bucket: bucket,
		key:    constants.PreferenceObjectKey,
	}
}

func (r *preferenceRepository) Get(ctx context.Context) (*entity.LocationPreference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.bucket.ReadAll(ctx, r.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to read location preference")
	}

	var doc locationDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode location preference")
	}

	// A half-written document is treated as absent
	if doc.Latitude == nil || doc.Longitude == nil {
		return nil, repository.ErrPreferenceNotFound
	}

	coords, err := entity.NewCoordinates(*doc.Latitude, *doc.Longitude)
	if err != nil {
		return nil, repository.ErrPreferenceNotFound
	}

	return &entity.LocationPreference{
		Coordinates: coords,
		DisplayName: doc.City,
		Source:      entity.LocationSourceSaved,
	}, nil
}

func (r *preferenceRepository) Set(ctx context.Context, pref *entity.LocationPreference) error {
	if pref == nil {
		return errors.New("nil location preference")
	}
	if !pref.Coordinates.Valid() {
		return errors.WithStack(entity.ErrInvalidCoordinates)
	}

	lat, lng := pref.Coordinates.Latitude, pref.Coordinates.Longitude
	data, err := json.Marshal(locationDocument{
		Latitude:  &lat,
		Longitude: &lng,
		City:      pref.DisplayName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.bucket.WriteAll(ctx, r.key, data, &blob.WriterOptions{
		ContentType: "application/json",
	}); err != nil {
		return errors.Wrap(err, "failed to write location preference")
	}

	return nil
}

func (r *preferenceRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.bucket.Delete(ctx, r.key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to clear location preference")
	}

	return nil
}
