// Package blobstore persists client preferences in a gocloud.dev bucket.
package blobstore

import (
	"context"
	"log/slog"

	"alvaqth/config"
	"alvaqth/internal/domain/lifecycle"
	"alvaqth/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selectable through preferences.bucketUrl
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the preference bucket and closes it on shutdown
func New(params Params) (*blob.Bucket, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucketURL := params.Config.Preferences.BucketURL
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open preference bucket %s", bucketURL)
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			ok, err := bucket.IsAccessible(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to check preference bucket")
			}
			if !ok {
				return errors.Errorf("preference bucket %s is not accessible", bucketURL)
			}

			params.Logger.Info("Preference bucket ready", slog.String("url", bucketURL))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}
