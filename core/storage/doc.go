// Package storage provides read access to the bucket QA builds are published to.
//
// It wraps the MinIO Go client, which speaks to both AWS S3 and self-hosted
// MinIO. Only the operations needed to download a build are exposed, which
// keeps the mock in core/storage/mocks small.
//
// # Operations
//
//   - BucketExists: verifies access to the bucket.
//   - ListObjects: lists the objects of a build (prefix, recursive).
//   - GetObject: streams one object.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
