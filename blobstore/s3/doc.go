// Package s3 provides an Amazon S3 implementation of blobstore.BlobStore.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "datasets/")
//
//	data, err := blobstore.Fetch(ctx, store, "people.json.zst")
//
// # Features
//
//   - Range reads through ReadAt
//   - Whole-object downloads split into concurrent ranged parts
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
