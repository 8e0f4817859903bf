// Package blobstore provides read access to the places datasets live.
//
// BlobStore is the interface every backend implements. Implementations must be
// safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with mmap support
//   - MemoryStore: in-process blobs, mostly for tests and embedding
//   - httpstore.Store: HTTP(S) endpoints with a request rate limit
//   - s3.Store: Amazon S3 with range reads and managed downloads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	}
//
//	type Blob interface {
//	    ReadAt(ctx, p, off) (int, error)
//	    Close() error
//	    Size() int64
//	}
//
// Blobs that can hand out their bytes directly implement Mappable, and blobs
// with a faster whole-object path implement Downloader. ReadAll prefers both.
package blobstore
