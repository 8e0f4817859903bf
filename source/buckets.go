package source

import (
	miniogo "github.com/minio/minio-go/v7"

	"github.com/hupe1980/quickspot/blobstore"
	"github.com/hupe1980/quickspot/blobstore/minio"
	"github.com/hupe1980/quickspot/blobstore/s3"
)

// WithS3 serves s3://bucket/key URIs through client.
func WithS3(client s3.Client, optFns ...func(*s3.Options)) Option {
	return WithBucketStores("s3", func(bucket string) blobstore.BlobStore {
		return s3.NewStore(client, bucket, "", optFns...)
	})
}

// WithMinio serves minio://bucket/key URIs through client.
func WithMinio(client *miniogo.Client) Option {
	return WithBucketStores("minio", func(bucket string) blobstore.BlobStore {
		return minio.NewStore(client, bucket, "")
	})
}
