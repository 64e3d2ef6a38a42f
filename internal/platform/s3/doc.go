// Package s3 provides a small client for S3-compatible object storage.
//
// fusionboot uses it to publish the generated env file: the bucket is
// created when missing and the object is overwritten on every run. Both
// AWS and self-hosted endpoints (MinIO, Hetzner, R2) are supported through
// a custom endpoint and path-style addressing.
package s3
