// Package retry provides exponential backoff retry logic for transient failures.
//
// [WithExponentialBackoff] retries an operation with configurable max attempts,
// initial delay and maximum delay. Provisioning steps never retry; it is used
// only to wait for a FusionAuth instance to come up before the first request.
package retry
