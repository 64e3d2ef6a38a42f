// Package output builds and renders the environment variables a consuming
// application needs after a provisioning run, and publishes them to object
// storage when asked.
package output
