// Package keygen generates random secrets for the emitted application config.
//
// Secrets are drawn from crypto/rand and returned standard base64-encoded,
// the format the consuming application expects for AUTH_SECRET.
package keygen
