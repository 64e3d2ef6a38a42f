// Package fusionauth provides a client for the FusionAuth management API,
// scoped to the resources fusionboot provisions.
//
// # Architecture
//
//   - client.go: Interfaces consumed by the provisioning phases
//   - real_client.go: RealClient and the single request primitive [RealClient.Do]
//   - operations.go: Generic Ensure, Find and Delete operations
//   - tenant.go, key.go, application.go, user.go, theme.go: Per-resource calls
//   - status.go: Readiness probe
//   - errors.go: Typed API and transport errors
//
// # Request primitive
//
// Every call goes through Do, which attaches the API key, the JSON content
// type and the X-FusionAuth-TenantId header (except on tenant-level paths),
// merges per-call options, and classifies the result:
//
//   - transport failures return a *TransportError and halt the run
//   - DELETE responses are never parsed; any 2xx status is success
//   - all other responses are parsed as JSON and OK reflects the status
//
// # Generic Operations
//
// EnsureOperation provides search-or-create semantics: the resource is
// searched by name, the first match is adopted (or an ambiguity error is
// returned in strict mode), otherwise it is created. An entity without an
// identifier is reported as ErrMissingID.
package fusionauth
