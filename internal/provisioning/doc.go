// Package provisioning provides shared types, interfaces, and orchestration for
// FusionAuth provisioning runs.
//
// # Subpackages
//
//   - setup/: Tenant, signing key, application, admin user and theme resolution
//   - destroy/: Teardown of the tenant, signing key and admin user
//
// # Core Types
//
// Context carries configuration, state, the FusionAuth client, and the observer.
// Phase defines a provisioning step with Name() and Provision() methods.
// StepResult is the outcome of one phase: resolved, unresolved, or aborted.
// State accumulates the identifiers each phase resolves.
// Report lists every phase outcome in execution order.
package provisioning
