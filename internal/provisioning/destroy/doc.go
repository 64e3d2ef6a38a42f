// Package destroy tears down what setup created: the tenant, the signing key
// and the admin user, in that order.
//
// Deletions rely on identifiers already present in the provisioning state.
// Each one is independent: a failed deletion is reported and the next one
// still runs. Resolve fills the state by name lookup, without creating
// anything, for teardown runs that did not follow a setup run.
package destroy
