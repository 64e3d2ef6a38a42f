// Package naming provides consistent naming functions for FusionAuth resources.
//
// Every resource provisioned for an application is named {app}-{type}
// (e.g. my-app-tenant, my-app-signing-key). Names are the idempotency key:
// a later run searches for the same name and adopts the existing resource
// instead of creating a duplicate.
package naming
