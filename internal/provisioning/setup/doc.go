// Package setup resolves or creates the FusionAuth resources an application
// needs, in order: tenant, signing key, key attachment, application, admin
// user and theme.
//
// Every step searches by a name derived from the application name and adopts
// the first match, creating the resource only when nothing matched. A failed
// step is reported and the run moves on; only transport failures stop it.
package setup
