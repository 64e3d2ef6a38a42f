// Package fakes provides an in-memory FusionAuth management API served over
// httptest. It covers the endpoints fusionboot calls, records every request
// and supports per-route failure injection.
package fakes
