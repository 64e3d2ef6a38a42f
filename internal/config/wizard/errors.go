package wizard

import "errors"

// errEndpointScheme is returned for endpoints typed without a scheme.
var errEndpointScheme = errors.New("endpoint must start with http:// or https://")
