package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration carries no HTTP listen address, leaving the transport layer
// with nothing to serve.
var errNoHandlersAreCreated = errors.New("no handlers are created")
