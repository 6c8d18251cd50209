// Package mcp provides an MCP (Model Context Protocol) server adapter for
// feedme. It lets AI assistants parse quantities, read recipes and build
// grocery lists.
package mcp

import "errors"

// ErrMissingQuantityService is returned when the quantity service is not provided.
var ErrMissingQuantityService = errors.New("mcp: quantity service is required")

// ErrServiceUnavailable is returned by tools whose backing service was not configured.
var ErrServiceUnavailable = errors.New("mcp: service not available")
