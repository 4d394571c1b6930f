// Package modkit provides module wiring and core deps
package modkit

import "cpauth/internal/modkit/module"

// Module is the common surface for API modules that can mount routes and expose ports
type Module = module.Module
