package module

import (
	"sync"

	phttp "cpauth/internal/platform/net/http"
)

// global registry for cross wiring ports during bootstrap
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores a module's port set under its name
func Register(m Module) {
	mu.Lock()
	reg[m.Name()] = m.Ports()
	mu.Unlock()
}

// Lookup finds T in the port set registered under name
func Lookup[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	var zero T
	if !ok || v == nil {
		return zero, false
	}
	return PortsOf[T](static{name: name, ports: v})
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}

// static lets registered port sets reuse PortsOf's field walk
type static struct {
	name  string
	ports any
}

func (s static) MountRoutes(phttp.Router) {}
func (s static) Ports() any               { return s.ports }
func (s static) Name() string             { return s.name }
