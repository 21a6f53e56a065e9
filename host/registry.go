package host

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrCommandExists    = errors.New("command already registered")
	ErrInvalidArguments = errors.New("invalid command arguments")
)

// Registry stores commands exposed by embedded components.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{cmds: map[string]Command{}}
}

// RegisterCommands adds every command in cmds. Nothing is registered when any
// name is already taken.
func (r *Registry) RegisterCommands(cmds map[string]Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cmds == nil {
		r.cmds = map[string]Command{}
	}
	for name := range cmds {
		if _, ok := r.cmds[name]; ok {
			return fmt.Errorf("%w: %s", ErrCommandExists, name)
		}
	}
	for name, fn := range cmds {
		r.cmds[name] = fn
	}
	return nil
}

// Invoke calls the named command.
func (r *Registry) Invoke(name string, args ...string) (string, error) {
	r.mu.RLock()
	fn, ok := r.cmds[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return fn(args...)
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Runtime is a host that supports both field state and command registration.
type Runtime struct {
	*Store
	*Registry
}

func NewRuntime() *Runtime {
	return &Runtime{Store: NewStore(), Registry: NewRegistry()}
}
