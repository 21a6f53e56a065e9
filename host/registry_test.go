package host

import (
	"errors"
	"strings"
	"testing"
)

func TestRegistry_RegisterAndInvoke(t *testing.T) {
	r := NewRegistry()
	err := r.RegisterCommands(map[string]Command{
		"echo": func(args ...string) (string, error) { return strings.Join(args, " "), nil },
		"nop":  func(...string) (string, error) { return "", nil },
	})
	if err != nil {
		t.Fatalf("RegisterCommands: %v", err)
	}

	got, err := r.Invoke("echo", "a", "b")
	if err != nil || got != "a b" {
		t.Fatalf("Invoke: got (%q,%v)", got, err)
	}
	if names := r.Names(); strings.Join(names, ",") != "echo,nop" {
		t.Fatalf("Names: got %v", names)
	}
}

func TestRegistry_UnknownCommand(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Invoke("missing"); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("Invoke missing: got %v, want ErrUnknownCommand", err)
	}
}

func TestRegistry_DuplicateRegistersNothing(t *testing.T) {
	r := NewRegistry()
	nop := func(...string) (string, error) { return "", nil }
	if err := r.RegisterCommands(map[string]Command{"a": nop}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := r.RegisterCommands(map[string]Command{"a": nop, "b": nop})
	if !errors.Is(err, ErrCommandExists) {
		t.Fatalf("duplicate register: got %v, want ErrCommandExists", err)
	}
	if _, err := r.Invoke("b"); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("b must not be registered after a failed batch")
	}
}

func TestRuntime_SupportsBothCapabilities(t *testing.T) {
	var h any = NewRuntime()
	if _, ok := h.(Fields); !ok {
		t.Fatalf("Runtime must implement Fields")
	}
	if _, ok := h.(CommandRegistrar); !ok {
		t.Fatalf("Runtime must implement CommandRegistrar")
	}

	var bare any = NewStore()
	if _, ok := bare.(CommandRegistrar); ok {
		t.Fatalf("a bare Store must not advertise command registration")
	}
}
