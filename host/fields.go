package host

// Fields is the narrow, serialized state channel between the host and an
// embedded component. Every value is a string or a bool.
type Fields interface {
	ReadString(name string) (string, bool)
	ReadBool(name string) (bool, bool)
	WriteString(name, value string)
	WriteBool(name string, value bool)
}

// Command is a host-invocable callable. Arguments and the result are
// serialized strings.
type Command func(args ...string) (string, error)

// CommandRegistrar is implemented by hosts that let an embedding expose
// named callables. Hosts without this capability simply do not implement it.
type CommandRegistrar interface {
	RegisterCommands(cmds map[string]Command) error
}
