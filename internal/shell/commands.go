package shell

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// CommandContext is what a handler gets for one command line.
type CommandContext struct {
	Out  io.Writer
	Args []string // whitespace-split arguments
	Rest string   // everything after the command name, trimmed, spacing kept
}

// CommandHandler runs a command. It returns true if the shell should exit.
type CommandHandler func(ctx CommandContext) bool

// Command describes a registered command.
type Command struct {
	Usage   string // e.g. "/edit <id>"; defaults to the name
	Help    string
	Handler CommandHandler
}

// CommandRegistrar is the registration half of CommandRegistry.
type CommandRegistrar interface {
	Register(name string, cmd Command)
}

// CommandRegistry maps slash commands to handlers and renders help in
// registration order. Once frozen, Register panics.
type CommandRegistry struct {
	mu       sync.RWMutex
	commands map[string]Command
	order    []string
	frozen   bool
}

// NewCommandRegistry creates an empty registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{commands: make(map[string]Command)}
}

// Register adds or replaces a command. name includes the leading slash.
// Panics on a nil handler or a frozen registry.
func (r *CommandRegistry) Register(name string, cmd Command) {
	if cmd.Handler == nil {
		panic("shell: Register called with nil handler for " + name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		panic("shell: Register called on frozen registry for " + name)
	}
	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	r.commands[name] = cmd
}

// Freeze stops further registration.
func (r *CommandRegistry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Dispatch runs the command named by the first word of line.
// Returns true if the shell should exit.
func (r *CommandRegistry) Dispatch(line string, out io.Writer) bool {
	line = strings.TrimSpace(line)
	name, rest, _ := strings.Cut(line, " ")
	if name == "" {
		return false
	}

	r.mu.RLock()
	cmd, ok := r.commands[name]
	r.mu.RUnlock()

	if !ok {
		_, _ = fmt.Fprintf(out, "Unknown command: %s (try /help)\n", name)
		return false
	}

	shlog.Debug("dispatch", "cmd", name)
	return cmd.Handler(CommandContext{
		Out:  out,
		Args: strings.Fields(rest),
		Rest: strings.TrimSpace(rest),
	})
}

// HelpText lists all commands in registration order.
func (r *CommandRegistry) HelpText() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, name := range r.order {
		cmd := r.commands[name]
		display := name
		if cmd.Usage != "" {
			display = cmd.Usage
		}
		_, _ = fmt.Fprintf(&b, "  %-18s %s\n", display, cmd.Help)
	}
	return b.String()
}
