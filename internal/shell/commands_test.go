package shell

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func noop(CommandContext) bool { return false }

func TestRegistryDispatchKnown(t *testing.T) {
	reg := NewCommandRegistry()
	var got CommandContext
	reg.Register("/ping", Command{
		Help: "test command",
		Handler: func(ctx CommandContext) bool {
			got = ctx
			return false
		},
	})

	var out bytes.Buffer
	if reg.Dispatch("  /ping  two   words ", &out) {
		t.Error("expected exit=false")
	}
	if len(got.Args) != 2 || got.Args[0] != "two" || got.Args[1] != "words" {
		t.Errorf("Args: got %v", got.Args)
	}
	if got.Rest != "two   words" {
		t.Errorf("Rest: got %q", got.Rest)
	}
	if got.Out != &out {
		t.Error("Out should be the dispatch writer")
	}
}

func TestRegistryDispatchUnknown(t *testing.T) {
	reg := NewCommandRegistry()
	var out bytes.Buffer
	if reg.Dispatch("/nope", &out) {
		t.Error("expected exit=false for unknown command")
	}
	if !strings.Contains(out.String(), "Unknown command: /nope") {
		t.Errorf("got %q", out.String())
	}
}

func TestRegistryDispatchEmpty(t *testing.T) {
	reg := NewCommandRegistry()
	var out bytes.Buffer
	if reg.Dispatch("   ", &out) || out.Len() != 0 {
		t.Errorf("empty line should be ignored, got %q", out.String())
	}
}

func TestRegistryDispatchExit(t *testing.T) {
	reg := NewCommandRegistry()
	reg.Register("/exit", Command{Help: "exit", Handler: func(CommandContext) bool { return true }})
	if !reg.Dispatch("/exit", &bytes.Buffer{}) {
		t.Error("expected exit=true")
	}
}

func TestRegistryHelpText(t *testing.T) {
	reg := NewCommandRegistry()
	reg.Register("/a", Command{Help: "first", Handler: noop})
	reg.Register("/b", Command{Usage: "/b <x>", Help: "second", Handler: noop})

	help := reg.HelpText()
	lines := strings.Split(strings.TrimSpace(help), "\n")
	if len(lines) != 3 || lines[0] != "Commands:" {
		t.Fatalf("unexpected help:\n%s", help)
	}
	if !strings.Contains(lines[1], "/a") || !strings.Contains(lines[1], "first") {
		t.Errorf("line 1: %q", lines[1])
	}
	if !strings.Contains(lines[2], "/b <x>") {
		t.Errorf("usage should replace name: %q", lines[2])
	}
}

func TestRegisterNilHandlerPanics(t *testing.T) {
	reg := NewCommandRegistry()
	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "/boom") {
			t.Errorf("unexpected panic value: %v", r)
		}
	}()
	reg.Register("/boom", Command{Help: "should panic"})
}

func TestRegistryOverwrite(t *testing.T) {
	reg := NewCommandRegistry()
	var called int
	reg.Register("/test", Command{Help: "v1", Handler: func(CommandContext) bool { called = 1; return false }})
	reg.Register("/test", Command{Help: "v2", Handler: func(CommandContext) bool { called = 2; return false }})

	reg.Dispatch("/test", &bytes.Buffer{})
	if called != 2 {
		t.Errorf("expected overwritten handler (2), got %d", called)
	}
	if n := strings.Count(reg.HelpText(), "/test"); n != 1 {
		t.Errorf("/test should appear once in help, got %d", n)
	}
}

func TestRegistryFreeze(t *testing.T) {
	reg := NewCommandRegistry()
	reg.Register("/before", Command{Help: "ok", Handler: noop})
	reg.Freeze()

	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "frozen") {
			t.Errorf("unexpected panic value: %v", r)
		}
	}()
	reg.Register("/after", Command{Help: "should panic", Handler: noop})
}

func TestRegistryConcurrentDispatch(t *testing.T) {
	reg := NewCommandRegistry()
	var (
		mu      sync.Mutex
		counter int
	)
	reg.Register("/count", Command{
		Help: "increment counter",
		Handler: func(CommandContext) bool {
			mu.Lock()
			counter++
			mu.Unlock()
			return false
		},
	})

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			reg.Dispatch(fmt.Sprintf("/count %d", i), &bytes.Buffer{})
		}(i)
	}
	wg.Wait()

	if counter != goroutines {
		t.Errorf("expected counter=%d, got %d", goroutines, counter)
	}
}
