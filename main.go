package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sdoconnell/nrrdnote/internal/state"
	"github.com/sdoconnell/nrrdnote/internal/store"
	cmdpkg "github.com/sdoconnell/nrrdnote/pkg/cmd"
	"github.com/sdoconnell/nrrdnote/pkg/cmd/root"
)

func main() {
	cfgPath := prescanConfigFlag(os.Args[1:])

	s, err := state.NewState(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer s.Close()

	cmd := root.NewCmdRoot(s)
	if err := cmd.Execute(); err != nil {
		// A missing alias or a declined prompt is a normal outcome in
		// one-shot use, not a failure.
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, cmdpkg.ErrCancelled) {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// prescanConfigFlag finds -c/--config before cobra runs, since the config
// determines the data directory the store must load at startup.
func prescanConfigFlag(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-c" || arg == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case len(arg) > len("--config=") && arg[:len("--config=")] == "--config=":
			return arg[len("--config="):]
		}
	}
	return ""
}
