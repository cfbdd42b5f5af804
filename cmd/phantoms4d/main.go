package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/phantoms4d/internal/phantoms4d"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code; deferred cleanup (the CPU profile) always runs.
func run(args []string) int {
	ec, err := phantoms4d.LoadEnv()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	phantoms4d.Debug = ec.Debug
	if ec.Profile {
		f, err := os.Create(phantoms4d.DefaultProfile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return 1
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			fmt.Printf("Error: %v\n", err)
			return 1
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := ec.Config
	if len(args) > 0 {
		cfg = args[0]
	}
	if err := phantoms4d.Run(context.Background(), cfg, ec); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}
