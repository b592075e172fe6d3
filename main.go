package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rivo/tview"

	"github.com/datatug/strider/pkg/files/osfile"
	"github.com/datatug/strider/pkg/fsutils"
	"github.com/datatug/strider/pkg/logging"
	"github.com/datatug/strider/pkg/profiling"
	"github.com/datatug/strider/pkg/strider"
)

var (
	logFile    = flag.String("log", "", "append debug log to `file`")
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile = flag.String("memprofile", "", "write memory profile to `file`")
)

var osExit = os.Exit
var osGetwd = os.Getwd

func main() {
	osExit(run())
}

var runApp = strider.Run

func run() int {
	flag.Parse()

	if *cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(*cpuProfile)
		defer stopCPUProfiling()
	}
	if *memProfile != "" {
		stopMemProfiling := profiling.DoMemProfiling(*memProfile)
		defer stopMemProfiling()
	}

	log, closeLog, err := logging.Setup(*logFile)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer closeLog()

	startDir, err := startDirArg()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	nav, err := strider.NewNavigator(
		context.Background(), osfile.NewStore(), startDir,
		strider.WithLogger(log),
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	if err = runApp(tview.NewApplication(), nav); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

// startDirArg resolves the optional positional directory argument,
// defaulting to the working directory.
func startDirArg() (string, error) {
	if flag.NArg() == 0 {
		return osGetwd()
	}
	return fsutils.ExpandHome(flag.Arg(0)), nil
}
