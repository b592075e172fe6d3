package profiling

import (
	"log"
	"runtime"
	"runtime/pprof"
	"time"
)

var pprofWriteHeapProfile = pprof.WriteHeapProfile
var memProfilingInterval = 30 * time.Second

// DoMemProfiling periodically rewrites a heap profile into the named file
// and returns a function that writes one on demand.
func DoMemProfiling(fileName string) func() {
	write := func() {
		f, err := osCreate(fileName)
		if err != nil {
			log.Printf("could not create memory profile %s: %v", fileName, err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			log.Printf("could not write memory profile: %v", err)
		}
	}
	go func() {
		for {
			time.Sleep(memProfilingInterval)
			write()
		}
	}()
	return write
}
