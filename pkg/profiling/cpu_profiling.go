// Package profiling wires pprof CPU and heap profiles behind flags.
package profiling

import (
	"log"
	"os"
	"runtime/pprof"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile

// DoCPUProfiling starts CPU profiling into the named file and returns a
// stop function. Failures are logged and yield a no-op stop function.
func DoCPUProfiling(fileName string) func() {
	f, err := osCreate(fileName)
	if err != nil {
		log.Printf("could not create CPU profile %s: %v", fileName, err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.Printf("could not start CPU profile: %v", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}
