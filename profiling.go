package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// startCPUProfile begins writing a CPU profile to path. Paired with
// -autowalk it captures a fixed-length scripted run (intro click, camera
// sweep, countdown and random walking through reshuffles), which is where
// maze generation, BFS repair and the span renderer show up; without
// -autowalk it covers the whole session. The returned stop function is safe
// to call more than once.
func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("start profile: %w", err)
	}
	began := time.Now()
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				log.Printf("profile: close %s: %v", path, err)
				return
			}
			log.Printf("profile: wrote %s (%s)", path, time.Since(began).Round(time.Millisecond))
		})
	}
	return stop, nil
}
