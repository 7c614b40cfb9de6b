// Package profilers implements CPU profiling scoped to the engine's
// search. A playout engine burns virtually all of its cycles inside
// Genmove, so profiles are captured per move: every engine turn gets
// its own file, and time spent outside the search (a human thinking,
// the UI) never dilutes the samples.
//
// If linked, it installs the profiler flags; it has no game
// functionality.
package profilers

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime/pprof"

	"k8s.io/klog/v2"
)

var (
	flagProfilerPort = flag.Int("prof", -1,
		"If set, serves the pprof HTTP handlers on the given localhost port.")
	flagSearchProfile = flag.String("search_profile", "",
		"Write one CPU profile per engine move, to `prefix`-NNN.pprof")
)

// Setup starts the HTTP profiler when -prof is set. Call once after
// flag.Parse.
func Setup() {
	if *flagProfilerPort < 0 {
		return
	}
	addr := fmt.Sprintf("localhost:%d", *flagProfilerPort)
	klog.Infof("profiler: serving http://%s/debug/pprof", addr)
	go func() {
		klog.Fatal(http.ListenAndServe(addr, nil))
	}()
}

// SearchProfiler brackets engine moves with Start/Stop pairs and writes
// one CPU profile per move. A nil SearchProfiler is valid and does
// nothing, so callers don't have to guard every move with a flag check.
type SearchProfiler struct {
	prefix string
	moves  int
	file   *os.File
}

// NewSearchProfiler returns the profiler configured by -search_profile,
// or nil when the flag was not given.
func NewSearchProfiler() *SearchProfiler {
	if *flagSearchProfile == "" {
		return nil
	}
	return &SearchProfiler{prefix: *flagSearchProfile}
}

// Start begins capturing CPU samples for one engine move. Call Stop as
// soon as Genmove returns.
func (p *SearchProfiler) Start() {
	if p == nil {
		return
	}
	name := p.profileName()
	f, err := os.Create(name)
	if err != nil {
		klog.Fatalf("profiler: cannot create %s: %v", name, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		klog.Fatalf("profiler: cannot start CPU profile %s: %v", name, err)
	}
	p.file = f
}

// Stop ends the capture and flushes this move's profile.
func (p *SearchProfiler) Stop() {
	if p == nil || p.file == nil {
		return
	}
	pprof.StopCPUProfile()
	name := p.profileName()
	if err := p.file.Close(); err != nil {
		klog.Errorf("profiler: closing %s: %v", name, err)
	}
	klog.V(1).Infof("profiler: wrote %s", name)
	p.file = nil
	p.moves++
}

func (p *SearchProfiler) profileName() string {
	return fmt.Sprintf("%s-%03d.pprof", p.prefix, p.moves)
}
