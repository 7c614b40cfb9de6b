// goban-gtp speaks the Go Text Protocol on stdin/stdout, for use with
// GTP controllers like gogui or twogtp.
package main

import (
	"flag"
	"os"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/janpfeifer/goban/internal/game"
	"github.com/janpfeifer/goban/internal/gtp"
	_ "github.com/janpfeifer/goban/internal/players/default"
)

var (
	flagConfig = flag.String("config", "", "AI configuration, e.g. \"uct,playouts=10000\"")
	flagSize   = flag.Int("size", game.DefaultBoardSize, "Initial board size")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	driver := must.M1(gtp.New(*flagConfig, *flagSize))
	if err := driver.Run(os.Stdin, os.Stdout); err != nil {
		klog.Exitf("GTP session failed: %+v", err)
	}
}
