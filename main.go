// goban plays Go matches on the terminal: human vs engine, hotseat, or
// engine vs engine with --watch.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/janpfeifer/goban/internal/game"
	"github.com/janpfeifer/goban/internal/players"
	_ "github.com/janpfeifer/goban/internal/players/default"
	"github.com/janpfeifer/goban/internal/profilers"
	"github.com/janpfeifer/goban/internal/searchers/uct"
	"github.com/janpfeifer/goban/internal/ui/cli"
	"github.com/janpfeifer/goban/internal/ui/progress"
)

var (
	flagHotseat = flag.Bool("hotseat", false, "Hotseat match: human vs human")
	flagWatch   = flag.Bool("watch", false, "Watch mode: engine vs engine")
	flagFirst   = flag.String("first", "", "Who plays black: human or ai. Default is random.")
	flagConfig  = flag.String("config", "", "AI configuration, e.g. \"uct,playouts=10000\"")
	flagConfig2 = flag.String("config2", "", "Second AI configuration for --watch")
	flagSize    = flag.Int("size", game.DefaultBoardSize, "Board size")
	flagKomi    = flag.Float64("komi", game.DefaultKomi, "Komi: White's compensation points")
	flagQuiet   = flag.Bool("quiet", false, "Only print moves and the final position")
	flagMeter   = flag.Bool("meter", true, "Show the live search meter while the engine thinks")

	// aiPlayers: nil entries are humans.
	aiPlayers [game.NumPlayers]players.Player

	// aiMeters are the live search meters of the AI players, nil when
	// disabled.
	aiMeters [game.NumPlayers]*progress.Meter
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	profilers.Setup()
	searchProf := profilers.NewSearchProfiler()

	createPlayers()

	board := game.NewBoard(*flagSize)
	board.SetKomi(float32(*flagKomi))
	ui := cli.New(true)

	pl := game.Black
	resigned := game.PlayerInvalid
	for board.ConsecutivePasses() < 2 {
		aiPlayer := aiPlayers[pl]
		var v game.Vertex
		if aiPlayer == nil {
			ui.Print(board)
			v = must.M1(ui.ReadMove(board, pl))
		} else {
			if !*flagQuiet {
				ui.Print(board)
			}
			fmt.Printf("%s (%s) thinking...\n", pl, aiPlayer)
			searchProf.Start()
			v = aiPlayer.Play(board, pl)
			searchProf.Stop()
			if meter := aiMeters[pl]; meter != nil {
				meter.Finish()
			}
		}
		if v == game.Resign {
			resigned = pl
			break
		}
		if status := board.PlayLegal(pl, v); status != game.StatusOK {
			klog.Exitf("%s produced an illegal move %s (%s)", pl, v, status)
		}
		ui.PrintMove(pl, v)
		pl = pl.Other()
	}

	ui.Print(board)
	if resigned != game.PlayerInvalid {
		fmt.Printf("\n%s resigns: %s wins\n", resigned, resigned.Other())
		return
	}
	ui.PrintResult(board)
}

// createPlayers fills aiPlayers according to the flags.
func createPlayers() {
	if *flagHotseat && *flagWatch {
		klog.Fatalf("--hotseat and --watch cannot be used together")
	}
	if *flagHotseat {
		// Both players are human, nothing to do.
		return
	}

	if *flagWatch {
		aiPlayers[game.Black] = newAI(game.Black, *flagConfig)
		config2 := *flagConfig2
		if config2 == "" {
			config2 = *flagConfig
		}
		aiPlayers[game.White] = newAI(game.White, config2)
		return
	}

	var aiPlayer game.Player
	switch strings.ToLower(*flagFirst) {
	case "human":
		aiPlayer = game.White
	case "ai":
		aiPlayer = game.Black
	case "":
		aiPlayer = game.Player(rand.IntN(int(game.NumPlayers)))
	default:
		klog.Fatalf("invalid --first=%q, only \"human\" or \"ai\" are valid", *flagFirst)
	}
	aiPlayers[aiPlayer] = newAI(aiPlayer, *flagConfig)
}

func newAI(pl game.Player, config string) players.Player {
	player := must.M1(players.New(config))
	if *flagMeter {
		if engine, ok := player.Searcher.(*uct.Engine); ok {
			aiMeters[pl] = progress.NewMeter(os.Stderr)
			engine.SetListener(aiMeters[pl].Listener(), 1000)
		}
	}
	return player
}
