// Package gtp implements the Go Text Protocol driver: the line-oriented
// command loop through which controllers (gogui, twogtp, servers) talk
// to the engine. Responses go to stdout; all diagnostics stay on klog.
package gtp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/janpfeifer/goban/internal/game"
	"github.com/janpfeifer/goban/internal/generics"
	"github.com/janpfeifer/goban/internal/players"
)

const (
	protocolVersion = "2"
	engineName      = "goban"
	engineVersion   = "0.1.0"
)

// commandFn handles one GTP command; it returns the response payload.
type commandFn func(args []string) (string, error)

// Driver owns the engine-side state of one GTP session.
type Driver struct {
	board  *game.Board
	player players.Player

	// newPlayer rebuilds the player; some controllers expect a fresh
	// engine state after boardsize/clear_board.
	newPlayer func() (players.Player, error)

	commands map[string]commandFn
	quit     bool
}

// New creates a driver playing with the given AI configuration string
// (see players.New) on a board of the given size.
func New(config string, boardSize int) (*Driver, error) {
	player, err := players.New(config)
	if err != nil {
		return nil, err
	}
	d := &Driver{
		board:     game.NewBoard(boardSize),
		player:    player,
		newPlayer: func() (players.Player, error) { return players.New(config) },
	}
	d.commands = map[string]commandFn{
		"protocol_version": func([]string) (string, error) { return protocolVersion, nil },
		"name":             func([]string) (string, error) { return engineName, nil },
		"version":          func([]string) (string, error) { return engineVersion, nil },
		"known_command":    d.cmdKnownCommand,
		"list_commands":    d.cmdListCommands,
		"boardsize":        d.cmdBoardsize,
		"clear_board":      d.cmdClearBoard,
		"komi":             d.cmdKomi,
		"play":             d.cmdPlay,
		"genmove":          d.cmdGenmove,
		"showboard":        d.cmdShowboard,
		"quit":             d.cmdQuit,
	}
	return d, nil
}

// Run reads commands from in and writes responses to out until quit or
// EOF. Protocol errors are reported to the controller, not returned.
func (d *Driver) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for !d.quit && scanner.Scan() {
		line := scanner.Text()
		id, name, args, ok := parseLine(line)
		if !ok {
			continue
		}
		cmd, known := d.commands[name]
		if !known {
			writeResponse(out, id, false, "unknown command")
			continue
		}
		payload, err := cmd(args)
		if err != nil {
			klog.V(1).Infof("gtp: %s failed: %v", name, err)
			writeResponse(out, id, false, err.Error())
			continue
		}
		writeResponse(out, id, true, payload)
	}
	return errors.Wrap(scanner.Err(), "reading GTP input")
}

// parseLine splits a GTP line into optional numeric id, command name and
// arguments. Empty lines and comments yield ok=false.
func parseLine(line string) (id string, name string, args []string, ok bool) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", "", nil, false
	}
	if _, err := strconv.Atoi(fields[0]); err == nil {
		id = fields[0]
		fields = fields[1:]
		if len(fields) == 0 {
			return "", "", nil, false
		}
	}
	return id, strings.ToLower(fields[0]), fields[1:], true
}

func writeResponse(out io.Writer, id string, success bool, payload string) {
	marker := "="
	if !success {
		marker = "?"
	}
	if id != "" {
		marker += id
	}
	if payload == "" {
		fmt.Fprintf(out, "%s\n\n", marker)
		return
	}
	fmt.Fprintf(out, "%s %s\n\n", marker, payload)
}

func (d *Driver) cmdKnownCommand(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("expected: known_command <name>")
	}
	_, known := d.commands[strings.ToLower(args[0])]
	return strconv.FormatBool(known), nil
}

func (d *Driver) cmdListCommands([]string) (string, error) {
	var names []string
	for name := range generics.SortedKeys(d.commands) {
		names = append(names, name)
	}
	return strings.Join(names, "\n"), nil
}

func (d *Driver) cmdBoardsize(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("expected: boardsize <size>")
	}
	size, err := strconv.Atoi(args[0])
	if err != nil || size < game.MinBoardSize || size > game.MaxBoardSize {
		return "", errors.Errorf("unacceptable size %q", args[0])
	}
	komi := d.board.Komi()
	d.board = game.NewBoard(size)
	d.board.SetKomi(komi)
	return "", d.resetPlayer()
}

func (d *Driver) cmdClearBoard([]string) (string, error) {
	komi := d.board.Komi()
	d.board = game.NewBoard(d.board.Size())
	d.board.SetKomi(komi)
	return "", d.resetPlayer()
}

func (d *Driver) resetPlayer() error {
	player, err := d.newPlayer()
	if err != nil {
		return err
	}
	d.player = player
	return nil
}

func (d *Driver) cmdKomi(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("expected: komi <points>")
	}
	komi, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return "", errors.Errorf("invalid komi %q", args[0])
	}
	d.board.SetKomi(float32(komi))
	return "", nil
}

func (d *Driver) cmdPlay(args []string) (string, error) {
	if len(args) != 2 {
		return "", errors.New("expected: play <color> <vertex>")
	}
	pl, err := parseColor(args[0])
	if err != nil {
		return "", err
	}
	v, err := game.ParseVertex(args[1], d.board.Size())
	if err != nil {
		return "", err
	}
	if v == game.Resign {
		return "", nil
	}
	if v.IsPoint() && !d.board.IsStrictLegal(pl, v) {
		return "", errors.Errorf("illegal move %s %s", pl, v)
	}
	if status := d.board.PlayLegal(pl, v); status != game.StatusOK {
		return "", errors.Errorf("illegal move %s %s (%s)", pl, v, status)
	}
	return "", nil
}

func (d *Driver) cmdGenmove(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("expected: genmove <color>")
	}
	pl, err := parseColor(args[0])
	if err != nil {
		return "", err
	}
	v := d.player.Play(d.board, pl)
	if v == game.Resign {
		return "resign", nil
	}
	if status := d.board.PlayLegal(pl, v); status != game.StatusOK {
		return "", errors.Errorf("engine produced illegal move %s (%s)", v, status)
	}
	return v.String(), nil
}

func (d *Driver) cmdShowboard([]string) (string, error) {
	return "\n" + strings.TrimRight(d.board.String(), "\n"), nil
}

func (d *Driver) cmdQuit([]string) (string, error) {
	d.quit = true
	return "", nil
}

func parseColor(s string) (game.Player, error) {
	switch strings.ToLower(s) {
	case "b", "black":
		return game.Black, nil
	case "w", "white":
		return game.White, nil
	}
	return game.PlayerInvalid, errors.Errorf("invalid color %q", s)
}
