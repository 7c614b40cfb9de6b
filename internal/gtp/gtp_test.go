package gtp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janpfeifer/goban/internal/game"
	_ "github.com/janpfeifer/goban/internal/players/default"
)

const testConfig = "uct,playouts=50,seed=1"

// runSession feeds commands to a fresh driver and returns the
// responses, one per command, stripped of the trailing blank line.
func runSession(t *testing.T, commands ...string) []string {
	t.Helper()
	driver, err := New(testConfig, 5)
	require.NoError(t, err)
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(commands, "\n") + "\n")
	require.NoError(t, driver.Run(in, &out))

	var responses []string
	for _, block := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n\n") {
		responses = append(responses, block)
	}
	return responses
}

func TestParseLine(t *testing.T) {
	id, name, args, ok := parseLine("42 play b D4")
	require.True(t, ok)
	require.Equal(t, "42", id)
	require.Equal(t, "play", name)
	require.Equal(t, []string{"b", "D4"}, args)

	_, name, _, ok = parseLine("  GENMOVE white")
	require.True(t, ok)
	require.Equal(t, "genmove", name)

	_, _, _, ok = parseLine("# a comment only")
	require.False(t, ok)
	_, _, _, ok = parseLine("")
	require.False(t, ok)
}

func TestAdministrativeCommands(t *testing.T) {
	responses := runSession(t,
		"1 protocol_version",
		"2 name",
		"known_command play",
		"known_command frobnicate",
		"quit",
	)
	require.Equal(t, "=1 2", responses[0])
	require.Equal(t, "=2 goban", responses[1])
	require.Equal(t, "= true", responses[2])
	require.Equal(t, "= false", responses[3])
	require.Equal(t, "=", responses[4])
}

func TestUnknownCommand(t *testing.T) {
	responses := runSession(t, "7 frobnicate", "quit")
	require.Equal(t, "?7 unknown command", responses[0])
}

func TestListCommandsIsSorted(t *testing.T) {
	responses := runSession(t, "list_commands", "quit")
	require.True(t, strings.HasPrefix(responses[0], "= "))
	names := strings.Split(strings.TrimPrefix(responses[0], "= "), "\n")
	require.Contains(t, names, "genmove")
	require.Contains(t, names, "play")
	require.IsIncreasing(t, names)
}

func TestPlayAndGenmove(t *testing.T) {
	responses := runSession(t,
		"boardsize 5",
		"komi 7.5",
		"play b C3",
		"1 genmove w",
		"quit",
	)
	require.Equal(t, "=", responses[0])
	require.Equal(t, "=", responses[1])
	require.Equal(t, "=", responses[2])

	require.True(t, strings.HasPrefix(responses[3], "=1 "), "got %q", responses[3])
	moveStr := strings.TrimPrefix(responses[3], "=1 ")
	if moveStr != "resign" {
		_, err := game.ParseVertex(moveStr, 5)
		require.NoError(t, err)
	}
}

func TestPlayRejectsIllegalMoves(t *testing.T) {
	responses := runSession(t,
		"play b C3",
		"play w C3", // occupied
		"play q Z9", // bad color
		"play w K9", // off board for size 5
		"quit",
	)
	require.Equal(t, "=", responses[0])
	for _, r := range responses[1:4] {
		require.True(t, strings.HasPrefix(r, "?"), "got %q", r)
	}
}

func TestBoardsizeResetsTheBoard(t *testing.T) {
	responses := runSession(t,
		"play b C3",
		"boardsize 9",
		"showboard",
		"quit",
	)
	require.Equal(t, "=", responses[1])
	require.NotContains(t, responses[2], "#", "board must be empty after resize")
	responses = runSession(t, "boardsize 42", "quit")
	require.True(t, strings.HasPrefix(responses[0], "?"))
}
