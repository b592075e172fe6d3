package main

import (
	"flag"
	"os"
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datatug/strider/pkg/strider"
)

func TestMainRoot(t *testing.T) {
	// Note: Cannot use t.Parallel() because tests change package level variables.
	oldExit, oldRunApp := osExit, runApp
	defer func() {
		osExit, runApp = oldExit, oldRunApp
	}()

	exitCode := -1
	osExit = func(code int) {
		exitCode = code
	}
	runApp = func(_ *tview.Application, _ *strider.Navigator) error {
		return nil
	}

	main()
	assert.Equal(t, 0, exitCode)
}

func Test_run(t *testing.T) {
	oldRunApp := runApp
	defer func() {
		runApp = oldRunApp
	}()

	t.Run("ok", func(t *testing.T) {
		var gotNav *strider.Navigator
		runApp = func(_ *tview.Application, nav *strider.Navigator) error {
			gotNav = nav
			return nil
		}
		assert.Equal(t, 0, run())
		assert.NotNil(t, gotNav)
	})

	t.Run("app_error", func(t *testing.T) {
		runApp = func(_ *tview.Application, _ *strider.Navigator) error {
			return os.ErrClosed
		}
		assert.Equal(t, 1, run())
	})
}

func Test_startDirArg(t *testing.T) {
	oldGetwd := osGetwd
	defer func() {
		osGetwd = oldGetwd
	}()

	t.Run("defaults_to_working_dir", func(t *testing.T) {
		osGetwd = func() (string, error) {
			return "/work", nil
		}
		require.NoError(t, flag.CommandLine.Parse(nil))
		dir, err := startDirArg()
		require.NoError(t, err)
		assert.Equal(t, "/work", dir)
	})

	t.Run("positional_argument", func(t *testing.T) {
		require.NoError(t, flag.CommandLine.Parse([]string{"/tmp"}))
		dir, err := startDirArg()
		require.NoError(t, err)
		assert.Equal(t, "/tmp", dir)
	})
}
