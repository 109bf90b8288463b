package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/platform/tcellui"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	flagBackend string
	flagSound   bool
	flagFit     bool
	flagFooter  bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: flappy).

Controls:
  Space/Up/W   - Flap (release after a crash to restart)
  P/Esc        - Pause
  Q/Ctrl+C     - Quit

Variants:
  flappy          - Pipes, score and high score
  flappy_minimal  - Physics demo: only the bird and the screen edges

Examples:
  flappy play
  flappy play flappy_minimal
  flappy play --backend tcell
  flappy play --fit --sound
  flappy play --config ./my-flappy.yaml --log-file flappy.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal backend: tea or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play flap and crash tones")
	playCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the game to the terminal instead of the configured screen")
	playCmd.Flags().BoolVar(&flagFooter, "footer", true, "Show the key help footer (tea backend)")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(variantArg(args)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(variant string) error {
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'flappy list' to see available variants)", variant)
	}
	if flagBackend != "tea" && flagBackend != "tcell" {
		return fmt.Errorf("unknown backend %q (expected tea or tcell)", flagBackend)
	}

	cfg, err := config.Load(flagConfig, variant)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.RuntimeConfig{
		ScreenW:  cfg.Screen.Width,
		ScreenH:  cfg.Screen.Height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if flagFit {
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			rt.ScreenW = w
			rt.ScreenH = h
			if flagBackend == "tea" && flagFooter {
				rt.ScreenH--
			}
		}
	}

	game, err := registry.Create(variant, cfg)
	if err != nil {
		return err
	}

	var cues audio.Cues = audio.Nop{}
	if flagSound {
		sp, spErr := audio.NewSpeaker()
		if spErr != nil {
			logger.Warn("sound unavailable", "error", spErr)
		} else {
			cues = sp
		}
	}
	defer cues.Close()

	d := engine.New(game, rt,
		engine.WithLogger(logger),
		engine.WithCues(cues),
		engine.WithReleaseAfter(cfg.Input.ReleaseAfter()),
		engine.WithMaxElapsed(cfg.Physics.MaxFrameDuration()),
	)
	if err := d.Init(time.Now()); err != nil {
		return err
	}

	keys := engine.NewKeyMap(cfg.Input.FlapKeys)
	switch flagBackend {
	case "tcell":
		err = tcellui.Run(d, tcellui.Options{Keys: keys, Fit: flagFit})
	default:
		err = tui.Run(d, tui.Options{Keys: keys, Fit: flagFit, ShowHelp: flagFooter})
	}
	if err != nil {
		return err
	}

	state := d.State()
	fmt.Printf("%s: %d attempts", game.Title(), state.Attempt)
	if cfg.Scoring.Enabled {
		fmt.Printf(", high score %d", state.HighScore)
	}
	fmt.Println()
	return nil
}
