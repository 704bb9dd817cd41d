package main

import (
	"flag"
	"os"
	"path/filepath"
)

// Command-line flags. Gameplay numbers belong in the -config file; these
// only pick files and toggle developer conveniences.
var (
	// configFlag points at the optional YAML tuning file.
	configFlag = flag.String("config", "mazehorror.yaml", "gameplay tuning YAML file (missing file uses defaults)")

	// scoresFlag is where the high-score table is kept.
	scoresFlag = flag.String("scores", defaultScoresPath(), "high score YAML file")

	// assetsFlag is the directory searched for <key>.wav and <key>.mp3 clips.
	assetsFlag = flag.String("assets", "assets", "directory holding sound clips")

	// seedFlag fixes the random seed so a run can be replayed.
	seedFlag = flag.Int64("seed", 0, "random seed (0 picks one from the clock)")

	// debugFlag enables the overlay and the G/R/+/- hotkeys.
	debugFlag = flag.Bool("debug", false, "show FPS, horror and ghost overlay and enable debug hotkeys")

	muteFlag = flag.Bool("mute", false, "disable audio output")

	fullscreenFlag = flag.Bool("fullscreen", false, "start in fullscreen")

	// autoWalkFlag drives scripted input, mostly useful with -cpuprofile.
	autoWalkFlag = flag.Bool("autowalk", false, "click through the intro and walk randomly for 15s")

	// cpuProfileFlag records a CPU profile for the autowalk or the whole session.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)

func defaultScoresPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "scores.yaml"
	}
	return filepath.Join(dir, "mazehorror", "scores.yaml")
}
