package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"mazehorror/internal/game"
	"mazehorror/internal/scores"
	"mazehorror/internal/settings"
	"mazehorror/internal/sound"
)

func main() {
	flag.Parse()

	tuning, err := settings.Load(*configFlag)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", seed)

	var mixer sound.Mixer = sound.Nop{}
	if !*muteFlag {
		mixer = newMixer(audio.NewContext(audioSampleRate), *assetsFlag)
	}

	core := game.New(game.Options{
		Tuning: tuning,
		Rand:   rand.New(rand.NewSource(seed)),
		Mixer:  mixer,
		Scores: scores.NewStore(*scoresFlag),
	})
	a := newApp(core)

	stop := func() {}
	if *cpuProfileFlag != "" {
		stop, err = startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("profile: %v", err)
		}
		log.Printf("recording CPU profile to %s", *cpuProfileFlag)
	}
	if *autoWalkFlag {
		a.enableAutoWalk(autoWalkDuration, stop)
	}

	ebiten.SetWindowSize(screenW*windowScale, screenH*windowScale)
	ebiten.SetWindowTitle("Maze Horror")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreenFlag)
	ebiten.SetTPS(defaultTPS)
	err = ebiten.RunGame(a)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}
