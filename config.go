package main

import "time"

// Window, timing and audio constants for the desktop front end. Gameplay
// tuning lives in the YAML settings file instead.
const (
	screenW, screenH    = 800, 600
	windowScale         = 1
	defaultTPS          = 60
	audioSampleRate     = 48000
	autoWalkDuration    = 15 * time.Second
	sightRadius         = 7
	joystickRadius      = 60.0
	debugHorrorStep     = 0.1
	cameraFollowRate    = 8.0
	hudMeterWidth       = 200
	voiceBufferDuration = 60 * time.Millisecond
	pcm16MaxValue       = 32767
)
