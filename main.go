package main

import (
	"flag"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/milk9111/coindash/audio"
	"github.com/milk9111/coindash/common"
	"github.com/milk9111/coindash/levels"
	"github.com/milk9111/coindash/settings"
)

func main() {
	levelName := flag.String("level", levels.DefaultName, "level to play (basename of a file in levels/, .yaml optional)")
	watch := flag.Bool("watch", false, "reload the level when its file changes on disk")
	mute := flag.Bool("mute", false, "disable all audio output")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	store, err := gdata.Open(gdata.Config{AppName: "coindash"})
	if err != nil {
		log.Warn("settings storage unavailable, audio toggles won't persist", "error", err)
	}
	mgr := settings.NewManager(store)

	var mixer *audio.Mixer
	if !*mute {
		s := mgr.Current()
		mixer = audio.NewMixer(s.MusicEnabled, s.SoundEnabled)
	}

	var watcher *levels.Watcher
	if *watch {
		w, err := levels.NewWatcher("levels")
		if err != nil {
			log.Warn("level watcher unavailable", "error", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Coin Dash")

	if err := ebiten.RunGame(NewGame(*levelName, mgr, mixer, watcher)); err != nil {
		log.Fatal("game exited", "error", err)
	}
}
