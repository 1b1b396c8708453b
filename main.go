package main

import (
	"flag"
	"image"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wask-game/wask/assets"
	"github.com/wask-game/wask/config"
	"github.com/wask-game/wask/fonts"
	"github.com/wask-game/wask/leaderboard"
	"github.com/wask-game/wask/scenes"
	"github.com/wask-game/wask/shared/leveldata"
	"github.com/wask-game/wask/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	shared *scenes.Shared
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(shared *scenes.Shared) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		shared: shared,
	}

	if config.Debug.SkipMenu {
		w := shared.World
		_ = systems.StartNameEntry(w)
		if err := systems.StartRun(w, config.Session.DefaultName, ""); err != nil {
			log.Printf("Warning: Could not skip menu: %v", err)
		}
	}
	g.scene = scenes.ForState(g, shared, systems.SessionOf(shared.World).State).(Scene)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if systems.SessionOf(g.shared.World).State == config.StateQuit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.IntVar(&config.C.Width, "width", config.C.Width, "window width in pixels")
	flag.IntVar(&config.C.Height, "height", config.C.Height, "window height in pixels")
	flag.StringVar(&config.Leaderboard.URL, "leaderboard", config.Leaderboard.URL, "leaderboard service URL; empty disables reporting")
	flag.StringVar(&config.Debug.LevelsDir, "levels", "", "load and hot reload TMX levels from this directory")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "skip the menu and start a run")
	flag.Parse()

	if err := fonts.LoadAll(config.C.Height); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load the saved profile
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	profile, _ := systems.LoadProfile()

	shared := &scenes.Shared{
		Profile:    profile,
		Background: assets.LoadOptionalImage(os.DirFS("."), config.UI.Level2Background),
	}

	var reporter leaderboard.Reporter = leaderboard.NopReporter{}
	if url := config.Leaderboard.URL; url != "" {
		httpReporter := leaderboard.NewHTTPReporter(url, config.Leaderboard.SubmitTimeout)
		defer httpReporter.Wait()
		reporter = httpReporter
		shared.Client = leaderboard.NewClient(url, config.Leaderboard.FetchTimeout)
	}

	// nil loads the embedded levels
	var levelsFS fs.FS
	if dir := config.Debug.LevelsDir; dir != "" {
		levelsFS = os.DirFS(dir)
		watcher, err := leveldata.NewWatcher(dir)
		if err != nil {
			log.Printf("Warning: level hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			shared.Watcher = watcher
			shared.LevelsDir = dir
		}
	}

	shared.World = systems.NewWorld(systems.WorldOptions{
		Levels:   assets.LoadLevels(levelsFS, "."),
		Width:    config.C.Width,
		Height:   config.C.Height,
		Reporter: reporter,
	})
	shared.Music = scenes.StartMusic(os.DirFS("."), profile.Muted)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Wask")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetTPS(config.C.TickRate)

	if err := ebiten.RunGame(NewGame(shared)); err != nil {
		log.Fatal(err)
	}
}
