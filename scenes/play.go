package scenes

import (
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/controls"
	"github.com/wask-game/wask/render"
	"github.com/wask-game/wask/shared/leveldata"
	"github.com/wask-game/wask/systems"
	"github.com/wask-game/wask/ui"
)

const layerDefault ecs.LayerID = 0

// Level index that uses the optional background art.
const backgroundLevel = 1

// PlayScene runs the simulation and overlays the question screen while one
// is pending.
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	shared       *Shared
	once         sync.Once

	questionUI *ui.QuestionUI
	asked      *components.PendingQuestion
}

func NewPlayScene(sc SceneChanger, sh *Shared) *PlayScene {
	return &PlayScene{sceneChanger: sc, shared: sh}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	state := systems.SessionOf(ps.shared.World).State
	if state == cfg.StateDefeated || state == cfg.StateVictory {
		ps.shared.rememberRun()
	}
	follow(ps.sceneChanger, ps.shared, cfg.StatePlay, cfg.StateQuestion)
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		screen.Fill(cfg.UI.Background)
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayScene) configure() {
	ps.ecs = ecs.NewECS(ps.shared.World)

	ps.ecs.AddSystem(ps.updateInput)
	ps.ecs.AddSystem(ps.updateHotReload)
	ps.ecs.AddSystem(func(e *ecs.ECS) { systems.Step(e.World) })
	ps.ecs.AddSystem(ps.updateQuestion)
	ps.ecs.AddSystem(ps.updateMusic)

	ps.ecs.AddRenderer(layerDefault, ps.drawWorld)
	ps.ecs.AddRenderer(layerDefault, ps.drawHUD)
	ps.ecs.AddRenderer(layerDefault, ps.drawQuestion)
}

func (ps *PlayScene) updateInput(e *ecs.ECS) {
	in := ps.shared.poll(true)
	if in.JustPressed(cfg.ActionBack) {
		systems.Quit(e.World)
	}
}

func (ps *PlayScene) updateHotReload(e *ecs.ECS) {
	watcher := ps.shared.Watcher
	if watcher == nil {
		return
	}
	if err := watcher.Err(); err != nil {
		log.Printf("[levels] watch error: %v", err)
	}
	if !watcher.Changed() {
		return
	}
	templates, err := leveldata.LoadAll(os.DirFS(ps.shared.LevelsDir), ".")
	if err == nil {
		err = systems.ReplaceLevels(e.World, templates)
	}
	if err != nil {
		log.Printf("[levels] hot reload failed: %v", err)
	}
}

// updateQuestion builds the question screen when a new question is asked
// and feeds it mouse and keyboard answers.
func (ps *PlayScene) updateQuestion(e *ecs.ECS) {
	s := systems.SessionOf(e.World)
	if s.State != cfg.StateQuestion || s.Question == nil {
		ps.questionUI = nil
		ps.asked = nil
		return
	}
	if s.Question != ps.asked {
		ps.asked = s.Question
		ps.questionUI = ui.NewQuestionUI(questionHeading(s.Question.Kind), s.Question.Question, ps.answer)
		return
	}

	q := s.Question.Question
	trueFalse := s.Question.Kind == components.QuestionLife
	if choice, ok := controls.AnswerPressed(len(q.Answers), trueFalse); ok {
		ps.answer(choice)
		return
	}
	ps.questionUI.Update()
}

func (ps *PlayScene) answer(choice int) {
	correct, err := systems.AnswerQuestion(ps.shared.World, choice)
	if err != nil {
		return
	}
	log.Printf("[session] answered %d, correct=%t", choice, correct)
}

func questionHeading(kind components.QuestionKind) string {
	if kind == components.QuestionPortal {
		return "Answer to pass through the portal"
	}
	return "Answer right for an extra life"
}

func (ps *PlayScene) updateMusic(e *ecs.ECS) {
	ps.shared.Music.SetDucked(systems.SessionOf(e.World).State == cfg.StateQuestion)
}

func (ps *PlayScene) drawWorld(e *ecs.ECS, screen *ebiten.Image) {
	var background *ebiten.Image
	if systems.LevelOf(e.World).LevelIndex == backgroundLevel {
		background = ps.shared.Background
	}
	render.DrawWorld(e.World, screen, background)
}

func (ps *PlayScene) drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	render.DrawHUD(e.World, screen)
}

func (ps *PlayScene) drawQuestion(e *ecs.ECS, screen *ebiten.Image) {
	if ps.questionUI != nil {
		ps.questionUI.UI.Draw(screen)
	}
}
