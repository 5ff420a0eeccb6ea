package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/chrisuehlinger/curtain/anim"
	"github.com/chrisuehlinger/curtain/curtain"
	"github.com/chrisuehlinger/curtain/dom"
)

const frameInterval = time.Second / 60

// DemoUI is the demo application window: a few curtain boxes with different
// configurations, driven by a shared animation engine.
type DemoUI struct {
	app    fyne.App
	window fyne.Window
	engine *anim.Engine
	boxes  []*CurtainBox
}

// NewDemoUI builds the demo window and its widgets.
func NewDemoUI() *DemoUI {
	a := app.New()
	w := a.NewWindow("Curtain Demo")

	u := &DemoUI{
		app:    a,
		window: w,
		engine: anim.NewEngine(),
	}

	doc := dom.NewDocument()
	controller := curtain.New(u.engine)

	defaults := NewCurtainBox(doc, controller, "Defaults", nil)
	slowDuration := 0.6
	slow := NewCurtainBox(doc, controller, "Slow linear", &curtain.Options{
		Animation: &curtain.AnimationOptions{Duration: &slowDuration, Ease: "linear"},
	})
	touchy := NewCurtainBox(doc, controller, "Touch edges left/right", &curtain.Options{
		TouchPosition: &curtain.TouchPositionOptions{Start: curtain.EdgeLeft, End: curtain.EdgeRight},
	})
	u.boxes = []*CurtainBox{defaults, slow, touchy}

	w.SetContent(container.NewGridWithColumns(3, defaults, slow, touchy))
	w.Resize(fyne.NewSize(960, 320))
	return u
}

// Run shows the window and blocks until it closes. The animation engine and
// the render refresh loop run for the lifetime of the window.
func (u *DemoUI) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go u.engine.Run(ctx, frameInterval)
	go u.refreshLoop(ctx)

	u.window.ShowAndRun()

	for _, box := range u.boxes {
		box.Detach()
	}
}

// refreshLoop repaints the boxes on the UI thread each frame while any
// tween is active.
func (u *DemoUI) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	idle := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			active := u.engine.Active() > 0
			if !active && idle {
				continue
			}
			// One extra repaint after the last tween finishes, so the
			// final pinned values land on screen.
			idle = !active
			fyne.Do(func() {
				for _, box := range u.boxes {
					box.Refresh()
				}
			})
		}
	}
}
