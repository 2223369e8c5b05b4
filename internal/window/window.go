//go:build cgo

package window

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lox/gundown/internal/game"
	"github.com/lox/gundown/internal/results"
	"github.com/lox/gundown/internal/setup"
)

var (
	colorBG      = rl.NewColor(24, 24, 32, 255)
	colorPanel   = rl.NewColor(44, 44, 60, 255)
	colorText    = rl.NewColor(250, 250, 250, 255)
	colorMuted   = rl.NewColor(140, 140, 150, 255)
	colorAccent  = rl.NewColor(125, 86, 244, 255)
	colorFocus   = rl.NewColor(4, 181, 117, 255)
	colorHit     = rl.NewColor(150, 206, 180, 255)
	colorMissed  = rl.NewColor(255, 107, 107, 255)
	colorWarning = rl.NewColor(255, 234, 167, 255)
)

// Run opens the window and blocks until it is closed.
func (a *App) Run() error {
	rl.InitWindow(windowWidth, windowHeight, "GunDown")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	for !a.quit && !rl.WindowShouldClose() {
		a.poll()

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		a.draw()
		rl.EndDrawing()
	}
	return nil
}

func (a *App) poll() {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		a.typeText(string(rune(ch)))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		a.backspace()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.tab(rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift))
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.space()
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		a.enter()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.escape()
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		a.click(pos.X, pos.Y)
	}
}

func (a *App) draw() {
	drawCentered("GunDown", 32, 40, colorText)
	switch a.screen {
	case screenSetup:
		a.drawSetup()
	case screenGrid:
		cfg := a.session.Config()
		drawCentered(fmt.Sprintf("Grid %s | Guess %d of %d", cfg.Size(), a.session.Turn(), cfg.Hidden), 20, 80, colorMuted)
		a.drawGrid(game.ModeInPlay)
	case screenResult:
		a.drawResult()
	}
}

func (a *App) drawSetup() {
	l := a.layout
	drawLabel("Grid size (3x3 to 5x5)", l.sizeField)
	drawField(a.form.Size, l.sizeField, a.form.Focus == setup.FieldSize)
	drawLabel("Hidden objects", l.hiddenField)
	drawField(a.form.Hidden, l.hiddenField, a.form.Focus == setup.FieldHidden)
	drawLabel("Cheat mode", l.cheatBox)

	box := toRL(l.cheatBox)
	rl.DrawRectangleRec(box, colorPanel)
	outline := colorMuted
	if a.form.Focus == setup.FieldCheat {
		outline = colorFocus
	}
	rl.DrawRectangleLinesEx(box, 2, outline)
	if a.form.Cheat {
		rl.DrawText("X", int32(box.X)+9, int32(box.Y)+6, 22, colorText)
	}

	drawButton("Start", l.startButton, colorAccent)
	if a.form.Err != "" {
		drawWrapped(a.form.Err, 40, int32(l.startButton.Y+l.startButton.H+24), colorMissed)
	}
}

func (a *App) drawGrid(mode game.Mode) {
	board := a.session.Board()
	for _, row := range board.Grid() {
		for _, cell := range row {
			r, c := board.Position(cell)
			mark := a.session.RenderCell(cell, mode)
			fill := colorPanel
			switch {
			case mark == game.MarkHit:
				fill = colorHit
			case mark == game.MarkMissed:
				fill = colorMissed
			case mode == game.ModeInPlay && a.session.Guessed(cell):
				fill = colorBG
			}
			drawButton(strings.TrimSpace(mark.Label(cell)), a.layout.cellRect(board, r, c), fill)
		}
	}
}

func (a *App) drawResult() {
	drawCentered("Game Over", 22, 80, colorWarning)
	a.drawGrid(game.ModePostGame)

	_, top := a.layout.gridOrigin(a.session.Board())
	y := int32(top) + int32(a.session.Board().Rows()*(cellSize+cellGap)) + 8
	drawCentered("Hidden: "+results.JoinCells(a.record.Hidden)+"   Found: "+results.JoinCells(a.record.Found), 18, y, colorText)
	drawCentered(results.Summary(a.record), 20, y+26, colorHit)
	if status := a.status(); status != "" {
		col := colorMuted
		if a.saveErr != nil {
			col = colorWarning
		}
		drawWrapped(status, 20, y+54, col)
	}

	drawButton("New Game", a.layout.newGameButton, colorAccent)
	drawButton("Quit", a.layout.quitButton, colorPanel)
}

func toRL(r rect) rl.Rectangle {
	return rl.NewRectangle(r.X, r.Y, r.W, r.H)
}

func drawLabel(text string, field rect) {
	rl.DrawText(text, 40, int32(field.Y)+10, 20, colorText)
}

func drawField(text string, r rect, focused bool) {
	box := toRL(r)
	rl.DrawRectangleRec(box, colorPanel)
	outline := colorMuted
	if focused {
		outline = colorFocus
		text += "_"
	}
	rl.DrawRectangleLinesEx(box, 2, outline)
	rl.DrawText(text, int32(box.X)+10, int32(box.Y)+10, 20, colorText)
}

func drawButton(text string, r rect, fill rl.Color) {
	box := toRL(r)
	rl.DrawRectangleRec(box, fill)
	rl.DrawRectangleLinesEx(box, 2, colorMuted)
	const size = 24
	w := rl.MeasureText(text, size)
	rl.DrawText(text, int32(box.X+box.Width/2)-w/2, int32(box.Y+box.Height/2)-size/2, size, colorText)
}

func drawCentered(text string, size, y int32, col rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, (windowWidth-w)/2, y, size, col)
}

// drawWrapped splits text on spaces to fit the window width.
func drawWrapped(text string, x, y int32, col rl.Color) {
	const size = 18
	line := ""
	for _, word := range strings.Fields(text) {
		next := strings.TrimSpace(line + " " + word)
		if rl.MeasureText(next, size) > windowWidth-2*x && line != "" {
			rl.DrawText(line, x, y, size, col)
			y += size + 4
			next = word
		}
		line = next
	}
	if line != "" {
		rl.DrawText(line, x, y, size, col)
	}
}
