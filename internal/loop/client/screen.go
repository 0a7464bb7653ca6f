package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/skyquiz/internal/draw"
	"github.com/tomz197/skyquiz/internal/loop/config"
	"github.com/tomz197/skyquiz/internal/loop/server"
	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/physics"
	"github.com/tomz197/skyquiz/internal/quiz"
)

const healthBarHeight = 6.0 // logical px

// drawFrame draws the latest hub frame plus the overlay for the current screen.
func (c *Client) drawFrame() error {
	f := c.handle.Frame()

	// Overlays change shape between screens; start from a blank terminal.
	scr := screenFor(f, c.state.shuttingDown, c.state.isInactive)
	if scr != c.state.prevScreen {
		c.chunkWriter.Clear()
		c.canvas.ForceRedraw()
		c.state.prevScreen = scr
	}

	c.canvas.Clear()
	if f != nil {
		c.canvas.SetLogicalSize(f.Area.Width, f.Area.Height)
		c.drawWorld(f)
	}
	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)

	if f != nil {
		c.drawSparks(f.Sparks)
	}
	c.drawUI(scr, f)

	return c.chunkWriter.Flush()
}

func (c *Client) drawWorld(f *server.Frame) {
	for _, s := range f.Stars {
		c.canvas.SetFloat(s.X, s.Y, draw.Gray)
	}

	for _, s := range f.Sprites {
		c.canvas.FillRect(s.Rect(), spriteColor(s))
		if s.Kind == object.KindEnemy && s.Health < 1 {
			r := s.Rect()
			bar := physics.Rect{X: r.X, Y: r.Y - healthBarHeight*2, W: r.W * s.Health, H: healthBarHeight}
			c.canvas.FillRect(bar, draw.Green)
		}
	}

	avatar := draw.BrightCyan
	switch {
	case f.Flash > 0 && time.Now().UnixMilli()/80%2 == 0:
		avatar = draw.White
	case f.State.PowerUps.Shield:
		avatar = draw.Cyan
	}
	c.canvas.FillRect(f.Avatar.Rect(), avatar)
}

func spriteColor(s object.Sprite) draw.Color {
	switch s.Kind {
	case object.KindProjectile:
		return draw.BrightYellow
	case object.KindEnemyProjectile:
		return draw.Yellow
	case object.KindEnemy:
		switch s.Class {
		case object.ClassLarge:
			return draw.BrightRed
		case object.ClassMedium:
			return draw.Magenta
		}
		return draw.Red
	case object.KindPickup:
		switch s.Reward {
		case object.RewardShield:
			return draw.Cyan
		case object.RewardBomb:
			return draw.Green
		}
		return draw.White
	}
	return draw.White
}

// drawSparks writes particle glyphs over the canvas and marks them dirty so
// the canvas repaints the cells once they move on.
func (c *Client) drawSparks(sparks []server.Spark) {
	w, h := c.canvas.TerminalWidth(), c.canvas.TerminalHeight()
	for _, s := range sparks {
		col, row := c.canvas.LogicalToTerminal(s.X, s.Y)
		if col < 1 || col > w || row < 1 || row > h {
			continue
		}
		color := draw.BrightYellow
		if s.Fade < 0.5 {
			color = draw.Red
		}
		c.chunkWriter.WriteStyled(col, row, color, false, string(s.Symbol))
		c.canvas.MarkTextDirty(col, row, 1)
	}
}

func (c *Client) drawUI(scr screen, f *server.Frame) {
	w := c.canvas.TerminalWidth()
	centerX, centerY := w/2, c.canvas.TerminalHeight()/2

	switch scr {
	case screenShutdown:
		c.drawShutdownScreen(centerX, centerY)
	case screenInactive:
		c.drawInactivityScreen(centerX, centerY)
	case screenTitle:
		c.drawTitleScreen(centerX, centerY, f)
	case screenPlaying:
		c.drawHUD(w, f)
	case screenPaused:
		c.drawHUD(w, f)
		c.drawPausedScreen(centerX, centerY)
	case screenQuiz:
		c.drawHUD(w, f)
		c.drawQuiz(w, centerX, centerY, f)
	case screenGameOver:
		c.drawGameOverScreen(centerX, centerY, f)
	}
}

// drawHUD draws the status lines. Fields are padded so shrinking values
// overwrite what was there before.
func (c *Client) drawHUD(termWidth int, f *server.Frame) {
	cw := c.chunkWriter
	s := f.State

	left := fmt.Sprintf("Score: %-7d Level: %-2d High: %-7d", s.Score, s.Level, s.HighScore)
	cw.WriteAt(2, 1, left)
	c.canvas.MarkTextDirty(2, 1, len(left))

	lives := fmt.Sprintf("Lives: %-2d", s.Lives)
	cw.WriteAt(termWidth-len(lives)-1, 1, lives)
	c.canvas.MarkTextDirty(termWidth-len(lives)-1, 1, len(lives))

	p := s.PowerUps
	status := fmt.Sprintf("Bombs: %d  Guns: %d", p.Bombs, 1+p.ExtraBullets)
	if p.Shield {
		status += "  SHIELD"
	}
	if p.SpeedBoost {
		status += fmt.Sprintf("  BOOST %.0fs", (p.SpeedBoostUntil - f.Clock).Seconds())
	}
	status = draw.Pad(status, 48)
	cw.WriteAt(2, 2, status)
	c.canvas.MarkTextDirty(2, 2, len([]rune(status)))
}

func (c *Client) drawTitleScreen(centerX, centerY int, f *server.Frame) {
	titleArt := []string{
		` ___ _  ____   __   ___  _   _ ___ ____ `,
		`/ __| |/ /\ \ / /  / _ \| | | |_ _|_  / `,
		`\__ \ ' <  \ V /  | (_) | |_| || | / /  `,
		`|___/_|\_\  |_|    \__\_\\___/|___/___| `,
	}

	cw := c.chunkWriter
	top := centerY - 8
	for i, line := range titleArt {
		draw.WriteCentered(cw, centerX, top+i, line)
	}
	draw.WriteCentered(cw, centerX, top+len(titleArt)+1, "~ Shoot, dodge, and answer to survive ~")

	controls := []string{
		"Arrows / WASD . . . .  Move",
		"SPACE  . . . . . . . . Bomb",
		"P / ESC  . . . . . .  Pause",
		"1-4  . . . . . . . . Answer",
		"Q  . . . . . . . . . . Quit",
	}
	y := top + len(titleArt) + 3
	for i, line := range controls {
		draw.WriteCentered(cw, centerX, y+i, line)
	}
	y += len(controls) + 1

	if f != nil && f.State.HighScore > 0 {
		draw.WriteCentered(cw, centerX, y, fmt.Sprintf("High score: %d", f.State.HighScore))
	}
	if blink() {
		draw.WriteCentered(cw, centerX, y+2, ">>  Press ENTER to Start  <<")
	} else {
		draw.WriteCentered(cw, centerX, y+2, "                            ")
	}
}

func (c *Client) drawPausedScreen(centerX, centerY int) {
	draw.WriteCentered(c.chunkWriter, centerX, centerY-1, "PAUSED")
	draw.WriteCentered(c.chunkWriter, centerX, centerY+1, "P to resume, R to quit to title")
}

// drawQuiz draws the open question in a box over the play area.
func (c *Client) drawQuiz(termWidth, centerX, centerY int, f *server.Frame) {
	p := f.Prompt
	boxWidth := min(termWidth-4, 60)
	inner := boxWidth - 4

	lines := []string{quizTitle(p.Source), ""}
	lines = append(lines, draw.Wrap(p.Question.Text, inner)...)
	lines = append(lines, "")
	for i, opt := range p.Question.Options {
		lines = append(lines, draw.Wrap(fmt.Sprintf("%d) %s", i+1, opt), inner)...)
	}
	lines = append(lines, "",
		fmt.Sprintf("%s %2.0fs", draw.Bar(f.Remaining.Seconds()/p.Source.TimeLimit().Seconds(), inner-5), f.Remaining.Seconds()),
	)

	cw := c.chunkWriter
	left := max(centerX-boxWidth/2, 1)
	top := max(centerY-len(lines)/2-1, 3)
	border := "+" + strings.Repeat("-", boxWidth-2) + "+"
	cw.WriteAt(left, top, border)
	for i, line := range lines {
		cw.WriteAt(left, top+1+i, "| "+draw.Pad(line, inner)+" |")
	}
	cw.WriteAt(left, top+1+len(lines), border)
	titleColor := draw.BrightYellow
	if p.Source == quiz.SourceRevive {
		titleColor = draw.BrightRed
	}
	cw.WriteStyled(left+2, top+1, titleColor, true, lines[0])
	for row := top; row <= top+1+len(lines); row++ {
		c.canvas.MarkTextDirty(left, row, boxWidth)
	}
}

func quizTitle(src quiz.Source) string {
	switch src {
	case quiz.SourceRevive:
		return "LAST CHANCE! Answer to revive"
	case quiz.SourceMilestone:
		return "MILESTONE BONUS! Extra gun and speed boost"
	case quiz.SourceShield:
		return "Answer for a SHIELD"
	case quiz.SourceBomb:
		return "Answer for a BOMB"
	}
	return "Answer for a MYSTERY reward"
}

func (c *Client) drawGameOverScreen(centerX, centerY int, f *server.Frame) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	}

	cw := c.chunkWriter
	top := centerY - 6
	for i, line := range titleArt {
		draw.WriteCentered(cw, centerX, top+i, line)
	}
	y := top + len(titleArt) + 1
	draw.WriteCentered(cw, centerX, y, fmt.Sprintf("Score: %d", f.State.Score))
	if f.State.Score >= f.State.HighScore && f.State.Score > 0 {
		draw.WriteCentered(cw, centerX, y+1, "NEW HIGH SCORE!")
	} else {
		draw.WriteCentered(cw, centerX, y+1, fmt.Sprintf("High score: %d", f.State.HighScore))
	}
	if blink() {
		draw.WriteCentered(cw, centerX, y+3, ">>  ENTER to play again, R for title  <<")
	} else {
		draw.WriteCentered(cw, centerX, y+3, "                                        ")
	}
}

func (c *Client) drawInactivityScreen(centerX, centerY int) {
	cw := c.chunkWriter
	draw.WriteCentered(cw, centerX, centerY-2, "INACTIVITY WARNING")
	msg := fmt.Sprintf("You will be disconnected in %3d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()))
	draw.WriteCentered(cw, centerX, centerY, msg)
	draw.WriteCentered(cw, centerX, centerY+2, "Press any key to continue")
}

func (c *Client) drawShutdownScreen(centerX, centerY int) {
	cw := c.chunkWriter
	draw.WriteCentered(cw, centerX, centerY-3, "SERVER SHUTTING DOWN")
	draw.WriteCentered(cw, centerX, centerY-1, "The server is restarting for maintenance.")
	draw.WriteCentered(cw, centerX, centerY, "Please reconnect in a moment.")
	remaining := int(c.state.shutdownTimer) + 1
	draw.WriteCentered(cw, centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	draw.WriteCentered(cw, centerX, centerY+4, "Press Q to disconnect now")
}

func blink() bool {
	return time.Now().UnixMilli()/600%2 == 0
}
