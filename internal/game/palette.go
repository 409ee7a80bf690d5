package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// palette is the resolved set of colors the renderer draws with.
type palette struct {
	walls   core.Color
	player  core.Color
	goal    core.Color
	hint    core.Color
	hintDim core.Color
	hud     core.Color
}

// resolvePalette maps configured color names to core colors. Unknown names
// fall back to the default palette with a warning.
func resolvePalette(c config.ColorsConfig, logger *log.Logger) palette {
	def := config.DefaultMazeConfig().Colors
	pick := func(field, name, fallback string) core.Color {
		col, err := core.ParseColor(name)
		if err == nil {
			return col
		}
		logger.Warn("unknown color, using default", "field", field, "color", name)
		col, _ = core.ParseColor(fallback)
		return col
	}
	return palette{
		walls:   pick("walls", c.Walls, def.Walls),
		player:  pick("player", c.Player, def.Player),
		goal:    pick("goal", c.Goal, def.Goal),
		hint:    pick("hint", c.Hint, def.Hint),
		hintDim: pick("hint_dim", c.HintDim, def.HintDim),
		hud:     pick("hud", c.HUD, def.HUD),
	}
}
