package game

import (
	"errors"
	"path/filepath"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-field/internal/logger"
	"github.com/iburimskiy/particle-field/internal/render"
)

const snapshotName = "particle-field.png"

// saveSnapshot asks for a destination and writes the current frame as PNG.
// Cancelling the dialog is not an error.
func (g *Game) saveSnapshot() error {
	if g.vis == nil || !g.vis.Mounted() {
		return ErrNotMounted
	}

	start := snapshotName
	if g.cfg.SaveDirectory != "" {
		start = filepath.Join(g.cfg.SaveDirectory, snapshotName)
	}
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename(start),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if filepath.Ext(path) == "" {
		path += ".png"
	}

	snap, err := g.vis.Snapshot(render.Background())
	if err != nil {
		return err
	}
	if err := snap.SavePNG(path); err != nil {
		return err
	}
	logger.Logger().Info("snapshot saved", "path", path)
	return nil
}
