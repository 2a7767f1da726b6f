package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/ldtkscene/asset"
	"github.com/milk9111/ldtkscene/config"
	"github.com/milk9111/ldtkscene/ldtk"
	"github.com/milk9111/ldtkscene/levels"
	"github.com/milk9111/ldtkscene/logging"
)

func main() {
	configPath := flag.String("config", "", "config file (.yaml, .yml or .toml)")
	projectPath := flag.String("project", "", "LDtk project file; the bundled sample is used when empty")
	levelIID := flag.String("level", "", "iid of the first level to show")
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	flag.Parse()

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *projectPath != "" {
		cfg.AssetRoot = filepath.Dir(*projectPath)
		cfg.Project = filepath.Base(*projectPath)
	}
	if *levelIID != "" {
		cfg.Selection.IID = *levelIID
	}
	if *debug {
		cfg.Logging.Level = "debug"
	}

	var fsys fs.FS
	if cfg.Project == "" {
		fsys = levels.FS
		cfg.Project = levels.SampleProject
		cfg.Assets.Watch = false
	} else {
		fsys = os.DirFS(cfg.AssetRoot)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	opts := []asset.Option{
		asset.WithLogger(logger.Named("asset")),
		asset.WithMaxConcurrentLoads(cfg.Assets.MaxConcurrentLoads),
	}
	if cfg.ValidateSchema {
		opts = append(opts, asset.WithDocumentOptions(ldtk.WithSchemaValidation()))
	}
	if cfg.Assets.Watch {
		opts = append(opts, asset.WithWatch(cfg.AssetRoot))
	}
	server, err := asset.NewServer(fsys, opts...)
	if err != nil {
		logger.Fatal("create asset server", zap.Error(err))
	}
	defer server.Close()

	game, err := NewGame(cfg, server, logger, *debug)
	if err != nil {
		logger.Fatal("create viewer", zap.Error(err))
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
