package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/ldtkscene/asset"
	"github.com/milk9111/ldtkscene/config"
	"github.com/milk9111/ldtkscene/ecs"
	"github.com/milk9111/ldtkscene/ecs/component"
	"github.com/milk9111/ldtkscene/ecs/system"
	"github.com/milk9111/ldtkscene/ldtk"
	"github.com/milk9111/ldtkscene/levels"
	"github.com/milk9111/ldtkscene/logging"
	"github.com/milk9111/ldtkscene/plugin"
	"github.com/milk9111/ldtkscene/scene"
)

var errNotSpawned = errors.New("level did not spawn")

func main() {
	project := flag.String("project", "", "LDtk project file; the bundled sample is used when empty")
	iid := flag.String("iid", "", "level iid; overrides -world and -level")
	worldIndex := flag.Int("world", 0, "world index")
	levelIndex := flag.Int("level", 0, "level index")
	schema := flag.Bool("schema", false, "validate the project against the LDtk schema")
	timeout := flag.Duration("timeout", 10*time.Second, "give up after this long")
	logLevel := flag.String("log", "warn", "log level")
	flag.Parse()

	logger, err := logging.New(config.LoggingConfig{Level: *logLevel, Format: "console"})
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	var fsys fs.FS = levels.FS
	path := levels.SampleProject
	if *project != "" {
		fsys = os.DirFS(filepath.Dir(*project))
		path = filepath.Base(*project)
	}

	sel := ldtk.ByIndices(*worldIndex, *levelIndex)
	if *iid != "" {
		sel = ldtk.ByIID(*iid)
	}

	opts := []asset.Option{asset.WithLogger(logger.Named("asset"))}
	if *schema {
		opts = append(opts, asset.WithDocumentOptions(ldtk.WithSchemaValidation()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, os.Stdout, fsys, path, sel, logger, opts...); err != nil {
		logger.Fatal("dump level", zap.String("project", path), zap.Stringer("selection", sel), zap.Error(err))
	}
}

func run(ctx context.Context, out io.Writer, fsys fs.FS, path string, sel ldtk.Selection, logger *zap.Logger, opts ...asset.Option) error {
	server, err := asset.NewServer(fsys, opts...)
	if err != nil {
		return err
	}
	defer server.Close()

	w := ecs.NewWorld()
	s := ecs.NewScheduler()
	plugin.Install(s, server, plugin.Options{Logger: logger, AbandonOnFailure: true})

	projectEntity, err := plugin.SpawnProject(w, server, path)
	if err != nil {
		return err
	}
	if err := system.SelectLevel(w, sel); err != nil {
		return err
	}

	for {
		if err := server.WaitIdle(ctx); err != nil {
			return fmt.Errorf("%w: %w", errNotSpawned, err)
		}
		s.Update(w)
		for _, evt := range w.Events().Drain() {
			switch data := evt.Data.(type) {
			case system.LevelSpawnedEvent:
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(scene.Capture(w)); err != nil {
					return err
				}
				return enc.Close()
			case system.WorldAbandoned:
				return fmt.Errorf("%w: image %s: %w", errNotSpawned, data.Image, data.Err)
			}
		}
		p, ok := ecs.Get(w, projectEntity, component.LDtkProjectComponent.Kind())
		if !ok {
			return fmt.Errorf("%w: project entity removed", errNotSpawned)
		}
		switch server.ProjectLoadState(p.Handle) {
		case asset.Failed:
			return fmt.Errorf("%w: %w", errNotSpawned, server.ProjectErr(p.Handle))
		case asset.Loaded:
			if ecs.Count(w, component.LevelSelectionComponent.Kind()) > 0 {
				return fmt.Errorf("%w: no level matches %s", errNotSpawned, sel)
			}
		}
	}
}
