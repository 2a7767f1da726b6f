package asset

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/milk9111/ldtkscene/ldtk"
)

const defaultMaxConcurrentLoads = 4

var ErrServerClosed = errors.New("asset: server closed")

// Project is a decoded LDtk document together with the asset path it was
// loaded from. Tileset paths inside the document resolve against Path.
type Project struct {
	Path string
	Doc  *ldtk.Document
}

// ResolveAsset resolves a path stored in the document.
func (p *Project) ResolveAsset(rel string) (string, bool) {
	if p == nil {
		return "", false
	}
	return ResolveRelative(p.Path, rel)
}

type imageEntry struct {
	path    string
	state   LoadState
	img     image.Image
	err     error
	version uint64
}

type projectEntry struct {
	path    string
	state   LoadState
	project *Project
	err     error
}

// Server loads images and projects in the background and exposes their
// state to the tick loop. Load results are applied only by Update, so every
// other method is meant to be called from the goroutine that calls Update.
type Server struct {
	fsys    fs.FS
	log     *zap.Logger
	sem     *semaphore.Weighted
	ctx     context.Context
	cancel  context.CancelFunc
	docOpts []ldtk.Option

	watchRoot string
	watcher   *Watcher

	images   map[ImageHandle]*imageEntry
	projects map[ProjectHandle]*projectEntry
	layouts  []*AtlasLayout
	inFlight int

	mu        sync.Mutex
	completed []func()
	notify    chan struct{}

	maxLoads int64
	requests int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for load results.
func WithLogger(log *zap.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMaxConcurrentLoads bounds how many files are read and decoded at once.
func WithMaxConcurrentLoads(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxLoads = int64(n)
		}
	}
}

// WithDocumentOptions passes decode options to every project load.
func WithDocumentOptions(opts ...ldtk.Option) Option {
	return func(s *Server) {
		s.docOpts = append(s.docOpts, opts...)
	}
}

// WithWatch reloads images in place when their files change under root.
// root must be the on-disk directory backing the server's fs.FS.
func WithWatch(root string) Option {
	return func(s *Server) {
		s.watchRoot = root
	}
}

// NewServer creates a server reading assets from fsys.
func NewServer(fsys fs.FS, opts ...Option) (*Server, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		fsys:     fsys,
		log:      zap.NewNop(),
		ctx:      ctx,
		cancel:   cancel,
		images:   make(map[ImageHandle]*imageEntry),
		projects: make(map[ProjectHandle]*projectEntry),
		notify:   make(chan struct{}, 1),
		maxLoads: defaultMaxConcurrentLoads,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.sem = semaphore.NewWeighted(s.maxLoads)

	if s.watchRoot != "" {
		w, err := NewWatcher(s.watchRoot)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("watch %s: %w", s.watchRoot, err)
		}
		s.watcher = w
	}
	return s, nil
}

// Close cancels outstanding loads and stops watching files.
func (s *Server) Close() error {
	if s == nil {
		return nil
	}
	s.cancel()
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// LoadImage requests the image at p and returns its handle immediately.
// Images already loaded or loading are not requested again; failed images
// are retried.
func (s *Server) LoadImage(p string) ImageHandle {
	clean := CleanPath(p)
	h := ImageHandle{id: pathID(clean)}
	s.requests++
	if e, ok := s.images[h]; ok && e.state != Failed {
		return h
	}
	e := &imageEntry{path: clean, state: Pending}
	s.images[h] = e
	s.startImageLoad(e)
	return h
}

func (s *Server) startImageLoad(e *imageEntry) {
	fsys := s.fsys
	s.run(func(context.Context) (any, error) {
		return decodeImage(fsys, e.path)
	}, func(v any, err error) {
		if err != nil {
			if e.state == Loaded {
				s.log.Warn("image reload failed, keeping previous image", zap.String("path", e.path), zap.Error(err))
				return
			}
			e.state = Failed
			e.err = err
			s.log.Warn("image load failed", zap.String("path", e.path), zap.Error(err))
			return
		}
		e.img = v.(image.Image)
		e.state = Loaded
		e.err = nil
		e.version++
		s.log.Debug("image loaded", zap.String("path", e.path), zap.Uint64("version", e.version))
	})
}

// LoadProject requests the LDtk document at p.
func (s *Server) LoadProject(p string) ProjectHandle {
	clean := CleanPath(p)
	h := ProjectHandle{id: pathID(clean)}
	if e, ok := s.projects[h]; ok && e.state != Failed {
		return h
	}
	e := &projectEntry{path: clean, state: Pending}
	s.projects[h] = e

	fsys, opts := s.fsys, s.docOpts
	s.run(func(context.Context) (any, error) {
		return ldtk.Load(fsys, clean, opts...)
	}, func(v any, err error) {
		if err != nil {
			e.state = Failed
			e.err = err
			s.log.Error("project load failed", zap.String("path", clean), zap.Error(err))
			return
		}
		doc := v.(*ldtk.Document)
		if verr := doc.Validate(); verr != nil {
			s.log.Warn("project has problems", zap.String("path", clean), zap.Error(verr))
		}
		e.project = &Project{Path: clean, Doc: doc}
		e.state = Loaded
		s.log.Info("project loaded", zap.String("path", clean), zap.Int("levels", len(doc.LevelRefs())))
	})
	return h
}

func (s *Server) run(work func(context.Context) (any, error), finish func(any, error)) {
	s.inFlight++
	ctx := s.ctx
	go func() {
		var v any
		err := s.sem.Acquire(ctx, 1)
		if err == nil {
			v, err = work(ctx)
			s.sem.Release(1)
		} else {
			err = fmt.Errorf("%w: %w", ErrServerClosed, err)
		}

		s.mu.Lock()
		s.completed = append(s.completed, func() { finish(v, err) })
		s.mu.Unlock()

		select {
		case s.notify <- struct{}{}:
		default:
		}
	}()
}

// Update applies finished loads and file change notifications. Call it once
// per tick before any system reads load state.
func (s *Server) Update() {
	if s == nil {
		return
	}
	s.mu.Lock()
	done := s.completed
	s.completed = nil
	s.mu.Unlock()

	for _, finish := range done {
		finish()
		s.inFlight--
	}
	s.drainWatcher()
}

func (s *Server) drainWatcher() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case p, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			e, ok := s.images[ImageHandle{id: pathID(p)}]
			if !ok || e.state == Pending {
				continue
			}
			s.log.Info("image changed on disk, reloading", zap.String("path", p))
			if e.state == Failed {
				e.state = Pending
			}
			s.startImageLoad(e)
		case err, ok := <-s.watcher.Errors:
			if ok {
				s.log.Warn("asset watcher error", zap.Error(err))
			}
		default:
			return
		}
	}
}

// WaitIdle applies results until no load is in flight.
func (s *Server) WaitIdle(ctx context.Context) error {
	for {
		s.Update()
		if s.inFlight == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.notify:
		}
	}
}

// InFlight returns the number of loads whose results have not been applied.
func (s *Server) InFlight() int {
	return s.inFlight
}

// Requests returns how many times LoadImage has been called.
func (s *Server) Requests() int {
	return s.requests
}

// LoadState reports the state of an image. For images it doubles as the
// dependency load state since images depend on nothing else.
func (s *Server) LoadState(h ImageHandle) LoadState {
	if e, ok := s.images[h]; ok {
		return e.state
	}
	return Unknown
}

// Image returns a loaded image.
func (s *Server) Image(h ImageHandle) (image.Image, bool) {
	e, ok := s.images[h]
	if !ok || e.img == nil {
		return nil, false
	}
	return e.img, true
}

// ImageVersion increases every time the image behind h is (re)loaded.
func (s *Server) ImageVersion(h ImageHandle) uint64 {
	if e, ok := s.images[h]; ok {
		return e.version
	}
	return 0
}

// ImagePath returns the cleaned asset path behind h.
func (s *Server) ImagePath(h ImageHandle) string {
	if e, ok := s.images[h]; ok {
		return e.path
	}
	return ""
}

// ImageErr returns the error of a failed image load.
func (s *Server) ImageErr(h ImageHandle) error {
	if e, ok := s.images[h]; ok {
		return e.err
	}
	return nil
}

// ProjectLoadState reports the state of a project.
func (s *Server) ProjectLoadState(h ProjectHandle) LoadState {
	if e, ok := s.projects[h]; ok {
		return e.state
	}
	return Unknown
}

// Project returns a loaded project.
func (s *Server) Project(h ProjectHandle) (*Project, bool) {
	e, ok := s.projects[h]
	if !ok || e.state != Loaded {
		return nil, false
	}
	return e.project, true
}

// ProjectErr returns the error of a failed project load.
func (s *Server) ProjectErr(h ProjectHandle) error {
	if e, ok := s.projects[h]; ok {
		return e.err
	}
	return nil
}

// AddLayout registers an atlas layout and returns its handle.
func (s *Server) AddLayout(g GridLayout) LayoutHandle {
	s.layouts = append(s.layouts, NewAtlasLayout(g))
	return LayoutHandle{index: len(s.layouts)}
}

// Layout returns a registered layout.
func (s *Server) Layout(h LayoutHandle) (*AtlasLayout, bool) {
	if !h.Valid() || h.index > len(s.layouts) {
		return nil, false
	}
	return s.layouts[h.index-1], true
}
