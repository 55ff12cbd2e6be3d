package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/giga"
	"github.com/fwojciec/giga/bubbletea"
	"github.com/fwojciec/giga/chroma"
	"github.com/fwojciec/giga/clipboard"
	"github.com/fwojciec/giga/diffcmd"
	"github.com/fwojciec/giga/difflib"
	"github.com/fwojciec/giga/fs"
	"github.com/fwojciec/giga/fsnotify"
	"github.com/fwojciec/giga/git"
	"github.com/fwojciec/giga/gitdiff"
	"github.com/fwojciec/giga/jsonl"
	"github.com/fwojciec/giga/lipgloss"
	"github.com/fwojciec/giga/sigwinch"
	"github.com/fwojciec/giga/terminal"
	"github.com/fwojciec/giga/toml"
	gigazap "github.com/fwojciec/giga/zap"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Version is set at build time.
var Version = "dev"

// DefaultPath is opened when no path is given.
const DefaultPath = "Newfile"

// Options are the parsed command line.
type Options struct {
	Path       string
	ConfigPath string
	Version    bool
}

// ParseArgs parses the command line, without the program name.
func ParseArgs(args []string, stderr io.Writer) (Options, error) {
	flags := flag.NewFlagSet("giga", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: giga [--config file] [path]")
		flags.PrintDefaults()
	}

	var opts Options
	flags.StringVar(&opts.ConfigPath, "config", filepath.Join(fs.DefaultConfigDir(), "config.toml"), "config file")
	flags.BoolVar(&opts.Version, "version", false, "print the version and exit")
	if err := flags.Parse(args); err != nil {
		return Options{}, err
	}

	switch flags.NArg() {
	case 0:
		opts.Path = DefaultPath
	case 1:
		opts.Path = flags.Arg(0)
	default:
		flags.Usage()
		return Options{}, errors.New("too many arguments")
	}
	return opts, nil
}

// App encapsulates the application logic for testing.
type App struct {
	Path   string
	Config giga.Config

	Input    io.Reader // raw key input
	Screen   giga.Screen
	Renderer giga.Renderer

	Files     giga.FileStore
	Positions giga.PositionStore // nil disables position memory
	Git       giga.GitRunner
	Clipboard giga.Clipboard
	Theme     giga.Theme
	Logger    *zap.Logger
}

// Run opens the file and runs the editor until it quits. The diff worker
// and repository watcher only run when the file lives in a git repository.
func (a *App) Run(ctx context.Context) error {
	logger := a.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	path, err := filepath.Abs(a.Path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	content, err := a.Files.Load(path)
	if err != nil {
		return err
	}

	detector := chroma.NewDetector()
	colorizer := chroma.NewColorizer(chroma.StyleFromPalette(a.Theme.Palette()))
	file := giga.NewFile(path, content, colorizer, detector.DetectFromPath(path))

	dir := filepath.Dir(path)
	ref, err := a.Git.RefName(ctx, dir)
	inRepo := err == nil
	if err != nil && !errors.Is(err, giga.ErrNotRepository) {
		logger.Warn("git unavailable", zap.Error(err))
	}

	var engine giga.DiffEngine
	if inRepo {
		if engine, err = NewEngine(a.Config.Diff, a.Git); err != nil {
			return err
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	keys := bubbletea.NewKeySource(a.Input)
	g.Go(func() error { return keys.Run(gctx) })

	resize := make(chan struct{}, 1)
	g.Go(func() error { return sigwinch.Run(gctx, resize) })

	src := giga.EventSources{
		Keys:   keys.Keys(),
		Resize: resize,
		Screen: a.Screen,
	}

	var diffs giga.DiffRequester
	if engine != nil {
		worker := giga.NewDiffWorker(engine,
			giga.WithDebounce(a.Config.Diff.Debounce.Duration),
			giga.WithTimeout(a.Config.Diff.Timeout.Duration),
			giga.WithLogger(logger.Named("diff")),
		)
		g.Go(func() error { return worker.Run(gctx) })
		diffs = worker
		src.Diffs = worker.Results()

		repo := make(chan giga.RepoChange, 1)
		watcher := fsnotify.NewWatcher(a.Git, dir, fsnotify.WithLogger(logger.Named("watch")))
		g.Go(func() error {
			if err := watcher.Run(gctx, repo); err != nil {
				logger.Warn("repository watcher stopped", zap.Error(err))
			}
			return nil
		})
		src.Repo = repo
	}

	width, height := terminal.DefaultWidth, terminal.DefaultHeight
	if a.Screen != nil {
		if w, h, err := a.Screen.Size(); err == nil {
			width, height = w, h
		}
	}
	editor := giga.NewEditor(file, giga.EditorConfig{
		Keymap:    bubbletea.DefaultKeyMap(),
		Files:     a.Files,
		Clipboard: a.Clipboard,
		Detector:  detector,
		Diffs:     diffs,
		Logger:    logger,
		Width:     width,
		Height:    height,
		TabWidth:  a.Config.TabWidth,
		Ref:       ref,
	})
	if a.Positions != nil {
		if pos, ok, err := a.Positions.Get(path); err != nil {
			logger.Warn("read position failed", zap.Error(err))
		} else if ok {
			editor.SetCursor(pos)
		}
	}

	logger.Info("editing", zap.String("path", path), zap.Bool("repository", inRepo), zap.String("ref", ref))
	g.Go(func() error {
		defer cancel()
		return editor.Run(gctx, src, a.Renderer)
	})
	err = g.Wait()

	if a.Positions != nil {
		if perr := a.Positions.Put(editor.File().Path(), editor.Cursor()); perr != nil {
			logger.Warn("save position failed", zap.Error(perr))
		}
	}
	return err
}

// NewEngine returns the diff engine selected by cfg.
func NewEngine(cfg giga.DiffConfig, runner giga.GitRunner) (giga.DiffEngine, error) {
	switch cfg.Backend {
	case giga.DiffBackendNormal:
		return diffcmd.NewEngine(runner, cfg.Command), nil
	case giga.DiffBackendUnified:
		return gitdiff.NewEngine(runner), nil
	case giga.DiffBackendBuiltin:
		return difflib.NewEngine(runner), nil
	default:
		return nil, fmt.Errorf("unknown diff backend %q", cfg.Backend)
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) (err error) {
	opts, err := ParseArgs(args, os.Stderr)
	if err != nil {
		return err
	}
	if opts.Version {
		fmt.Println("giga", Version)
		return nil
	}

	cfg, err := toml.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(fs.DefaultCacheDir(), "giga.log")
	}
	logger, err := gigazap.NewLogger(cfg.Log)
	if err != nil {
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	theme, err := lipgloss.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	term, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := term.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	profile := termenv.EnvColorProfile()
	status := lipgloss.NewStatusBar(theme, lg.NewRenderer(os.Stdout, termenv.WithProfile(profile)))

	app := &App{
		Path:      opts.Path,
		Config:    cfg,
		Input:     os.Stdin,
		Screen:    term,
		Renderer:  terminal.NewRenderer(term, profile, theme, status),
		Files:     fs.NewStore(),
		Git:       git.NewRunner(),
		Clipboard: clipboard.New(),
		Theme:     theme,
		Logger:    logger,
	}
	if cfg.Positions {
		app.Positions = jsonl.NewStore(filepath.Join(fs.DefaultCacheDir(), "positions.jsonl"))
	}
	return app.Run(ctx)
}
