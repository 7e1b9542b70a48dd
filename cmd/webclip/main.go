package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/clip"
	"github.com/fwojciec/webclip/colly"
	"github.com/fwojciec/webclip/fs"
	"github.com/fwojciec/webclip/gocache"
	"github.com/fwojciec/webclip/goquery"
	"github.com/fwojciec/webclip/htmltomarkdown"
	webhttp "github.com/fwojciec/webclip/http"
	"github.com/fwojciec/webclip/obsidian"
	"github.com/fwojciec/webclip/readability"
	"github.com/fwojciec/webclip/rod"
	webslog "github.com/fwojciec/webclip/slog"
	"github.com/fwojciec/webclip/sqlite"
	"github.com/fwojciec/webclip/trafilatura"
	"github.com/fwojciec/webclip/yaml"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the options store.
	DB *sqlite.DB

	// Services for end-to-end testing. Set before calling Run() to
	// replace the defaults.
	OptionsService webclip.OptionsService
	Fetcher        webclip.Fetcher
	Metadata       webclip.MetadataFetcher
	Opener         obsidian.Opener
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webclip"),
		kong.Description("Clip web pages to Markdown with YAML front matter."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webclip --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = strings.Fields(kongCtx.Command())[0]

	// Interactive commands only surface problems. The server logs requests
	// as JSON.
	level := slog.LevelWarn
	if cmd == "serve" {
		level = slog.LevelInfo
	}
	if cli.Debug {
		level = slog.LevelDebug
	}
	deps.Logger = newLogger(stderr, level, cmd == "serve")

	if m.OptionsService == nil {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set WEBCLIP_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		m.OptionsService = sqlite.NewOptionsService(m.DB)
	}
	deps.Options = m.OptionsService

	if cmd == "clip" || cmd == "select" || cmd == "serve" {
		fetcher, err := m.fetcher(cli.Render, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		// Served clips return their Markdown in the response.
		var preview io.Writer = stdout
		if cmd == "serve" {
			preview = io.Discard
		}
		deps.Capturer = m.newCapturer(webslog.NewLoggingFetcher(fetcher, deps.Logger), deps.Logger, preview)
	}

	return kongCtx.Run(deps)
}

// fetcher returns the page fetcher: headless Chrome when render is set,
// plain HTTP otherwise.
func (m *Main) fetcher(render bool, stderr io.Writer) (webclip.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}
	if render {
		f, err := rod.NewFetcher(rod.WithSettle(renderSettle))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return f, nil
	}
	return webhttp.NewFetcher(webhttp.WithHostLimiter(webhttp.NewHostLimiter(hostRequestsPerSecond))), nil
}

// newCapturer wires the conversion pipeline.
func (m *Main) newCapturer(fetcher webclip.Fetcher, logger *slog.Logger, preview io.Writer) *clip.Capturer {
	var meta webclip.MetadataFetcher = m.Metadata
	if meta == nil {
		meta = gocache.NewMetadataCache(colly.NewMetadataFetcher(), gocache.DefaultExpiration)
	}

	readabilityExt := webslog.NewLoggingExtractor(readability.NewExtractor(), logger)

	return &clip.Capturer{
		Clipper: &clip.Clipper{
			Extractor: readabilityExt,
			Converter: webslog.NewLoggingConverter(htmltomarkdown.NewConverter(), logger),
			Metadata:  webslog.NewLoggingMetadataFetcher(meta, logger),
			Scraper:   goquery.NewMetaScraper(),
			Encoder:   yaml.NewEncoder(),
			Logger:    logger,
		},
		Fetcher: fetcher,
		Parser:  goquery.NewParser(),
		Sinks:   newSinkFactory(preview, m.Opener, logger),
		Extractors: map[string]webclip.Extractor{
			webclip.ExtractorReadability: readabilityExt,
			webclip.ExtractorTrafilatura: webslog.NewLoggingExtractor(trafilatura.NewExtractor(), logger),
		},
	}
}

// newSinkFactory returns the destinations enabled in the options, each
// wrapped with logging.
func newSinkFactory(preview io.Writer, open obsidian.Opener, logger *slog.Logger) clip.SinkFactory {
	return func(opts *webclip.Options) []webclip.Sink {
		var sinks []webclip.Sink
		if opts.Local {
			sinks = append(sinks, fs.NewWriter(opts.DownloadDir))
		}
		if opts.Obsidian {
			sinks = append(sinks, obsidian.NewLauncher(opts.Vault, opts.Folder, open))
		}
		if opts.Preview {
			sinks = append(sinks, fs.NewPreview(preview))
		}
		for i, s := range sinks {
			sinks[i] = webslog.NewLoggingSink(s, logger)
		}
		return sinks
	}
}

func newLogger(w io.Writer, level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

const (
	// hostRequestsPerSecond keeps repeated clips from hammering one site.
	hostRequestsPerSecond = 1.0

	// renderSettle is how long the rendered DOM must stay unchanged.
	renderSettle = 500 * time.Millisecond
)

func defaultDBPath() string {
	if path := os.Getenv("WEBCLIP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "webclip.db"
	}
	dir := filepath.Join(home, ".webclip")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "webclip.db")
}
