package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagemirror"
	"github.com/fwojciec/pagemirror/bloom"
	"github.com/fwojciec/pagemirror/fs"
	"github.com/fwojciec/pagemirror/goquery"
	pmhttp "github.com/fwojciec/pagemirror/http"
	"github.com/fwojciec/pagemirror/mirror"
	pmslog "github.com/fwojciec/pagemirror/slog"
	"github.com/fwojciec/pagemirror/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, pagemirror.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin supplies URLs when none are given as arguments.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemirror"),
		kong.Description("Mirror web pages and their PDFs, scripts, stylesheets, images and fonts to local disk"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	var config pagemirror.Config
	if cli.Config != "" {
		c, err := yaml.LoadConfig(cli.Config)
		if err != nil {
			return err
		}
		config = *c
	}
	settings := cli.Settings(config)
	if err := settings.Validate(); err != nil {
		return err
	}

	urls := cli.URLs
	if len(urls) == 0 {
		if urls, err = m.readURLs(stdout); err != nil {
			return err
		}
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	var fetcher pagemirror.Fetcher = pmhttp.NewFetcher(
		pmhttp.WithTimeout(settings.Timeout),
		pmhttp.WithUserAgent(settings.UserAgent),
	)
	var workspaces pagemirror.WorkspaceOpener = fs.NewRoot(settings.Output)
	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = pmslog.NewLoggingFetcher(fetcher, logger)
		workspaces = pmslog.NewLoggingWorkspaceOpener(workspaces, logger)
	}

	cacheDir, err := os.MkdirTemp("", "pagemirror-*")
	if err != nil {
		return fmt.Errorf("failed to create asset cache: %w", err)
	}
	defer os.RemoveAll(cacheDir)

	deps.Mirrorer = &mirror.Mirrorer{
		Fetcher:    fetcher,
		Parser:     goquery.NewParser(),
		Workspaces: workspaces,
		Downloaded: bloom.NewSet(1024),
		Cache:      fs.NewCache(cacheDir),
		Extensions: pagemirror.NewExtensions(settings.Extensions...),
	}
	if settings.Rate > 0 {
		deps.Mirrorer.RateLimiter = mirror.NewDomainLimiter(settings.Rate)
	}

	cmd := &MirrorCmd{
		URLs:    urls,
		Verbose: settings.Verbose,
	}

	return cmd.Run(deps)
}

// readURLs prompts for a single line of space separated URLs.
func (m *Main) readURLs(stdout io.Writer) ([]string, error) {
	if m.Stdin == nil {
		return nil, pagemirror.Errorf(pagemirror.EINVALID, "no URLs provided")
	}

	fmt.Fprint(stdout, "Urls: ")
	line, err := bufio.NewReader(m.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read URLs: %w", err)
	}

	urls := strings.Fields(line)
	if len(urls) == 0 {
		return nil, pagemirror.Errorf(pagemirror.EINVALID, "no URLs provided")
	}
	return urls, nil
}
