package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/renameio"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/guidefmt"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/guidefmt")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		widthFlag   int
		outPath     string
		checkOnly   bool
		verbose     bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("guidefmt", pflag.ContinueOnError)
	flags.IntVarP(&widthFlag, "width", "w", guidefmt.DefaultWidth, "Wrap width (0 uses terminal width if available)")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout (written atomically)")
	flags.BoolVarP(&checkOnly, "check", "c", false, "Parse and validate only, write no output")
	flags.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	flags.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: guidefmt [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nInputs may be files or http(s) URLs; with no input, Guide markup is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return 0
	}

	reader, closer, err := openInputs(flags.Args())
	if err != nil {
		logger.Error("open input", "err", err)
		return 1
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	width := resolveWidth(widthFlag)
	logger.Debug("formatting", "width", width, "inputs", len(flags.Args()))

	var out bytes.Buffer
	if err := guidefmt.Format(guidefmt.FormatRequest{
		Reader: reader,
		Writer: &out,
		Width:  width,
	}); err != nil {
		logger.Error("format", "err", err)
		return 1
	}

	if checkOnly {
		logger.Debug("input is well formed", "bytes", out.Len())
		return 0
	}

	if outPath == "" {
		if _, err := os.Stdout.Write(out.Bytes()); err != nil {
			logger.Error("write stdout", "err", err)
			return 1
		}
		return 0
	}
	// Atomic replace: a failure above never leaves a truncated file behind.
	if err := renameio.WriteFile(outPath, out.Bytes(), 0o644); err != nil {
		logger.Error("write output", "path", outPath, "err", err)
		return 1
	}
	return 0
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(guidefmt.DefaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	return &multiInputReader{sources: sources}, nil, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
