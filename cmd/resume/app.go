package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/sirspot/resume/internal/cliconfig"
	"github.com/sirspot/resume/internal/render"
	"github.com/sirspot/resume/internal/seed"
	"github.com/sirspot/resume/pkg/log"
	"github.com/sirspot/resume/pkg/resume"
)

// Process exit codes.
const (
	exitUsage = 1
	exitFill  = 8
	exitInit  = 9
)

// initError marks failures to set up or write a render, as opposed to bad
// input.
type initError struct {
	err error
}

func (e *initError) Error() string { return e.err.Error() }
func (e *initError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var fe *resume.FillError
	var ie *initError
	switch {
	case errors.As(err, &fe):
		return exitFill
	case errors.As(err, &ie):
		return exitInit
	}
	return exitUsage
}

type app struct {
	cfg      cliconfig.Config
	renderer render.Renderer
	logger   log.Logger
	stdout   io.Writer
}

func newApp(cfg cliconfig.Config, logger log.Logger, stdout io.Writer) (*app, error) {
	r, err := render.New(render.Format(cfg.Format))
	if err != nil {
		return nil, &initError{err: err}
	}
	return &app{cfg: cfg, renderer: r, logger: logger, stdout: stdout}, nil
}

func header(c seed.Contact) render.Header {
	return render.Header{
		Name:   c.Name,
		Email:  c.Email,
		City:   c.City,
		State:  c.State,
		Mobile: c.Mobile,
		WebURL: c.WebURL,
	}
}

// renderTo fills a fresh résumé from the compiled-in sections and blobs and
// renders it to w. Nothing is written unless every fill succeeds.
func (a *app) renderTo(w io.Writer, blobs []cliconfig.Blob) error {
	seedVal, err := a.cfg.RenderSeed()
	if err != nil {
		return &initError{err: err}
	}

	r := resume.New(seed.SectionCount,
		resume.WithMaxDepth(a.cfg.MaxDepth),
		resume.WithLogger(a.logger),
	)
	defer r.Close()

	if err := r.FillHardCoded(seed.Sections()); err != nil {
		return err
	}
	for _, b := range blobs {
		if err := r.FillFromJSON(b.Data); err != nil {
			return fmt.Errorf("fill %s: %w", b.Source, err)
		}
	}

	blocks := r.Layout(a.cfg.Options(), rand.New(rand.NewSource(seedVal)))
	a.logger.Debug("resume laid out",
		log.Int("sections", len(blocks)),
		log.Int("entries", r.Entries()),
		log.Any("seed", seedVal),
	)
	return a.renderer.Render(w, render.Document{Header: header(seed.Owner), Blocks: blocks})
}

// write renders to the configured output, replacing the file if one is set.
func (a *app) write(blobs []cliconfig.Blob) error {
	var buf bytes.Buffer
	if err := a.renderTo(&buf, blobs); err != nil {
		return err
	}

	if a.cfg.Output == "" {
		if _, err := a.stdout.Write(buf.Bytes()); err != nil {
			return &initError{err: fmt.Errorf("write output: %w", err)}
		}
		return nil
	}
	if err := os.WriteFile(a.cfg.Output, buf.Bytes(), 0o644); err != nil {
		return &initError{err: fmt.Errorf("write output: %w", err)}
	}
	a.logger.Info("resume written", log.String("path", a.cfg.Output), log.Size("size", buf.Len()))
	return nil
}
