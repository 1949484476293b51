package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Tiliavir/intrack/internal/command"
	"github.com/Tiliavir/intrack/internal/filter"
	"github.com/Tiliavir/intrack/internal/messages"
	"github.com/Tiliavir/intrack/internal/model"
	"github.com/Tiliavir/intrack/internal/parser"
	"github.com/Tiliavir/intrack/internal/storage"
)

// session is one load, execute, save cycle over the data file.
type session struct {
	path    string
	tracker *model.Tracker
	parser  *parser.Parser
	dirty   bool
}

func openSession() (*session, error) {
	path := storage.DataFilePath(base)
	snap, err := storage.Load(path)
	if err != nil {
		return nil, err
	}
	filters, err := filter.NewCompiler(cfg.FilterCacheSize, logger)
	if err != nil {
		return nil, err
	}

	s := &session{
		path:    path,
		tracker: model.NewTracker(snap.Internships),
		parser:  parser.New(filters),
	}
	s.tracker.RestoreView(snap.View, snap.Filtered)
	s.tracker.Subscribe(func(c model.Change) {
		logger.Debug("model changed", zap.Stringer("kind", c.Kind), zap.Stringer("id", c.ID))
		s.dirty = true
	})

	logger.Debug("loaded internships", zap.String("path", path), zap.Int("count", len(snap.Internships)))
	return s, nil
}

// run executes c and prints its feedback, followed by the displayed list
// when c changes what is displayed.
func (s *session) run(c command.Command, out io.Writer) (command.Result, error) {
	logger.Debug("executing command", zap.Stringer("command", c))
	res, err := c.Execute(s.tracker)
	if err != nil {
		logger.Debug("command failed", zap.Stringer("kind", command.KindOf(err)), zap.Error(err))
		return res, err
	}
	fmt.Fprintln(out, res.Feedback)
	if showsList(c) {
		printInternships(out, s.tracker.FilteredInternships())
	}
	return res, nil
}

func (s *session) save() error {
	if !s.dirty {
		return nil
	}
	view, filtered := s.tracker.View()
	snap := storage.Snapshot{
		Version:     storage.SnapshotVersion,
		Internships: s.tracker.Internships(),
		View:        view,
		Filtered:    filtered,
	}
	if err := storage.Save(s.path, snap); err != nil {
		return err
	}
	s.dirty = false
	logger.Debug("saved internships", zap.String("path", s.path), zap.Int("count", len(snap.Internships)))
	return nil
}

func showsList(c command.Command) bool {
	switch c.(type) {
	case command.List, command.Find, command.Filter:
		return true
	}
	return false
}

// printInternships prints the displayed list with one-based indices.
func printInternships(out io.Writer, list []model.Internship) {
	if len(list) == 0 {
		fmt.Fprintln(out, "No internships found.")
		return
	}
	for i, in := range list {
		fmt.Fprintf(out, "%d. %s\n", i+1, strings.TrimPrefix(messages.Format(in), "\n"))
	}
}

// runCommand is the one-shot path shared by all editing and viewing
// sub-commands. User errors exit 1, storage errors exit 2.
func runCommand(word string, args *parser.ArgumentMultimap) {
	s, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	c, err := s.parser.Build(word, args)
	if err == nil {
		_, err = s.run(c, os.Stdout)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if command.KindOf(err) == command.KindUnknown {
			os.Exit(2)
		}
		os.Exit(1)
	}

	if err := s.save(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
