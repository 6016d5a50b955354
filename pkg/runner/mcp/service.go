// Package mcp provides the Model Context Protocol server integration for the
// gratitude journal.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/datekey"
	"tableflip.dev/gratitude/pkg/entry"
)

// Service coordinates journal operations that are shared by the MCP tools
// and resources. Each call rereads the store first, since the journal may
// be edited by another process while the server runs.
type Service struct {
	Journal *app.Journal
}

// ErrEntryNotFound is returned when no entry exists for a date.
var ErrEntryNotFound = errors.New("entry not found")

const layoutISO = "2006-01-02"

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	Key     string `json:"key"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// StatsDTO summarizes the journal.
type StatsDTO struct {
	Today         string `json:"today"`
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	TotalEntries  int    `json:"totalEntries"`
}

// NewService builds a service over journal.
func NewService(j *app.Journal) *Service {
	return &Service{Journal: j}
}

func (s *Service) ready(ctx context.Context) error {
	if s.Journal == nil {
		return errors.New("journal is not configured")
	}
	s.Journal.Reload(ctx)
	return nil
}

func (s *Service) parseDate(input string) (entry.Entry, error) {
	d, err := datekey.Parse(input, s.Journal.Now())
	if err != nil {
		return entry.Entry{}, fmt.Errorf("invalid date %q: %w", input, err)
	}
	return entry.Entry{Key: datekey.Encode(d), Date: d}, nil
}

// GetEntry returns the entry for date (see datekey.Parse; empty is today).
func (s *Service) GetEntry(ctx context.Context, date string) (EntryDTO, error) {
	if err := s.ready(ctx); err != nil {
		return EntryDTO{}, err
	}
	e, err := s.parseDate(date)
	if err != nil {
		return EntryDTO{}, err
	}
	content, ok := s.Journal.Entry(e.Date)
	if !ok {
		return EntryDTO{}, fmt.Errorf("%w for %s", ErrEntryNotFound, e.Title())
	}
	e.Content = content
	return toDTO(e), nil
}

// WriteEntry stores content for date, replacing what was there.
func (s *Service) WriteEntry(ctx context.Context, date, content string) (EntryDTO, error) {
	if strings.TrimSpace(content) == "" {
		return EntryDTO{}, errors.New("content is required; use delete_entry to remove an entry")
	}
	if err := s.ready(ctx); err != nil {
		return EntryDTO{}, err
	}
	e, err := s.parseDate(date)
	if err != nil {
		return EntryDTO{}, err
	}
	if _, err := s.Journal.Save(ctx, e.Date, content); err != nil {
		return EntryDTO{}, err
	}
	e.Content, _ = s.Journal.Entry(e.Date)
	return toDTO(e), nil
}

// DeleteEntry removes the entry for date and returns what was removed.
func (s *Service) DeleteEntry(ctx context.Context, date string) (EntryDTO, error) {
	dto, err := s.GetEntry(ctx, date)
	if err != nil {
		return EntryDTO{}, err
	}
	e, err := s.parseDate(date)
	if err != nil {
		return EntryDTO{}, err
	}
	if _, err := s.Journal.Delete(ctx, e.Date); err != nil {
		return EntryDTO{}, err
	}
	return dto, nil
}

// ListEntries returns entries oldest first. An empty window lists all of
// them; otherwise only the days in the window ending today.
func (s *Service) ListEntries(ctx context.Context, window string) ([]EntryDTO, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	var entries []entry.Entry
	if strings.TrimSpace(window) == "" {
		entries = s.Journal.Entries()
	} else {
		res, err := s.Journal.Report(window)
		if err != nil {
			return nil, err
		}
		entries = res.Entries
	}
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out, nil
}

// Stats returns streak and count figures as of today.
func (s *Service) Stats(ctx context.Context) (StatsDTO, error) {
	if err := s.ready(ctx); err != nil {
		return StatsDTO{}, err
	}
	snap := s.Journal.Snapshot()
	return StatsDTO{
		Today:         snap.Today.Format(layoutISO),
		CurrentStreak: snap.Streak,
		LongestStreak: snap.Longest,
		TotalEntries:  snap.Total,
	}, nil
}

func toDTO(e entry.Entry) EntryDTO {
	dto := EntryDTO{
		Key:     e.Key,
		Title:   e.Title(),
		Content: e.Content,
	}
	if !e.Date.IsZero() {
		dto.Date = e.Date.Format(layoutISO)
	}
	return dto
}
