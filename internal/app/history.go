package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const historyMaxAge = 30 * 24 * time.Hour
const historyMaxEntries = 50

// historyEntry is the persisted form of pastSearch
type historyEntry struct {
	TicketID    string    `json:"ticket_id"`
	WorkingCopy string    `json:"working_copy"`
	Changesets  int       `json:"changesets"`
	SearchedAt  time.Time `json:"searched_at"`
}

func historyPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "tixview-history.json"), nil
}

// loadHistory loads and prunes old entries from the history file
func loadHistory() []pastSearch {
	path, err := historyPath()
	if err != nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var entries []historyEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}

	cutoff := time.Now().Add(-historyMaxAge)
	var valid []historyEntry
	for _, e := range entries {
		if e.SearchedAt.After(cutoff) {
			valid = append(valid, e)
		}
	}

	// Rewrite file if we pruned anything
	if len(valid) != len(entries) {
		saveHistoryEntries(valid)
	}

	var result []pastSearch
	for _, e := range valid {
		result = append(result, pastSearch{
			ticketID:    e.TicketID,
			workingCopy: e.WorkingCopy,
			changesets:  e.Changesets,
			searchedAt:  e.SearchedAt,
		})
	}
	return result
}

// recordSearch prepends the search to the in-memory history and persists it
func (m *Model) recordSearch(ticketID, workingCopy string, changesets int) {
	entry := pastSearch{
		ticketID:    ticketID,
		workingCopy: workingCopy,
		changesets:  changesets,
		searchedAt:  time.Now(),
	}

	// Drop an earlier search of the same ticket in the same checkout
	var kept []pastSearch
	for _, s := range m.searches {
		if s.ticketID == ticketID && s.workingCopy == workingCopy {
			continue
		}
		kept = append(kept, s)
	}

	m.searches = append([]pastSearch{entry}, kept...)
	if len(m.searches) > historyMaxEntries {
		m.searches = m.searches[:historyMaxEntries]
	}
	saveHistory(m.searches)
}

// saveHistory saves the current searches to disk
func saveHistory(searches []pastSearch) {
	var entries []historyEntry
	for _, s := range searches {
		entries = append(entries, historyEntry{
			TicketID:    s.ticketID,
			WorkingCopy: s.workingCopy,
			Changesets:  s.changesets,
			SearchedAt:  s.searchedAt,
		})
	}
	saveHistoryEntries(entries)
}

func saveHistoryEntries(entries []historyEntry) {
	path, err := historyPath()
	if err != nil {
		return
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
