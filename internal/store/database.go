package store

import (
	"fmt"

	"github.com/Vajbratya/automnator/internal/models"
)

const databaseVersion = 1

// database is the full persisted snapshot: one JSON document with every
// entity map keyed by id.
type database struct {
	Version    int                               `json:"version"`
	Users      map[string]*models.User           `json:"users"`
	Sources    map[string]*models.ResearchSource `json:"sources"`
	Captures   map[string]*models.CapturedPost   `json:"captures"`
	Drafts     map[string]*models.Draft          `json:"drafts"`
	Schedules  map[string]*models.Schedule       `json:"schedules"`
	Posts      map[string]*models.Post           `json:"posts"`
	ActionLogs map[string]*models.ActionLog      `json:"actionLogs"`
}

func newDatabase() *database {
	return &database{
		Version:    databaseVersion,
		Users:      map[string]*models.User{},
		Sources:    map[string]*models.ResearchSource{},
		Captures:   map[string]*models.CapturedPost{},
		Drafts:     map[string]*models.Draft{},
		Schedules:  map[string]*models.Schedule{},
		Posts:      map[string]*models.Post{},
		ActionLogs: map[string]*models.ActionLog{},
	}
}

// validate checks the loaded document against the schema the store knows
// how to operate on. A document that fails here is treated as absent.
func (db *database) validate() error {
	if db.Version != databaseVersion {
		return fmt.Errorf("unsupported database version %d", db.Version)
	}
	for id, s := range db.Schedules {
		if s == nil {
			return fmt.Errorf("schedule %s: empty record", id)
		}
		if !models.ValidScheduleStatus(s.Status) {
			return fmt.Errorf("schedule %s: unknown status %q", id, s.Status)
		}
		if !models.ValidApprovalState(s.ApprovalState) {
			return fmt.Errorf("schedule %s: unknown approval state %q", id, s.ApprovalState)
		}
	}
	for id, d := range db.Drafts {
		if d == nil {
			return fmt.Errorf("draft %s: empty record", id)
		}
		if !models.ValidDraftStatus(d.Status) {
			return fmt.Errorf("draft %s: unknown status %q", id, d.Status)
		}
	}

	if db.Users == nil {
		db.Users = map[string]*models.User{}
	}
	if db.Sources == nil {
		db.Sources = map[string]*models.ResearchSource{}
	}
	if db.Captures == nil {
		db.Captures = map[string]*models.CapturedPost{}
	}
	if db.Drafts == nil {
		db.Drafts = map[string]*models.Draft{}
	}
	if db.Schedules == nil {
		db.Schedules = map[string]*models.Schedule{}
	}
	if db.Posts == nil {
		db.Posts = map[string]*models.Post{}
	}
	if db.ActionLogs == nil {
		db.ActionLogs = map[string]*models.ActionLog{}
	}
	return nil
}
