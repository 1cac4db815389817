package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// DuelRecord is the win/loss tally stored on disk.
type DuelRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// Add counts one finished round.
func (r *DuelRecord) Add(outcome string) {
	switch outcome {
	case cfg.OutcomeWin:
		r.Wins++
	case cfg.OutcomeLose:
		r.Losses++
	case cfg.OutcomeDraw:
		r.Draws++
	}
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	AutoFire bool `json:"autoFire"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for the duel record
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "archerduel",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadRecord loads the duel record, returning an empty one when nothing
// has been saved yet.
func LoadRecord() (*DuelRecord, error) {
	record := &DuelRecord{}
	if !gdataInitialized || gdataManager == nil {
		return record, nil
	}

	data, err := gdataManager.LoadItem("record")
	if err != nil {
		log.Printf("Warning: Could not load duel record: %v", err)
		return record, nil
	}
	if len(data) == 0 {
		return record, nil
	}

	if err := json.Unmarshal(data, record); err != nil {
		log.Printf("Warning: Could not parse duel record: %v", err)
		return &DuelRecord{}, err
	}
	return record, nil
}

func SaveRecord(record *DuelRecord) error {
	if !gdataInitialized || gdataManager == nil || record == nil {
		return nil
	}

	data, err := json.Marshal(record)
	if err != nil {
		log.Printf("Warning: Could not serialize duel record: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("record", data); err != nil {
		log.Printf("Warning: Could not save duel record: %v", err)
		return err
	}
	return nil
}

// RecordOutcomes subscribes the record to the round's outcome and saves it
// each time a round ends.
func RecordOutcomes(ecs *ecs.ECS, record *DuelRecord) {
	re, ok := components.Round.First(ecs.World)
	if !ok || record == nil {
		return
	}
	round := components.Round.Get(re)
	round.OnOutcome = append(round.OnOutcome, func(outcome string) {
		record.Add(outcome)
		_ = SaveRecord(record)
	})
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}
