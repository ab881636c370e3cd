package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
}

// SavedRecords holds the all-time records stored on disk
type SavedRecords struct {
	BestDistanceM float64 `json:"bestDistanceM"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "snowrush",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
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
	if !gdataInitialized || gdataManager == nil {
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

// ApplySavedSettings applies loaded settings during startup
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// LoadRecords loads the all-time records from disk
func LoadRecords() *SavedRecords {
	if !gdataInitialized || gdataManager == nil {
		return &SavedRecords{}
	}

	data, err := gdataManager.LoadItem("records")
	if err != nil {
		log.Printf("Warning: Could not load records: %v", err)
		return &SavedRecords{}
	}
	if len(data) == 0 {
		return &SavedRecords{}
	}

	var records SavedRecords
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Warning: Could not parse saved records: %v", err)
		return &SavedRecords{}
	}

	return &records
}

// SaveBestDistance persists a new best run when it beats the stored one
func SaveBestDistance(meters float64) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	records := LoadRecords()
	if meters <= records.BestDistanceM {
		return nil
	}
	records.BestDistanceM = meters

	data, err := json.Marshal(records)
	if err != nil {
		log.Printf("Warning: Could not serialize records: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("records", data); err != nil {
		log.Printf("Warning: Could not save records: %v", err)
		return err
	}
	return nil
}

// ClearRecords wipes the stored records (menu "Reset Best")
func ClearRecords() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	if err := gdataManager.SaveItem("records", nil); err != nil {
		log.Printf("Warning: Could not clear records: %v", err)
		return err
	}
	return nil
}
