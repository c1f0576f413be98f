package store

import (
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"
)

// GameRecord is the persisted progress of one game.
type GameRecord struct {
	BestScore  int `json:"bestScore"`
	TimePlayed int `json:"timePlayed"` // seconds
}

// GameRecords maps game ids to their records.
type GameRecords map[string]GameRecord

// Preferences holds quick toggles set from the shell.
type Preferences struct {
	SoundEnabled bool `json:"soundEnabled"`
}

// Settings holds the user settings panel.
type Settings struct {
	Volume       int    `json:"soundVolume"`
	MuteEffects  bool   `json:"muteEffects"`
	MuteMusic    bool   `json:"muteMusic"`
	Animations   bool   `json:"animations"`
	HighContrast bool   `json:"highContrast"`
	Difficulty   string `json:"difficulty"`
}

// Themes accepted by SetTheme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultSettings returns the settings used when none are stored.
func DefaultSettings() Settings {
	return Settings{
		Volume:     80,
		Animations: true,
		Difficulty: "medium",
	}
}

// DefaultPreferences returns the preferences used when none are stored.
func DefaultPreferences() Preferences {
	return Preferences{SoundEnabled: true}
}

// Progress reads and writes the typed blobs kept under the storage keys.
// Corrupt blobs are logged and replaced by defaults.
type Progress struct {
	kv  KV
	log *log.Logger
}

// NewProgress creates a Progress over kv. logger may be nil.
func NewProgress(kv KV, logger *log.Logger) *Progress {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Progress{kv: kv, log: logger}
}

func (p *Progress) decode(key, def string, v any) bool {
	raw := p.kv.Get(key, def)
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		p.log.Warn("ignoring corrupt blob", "key", key, "err", err)
		return false
	}
	return true
}

func (p *Progress) encode(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		p.log.Error("encoding blob", "key", key, "err", err)
		return
	}
	p.kv.Set(key, string(raw))
}

// Games returns every stored game record.
func (p *Progress) Games() GameRecords {
	recs := make(GameRecords)
	if !p.decode(KeyGames, "{}", &recs) || recs == nil {
		recs = make(GameRecords)
	}
	return recs
}

// SaveGame stores the record for id, keeping the other games' records.
func (p *Progress) SaveGame(id string, rec GameRecord) {
	recs := p.Games()
	recs[id] = rec
	p.encode(KeyGames, recs)
}

// Preferences returns the stored preferences.
func (p *Progress) Preferences() Preferences {
	prefs := DefaultPreferences()
	if !p.decode(KeyPreferences, "{}", &prefs) {
		return DefaultPreferences()
	}
	return prefs
}

// SavePreferences stores prefs.
func (p *Progress) SavePreferences(prefs Preferences) {
	p.encode(KeyPreferences, prefs)
}

// Theme returns the stored theme name.
func (p *Progress) Theme() string {
	switch t := p.kv.Get(KeyTheme, ThemeLight); t {
	case ThemeLight, ThemeDark:
		return t
	default:
		return ThemeLight
	}
}

// SetTheme stores the theme name.
func (p *Progress) SetTheme(theme string) {
	p.kv.Set(KeyTheme, theme)
}

// Settings returns the stored settings. Fields missing from the blob keep
// their defaults.
func (p *Progress) Settings() Settings {
	s := DefaultSettings()
	if !p.decode(KeySettings, "{}", &s) {
		return DefaultSettings()
	}
	s.Volume = min(max(s.Volume, 0), 100)
	return s
}

// SaveSettings stores s.
func (p *Progress) SaveSettings(s Settings) {
	p.encode(KeySettings, s)
}

// ResetSettings stores and returns the default settings.
func (p *Progress) ResetSettings() Settings {
	s := DefaultSettings()
	p.SaveSettings(s)
	return s
}
