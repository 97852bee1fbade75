// Package models defines the core data structures for JalMitra.
//
// It includes the per-user conversation session, the closed state enumeration
// for the dialogue state machine, and the message/receipt types shared across
// the messaging modules.
package models

import "time"

// StateType identifies a position in the conversation state machine.
type StateType string

// Conversation states. The machine starts in StateStart and cycles between
// StateMainMenu and the advisory sub-flows; there is no terminal state.
const (
	StateStart               StateType = "START"
	StateSelectLanguage      StateType = "SELECT_LANGUAGE"
	StateSetupAreaType       StateType = "SETUP_AREA_TYPE"
	StateSetupSelectDistrict StateType = "SETUP_SELECT_DISTRICT"
	StateSetupSelectTaluka   StateType = "SETUP_SELECT_TALUKA"
	StateSetupSelectVillage  StateType = "SETUP_SELECT_VILLAGE"
	StateSetupSelectPlot     StateType = "SETUP_SELECT_PLOT"
	StateSetupSelectOwner    StateType = "SETUP_SELECT_OWNER"
	StateMainMenu            StateType = "MAIN_MENU"
	StateSowingCollectCrop   StateType = "SOWING_COLLECT_CROP"
	StateSolvencyCollectCrop StateType = "SOLVENCY_COLLECT_CROP"
)

// IsValidState checks if the given state is a known conversation state.
func IsValidState(s StateType) bool {
	switch s {
	case StateStart, StateSelectLanguage, StateSetupAreaType,
		StateSetupSelectDistrict, StateSetupSelectTaluka, StateSetupSelectVillage,
		StateSetupSelectPlot, StateSetupSelectOwner,
		StateMainMenu, StateSowingCollectCrop, StateSolvencyCollectCrop:
		return true
	default:
		return false
	}
}

// Language identifies a supported reply language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageMarathi Language = "mr"
)

// DefaultLanguage is used before the user has made an explicit choice.
const DefaultLanguage = LanguageEnglish

// PlotOwner holds the name and holding size of one owner of a surveyed plot,
// as resolved from the backend's plot-info endpoint.
type PlotOwner struct {
	Name     string  `json:"name"`
	AreaAres float64 `json:"area_ares"`
}

// Session tracks one user's conversation context and accumulated answers.
// It is keyed by the messaging-platform user identifier and mutated only by
// the engine's handlers. All fields are JSON-tagged so persistent session
// stores can serialize the record as a single blob.
type Session struct {
	State StateType `json:"state"`

	// Language preference. LanguageSet distinguishes "default English" from
	// "user explicitly chose English".
	Language    Language `json:"language"`
	LanguageSet bool     `json:"language_set"`

	// Location data, set once during setup and persisted across sub-flows.
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	FarmAreaAres   *float64 `json:"farm_area_ares,omitempty"`
	Area           string   `json:"area,omitempty"` // "R" or "U"
	DistrictCode   string   `json:"district_code,omitempty"`
	TalukaCode     string   `json:"taluka_code,omitempty"`
	VillageCode    string   `json:"village_code,omitempty"`
	VillageGISCode string   `json:"village_gis_code,omitempty"`
	PlotNo         string   `json:"plot_no,omitempty"`
	OwnerName      string   `json:"owner_name,omitempty"`

	// LocationSetupComplete gates soft resets: once true they return directly
	// to the main menu instead of re-running location setup.
	LocationSetupComplete bool `json:"location_setup_complete"`

	// Groundwater balance, computed once after owner selection and reused by
	// later water-requirement comparisons. Value is nil when the backend
	// payload carried no recognizable numeric field.
	WaterBalanceValue *float64           `json:"water_balance_value,omitempty"`
	WaterBalanceData  map[string]float64 `json:"water_balance_data,omitempty"`

	// Transient flow data, cleared on soft reset. Each selection map resolves
	// the 1-based index shown in the last list message to an underlying code
	// or record; it is valid only for the single reply that follows.
	Crop           string               `json:"crop,omitempty"`
	AvailablePlots []string             `json:"available_plots,omitempty"`
	DistrictMap    map[string]string    `json:"district_map,omitempty"`
	TalukaMap      map[string]string    `json:"taluka_map,omitempty"`
	VillageMap     map[string]string    `json:"village_map,omitempty"`
	OwnerMap       map[string]PlotOwner `json:"owner_map,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession returns a fresh session positioned at the start of the dialogue.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		State:     StateStart,
		Language:  DefaultLanguage,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasCoordinates reports whether the session has resolved plot coordinates.
func (s *Session) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// Reset clears transient flow data but preserves language, location and the
// cached balance. The state returns to the main menu when location setup is
// complete, otherwise back to the start of the dialogue.
func (s *Session) Reset() {
	if s.LocationSetupComplete {
		s.State = StateMainMenu
	} else {
		s.State = StateStart
	}
	s.Crop = ""
	s.AvailablePlots = nil
	s.DistrictMap = nil
	s.TalukaMap = nil
	s.VillageMap = nil
	s.OwnerMap = nil
	s.UpdatedAt = time.Now()
}

// FullReset clears everything including language, location and the cached
// groundwater balance.
func (s *Session) FullReset() {
	created := s.CreatedAt
	*s = *NewSession()
	s.CreatedAt = created
}

// ClearSelectionMaps drops every index-to-code map so a stale index from a
// previously shown list can never resolve against a newer one.
func (s *Session) ClearSelectionMaps() {
	s.DistrictMap = nil
	s.TalukaMap = nil
	s.VillageMap = nil
	s.OwnerMap = nil
}
