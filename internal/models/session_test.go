package models

import (
	"encoding/json"
	"testing"
)

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession()
	if s.State != StateStart {
		t.Errorf("expected initial state %s, got %s", StateStart, s.State)
	}
	if s.Language != DefaultLanguage {
		t.Errorf("expected default language %s, got %s", DefaultLanguage, s.Language)
	}
	if s.LanguageSet || s.LocationSetupComplete {
		t.Error("expected fresh session with no flags set")
	}
	if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestResetPreservesLocationAndLanguage(t *testing.T) {
	s := NewSession()
	s.Language = LanguageHindi
	s.LanguageSet = true
	lat := 19.5
	s.Latitude = &lat
	s.DistrictCode = "507"
	s.LocationSetupComplete = true
	s.State = StateSolvencyCollectCrop
	s.Crop = "cotton"
	s.DistrictMap = map[string]string{"1": "507"}
	s.AvailablePlots = []string{"12", "13"}

	s.Reset()

	if s.State != StateMainMenu {
		t.Errorf("expected state %s after reset with complete setup, got %s", StateMainMenu, s.State)
	}
	if s.Language != LanguageHindi || !s.LanguageSet {
		t.Error("reset must preserve language")
	}
	if s.Latitude == nil || s.DistrictCode != "507" || !s.LocationSetupComplete {
		t.Error("reset must preserve location data")
	}
	if s.Crop != "" {
		t.Errorf("reset must clear crop, got %q", s.Crop)
	}
	if s.DistrictMap != nil || s.AvailablePlots != nil {
		t.Error("reset must clear selection maps and plot list")
	}
}

func TestResetWithoutCompleteSetup(t *testing.T) {
	s := NewSession()
	s.State = StateSetupSelectVillage
	s.Reset()
	if s.State != StateStart {
		t.Errorf("expected state %s after reset with incomplete setup, got %s", StateStart, s.State)
	}
}

func TestFullResetClearsEverything(t *testing.T) {
	s := NewSession()
	created := s.CreatedAt
	s.Language = LanguageMarathi
	s.LanguageSet = true
	lat, area := 19.5, 120.0
	s.Latitude = &lat
	s.FarmAreaAres = &area
	s.OwnerName = "Ramesh"
	s.LocationSetupComplete = true
	s.WaterBalanceValue = &area
	s.Crop = "soybean"
	s.OwnerMap = map[string]PlotOwner{"1": {Name: "Ramesh", AreaAres: 120}}

	s.FullReset()

	if s.State != StateStart {
		t.Errorf("expected state %s after full reset, got %s", StateStart, s.State)
	}
	if s.LanguageSet || s.Language != DefaultLanguage {
		t.Error("full reset must clear language")
	}
	if s.Latitude != nil || s.FarmAreaAres != nil || s.OwnerName != "" || s.LocationSetupComplete {
		t.Error("full reset must clear location data")
	}
	if s.WaterBalanceValue != nil || s.Crop != "" || s.OwnerMap != nil {
		t.Error("full reset must clear cached balance, crop and maps")
	}
	if !s.CreatedAt.Equal(created) {
		t.Error("full reset must preserve CreatedAt")
	}
}

func TestClearSelectionMaps(t *testing.T) {
	s := NewSession()
	s.DistrictMap = map[string]string{"1": "507"}
	s.TalukaMap = map[string]string{"1": "4280"}
	s.VillageMap = map[string]string{"1": "555208"}
	s.OwnerMap = map[string]PlotOwner{"1": {Name: "x"}}

	s.ClearSelectionMaps()

	if s.DistrictMap != nil || s.TalukaMap != nil || s.VillageMap != nil || s.OwnerMap != nil {
		t.Error("expected all selection maps cleared")
	}
}

func TestIsValidState(t *testing.T) {
	for _, state := range []StateType{StateStart, StateSelectLanguage, StateSetupAreaType, StateMainMenu, StateSolvencyCollectCrop} {
		if !IsValidState(state) {
			t.Errorf("expected %s to be valid", state)
		}
	}
	if IsValidState(StateType("BOGUS")) {
		t.Error("expected BOGUS to be invalid")
	}
}

func TestSessionJSONRoundTrip(t *testing.T) {
	s := NewSession()
	s.Language = LanguageHindi
	s.LanguageSet = true
	s.State = StateSetupSelectOwner
	lat := 19.123456
	s.Latitude = &lat
	s.OwnerMap = map[string]PlotOwner{"2": {Name: "Sita", AreaAres: 80.5}}
	s.WaterBalanceData = map[string]float64{"balance": 5000}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var got Session
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got.State != StateSetupSelectOwner || got.Language != LanguageHindi {
		t.Errorf("round trip lost state or language: %+v", got)
	}
	if got.Latitude == nil || *got.Latitude != lat {
		t.Error("round trip lost latitude")
	}
	if got.OwnerMap["2"].Name != "Sita" || got.OwnerMap["2"].AreaAres != 80.5 {
		t.Errorf("round trip lost owner map: %+v", got.OwnerMap)
	}
	if got.WaterBalanceData["balance"] != 5000 {
		t.Error("round trip lost balance data")
	}
}
