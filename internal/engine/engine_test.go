package engine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/JalMitra/JalMitra/internal/advisory"
	"github.com/JalMitra/JalMitra/internal/i18n"
	"github.com/JalMitra/JalMitra/internal/models"
	"github.com/JalMitra/JalMitra/internal/store"
)

const testUser = "+919800000001"

// advisoryStub serves a fixed location hierarchy and advisory figures:
// one district, one taluka, one village, plots 12 and 13, one owner with a
// 120-ares holding and a groundwater balance of 5000 litres. Cotton needs
// 4500 litres (solvent), sugarcane 6000 (insolvent), dragonfruit is unknown.
func advisoryStub(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/levels/districts":
			w.Write([]byte(`[{"code": "507", "name": "Jalna"}]`))
		case "/levels/talukas":
			w.Write([]byte(`[{"code": "4280", "name": "Badnapur"}]`))
		case "/levels/villages":
			w.Write([]byte(`[{"code": "1", "name": "Shelgaon", "gisCode": "555208"}]`))
		case "/levels/surveys":
			w.Write([]byte(`["12", "13"]`))
		case "/levels/plot-info":
			w.Write([]byte(`{"latitude": 19.5, "longitude": 76.25, "owners": [{"ownerName": "Ramesh Patil", "totalArea": 120}]}`))
		case "/balance/gw-balance":
			w.Write([]byte(`{"gw_balance": 5000}`))
		case "/crop/water-requirement":
			var req struct {
				Crop string `json:"crop"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			required := "4500"
			if req.Crop == "sugarcane" {
				required = "6000"
			}
			w.Write([]byte(`{
				"crop_used": "` + req.Crop + `",
				"season": "kharif",
				"station": "jalna",
				"crop_et_mm": 550,
				"water_required_litres": ` + required + `,
				"total_revenue": 45000
			}`))
		case "/crop/top-crops":
			w.Write([]byte(`{
				"season": "kharif",
				"station": "jalna",
				"top_3_crops": [
					{"crop": "soybean", "profit_metric": 1.2345},
					{"crop": "cotton", "profit_metric": 1.1}
				]
			}`))
		case "/sowing/best-sowing-day":
			if r.URL.Query().Get("crop") == "dragonfruit" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error": "Crop not found: dragonfruit"}`))
				return
			}
			w.Write([]byte(`{
				"crop": "cotton",
				"best_day": {"date": "2026-06-15", "score": 0.92, "soil_temp": 28.5, "soil_moisture": 0.31, "rain_prob": 0.6, "rain_mm": 12.5},
				"top_3_days": [
					{"date": "2026-06-15", "score": 0.92},
					{"date": "2026-06-18", "score": 0.88}
				]
			}`))
		default:
			t.Errorf("unexpected backend path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newTestEngine(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Engine, store.SessionStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	backend, err := advisory.NewClient(advisory.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("advisory.NewClient failed: %v", err)
	}
	sessions := store.NewInMemoryStore(time.Hour)
	t.Cleanup(func() { sessions.Close() })
	return NewEngine(sessions, backend, opts...), sessions
}

func send(t *testing.T, e *Engine, message string) string {
	t.Helper()
	return e.HandleIncoming(context.Background(), testUser, message)
}

// completeSetup walks a fresh user through language selection and the whole
// location setup chain in English.
func completeSetup(t *testing.T, e *Engine) {
	t.Helper()
	for _, message := range []string{"hi", "1", "r", "1", "1", "1", "12", "1"} {
		send(t, e, message)
	}
}

func getSession(t *testing.T, sessions store.SessionStore) *models.Session {
	t.Helper()
	session, err := sessions.Get(context.Background(), testUser)
	if err != nil {
		t.Fatalf("session lookup failed: %v", err)
	}
	if session == nil {
		t.Fatal("expected a stored session")
	}
	return session
}

func TestFullSetupFlow(t *testing.T) {
	e, sessions := newTestEngine(t, advisoryStub(t))

	reply := send(t, e, "hi")
	if !strings.Contains(reply, i18n.Get(i18n.KeyWelcomeLanguage, models.LanguageEnglish, nil)) {
		t.Fatalf("expected language prompt, got %q", reply)
	}

	reply = send(t, e, "1")
	if !strings.Contains(reply, i18n.Get(i18n.KeyAskAreaType, models.LanguageEnglish, nil)) {
		t.Fatalf("expected area type prompt, got %q", reply)
	}

	reply = send(t, e, "r")
	if !strings.Contains(reply, "1. Jalna") {
		t.Fatalf("expected numbered district list, got %q", reply)
	}

	reply = send(t, e, "1")
	if !strings.Contains(reply, "1. Badnapur") {
		t.Fatalf("expected numbered taluka list, got %q", reply)
	}

	reply = send(t, e, "1")
	if !strings.Contains(reply, "1. Shelgaon") {
		t.Fatalf("expected numbered village list, got %q", reply)
	}

	reply = send(t, e, "1")
	if !strings.Contains(reply, "2") {
		t.Fatalf("expected plot count in %q", reply)
	}

	reply = send(t, e, "12")
	if !strings.Contains(reply, "Ramesh Patil") {
		t.Fatalf("expected owner list, got %q", reply)
	}

	reply = send(t, e, "1")
	if !strings.Contains(reply, i18n.Get(i18n.KeyLocationSaved, models.LanguageEnglish, nil)) {
		t.Fatalf("expected location saved confirmation, got %q", reply)
	}

	session := getSession(t, sessions)
	if session.State != models.StateMainMenu {
		t.Errorf("expected state MAIN_MENU, got %s", session.State)
	}
	if !session.LocationSetupComplete {
		t.Error("expected setup complete")
	}
	if session.Latitude == nil || *session.Latitude != 19.5 {
		t.Errorf("expected latitude 19.5, got %v", session.Latitude)
	}
	if session.WaterBalanceValue == nil || *session.WaterBalanceValue != 5000 {
		t.Errorf("expected cached balance 5000, got %v", session.WaterBalanceValue)
	}
	if session.OwnerName != "Ramesh Patil" || session.FarmAreaAres == nil || *session.FarmAreaAres != 120 {
		t.Errorf("expected owner and area saved, got %q %v", session.OwnerName, session.FarmAreaAres)
	}
}

func TestSolvencySuccess(t *testing.T) {
	e, sessions := newTestEngine(t, advisoryStub(t))
	completeSetup(t, e)

	send(t, e, "2")
	reply := send(t, e, "cotton")

	if !strings.Contains(reply, "4,500") || !strings.Contains(reply, "5,000") {
		t.Fatalf("expected requirement and balance figures, got %q", reply)
	}
	if strings.Contains(reply, i18n.Get(i18n.KeyRecommendationsHeader, models.LanguageEnglish, nil)) {
		t.Error("solvent crop must not trigger recommendations")
	}
	if getSession(t, sessions).State != models.StateMainMenu {
		t.Error("solvency flow must return to the main menu")
	}
}

func TestSolvencyFailureEscalatesInSameReply(t *testing.T) {
	e, sessions := newTestEngine(t, advisoryStub(t))
	completeSetup(t, e)

	send(t, e, "2")
	reply := send(t, e, "sugarcane")

	if !strings.Contains(reply, "6,000") {
		t.Fatalf("expected requirement figure, got %q", reply)
	}
	if !strings.Contains(reply, i18n.Get(i18n.KeyRecommendationsHeader, models.LanguageEnglish, nil)) {
		t.Fatalf("expected recommendations appended to the failure reply, got %q", reply)
	}
	if !strings.Contains(reply, "Soybean") {
		t.Fatalf("expected recommended crop in %q", reply)
	}
	if getSession(t, sessions).State != models.StateMainMenu {
		t.Error("solvency flow must return to the main menu")
	}
}

func TestSowingAdvisory(t *testing.T) {
	e, sessions := newTestEngine(t, advisoryStub(t))
	completeSetup(t, e)

	send(t, e, "1")
	reply := send(t, e, "cotton")

	if !strings.Contains(reply, "2026-06-15") {
		t.Fatalf("expected best sowing date, got %q", reply)
	}
	if !strings.Contains(reply, "2026-06-18") {
		t.Fatalf("expected alternative dates, got %q", reply)
	}
	if getSession(t, sessions).State != models.StateMainMenu {
		t.Error("sowing flow must return to the main menu")
	}
}

func TestSowingUnknownCrop(t *testing.T) {
	e, sessions := newTestEngine(t, advisoryStub(t))
	completeSetup(t, e)

	send(t, e, "1")
	reply := send(t, e, "dragonfruit")

	want := i18n.Get(i18n.KeyCropNotFound, models.LanguageEnglish, i18n.Params{"crop": "dragonfruit"})
	if !strings.Contains(reply, want) {
		t.Fatalf("expected crop-not-found message, got %q", reply)
	}
	if getSession(t, sessions).State != models.StateMainMenu {
		t.Error("unknown crop must still return to the main menu")
	}
}

func TestHardResetClearsEverything(t *testing.T) {
	e, sessions := newTestEngine(t, advisoryStub(t))
	completeSetup(t, e)

	reply := send(t, e, "reset")
	if !strings.Contains(reply, i18n.Get(i18n.KeyWelcomeLanguage, models.LanguageEnglish, nil)) {
		t.Fatalf("expected language prompt after reset, got %q", reply)
	}

	session := getSession(t, sessions)
	if session.State != models.StateSelectLanguage {
		t.Errorf("expected state SELECT_LANGUAGE, got %s", session.State)
	}
	if session.LanguageSet || session.LocationSetupComplete || session.Latitude != nil || session.WaterBalanceValue != nil {
		t.Error("hard reset must clear language, location and cached balance")
	}

	// The follow-up greeting must land back on the language prompt.
	reply = send(t, e, "hi")
	if !strings.Contains(reply, i18n.Get(i18n.KeyWelcomeLanguage, models.LanguageEnglish, nil)) {
		t.Fatalf("expected language prompt after reset+hi, got %q", reply)
	}
}

func TestGreetingAfterSetupReturnsToMenu(t *testing.T) {
	e, sessions := newTestEngine(t, advisoryStub(t))
	completeSetup(t, e)

	reply := send(t, e, "hello")
	if !strings.Contains(reply, i18n.Get(i18n.KeyMainMenu, models.LanguageEnglish, nil)) {
		t.Fatalf("expected main menu, got %q", reply)
	}

	session := getSession(t, sessions)
	if session.Latitude == nil || session.DistrictCode != "507" || !session.LocationSetupComplete {
		t.Error("greeting must preserve location data")
	}
}

func TestGreetingMidFlowAbandonsSubFlow(t *testing.T) {
	e, sessions := newTestEngine(t, advisoryStub(t))
	completeSetup(t, e)

	send(t, e, "2") // now collecting a crop name
	reply := send(t, e, "menu")
	if !strings.Contains(reply, i18n.Get(i18n.KeyMainMenu, models.LanguageEnglish, nil)) {
		t.Fatalf("expected main menu, got %q", reply)
	}
	if getSession(t, sessions).State != models.StateMainMenu {
		t.Error("greeting must abandon the crop-collection state")
	}
}

func TestStaleSelectionIndexRejected(t *testing.T) {
	e, sessions := newTestEngine(t, advisoryStub(t))
	send(t, e, "hi")
	send(t, e, "1")
	send(t, e, "r") // district list: only index 1 exists
	send(t, e, "1") // taluka list issued, district map cleared

	session := getSession(t, sessions)
	if session.DistrictMap != nil {
		t.Error("issuing the taluka list must clear the district map")
	}

	reply := send(t, e, "9")
	if !strings.Contains(reply, i18n.Get(i18n.KeyInvalidSelection, models.LanguageEnglish, nil)) {
		t.Fatalf("expected invalid selection, got %q", reply)
	}
	if getSession(t, sessions).State != models.StateSetupSelectTaluka {
		t.Error("invalid selection must not advance the state")
	}
}

func TestInvalidPlotNumber(t *testing.T) {
	e, sessions := newTestEngine(t, advisoryStub(t))
	send(t, e, "hi")
	for _, message := range []string{"1", "r", "1", "1", "1"} {
		send(t, e, message)
	}

	reply := send(t, e, "99")
	want := i18n.Get(i18n.KeyPlotNotFound, models.LanguageEnglish, i18n.Params{"plot_no": "99"})
	if !strings.Contains(reply, want) {
		t.Fatalf("expected plot-not-found with the typed number, got %q", reply)
	}
	if getSession(t, sessions).State != models.StateSetupSelectPlot {
		t.Error("invalid plot must not advance the state")
	}

	// The valid plot must still work afterwards.
	reply = send(t, e, "12")
	if !strings.Contains(reply, "Ramesh Patil") {
		t.Fatalf("expected owner list after retry, got %q", reply)
	}
}

func TestStartStateRederivation(t *testing.T) {
	e, sessions := newTestEngine(t, advisoryStub(t))

	session := models.NewSession()
	session.LanguageSet = true
	session.Language = models.LanguageEnglish
	session.LocationSetupComplete = true
	if err := sessions.Save(context.Background(), testUser, session); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reply := send(t, e, "anything")
	if !strings.Contains(reply, i18n.Get(i18n.KeyMainMenu, models.LanguageEnglish, nil)) {
		t.Fatalf("expected main menu for a complete session in START, got %q", reply)
	}
	if getSession(t, sessions).State != models.StateMainMenu {
		t.Error("START must re-derive to MAIN_MENU when setup is complete")
	}
}

func TestEmptyOwnerListCompletesSetup(t *testing.T) {
	stub := advisoryStub(t)
	e, sessions := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/levels/plot-info" {
			w.Write([]byte(`{"latitude": 19.5, "longitude": 76.25, "owners": []}`))
			return
		}
		stub(w, r)
	})
	send(t, e, "hi")
	for _, message := range []string{"1", "r", "1", "1", "1"} {
		send(t, e, message)
	}

	reply := send(t, e, "12")
	if !strings.Contains(reply, i18n.Get(i18n.KeyLocationSaved, models.LanguageEnglish, nil)) {
		t.Fatalf("expected setup completed directly, got %q", reply)
	}

	session := getSession(t, sessions)
	if !session.LocationSetupComplete || session.State != models.StateMainMenu {
		t.Error("ownerless plot must complete setup")
	}
	if session.FarmAreaAres == nil || *session.FarmAreaAres != 0 {
		t.Errorf("expected zero farm area, got %v", session.FarmAreaAres)
	}
	if session.OwnerName != "Unknown" {
		t.Errorf("expected owner Unknown, got %q", session.OwnerName)
	}
}

func TestBalanceFailureLeavesSetupIncomplete(t *testing.T) {
	stub := advisoryStub(t)
	e, sessions := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/balance/gw-balance" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		stub(w, r)
	})
	send(t, e, "hi")
	for _, message := range []string{"1", "r", "1", "1", "1", "12"} {
		send(t, e, message)
	}

	reply := send(t, e, "1")
	if strings.Contains(reply, i18n.Get(i18n.KeyLocationSaved, models.LanguageEnglish, nil)) {
		t.Fatalf("balance failure must not confirm setup, got %q", reply)
	}

	session := getSession(t, sessions)
	if session.LocationSetupComplete {
		t.Error("balance failure must leave setup incomplete")
	}
	if session.State != models.StateSetupSelectOwner {
		t.Errorf("expected state unchanged for retry, got %s", session.State)
	}
}

func TestConnectivityErrorKeepsState(t *testing.T) {
	backend, err := advisory.NewClient(advisory.WithBaseURL("http://127.0.0.1:1"))
	if err != nil {
		t.Fatalf("advisory.NewClient failed: %v", err)
	}
	sessions := store.NewInMemoryStore(time.Hour)
	defer sessions.Close()
	e := NewEngine(sessions, backend)

	send(t, e, "hi")
	send(t, e, "1")
	reply := send(t, e, "r")

	if !strings.Contains(reply, i18n.Get(i18n.KeyConnectionError, models.LanguageEnglish, nil)) {
		t.Fatalf("expected connectivity message, got %q", reply)
	}
	if getSession(t, sessions).State != models.StateSetupAreaType {
		t.Error("connectivity failure must not advance the state")
	}
}

func TestHindiRepliesAfterLanguageChoice(t *testing.T) {
	e, _ := newTestEngine(t, advisoryStub(t))
	send(t, e, "hi")
	reply := send(t, e, "2")
	if !strings.Contains(reply, i18n.Get(i18n.KeyAskAreaType, models.LanguageHindi, nil)) {
		t.Fatalf("expected Hindi area prompt, got %q", reply)
	}
}

func TestInvalidMenuChoice(t *testing.T) {
	e, _ := newTestEngine(t, advisoryStub(t))
	completeSetup(t, e)

	reply := send(t, e, "7")
	if !strings.Contains(reply, i18n.Get(i18n.KeyInvalidMenuChoice, models.LanguageEnglish, nil)) {
		t.Fatalf("expected invalid menu choice, got %q", reply)
	}
}

type stubCanonicalizer struct {
	mapping map[string]string
}

func (s *stubCanonicalizer) CanonicalizeCrop(ctx context.Context, raw string) (string, error) {
	if canonical, ok := s.mapping[raw]; ok {
		return canonical, nil
	}
	return raw, nil
}

func TestCropCanonicalization(t *testing.T) {
	crops := &stubCanonicalizer{mapping: map[string]string{"kapus": "cotton"}}
	e, sessions := newTestEngine(t, advisoryStub(t), WithCropCanonicalizer(crops))
	completeSetup(t, e)

	send(t, e, "2")
	reply := send(t, e, "kapus")

	if !strings.Contains(reply, "Cotton") {
		t.Fatalf("expected canonical crop in reply, got %q", reply)
	}
	if getSession(t, sessions).Crop != "cotton" {
		t.Errorf("expected canonical crop stored, got %q", getSession(t, sessions).Crop)
	}
}

func TestTopCropsFromMenu(t *testing.T) {
	e, sessions := newTestEngine(t, advisoryStub(t))
	completeSetup(t, e)

	reply := send(t, e, "3")
	if !strings.Contains(reply, "1. Soybean") || !strings.Contains(reply, "2. Cotton") {
		t.Fatalf("expected numbered recommendations, got %q", reply)
	}
	if getSession(t, sessions).State != models.StateMainMenu {
		t.Error("recommendations must stay in the main menu")
	}
}

func TestConcurrentUsersStayIsolated(t *testing.T) {
	e, sessions := newTestEngine(t, advisoryStub(t))

	users := []string{"+919800000001", "+919800000002", "+919800000003", "+919800000004"}
	var wg sync.WaitGroup
	for _, user := range users {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			for _, message := range []string{"hi", "1", "r", "1", "1", "1", "12", "1"} {
				e.HandleIncoming(context.Background(), user, message)
			}
		}(user)
	}
	wg.Wait()

	for _, user := range users {
		session, err := sessions.Get(context.Background(), user)
		if err != nil || session == nil {
			t.Fatalf("session lookup for %s failed: %v", user, err)
		}
		if !session.LocationSetupComplete || session.State != models.StateMainMenu {
			t.Errorf("user %s did not finish setup: state=%s complete=%v", user, session.State, session.LocationSetupComplete)
		}
	}
}
