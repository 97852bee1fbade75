package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/JalMitra/JalMitra/internal/i18n"
	"github.com/JalMitra/JalMitra/internal/models"
)

// Location setup chain: area type → district → taluka → village → plot →
// owner. Each list-returning step writes a fresh selection map (index →
// code) into the session and advances the state; each selection step resolves
// the user's number against the map written by the immediately preceding
// step. A selection map is valid only for that single reply: every list
// fetch clears all maps before writing its own.

func (e *Engine) handleAreaType(ctx context.Context, session *models.Session, choice string) string {
	switch choice {
	case "u", "urban":
		session.Area = "U"
	case "r", "rural":
		session.Area = "R"
	default:
		return i18n.Get(i18n.KeyInvalidAreaType, session.Language, nil)
	}
	return e.sendDistricts(ctx, session)
}

func (e *Engine) sendDistricts(ctx context.Context, session *models.Session) string {
	lang := session.Language
	districts, err := e.backend.Districts(ctx, session.Area)
	if err != nil {
		return e.errorReply(session, err)
	}
	if len(districts) == 0 {
		return i18n.Get(i18n.KeyNoDistricts, lang, nil)
	}

	session.ClearSelectionMaps()
	session.DistrictMap = make(map[string]string, len(districts))
	session.State = models.StateSetupSelectDistrict

	headerKey := i18n.KeyDistrictsHeaderRural
	if session.Area == "U" {
		headerKey = i18n.KeyDistrictsHeaderUrban
	}
	var b strings.Builder
	b.WriteString(i18n.Get(headerKey, lang, nil))
	for i, district := range districts {
		index := strconv.Itoa(i + 1)
		session.DistrictMap[index] = string(district.Code)
		fmt.Fprintf(&b, "%s. %s\n", index, district.Name)
	}
	b.WriteString(i18n.Get(i18n.KeySelectDistrict, lang, nil))
	return b.String()
}

func (e *Engine) handleDistrictSelection(ctx context.Context, session *models.Session, selection string) string {
	code, ok := session.DistrictMap[selection]
	if !ok {
		return i18n.Get(i18n.KeyInvalidSelection, session.Language, nil)
	}
	session.DistrictCode = code
	return e.sendTalukas(ctx, session)
}

func (e *Engine) sendTalukas(ctx context.Context, session *models.Session) string {
	lang := session.Language
	talukas, err := e.backend.Talukas(ctx, session.Area, session.DistrictCode)
	if err != nil {
		return e.errorReply(session, err)
	}
	if len(talukas) == 0 {
		return i18n.Get(i18n.KeyNoTalukas, lang, nil)
	}

	session.ClearSelectionMaps()
	session.TalukaMap = make(map[string]string, len(talukas))
	session.State = models.StateSetupSelectTaluka

	var b strings.Builder
	b.WriteString(i18n.Get(i18n.KeyTalukasHeader, lang, nil))
	for i, taluka := range talukas {
		index := strconv.Itoa(i + 1)
		session.TalukaMap[index] = string(taluka.Code)
		fmt.Fprintf(&b, "%s. %s\n", index, taluka.Name)
	}
	b.WriteString(i18n.Get(i18n.KeySelectTaluka, lang, nil))
	return b.String()
}

func (e *Engine) handleTalukaSelection(ctx context.Context, session *models.Session, selection string) string {
	code, ok := session.TalukaMap[selection]
	if !ok {
		return i18n.Get(i18n.KeyInvalidSelection, session.Language, nil)
	}
	session.TalukaCode = code
	return e.sendVillages(ctx, session)
}

func (e *Engine) sendVillages(ctx context.Context, session *models.Session) string {
	lang := session.Language
	villages, err := e.backend.Villages(ctx, session.Area, session.DistrictCode, session.TalukaCode)
	if err != nil {
		return e.errorReply(session, err)
	}
	if len(villages) == 0 {
		return i18n.Get(i18n.KeyNoVillages, lang, nil)
	}

	session.ClearSelectionMaps()
	session.VillageMap = make(map[string]string, len(villages))
	session.State = models.StateSetupSelectVillage

	var b strings.Builder
	b.WriteString(i18n.Get(i18n.KeyVillagesHeader, lang, nil))
	for i, village := range villages {
		index := strconv.Itoa(i + 1)
		session.VillageMap[index] = village.SelectionCode()
		fmt.Fprintf(&b, "%s. %s\n", index, village.Name)
	}
	b.WriteString(i18n.Get(i18n.KeySelectVillage, lang, nil))
	return b.String()
}

func (e *Engine) handleVillageSelection(ctx context.Context, session *models.Session, selection string) string {
	code, ok := session.VillageMap[selection]
	if !ok {
		return i18n.Get(i18n.KeyInvalidSelection, session.Language, nil)
	}
	session.VillageGISCode = code
	session.VillageCode = code
	return e.sendSurveys(ctx, session)
}

func (e *Engine) sendSurveys(ctx context.Context, session *models.Session) string {
	lang := session.Language
	plots, err := e.backend.Surveys(ctx, session.Area, session.DistrictCode, session.TalukaCode, session.VillageGISCode)
	if err != nil {
		return e.errorReply(session, err)
	}
	if len(plots) == 0 {
		return i18n.Get(i18n.KeyNoPlots, lang, nil)
	}

	session.ClearSelectionMaps()
	session.AvailablePlots = make([]string, 0, len(plots))
	for _, plot := range plots {
		session.AvailablePlots = append(session.AvailablePlots, plot.PlotNo)
	}
	session.State = models.StateSetupSelectPlot

	return i18n.Get(i18n.KeyPlotsHeader, lang, nil) +
		i18n.Get(i18n.KeyPlotsFound, lang, i18n.Params{"count": strconv.Itoa(len(plots))})
}

// handlePlotSelection validates the typed plot number against the available
// plots, then fetches plot details. A plot with registered owners moves on to
// owner selection; a plot with none completes setup directly with a zero farm
// area.
func (e *Engine) handlePlotSelection(ctx context.Context, session *models.Session, plotNo string) string {
	lang := session.Language

	if len(session.AvailablePlots) > 0 {
		found := false
		for _, available := range session.AvailablePlots {
			if plotNo == available {
				found = true
				break
			}
		}
		if !found {
			return i18n.Get(i18n.KeyPlotNotFound, lang, i18n.Params{"plot_no": plotNo})
		}
	}

	session.PlotNo = plotNo

	info, err := e.backend.PlotInfo(ctx, session.Area, session.DistrictCode, session.TalukaCode, session.VillageGISCode, plotNo)
	if err != nil {
		return e.errorReply(session, err)
	}

	session.Latitude = info.Latitude
	session.Longitude = info.Longitude

	var b strings.Builder
	b.WriteString(i18n.Get(i18n.KeyPlotInfoHeader, lang, nil))
	b.WriteString(i18n.Get(i18n.KeyPlotNoLabel, lang, i18n.Params{"plot_no": plotNo}))
	b.WriteString("\n")
	b.WriteString(i18n.Get(i18n.KeyCoordinatesLabel, lang, i18n.Params{
		"lat": formatCoordinate(session.Latitude),
		"lon": formatCoordinate(session.Longitude),
	}))
	b.WriteString("\n")

	if len(info.Owners) == 0 {
		// No registered owners: complete setup with a zero-capacity holding.
		zero := 0.0
		session.FarmAreaAres = &zero
		session.OwnerName = "Unknown"
		session.LocationSetupComplete = true
		session.State = models.StateMainMenu
		b.WriteString(i18n.Get(i18n.KeyLocationSaved, lang, nil))
		b.WriteString("\n\n")
		b.WriteString(i18n.Get(i18n.KeyMainMenu, lang, nil))
		return b.String()
	}

	session.OwnerMap = make(map[string]models.PlotOwner, len(info.Owners))
	b.WriteString(i18n.Get(i18n.KeyPlotOwnersHeader, lang, nil))
	for i, owner := range info.Owners {
		index := strconv.Itoa(i + 1)
		name := owner.OwnerName
		if name == "" {
			name = "N/A"
		}
		area := 0.0
		areaLabel := "N/A"
		if owner.TotalArea != nil {
			area = float64(*owner.TotalArea)
			areaLabel = formatFloat(&area)
		}
		session.OwnerMap[index] = models.PlotOwner{Name: name, AreaAres: area}
		fmt.Fprintf(&b, "%s. %s (%s ares)\n", index, name, areaLabel)
	}
	b.WriteString(i18n.Get(i18n.KeySelectOwnerPrompt, lang, nil))
	session.State = models.StateSetupSelectOwner
	return b.String()
}

// handleOwnerSelection stores the chosen owner's name and holding size, runs
// the silent groundwater balance calculation, and completes location setup.
// A balance failure leaves setup incomplete so the user can retry.
func (e *Engine) handleOwnerSelection(ctx context.Context, session *models.Session, selection string) string {
	lang := session.Language

	owner, ok := session.OwnerMap[selection]
	if !ok {
		return i18n.Get(i18n.KeyInvalidOwnerSelection, lang, nil)
	}

	session.OwnerName = owner.Name
	area := owner.AreaAres
	session.FarmAreaAres = &area

	balance, err := e.backend.GroundwaterBalance(ctx, deref(session.Latitude), deref(session.Longitude), area)
	if err != nil {
		return e.errorReply(session, err)
	}
	session.WaterBalanceValue = balance.Value
	session.WaterBalanceData = balance.Raw

	session.LocationSetupComplete = true
	session.State = models.StateMainMenu

	return i18n.Get(i18n.KeyOwnerSelected, lang, i18n.Params{
		"owner_name": owner.Name,
		"area":       formatFloat(&area),
	}) + "\n" +
		i18n.Get(i18n.KeyLocationSaved, lang, nil) + "\n\n" +
		i18n.Get(i18n.KeyMainMenu, lang, nil)
}
