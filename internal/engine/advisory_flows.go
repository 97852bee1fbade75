package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JalMitra/JalMitra/internal/advisory"
	"github.com/JalMitra/JalMitra/internal/i18n"
	"github.com/JalMitra/JalMitra/internal/models"
)

// handleMainMenu routes the 1/2/3 menu choice. Choice 3 fetches crop
// recommendations immediately and stays in the menu; 1 and 2 collect a crop
// name first.
func (e *Engine) handleMainMenu(ctx context.Context, session *models.Session, choice string) string {
	lang := session.Language

	switch choice {
	case "1":
		session.State = models.StateSowingCollectCrop
		return i18n.Get(i18n.KeySowingAskCrop, lang, nil)
	case "2":
		session.State = models.StateSolvencyCollectCrop
		return i18n.Get(i18n.KeySolvencyAskCrop, lang, nil)
	case "3":
		reply := e.topCropsReply(ctx, session)
		session.State = models.StateMainMenu
		return reply
	default:
		return i18n.Get(i18n.KeyInvalidMenuChoice, lang, nil)
	}
}

// handleSowingCrop consumes the crop name and returns the sowing advisory.
// The flow returns to the main menu unconditionally, even on remote failure.
func (e *Engine) handleSowingCrop(ctx context.Context, session *models.Session, crop string) string {
	session.Crop = e.canonicalCrop(ctx, crop)
	reply := e.sowingAdviceReply(ctx, session)
	session.State = models.StateMainMenu
	return reply
}

// handleSolvencyCrop consumes the crop name and runs the solvency check.
// The flow returns to the main menu unconditionally, even on remote failure.
func (e *Engine) handleSolvencyCrop(ctx context.Context, session *models.Session, crop string) string {
	session.Crop = e.canonicalCrop(ctx, crop)
	reply := e.waterRequirementReply(ctx, session)
	session.State = models.StateMainMenu
	return reply
}

// waterRequirementReply fetches the crop's water requirement, shows the raw
// figures, and compares against the cached groundwater balance. When the
// requirement exceeds the balance the top-crop recommendations are appended
// to the same reply so the user gets alternatives in a single round trip.
// An unknown balance or requirement skips the comparison and shows figures
// only.
func (e *Engine) waterRequirementReply(ctx context.Context, session *models.Session) string {
	lang := session.Language

	req, err := e.backend.WaterRequirement(ctx, deref(session.Latitude), deref(session.Longitude), session.Crop, deref(session.FarmAreaAres))
	if err != nil {
		return e.errorReply(session, err)
	}

	crop := req.CropUsed
	if crop == "" {
		crop = session.Crop
	}
	if crop == "" {
		crop = "Unknown"
	}
	crop = titleCase(crop)

	var b strings.Builder
	b.WriteString(i18n.Get(i18n.KeyWaterReqHeader, lang, i18n.Params{"crop": crop}))
	b.WriteString(i18n.Get(i18n.KeyStationLabel, lang, i18n.Params{"station": titleCase(orNA(req.Station))}))
	b.WriteString("\n")
	b.WriteString(i18n.Get(i18n.KeySeasonLabel, lang, i18n.Params{"season": titleCase(orNA(req.Season))}))
	b.WriteString("\n\n")
	b.WriteString(i18n.Get(i18n.KeyCropETLabel, lang, i18n.Params{"value": formatFloat(req.CropETmm)}))
	b.WriteString("\n")
	b.WriteString(i18n.Get(i18n.KeySeasonalRainLabel, lang, i18n.Params{"value": formatFloat(req.SeasonalRainMM)}))
	b.WriteString("\n")
	b.WriteString(i18n.Get(i18n.KeyEffectiveRainLabel, lang, i18n.Params{"value": formatFloat(req.EffectiveRainMM)}))
	b.WriteString("\n")
	b.WriteString(i18n.Get(i18n.KeyNetIrrigationLabel, lang, i18n.Params{"value": formatFloat(req.NetIrrigationMM)}))
	b.WriteString("\n")
	b.WriteString(i18n.Get(i18n.KeyTotalWaterLabel, lang, i18n.Params{"value": formatLitres(req.WaterRequiredLitres)}))
	b.WriteString("\n")
	b.WriteString(i18n.Get(i18n.KeyEstimatedProfitLabel, lang, i18n.Params{"value": formatMoney(req.Revenue())}))
	b.WriteString("\n\n")

	required := req.WaterRequiredLitres
	balance := session.WaterBalanceValue
	if required == nil || balance == nil {
		b.WriteString(i18n.Get(i18n.KeyMenuPrompt, lang, nil))
		return b.String()
	}

	params := i18n.Params{
		"balance":  formatLitres(balance),
		"required": formatLitres(required),
		"crop":     crop,
	}
	if *required <= *balance {
		b.WriteString(i18n.Get(i18n.KeySolvencySuccess, lang, params))
		b.WriteString(i18n.Get(i18n.KeyMenuPrompt, lang, nil))
		return b.String()
	}

	// Solvency failed: escalate with recommendations in the same reply.
	b.WriteString(i18n.Get(i18n.KeySolvencyFail, lang, params))
	b.WriteString("\n\n")
	b.WriteString(e.topCropsReply(ctx, session))
	return b.String()
}

// topCropsReply fetches and formats the top crop recommendations for the
// session's saved location.
func (e *Engine) topCropsReply(ctx context.Context, session *models.Session) string {
	lang := session.Language

	top, err := e.backend.TopCrops(ctx, deref(session.Latitude), deref(session.Longitude))
	if err != nil {
		return e.errorReply(session, err)
	}

	var b strings.Builder
	b.WriteString(i18n.Get(i18n.KeyRecommendationsHeader, lang, nil))
	b.WriteString(i18n.Get(i18n.KeyStationLabel, lang, i18n.Params{"station": titleCase(orNA(top.Station))}))
	b.WriteString("\n")
	b.WriteString(i18n.Get(i18n.KeySeasonLabel, lang, i18n.Params{"season": titleCase(orNA(top.Season))}))
	b.WriteString("\n\n")

	if len(top.Crops) == 0 {
		b.WriteString(i18n.Get(i18n.KeyNoRecommendations, lang, nil))
		b.WriteString("\n")
	} else {
		for i, crop := range top.Crops {
			name := crop.Crop
			if name == "" {
				name = "Unknown"
			}
			fmt.Fprintf(&b, "%d. %s", i+1, titleCase(name))
			if crop.ProfitMetric != nil {
				b.WriteString("  ")
				b.WriteString(i18n.Get(i18n.KeyProfitScoreLabel, lang, i18n.Params{
					"score": fmt.Sprintf("%.4f", *crop.ProfitMetric),
				}))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(i18n.Get(i18n.KeyRecommendationsTip, lang, nil))
	b.WriteString(i18n.Get(i18n.KeyMenuPrompt, lang, nil))
	return b.String()
}

// sowingAdviceReply fetches and formats the best-sowing-day advisory for the
// session's crop.
func (e *Engine) sowingAdviceReply(ctx context.Context, session *models.Session) string {
	lang := session.Language

	advice, err := e.backend.BestSowingDay(ctx, deref(session.Latitude), deref(session.Longitude), session.Crop)
	if err != nil {
		if errors.Is(err, advisory.ErrCropNotFound) {
			return i18n.Get(i18n.KeyCropNotFound, lang, i18n.Params{"crop": session.Crop}) +
				i18n.Get(i18n.KeyMenuPrompt, lang, nil)
		}
		return e.errorReply(session, err)
	}

	// Some backend deployments return a plain text advisory.
	if advice.Advice != "" {
		return i18n.Get(i18n.KeySowingAdviceHeader, lang, i18n.Params{"advice": advice.Advice}) +
			i18n.Get(i18n.KeyMenuPrompt, lang, nil)
	}

	crop := advice.Crop
	if crop == "" {
		crop = session.Crop
	}
	if crop == "" {
		crop = "Unknown"
	}

	var b strings.Builder
	b.WriteString(i18n.Get(i18n.KeySowingResultHeader, lang, i18n.Params{"crop": titleCase(crop)}))

	best := advice.BestDay
	if best == nil {
		best = &advisory.SowingDay{}
	}
	b.WriteString(i18n.Get(i18n.KeyBestSowingDate, lang, i18n.Params{"date": orNA(best.Date)}))
	b.WriteString("\n")
	b.WriteString(i18n.Get(i18n.KeyScoreLabel, lang, i18n.Params{"score": formatFloat(best.Score)}))
	b.WriteString("\n\n")
	b.WriteString(i18n.Get(i18n.KeySoilTempLabel, lang, i18n.Params{"temp": formatFloat(best.SoilTemp)}))
	b.WriteString("\n")
	b.WriteString(i18n.Get(i18n.KeySoilMoistureLabel, lang, i18n.Params{"moisture": formatFloat(best.SoilMoisture)}))
	b.WriteString("\n")
	b.WriteString(i18n.Get(i18n.KeyRainProbLabel, lang, i18n.Params{"prob": formatFloat(best.RainProb)}))
	b.WriteString("\n")
	b.WriteString(i18n.Get(i18n.KeyExpectedRainLabel, lang, i18n.Params{"rain": formatFloat(best.RainMM)}))
	b.WriteString("\n\n")

	if len(advice.Top3) > 0 {
		b.WriteString(i18n.Get(i18n.KeyTop3Options, lang, nil))
		b.WriteString("\n")
		for i, day := range advice.Top3 {
			fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, orNA(day.Date),
				i18n.Get(i18n.KeyScoreLabel, lang, i18n.Params{"score": formatFloat(day.Score)}))
		}
		b.WriteString(i18n.Get(i18n.KeyHigherScoreTip, lang, nil))
		b.WriteString("\n")
	}

	b.WriteString(i18n.Get(i18n.KeyMenuPrompt, lang, nil))
	return b.String()
}
