package advisory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexString decodes a JSON value that some backend endpoints emit as a
// string and others as a bare number (district and village codes in
// particular). Numbers are rendered without a trailing fraction.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("value is neither string nor number: %s", b)
	}
	*f = FlexString(n.String())
	return nil
}

// FlexFloat decodes a JSON number that may arrive as a quoted string.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("quoted value %q is not numeric", s)
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// Location is one entry in a district or taluka listing.
type Location struct {
	Code FlexString `json:"code"`
	Name string     `json:"name"`
}

// Village is one entry in a village listing. The backend has historically
// used three different field names for the GIS code; SelectionCode picks the
// first one present.
type Village struct {
	Name           string     `json:"name"`
	GISCode        FlexString `json:"gisCode"`
	VillageGISCode FlexString `json:"villageGisCode"`
	Code           FlexString `json:"code"`
}

// SelectionCode returns the code a survey lookup should use for this village.
func (v Village) SelectionCode() string {
	if v.GISCode != "" {
		return string(v.GISCode)
	}
	if v.VillageGISCode != "" {
		return string(v.VillageGISCode)
	}
	return string(v.Code)
}

// PlotRef identifies one survey plot. The surveys endpoint returns either a
// list of objects carrying a plotNo field or a list of bare plot numbers.
type PlotRef struct {
	PlotNo string
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PlotRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var obj struct {
			PlotNo FlexString `json:"plotNo"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		p.PlotNo = string(obj.PlotNo)
		return nil
	}
	var scalar FlexString
	if err := json.Unmarshal(b, &scalar); err != nil {
		return err
	}
	p.PlotNo = string(scalar)
	return nil
}

// PlotInfoOwner is one registered owner in a plot-info response.
type PlotInfoOwner struct {
	OwnerName string     `json:"ownerName"`
	TotalArea *FlexFloat `json:"totalArea"`
}

// PlotInfo is the plot-info response: plot coordinates plus registered owners.
type PlotInfo struct {
	Latitude  *float64        `json:"latitude"`
	Longitude *float64        `json:"longitude"`
	Owners    []PlotInfoOwner `json:"owners"`
}

// BalanceResult holds the groundwater balance response. Value is nil when no
// candidate field in the payload carried a numeric balance; callers must then
// skip balance comparisons and show raw figures only.
type BalanceResult struct {
	Value *float64
	Raw   map[string]float64
}

// WaterRequirement is the water-requirement response for a crop.
type WaterRequirement struct {
	CropUsed            string   `json:"crop_used"`
	Season              string   `json:"season"`
	Station             string   `json:"station"`
	CropETmm            *float64 `json:"crop_et_mm"`
	EffectiveRainMM     *float64 `json:"effective_rain_mm"`
	NetIrrigationMM     *float64 `json:"net_irrigation_mm"`
	SeasonalRainMM      *float64 `json:"seasonal_rain_mm"`
	TotalRevenue        *float64 `json:"total_revenue"`
	TotalProfit         *float64 `json:"total_profit"`
	WaterRequiredLitres *float64 `json:"water_required_litres"`
}

// Revenue returns the revenue figure, falling back to total_profit when the
// backend omits total_revenue.
func (w *WaterRequirement) Revenue() *float64 {
	if w.TotalRevenue != nil {
		return w.TotalRevenue
	}
	return w.TotalProfit
}

// TopCrop is one recommended crop with its profitability metric.
type TopCrop struct {
	Crop         string   `json:"crop"`
	ProfitMetric *float64 `json:"profit_metric"`
}

// TopCrops is the top-crops recommendation response.
type TopCrops struct {
	Season  string    `json:"season"`
	Station string    `json:"station"`
	Crops   []TopCrop `json:"top_3_crops"`
}

// SowingDay describes the conditions on one candidate sowing day.
type SowingDay struct {
	Date         string   `json:"date"`
	Score        *float64 `json:"score"`
	SoilTemp     *float64 `json:"soil_temp"`
	SoilMoisture *float64 `json:"soil_moisture"`
	RainProb     *float64 `json:"rain_prob"`
	RainMM       *float64 `json:"rain_mm"`
}

// SowingAdvice is the best-sowing-day response. Advice is set for the simple
// text form of the response; otherwise BestDay and Top3 carry the detail.
type SowingAdvice struct {
	Advice  string      `json:"advice"`
	Crop    string      `json:"crop"`
	BestDay *SowingDay  `json:"best_day"`
	Top3    []SowingDay `json:"top_3_days"`
}
