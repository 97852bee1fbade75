package i18n

import "github.com/JalMitra/JalMitra/internal/models"

// Message keys. Grouped by the part of the dialogue that emits them.
const (
	// Language selection and global prompts
	KeyWelcomeLanguage Key = "welcome_language"
	KeyInvalidLanguage Key = "invalid_language"
	KeyLanguageSet     Key = "language_set"
	KeyMainMenu        Key = "main_menu"
	KeyMenuPrompt      Key = "menu_prompt"
	KeyFallback        Key = "fallback"

	// Errors
	KeyConnectionError Key = "connection_error"
	KeyErrorGeneric    Key = "error_generic"

	// Location setup
	KeyAskAreaType           Key = "ask_area_type"
	KeyInvalidAreaType       Key = "invalid_area_type"
	KeyInvalidSelection      Key = "invalid_selection"
	KeyNoDistricts           Key = "no_districts"
	KeyDistrictsHeaderUrban  Key = "districts_header_urban"
	KeyDistrictsHeaderRural  Key = "districts_header_rural"
	KeySelectDistrict        Key = "select_district"
	KeyNoTalukas             Key = "no_talukas"
	KeyTalukasHeader         Key = "talukas_header"
	KeySelectTaluka          Key = "select_taluka"
	KeyNoVillages            Key = "no_villages"
	KeyVillagesHeader        Key = "villages_header"
	KeySelectVillage         Key = "select_village"
	KeyNoPlots               Key = "no_plots"
	KeyPlotsHeader           Key = "plots_header"
	KeyPlotsFound            Key = "plots_found"
	KeyPlotNotFound          Key = "plot_not_found"
	KeyPlotInfoHeader        Key = "plot_info_header"
	KeyPlotNoLabel           Key = "plot_no_label"
	KeyCoordinatesLabel      Key = "coordinates_label"
	KeyPlotOwnersHeader      Key = "plot_owners_header"
	KeySelectOwnerPrompt     Key = "select_owner_prompt"
	KeyInvalidOwnerSelection Key = "invalid_owner_selection"
	KeyOwnerSelected         Key = "owner_selected"
	KeyLocationSaved         Key = "location_saved"

	// Main menu flows
	KeyInvalidMenuChoice Key = "invalid_menu_choice"
	KeySowingAskCrop     Key = "sowing_ask_crop"
	KeySolvencyAskCrop   Key = "solvency_ask_crop"

	// Water requirement / solvency
	KeyWaterReqHeader       Key = "water_req_header"
	KeyStationLabel         Key = "station_label"
	KeySeasonLabel          Key = "season_label"
	KeyCropETLabel          Key = "crop_et_label"
	KeySeasonalRainLabel    Key = "seasonal_rain_label"
	KeyEffectiveRainLabel   Key = "effective_rain_label"
	KeyNetIrrigationLabel   Key = "net_irrigation_label"
	KeyTotalWaterLabel      Key = "total_water_label"
	KeyEstimatedProfitLabel Key = "estimated_profit_label"
	KeySolvencySuccess      Key = "solvency_success"
	KeySolvencyFail         Key = "solvency_fail"

	// Crop recommendations
	KeyRecommendationsHeader Key = "recommendations_header"
	KeyProfitScoreLabel      Key = "profit_score_label"
	KeyRecommendationsTip    Key = "recommendations_tip"
	KeyNoRecommendations     Key = "no_recommendations"

	// Sowing advisory
	KeySowingResultHeader Key = "sowing_result_header"
	KeySowingAdviceHeader Key = "sowing_advice_header"
	KeyBestSowingDate     Key = "best_sowing_date"
	KeyScoreLabel         Key = "score_label"
	KeySoilTempLabel      Key = "soil_temp_label"
	KeySoilMoistureLabel  Key = "soil_moisture_label"
	KeyRainProbLabel      Key = "rain_prob_label"
	KeyExpectedRainLabel  Key = "expected_rain_label"
	KeyTop3Options        Key = "top_3_options"
	KeyHigherScoreTip     Key = "higher_score_tip"
	KeyCropNotFound       Key = "crop_not_found"
)

type translations map[models.Language]string

var catalog = map[Key]translations{
	KeyWelcomeLanguage: {
		models.LanguageEnglish: "🙏 Welcome to JalMitra, your groundwater advisory assistant!\n\nPlease select your language:\n1. English\n2. हिंदी\n3. मराठी\n\nReply with 1, 2 or 3.",
	},
	KeyInvalidLanguage: {
		models.LanguageEnglish: "Please reply with 1 (English), 2 (हिंदी) or 3 (मराठी).",
	},
	KeyLanguageSet: {
		models.LanguageEnglish: "✅ Language set to English.",
		models.LanguageHindi:   "✅ भाषा हिंदी चुनी गई।",
		models.LanguageMarathi: "✅ भाषा मराठी निवडली आहे.",
	},
	KeyMainMenu: {
		models.LanguageEnglish: "📋 Main Menu — how can I help you today?\n1. 🌱 Sowing advisory\n2. 💧 Crop solvency check\n3. 🏆 Crop recommendations\n\nReply with 1, 2 or 3.",
		models.LanguageHindi:   "📋 मुख्य मेनू — आज मैं आपकी क्या मदद कर सकता हूँ?\n1. 🌱 बुवाई सलाह\n2. 💧 फसल जल-जाँच\n3. 🏆 फसल सिफारिशें\n\n1, 2 या 3 भेजें।",
		models.LanguageMarathi: "📋 मुख्य मेनू — आज मी आपली काय मदत करू?\n1. 🌱 पेरणी सल्ला\n2. 💧 पीक पाणी-तपासणी\n3. 🏆 पीक शिफारसी\n\n1, 2 किंवा 3 पाठवा.",
	},
	KeyMenuPrompt: {
		models.LanguageEnglish: "\n\nSend *menu* to return to the main menu.",
		models.LanguageHindi:   "\n\nमुख्य मेनू पर लौटने के लिए *menu* भेजें।",
		models.LanguageMarathi: "\n\nमुख्य मेनूवर परत जाण्यासाठी *menu* पाठवा.",
	},
	KeyFallback: {
		models.LanguageEnglish: "Sorry, I did not understand that. Send *menu* to see the options or *reset* to start over.",
		models.LanguageHindi:   "माफ़ कीजिए, मैं समझ नहीं पाया। विकल्पों के लिए *menu* भेजें या नए सिरे से शुरू करने के लिए *reset* भेजें।",
		models.LanguageMarathi: "क्षमस्व, मला ते समजले नाही. पर्यायांसाठी *menu* पाठवा किंवा पुन्हा सुरू करण्यासाठी *reset* पाठवा.",
	},
	KeyConnectionError: {
		models.LanguageEnglish: "⚠️ Unable to reach the advisory service right now. Please try again in a little while.",
		models.LanguageHindi:   "⚠️ अभी सलाह सेवा से संपर्क नहीं हो पा रहा है। कृपया थोड़ी देर बाद फिर कोशिश करें।",
		models.LanguageMarathi: "⚠️ सध्या सल्ला सेवेशी संपर्क होत नाही. कृपया थोड्या वेळाने पुन्हा प्रयत्न करा.",
	},
	KeyErrorGeneric: {
		models.LanguageEnglish: "⚠️ Something went wrong: {error}",
		models.LanguageHindi:   "⚠️ कुछ गड़बड़ हो गई: {error}",
		models.LanguageMarathi: "⚠️ काहीतरी चूक झाली: {error}",
	},
	KeyAskAreaType: {
		models.LanguageEnglish: "📍 Let's set up your farm location.\nIs your land in an urban or rural area?\n\nReply *U* for urban or *R* for rural.",
		models.LanguageHindi:   "📍 चलिए आपके खेत का स्थान सेट करें।\nआपकी ज़मीन शहरी क्षेत्र में है या ग्रामीण?\n\nशहरी के लिए *U* और ग्रामीण के लिए *R* भेजें।",
		models.LanguageMarathi: "📍 चला, आपल्या शेताचे ठिकाण सेट करू.\nआपली जमीन शहरी भागात आहे की ग्रामीण?\n\nशहरीसाठी *U* आणि ग्रामीणसाठी *R* पाठवा.",
	},
	KeyInvalidAreaType: {
		models.LanguageEnglish: "Please reply *U* (urban) or *R* (rural).",
		models.LanguageHindi:   "कृपया *U* (शहरी) या *R* (ग्रामीण) भेजें।",
		models.LanguageMarathi: "कृपया *U* (शहरी) किंवा *R* (ग्रामीण) पाठवा.",
	},
	KeyInvalidSelection: {
		models.LanguageEnglish: "❌ Invalid selection. Please reply with one of the numbers from the list above.",
		models.LanguageHindi:   "❌ अमान्य चयन। कृपया ऊपर दी गई सूची में से कोई एक नंबर भेजें।",
		models.LanguageMarathi: "❌ अवैध निवड. कृपया वरील यादीतील एखादा क्रमांक पाठवा.",
	},
	KeyNoDistricts: {
		models.LanguageEnglish: "No districts were found for the selected area type.",
		models.LanguageHindi:   "चुने गए क्षेत्र प्रकार के लिए कोई ज़िला नहीं मिला।",
		models.LanguageMarathi: "निवडलेल्या क्षेत्र प्रकारासाठी कोणताही जिल्हा सापडला नाही.",
	},
	KeyDistrictsHeaderUrban: {
		models.LanguageEnglish: "🏙️ Urban districts:\n",
		models.LanguageHindi:   "🏙️ शहरी ज़िले:\n",
		models.LanguageMarathi: "🏙️ शहरी जिल्हे:\n",
	},
	KeyDistrictsHeaderRural: {
		models.LanguageEnglish: "🌾 Rural districts:\n",
		models.LanguageHindi:   "🌾 ग्रामीण ज़िले:\n",
		models.LanguageMarathi: "🌾 ग्रामीण जिल्हे:\n",
	},
	KeySelectDistrict: {
		models.LanguageEnglish: "\nReply with the number of your district.",
		models.LanguageHindi:   "\nअपने ज़िले का नंबर भेजें।",
		models.LanguageMarathi: "\nआपल्या जिल्ह्याचा क्रमांक पाठवा.",
	},
	KeyNoTalukas: {
		models.LanguageEnglish: "No talukas were found for the selected district.",
		models.LanguageHindi:   "चुने गए ज़िले के लिए कोई तालुका नहीं मिला।",
		models.LanguageMarathi: "निवडलेल्या जिल्ह्यासाठी कोणताही तालुका सापडला नाही.",
	},
	KeyTalukasHeader: {
		models.LanguageEnglish: "🗺️ Talukas:\n",
		models.LanguageHindi:   "🗺️ तालुके:\n",
		models.LanguageMarathi: "🗺️ तालुके:\n",
	},
	KeySelectTaluka: {
		models.LanguageEnglish: "\nReply with the number of your taluka.",
		models.LanguageHindi:   "\nअपने तालुके का नंबर भेजें।",
		models.LanguageMarathi: "\nआपल्या तालुक्याचा क्रमांक पाठवा.",
	},
	KeyNoVillages: {
		models.LanguageEnglish: "No villages were found for the selected taluka.",
		models.LanguageHindi:   "चुने गए तालुके के लिए कोई गाँव नहीं मिला।",
		models.LanguageMarathi: "निवडलेल्या तालुक्यासाठी कोणतेही गाव सापडले नाही.",
	},
	KeyVillagesHeader: {
		models.LanguageEnglish: "🏘️ Villages:\n",
		models.LanguageHindi:   "🏘️ गाँव:\n",
		models.LanguageMarathi: "🏘️ गावे:\n",
	},
	KeySelectVillage: {
		models.LanguageEnglish: "\nReply with the number of your village.",
		models.LanguageHindi:   "\nअपने गाँव का नंबर भेजें।",
		models.LanguageMarathi: "\nआपल्या गावाचा क्रमांक पाठवा.",
	},
	KeyNoPlots: {
		models.LanguageEnglish: "No survey plots were found for the selected village.",
		models.LanguageHindi:   "चुने गए गाँव के लिए कोई सर्वे प्लॉट नहीं मिला।",
		models.LanguageMarathi: "निवडलेल्या गावासाठी कोणताही सर्व्हे प्लॉट सापडला नाही.",
	},
	KeyPlotsHeader: {
		models.LanguageEnglish: "📄 Survey plots\n",
		models.LanguageHindi:   "📄 सर्वे प्लॉट\n",
		models.LanguageMarathi: "📄 सर्व्हे प्लॉट\n",
	},
	KeyPlotsFound: {
		models.LanguageEnglish: "{count} plots found in your village.\n\nPlease type your plot (survey) number.",
		models.LanguageHindi:   "आपके गाँव में {count} प्लॉट मिले।\n\nकृपया अपना प्लॉट (सर्वे) नंबर लिखें।",
		models.LanguageMarathi: "आपल्या गावात {count} प्लॉट सापडले.\n\nकृपया आपला प्लॉट (सर्व्हे) क्रमांक लिहा.",
	},
	KeyPlotNotFound: {
		models.LanguageEnglish: "❌ Plot \"{plot_no}\" was not found in your village. Please check the number and try again.",
		models.LanguageHindi:   "❌ प्लॉट \"{plot_no}\" आपके गाँव में नहीं मिला। कृपया नंबर जाँच कर फिर से भेजें।",
		models.LanguageMarathi: "❌ प्लॉट \"{plot_no}\" आपल्या गावात सापडला नाही. कृपया क्रमांक तपासून पुन्हा पाठवा.",
	},
	KeyPlotInfoHeader: {
		models.LanguageEnglish: "📄 Plot details\n",
		models.LanguageHindi:   "📄 प्लॉट विवरण\n",
		models.LanguageMarathi: "📄 प्लॉट तपशील\n",
	},
	KeyPlotNoLabel: {
		models.LanguageEnglish: "Plot number: {plot_no}",
		models.LanguageHindi:   "प्लॉट नंबर: {plot_no}",
		models.LanguageMarathi: "प्लॉट क्रमांक: {plot_no}",
	},
	KeyCoordinatesLabel: {
		models.LanguageEnglish: "Coordinates: {lat}, {lon}",
		models.LanguageHindi:   "निर्देशांक: {lat}, {lon}",
		models.LanguageMarathi: "समन्वय: {lat}, {lon}",
	},
	KeyPlotOwnersHeader: {
		models.LanguageEnglish: "\n👥 Registered owners:\n",
		models.LanguageHindi:   "\n👥 पंजीकृत मालिक:\n",
		models.LanguageMarathi: "\n👥 नोंदणीकृत मालक:\n",
	},
	KeySelectOwnerPrompt: {
		models.LanguageEnglish: "\nReply with the number of your name in the list.",
		models.LanguageHindi:   "\nसूची में अपने नाम का नंबर भेजें।",
		models.LanguageMarathi: "\nयादीतील आपल्या नावाचा क्रमांक पाठवा.",
	},
	KeyInvalidOwnerSelection: {
		models.LanguageEnglish: "❌ Invalid owner selection. Please reply with one of the numbers from the owner list.",
		models.LanguageHindi:   "❌ अमान्य मालिक चयन। कृपया मालिक सूची में से कोई एक नंबर भेजें।",
		models.LanguageMarathi: "❌ अवैध मालक निवड. कृपया मालक यादीतील एखादा क्रमांक पाठवा.",
	},
	KeyOwnerSelected: {
		models.LanguageEnglish: "✅ Owner: {owner_name} ({area} ares)",
		models.LanguageHindi:   "✅ मालिक: {owner_name} ({area} एअर)",
		models.LanguageMarathi: "✅ मालक: {owner_name} ({area} आर)",
	},
	KeyLocationSaved: {
		models.LanguageEnglish: "📌 Your farm location has been saved. You won't need to enter it again.",
		models.LanguageHindi:   "📌 आपके खेत का स्थान सहेज लिया गया है। इसे दोबारा दर्ज करने की ज़रूरत नहीं होगी।",
		models.LanguageMarathi: "📌 आपल्या शेताचे ठिकाण जतन केले आहे. ते पुन्हा भरण्याची गरज नाही.",
	},
	KeyInvalidMenuChoice: {
		models.LanguageEnglish: "Please reply with 1 (sowing advisory), 2 (solvency check) or 3 (crop recommendations).",
		models.LanguageHindi:   "कृपया 1 (बुवाई सलाह), 2 (जल-जाँच) या 3 (फसल सिफारिशें) भेजें।",
		models.LanguageMarathi: "कृपया 1 (पेरणी सल्ला), 2 (पाणी-तपासणी) किंवा 3 (पीक शिफारसी) पाठवा.",
	},
	KeySowingAskCrop: {
		models.LanguageEnglish: "🌱 Which crop are you planning to sow? Type the crop name (e.g. cotton, soybean).",
		models.LanguageHindi:   "🌱 आप कौन सी फसल बोना चाहते हैं? फसल का नाम लिखें (जैसे कपास, सोयाबीन)।",
		models.LanguageMarathi: "🌱 आपण कोणते पीक पेरणार आहात? पिकाचे नाव लिहा (उदा. कापूस, सोयाबीन).",
	},
	KeySolvencyAskCrop: {
		models.LanguageEnglish: "💧 Which crop would you like to check? Type the crop name (e.g. cotton, soybean).",
		models.LanguageHindi:   "💧 आप किस फसल की जाँच करना चाहते हैं? फसल का नाम लिखें (जैसे कपास, सोयाबीन)।",
		models.LanguageMarathi: "💧 आपण कोणत्या पिकाची तपासणी करू इच्छिता? पिकाचे नाव लिहा (उदा. कापूस, सोयाबीन).",
	},
	KeyWaterReqHeader: {
		models.LanguageEnglish: "💧 Water requirement for {crop}\n",
		models.LanguageHindi:   "💧 {crop} के लिए जल आवश्यकता\n",
		models.LanguageMarathi: "💧 {crop} साठी पाण्याची गरज\n",
	},
	KeyStationLabel: {
		models.LanguageEnglish: "Weather station: {station}",
		models.LanguageHindi:   "मौसम केंद्र: {station}",
		models.LanguageMarathi: "हवामान केंद्र: {station}",
	},
	KeySeasonLabel: {
		models.LanguageEnglish: "Season: {season}",
		models.LanguageHindi:   "मौसम: {season}",
		models.LanguageMarathi: "हंगाम: {season}",
	},
	KeyCropETLabel: {
		models.LanguageEnglish: "Crop water need (ET): {value} mm",
		models.LanguageHindi:   "फसल जल आवश्यकता (ET): {value} मिमी",
		models.LanguageMarathi: "पीक पाणी गरज (ET): {value} मिमी",
	},
	KeySeasonalRainLabel: {
		models.LanguageEnglish: "Seasonal rainfall: {value} mm",
		models.LanguageHindi:   "मौसमी वर्षा: {value} मिमी",
		models.LanguageMarathi: "हंगामी पाऊस: {value} मिमी",
	},
	KeyEffectiveRainLabel: {
		models.LanguageEnglish: "Effective rainfall: {value} mm",
		models.LanguageHindi:   "प्रभावी वर्षा: {value} मिमी",
		models.LanguageMarathi: "प्रभावी पाऊस: {value} मिमी",
	},
	KeyNetIrrigationLabel: {
		models.LanguageEnglish: "Net irrigation needed: {value} mm",
		models.LanguageHindi:   "शुद्ध सिंचाई आवश्यकता: {value} मिमी",
		models.LanguageMarathi: "निव्वळ सिंचन गरज: {value} मिमी",
	},
	KeyTotalWaterLabel: {
		models.LanguageEnglish: "Total water required: {value} litres",
		models.LanguageHindi:   "कुल जल आवश्यकता: {value} लीटर",
		models.LanguageMarathi: "एकूण पाणी गरज: {value} लिटर",
	},
	KeyEstimatedProfitLabel: {
		models.LanguageEnglish: "Estimated revenue: ₹{value}",
		models.LanguageHindi:   "अनुमानित आय: ₹{value}",
		models.LanguageMarathi: "अंदाजे उत्पन्न: ₹{value}",
	},
	KeySolvencySuccess: {
		models.LanguageEnglish: "✅ Good news! Your groundwater balance ({balance} L) covers the water needed for {crop} ({required} L).",
		models.LanguageHindi:   "✅ खुशखबरी! आपका भूजल संतुलन ({balance} ली.) {crop} के लिए आवश्यक पानी ({required} ली.) के लिए पर्याप्त है।",
		models.LanguageMarathi: "✅ आनंदाची बातमी! आपला भूजल साठा ({balance} लि.) {crop} साठी लागणाऱ्या पाण्यासाठी ({required} लि.) पुरेसा आहे.",
	},
	KeySolvencyFail: {
		models.LanguageEnglish: "🔴 Caution: {crop} needs {required} L of water but your groundwater balance is only {balance} L. Here are better-suited crops for your location:",
		models.LanguageHindi:   "🔴 सावधान: {crop} के लिए {required} ली. पानी चाहिए, लेकिन आपका भूजल संतुलन केवल {balance} ली. है। आपके स्थान के लिए बेहतर फसलें:",
		models.LanguageMarathi: "🔴 सावधान: {crop} साठी {required} लि. पाणी लागते, पण आपला भूजल साठा फक्त {balance} लि. आहे. आपल्या ठिकाणासाठी अधिक योग्य पिके:",
	},
	KeyRecommendationsHeader: {
		models.LanguageEnglish: "🏆 Top crop recommendations\n",
		models.LanguageHindi:   "🏆 शीर्ष फसल सिफारिशें\n",
		models.LanguageMarathi: "🏆 सर्वोत्तम पीक शिफारसी\n",
	},
	KeyProfitScoreLabel: {
		models.LanguageEnglish: "(profit score: {score})",
		models.LanguageHindi:   "(लाभ स्कोर: {score})",
		models.LanguageMarathi: "(नफा गुण: {score})",
	},
	KeyRecommendationsTip: {
		models.LanguageEnglish: "\n💡 These crops suit your location's water availability and season.",
		models.LanguageHindi:   "\n💡 ये फसलें आपके स्थान की जल उपलब्धता और मौसम के अनुकूल हैं।",
		models.LanguageMarathi: "\n💡 ही पिके आपल्या ठिकाणच्या पाणी उपलब्धतेस आणि हंगामास अनुकूल आहेत.",
	},
	KeyNoRecommendations: {
		models.LanguageEnglish: "No crop recommendations are available for your location right now.",
		models.LanguageHindi:   "अभी आपके स्थान के लिए कोई फसल सिफारिश उपलब्ध नहीं है।",
		models.LanguageMarathi: "सध्या आपल्या ठिकाणासाठी कोणतीही पीक शिफारस उपलब्ध नाही.",
	},
	KeySowingResultHeader: {
		models.LanguageEnglish: "🌱 Best sowing window for {crop}\n",
		models.LanguageHindi:   "🌱 {crop} के लिए सर्वोत्तम बुवाई समय\n",
		models.LanguageMarathi: "🌱 {crop} साठी सर्वोत्तम पेरणी कालावधी\n",
	},
	KeySowingAdviceHeader: {
		models.LanguageEnglish: "🌱 Sowing advisory:\n\n{advice}",
		models.LanguageHindi:   "🌱 बुवाई सलाह:\n\n{advice}",
		models.LanguageMarathi: "🌱 पेरणी सल्ला:\n\n{advice}",
	},
	KeyBestSowingDate: {
		models.LanguageEnglish: "Best date: {date}",
		models.LanguageHindi:   "सर्वोत्तम तिथि: {date}",
		models.LanguageMarathi: "सर्वोत्तम तारीख: {date}",
	},
	KeyScoreLabel: {
		models.LanguageEnglish: "Suitability score: {score}",
		models.LanguageHindi:   "उपयुक्तता स्कोर: {score}",
		models.LanguageMarathi: "योग्यता गुण: {score}",
	},
	KeySoilTempLabel: {
		models.LanguageEnglish: "Soil temperature: {temp} °C",
		models.LanguageHindi:   "मिट्टी का तापमान: {temp} °C",
		models.LanguageMarathi: "मातीचे तापमान: {temp} °C",
	},
	KeySoilMoistureLabel: {
		models.LanguageEnglish: "Soil moisture: {moisture}",
		models.LanguageHindi:   "मिट्टी की नमी: {moisture}",
		models.LanguageMarathi: "मातीची आर्द्रता: {moisture}",
	},
	KeyRainProbLabel: {
		models.LanguageEnglish: "Rain probability: {prob}%",
		models.LanguageHindi:   "वर्षा की संभावना: {prob}%",
		models.LanguageMarathi: "पावसाची शक्यता: {prob}%",
	},
	KeyExpectedRainLabel: {
		models.LanguageEnglish: "Expected rain: {rain} mm",
		models.LanguageHindi:   "अनुमानित वर्षा: {rain} मिमी",
		models.LanguageMarathi: "अपेक्षित पाऊस: {rain} मिमी",
	},
	KeyTop3Options: {
		models.LanguageEnglish: "📅 Other good days:",
		models.LanguageHindi:   "📅 अन्य अच्छे दिन:",
		models.LanguageMarathi: "📅 इतर चांगले दिवस:",
	},
	KeyHigherScoreTip: {
		models.LanguageEnglish: "💡 A higher score means better sowing conditions.",
		models.LanguageHindi:   "💡 अधिक स्कोर का मतलब बेहतर बुवाई परिस्थितियाँ।",
		models.LanguageMarathi: "💡 जास्त गुण म्हणजे चांगल्या पेरणी परिस्थिती.",
	},
	KeyCropNotFound: {
		models.LanguageEnglish: "❌ Crop \"{crop}\" is not in our database. Please try another crop name.",
		models.LanguageHindi:   "❌ फसल \"{crop}\" हमारे डेटाबेस में नहीं है। कृपया कोई और फसल नाम आज़माएँ।",
		models.LanguageMarathi: "❌ पीक \"{crop}\" आमच्या डेटाबेसमध्ये नाही. कृपया दुसरे पीक नाव वापरून पाहा.",
	},
}
