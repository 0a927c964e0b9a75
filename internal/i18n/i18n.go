// Package i18n holds the UI label sets for each supported language.
package i18n

// Default is the language used when a code has no label set.
const Default = "en"

// Labels maps a label key to its display text.
type Labels map[string]string

var translations = map[string]Labels{
	"en": {
		"dashboard":    "Dashboard",
		"about":        "About",
		"prediction":   "Prediction",
		"health":       "Health Advisor",
		"feedback":     "Feedback",
		"chatbot":      "Chatbot",
		"download":     "Download",
		"logout":       "Logout",
		"total_cities": "Total Cities",
		"pm25_avg":     "PM2.5 Avg",
		"pm10_avg":     "PM10 Avg",
		"monthwise":    "Month-wise Pollution Trend",
		"citywise":     "City-wise Air Pollution",
		"lang_name":    "EN",
	},
	"hi": {
		"dashboard":    "डैशबोर्ड",
		"about":        "परिचय",
		"prediction":   "पूर्वानुमान",
		"health":       "स्वास्थ्य सलाहकार",
		"feedback":     "प्रतिक्रिया",
		"chatbot":      "चैटबॉट",
		"download":     "डाउनलोड",
		"logout":       "लॉग आउट",
		"total_cities": "कुल शहर",
		"pm25_avg":     "PM2.5 औसत",
		"pm10_avg":     "PM10 औसत",
		"monthwise":    "मासिक प्रदूषण प्रवृत्ति",
		"citywise":     "शहरवार वायु प्रदूषण",
		"lang_name":    "हिं",
	},
}

// For returns the label set for code, or the English set when code is not
// supported.
func For(code string) Labels {
	if l, ok := translations[code]; ok {
		return l
	}
	return translations[Default]
}

// Codes returns the supported language codes in switcher order.
func Codes() []string {
	return []string{"en", "hi"}
}

// Get returns the label for key, falling back to the key itself so templates
// never render an empty string for a missing entry.
func (l Labels) Get(key string) string {
	if v, ok := l[key]; ok {
		return v
	}
	return key
}
