package domain

import (
	"fmt"
	"strings"
)

// Language is a selectable translation language. CountryCode is the ISO 3166-1
// alpha-2 code whose flag represents the language in the picker.
type Language struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
	Flag        string `json:"flag,omitempty"`
}

var languages = []Language{
	{Code: "en", Name: "English", CountryCode: "GB"},
	{Code: "ar", Name: "Arabic", CountryCode: "SA"},
	{Code: "az", Name: "Azerbaijani", CountryCode: "AZ"},
	{Code: "zh", Name: "Chinese", CountryCode: "CN"},
	{Code: "cs", Name: "Czech", CountryCode: "CZ"},
	{Code: "da", Name: "Danish", CountryCode: "DK"},
	{Code: "nl", Name: "Dutch", CountryCode: "NL"},
	{Code: "fi", Name: "Finnish", CountryCode: "FI"},
	{Code: "fr", Name: "French", CountryCode: "FR"},
	{Code: "de", Name: "German", CountryCode: "DE"},
	{Code: "el", Name: "Greek", CountryCode: "GR"},
	{Code: "he", Name: "Hebrew", CountryCode: "IL"},
	{Code: "hi", Name: "Hindi", CountryCode: "IN"},
	{Code: "hu", Name: "Hungarian", CountryCode: "HU"},
	{Code: "id", Name: "Indonesian", CountryCode: "ID"},
	{Code: "ga", Name: "Irish", CountryCode: "IE"},
	{Code: "it", Name: "Italian", CountryCode: "IT"},
	{Code: "ja", Name: "Japanese", CountryCode: "JP"},
	{Code: "ko", Name: "Korean", CountryCode: "KR"},
	{Code: "fa", Name: "Persian", CountryCode: "IR"},
	{Code: "pl", Name: "Polish", CountryCode: "PL"},
	{Code: "pt", Name: "Portuguese", CountryCode: "PT"},
	{Code: "ru", Name: "Russian", CountryCode: "RU"},
	{Code: "sk", Name: "Slovak", CountryCode: "SK"},
	{Code: "es", Name: "Spanish", CountryCode: "ES"},
	{Code: "sv", Name: "Swedish", CountryCode: "SE"},
	{Code: "tr", Name: "Turkish", CountryCode: "TR"},
	{Code: "uk", Name: "Ukrainian", CountryCode: "UA"},
}

var languagesByCode = func() map[string]Language {
	m := make(map[string]Language, len(languages))
	for _, l := range languages {
		m[l.Code] = l
	}
	return m
}()

// Languages returns a copy of the catalog in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// LanguageByCode looks up a catalog language by its ISO 639-1 code, ignoring case.
func LanguageByCode(code string) (Language, error) {
	l, ok := languagesByCode[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return Language{}, fmt.Errorf("language %q: %w", code, ErrNotFound)
	}
	return l, nil
}
