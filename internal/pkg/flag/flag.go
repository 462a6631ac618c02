package flag

import "strings"

// regionalIndicatorOffset moves 'A' (U+0041) onto U+1F1E6, REGIONAL INDICATOR SYMBOL LETTER A.
const regionalIndicatorOffset = 127397

// Mapper turns an ISO 3166-1 alpha-2 country code into its flag emoji.
type Mapper interface {
	Map(code string) string
}

// CountryCodeEmojiMapper is the default Mapper. It is stateless and safe for concurrent use.
type CountryCodeEmojiMapper struct{}

func (CountryCodeEmojiMapper) Map(code string) string { return MapCountryCodeToFlag(code) }

// MapCountryCodeToFlag upper-cases code and shifts every rune by the regional
// indicator offset. Input is not validated: "" yields "", a three-letter code
// yields three indicators, and non-letters are shifted the same way.
func MapCountryCodeToFlag(code string) string {
	upper := strings.ToUpper(code)
	var b strings.Builder
	b.Grow(len(upper) * 4)
	for _, r := range upper {
		b.WriteRune(r + regionalIndicatorOffset)
	}
	return b.String()
}
