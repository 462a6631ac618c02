package flag

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapCountryCodeToFlag_US(t *testing.T) {
	got := MapCountryCodeToFlag("us")
	assert.Equal(t, []rune{0x1F1FA, 0x1F1F8}, []rune(got))
	assert.Equal(t, "🇺🇸", got)
}

func TestMapCountryCodeToFlag_DE(t *testing.T) {
	got := MapCountryCodeToFlag("DE")
	assert.Equal(t, []rune{0x1F1E9, 0x1F1EA}, []rune(got))
	assert.Equal(t, "🇩🇪", got)
}

func TestMapCountryCodeToFlag_Empty(t *testing.T) {
	assert.Equal(t, "", MapCountryCodeToFlag(""))
}

func TestMapCountryCodeToFlag_LongerInputIsNotTruncated(t *testing.T) {
	got := []rune(MapCountryCodeToFlag("usa"))
	assert.Equal(t, []rune{0x1F1FA, 0x1F1F8, 0x1F1E6}, got)
}

func TestMapCountryCodeToFlag_NonLetterIsShifted(t *testing.T) {
	got := []rune(MapCountryCodeToFlag("1"))
	assert.Equal(t, []rune{'1' + regionalIndicatorOffset}, got)
}

func TestMapCountryCodeToFlag_CaseInsensitive(t *testing.T) {
	want := MapCountryCodeToFlag("US")
	assert.Equal(t, want, MapCountryCodeToFlag("us"))
	assert.Equal(t, want, MapCountryCodeToFlag("Us"))
}

func TestMapCountryCodeToFlag_AllLettersInRange(t *testing.T) {
	for c := 'A'; c <= 'Z'; c++ {
		r := []rune(MapCountryCodeToFlag(string(c)))
		assert.Len(t, r, 1)
		assert.GreaterOrEqual(t, r[0], rune(0x1F1E6))
		assert.LessOrEqual(t, r[0], rune(0x1F1FF))
	}
}

func TestCountryCodeEmojiMapper_ConcurrentCallsAgree(t *testing.T) {
	var m Mapper = CountryCodeEmojiMapper{}
	want := m.Map("fr")
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, m.Map("fr"))
		}()
	}
	wg.Wait()
}
