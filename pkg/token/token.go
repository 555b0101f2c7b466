// Package token adapts the kagome/IPADIC morphological analyzer into the
// ordered sequence of annotated Tokens the rest of mozuku-go operates on.
package token

import (
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// unspecified is the sentinel IPADIC feature value meaning "not applicable".
const unspecified = "*"

// Token is an immutable, positioned morphological unit.
type Token struct {
	Surface         string
	POS             string
	POSDetail1      string
	POSDetail2      string
	POSDetail3      string
	ConjugationType string
	ConjugationForm string
	BaseForm        string
	Reading         string
	Pronunciation   string
	ByteOffset      int
	CharOffset      int
	CharLength      int
}

// DictionaryLoadError is returned when the embedded IPADIC dictionary
// cannot be loaded — fatal at startup per the core's error model.
type DictionaryLoadError struct {
	Err error
}

func (e *DictionaryLoadError) Error() string {
	return "tokenizer: failed to load dictionary: " + e.Err.Error()
}

func (e *DictionaryLoadError) Unwrap() error { return e.Err }

// Tokenizer wraps a kagome tokenizer over the embedded IPADIC dictionary.
// It is immutable after construction and safe for concurrent use across
// requests.
type Tokenizer struct {
	t *tokenizer.Tokenizer
}

// New constructs a Tokenizer from the embedded IPADIC dictionary.
func New() (*Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, &DictionaryLoadError{Err: err}
	}
	return &Tokenizer{t: t}, nil
}

// Tokenize breaks text into an ordered sequence of Tokens. A tokenization
// failure produces an empty slice rather than propagating an error, so
// rule evaluation over pathological input never raises false positives.
func (tk *Tokenizer) Tokenize(text string) []Token {
	morphemes := tk.safeTokenize(text)

	tokens := make([]Token, 0, len(morphemes))
	charOffset := 0

	for _, m := range morphemes {
		if m.Class == tokenizer.DUMMY {
			continue
		}

		surface := m.Surface
		charLength := runeCount(surface)
		details := m.Features()

		tok := Token{
			Surface:         surface,
			POS:             detail(details, 0, unspecified),
			POSDetail1:      detail(details, 1, unspecified),
			POSDetail2:      detail(details, 2, unspecified),
			POSDetail3:      detail(details, 3, unspecified),
			ConjugationType: detail(details, 4, unspecified),
			ConjugationForm: detail(details, 5, unspecified),
			BaseForm:        detail(details, 6, surface),
			Reading:         detail(details, 7, ""),
			Pronunciation:   detail(details, 8, ""),
			ByteOffset:      m.Start,
			CharOffset:      charOffset,
			CharLength:      charLength,
		}

		tokens = append(tokens, tok)
		charOffset += charLength
	}

	return tokens
}

// safeTokenize recovers from a panicking kagome tokenizer (a malformed
// dictionary entry or pathological input) and reports it as zero tokens,
// per the core's tokenize-failed error kind.
func (tk *Tokenizer) safeTokenize(text string) (morphemes []tokenizer.Token) {
	defer func() {
		if recover() != nil {
			morphemes = nil
		}
	}()
	return tk.t.Tokenize(text)
}

func detail(details []string, index int, fallback string) string {
	if index >= len(details) {
		return fallback
	}
	v := details[index]
	if v == unspecified && fallback != unspecified {
		return fallback
	}
	return v
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

