package castellano

import (
	"fmt"
	"strings"
)

// SubjectKey is the Spanish person a sentence's subject resolves to.
// It drives conjugation and adjective agreement.
type SubjectKey string

const (
	SubjectYo       SubjectKey = "yo"
	SubjectTu       SubjectKey = "tu"
	SubjectUsted    SubjectKey = "usted"
	SubjectEl       SubjectKey = "el"
	SubjectElla     SubjectKey = "ella"
	SubjectNosotros SubjectKey = "nosotros"
	SubjectNosotras SubjectKey = "nosotras"
	SubjectEllos    SubjectKey = "ellos"
	SubjectEllas    SubjectKey = "ellas"
	SubjectUstedes  SubjectKey = "ustedes"
)

// AllSubjectKeys lists every subject key in conjugation-table order.
var AllSubjectKeys = []SubjectKey{
	SubjectYo, SubjectTu, SubjectUsted, SubjectEl, SubjectElla,
	SubjectNosotros, SubjectNosotras, SubjectEllos, SubjectEllas, SubjectUstedes,
}

func (k SubjectKey) String() string { return string(k) }

func (k SubjectKey) IsValid() bool {
	switch k {
	case SubjectYo, SubjectTu, SubjectUsted, SubjectEl, SubjectElla,
		SubjectNosotros, SubjectNosotras, SubjectEllos, SubjectEllas, SubjectUstedes:
		return true
	}
	return false
}

// Number returns the grammatical number of the subject.
func (k SubjectKey) Number() Number {
	switch k {
	case SubjectNosotros, SubjectNosotras, SubjectEllos, SubjectEllas, SubjectUstedes:
		return NumberPlural
	}
	return NumberSingular
}

// Gender returns the grammatical gender an adjective must agree with.
// First- and second-person subjects take the speaker's gender and ellos is
// masculine. nosotras and ellas are feminine by definition rather than
// falling back to masculine; no English pronoun maps to them today.
func (k SubjectKey) Gender(speaker Gender) Gender {
	switch k {
	case SubjectElla, SubjectNosotras, SubjectEllas:
		return GenderFeminine
	case SubjectEl, SubjectEllos:
		return GenderMasculine
	case SubjectYo, SubjectTu, SubjectUsted, SubjectNosotros, SubjectUstedes:
		return speaker
	}
	return GenderMasculine
}

// Dialect selects regional vocabulary.
type Dialect string

const (
	DialectMexican   Dialect = "mx"
	DialectCastilian Dialect = "es"
)

// Dialects lists every supported dialect.
var Dialects = []Dialect{DialectMexican, DialectCastilian}

func (d Dialect) String() string { return string(d) }

func (d Dialect) IsValid() bool {
	return d == DialectMexican || d == DialectCastilian
}

// Mode selects between a full translation and step-by-step hints.
type Mode string

const (
	ModeTranslate Mode = "translate"
	ModeHint      Mode = "hint"
)

func (m Mode) String() string { return string(m) }

func (m Mode) IsValid() bool {
	return m == ModeTranslate || m == ModeHint
}

// Gender is used both for the speaker and for grammatical gender.
type Gender string

const (
	GenderMasculine Gender = "m"
	GenderFeminine  Gender = "f"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	return g == GenderMasculine || g == GenderFeminine
}

// Word returns "masculine" or "feminine".
func (g Gender) Word() string {
	if g == GenderFeminine {
		return "feminine"
	}
	return "masculine"
}

// YouForm selects what English "you" means.
type YouForm string

const (
	YouInformal YouForm = "tu"
	YouFormal   YouForm = "usted"
)

func (y YouForm) String() string { return string(y) }

func (y YouForm) IsValid() bool {
	return y == YouInformal || y == YouFormal
}

// Number is grammatical number.
type Number string

const (
	NumberSingular Number = "singular"
	NumberPlural   Number = "plural"
)

// Class is the semantic class of an adjective. It decides the copula.
type Class string

const (
	ClassFeeling Class = "feeling"
	ClassTrait   Class = "trait"
)

func (c Class) IsValid() bool {
	return c == ClassFeeling || c == ClassTrait
}

// Copula returns the verb used with adjectives of this class.
func (c Class) Copula() string {
	if c == ClassFeeling {
		return "estar"
	}
	return "ser"
}

// Request is one translation call.
type Request struct {
	Text          string
	Dialect       Dialect
	Mode          Mode
	SpeakerGender Gender
	YouForm       YouForm
}

// Validate reports the first field holding a value outside its enumeration.
func (r Request) Validate() error {
	switch {
	case !r.Dialect.IsValid():
		return fmt.Errorf("%w: dialect %q", ErrInvalidOption, r.Dialect)
	case !r.Mode.IsValid():
		return fmt.Errorf("%w: mode %q", ErrInvalidOption, r.Mode)
	case !r.SpeakerGender.IsValid():
		return fmt.Errorf("%w: speaker gender %q", ErrInvalidOption, r.SpeakerGender)
	case !r.YouForm.IsValid():
		return fmt.Errorf("%w: you form %q", ErrInvalidOption, r.YouForm)
	}
	return nil
}

// NewRequest builds a Request from the five flat fields a form collects.
// Empty option strings take the defaults (mx, translate, m, tu); anything
// else that is not a recognised code or label is rejected.
func NewRequest(text, dialect, mode, gender, youForm string) (Request, error) {
	d, err := ParseDialect(dialect)
	if err != nil {
		return Request{}, err
	}
	m, err := ParseMode(mode)
	if err != nil {
		return Request{}, err
	}
	g, err := ParseGender(gender)
	if err != nil {
		return Request{}, err
	}
	y, err := ParseYouForm(youForm)
	if err != nil {
		return Request{}, err
	}
	return Request{Text: text, Dialect: d, Mode: m, SpeakerGender: g, YouForm: y}, nil
}

// ParseDialect accepts a dialect code or one of the form labels
// ("Mexican Spanish", "Castilian Spanish").
func ParseDialect(s string) (Dialect, error) {
	switch optionKey(s) {
	case "", "mx", "mexican", "mexican spanish":
		return DialectMexican, nil
	case "es", "castilian", "castilian spanish":
		return DialectCastilian, nil
	}
	return "", fmt.Errorf("%w: dialect %q", ErrInvalidOption, s)
}

// ParseMode accepts "translate" or "hint" in any case.
func ParseMode(s string) (Mode, error) {
	switch optionKey(s) {
	case "", "translate":
		return ModeTranslate, nil
	case "hint":
		return ModeHint, nil
	}
	return "", fmt.Errorf("%w: mode %q", ErrInvalidOption, s)
}

// ParseGender accepts "m"/"f" or "masculine"/"feminine".
func ParseGender(s string) (Gender, error) {
	switch optionKey(s) {
	case "", "m", "masculine":
		return GenderMasculine, nil
	case "f", "feminine":
		return GenderFeminine, nil
	}
	return "", fmt.Errorf("%w: gender %q", ErrInvalidOption, s)
}

// ParseYouForm accepts "tu"/"usted" with or without accents and the form
// labels "tú (informal)" and "usted (formal)".
func ParseYouForm(s string) (YouForm, error) {
	switch optionKey(s) {
	case "", "tu", "tú", "informal", "tu (informal)", "tú (informal)":
		return YouInformal, nil
	case "usted", "formal", "usted (formal)":
		return YouFormal, nil
	}
	return "", fmt.Errorf("%w: you form %q", ErrInvalidOption, s)
}

func optionKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
