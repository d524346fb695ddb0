package castellano

// Callout is one grammar explanation shown next to a translation.
type Callout struct {
	Title string `json:"title" yaml:"title"`
	Text  string `json:"text"  yaml:"text"`
}

// Result is the outcome of one translation call. Exactly one of Sentence,
// Hint and Error is set; Callouts may accompany any of them.
type Result struct {
	Sentence string    `json:"spanish,omitempty" yaml:"spanish,omitempty"`
	Hint     []string  `json:"hint,omitempty"    yaml:"hint,omitempty"`
	Callouts []Callout `json:"callouts"          yaml:"callouts"`
	Error    string    `json:"error,omitempty"   yaml:"error,omitempty"`
}

// OK reports whether the result carries a translation or a hint.
func (r Result) OK() bool {
	return r.Error == ""
}

func callout(title, text string) Callout {
	return Callout{Title: title, Text: text}
}

// modeResult fills the sentence or the hint steps depending on mode.
func modeResult(mode Mode, sentence string, hint []string, callouts []Callout) Result {
	if mode == ModeHint {
		return Result{Hint: hint, Callouts: callouts}
	}
	return Result{Sentence: sentence, Callouts: callouts}
}
