package pali

import (
	"github.com/cours-de-latin/pali/morph"
)

// LemmaResult is one lemma candidate for a word.
type LemmaResult struct {
	Word      string `json:"word"`
	Lemma     string `json:"lemma"`
	WordClass string `json:"pos"`
}

// Analysis is one morphological reading of a word. For regular forms Word
// shows the segmentation as stem_ending.
type Analysis struct {
	Word     string
	Lemma    string
	Features morph.FeatureSet
}

// SurfaceForm is one generated form of a lemma.
type SurfaceForm struct {
	Word     string
	Lemma    string
	Features morph.FeatureSet
}

func newAnalysis(cw morph.ConstructedWord) Analysis {
	return Analysis{Word: cw.Word, Lemma: cw.Lemma, Features: cw.Features}
}

func newSurfaceForm(cw morph.ConstructedWord) SurfaceForm {
	return SurfaceForm{Word: cw.Word, Lemma: cw.Lemma, Features: cw.Features}
}
