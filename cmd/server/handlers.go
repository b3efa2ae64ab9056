package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/cours-de-latin/pali"
	"github.com/cours-de-latin/pali/morph"
	"github.com/cours-de-latin/pali/sandhi"
)

// ---- JSON response types ------------------------------------------------

type analysisJSON struct {
	Word     string            `json:"word"`
	Lemma    string            `json:"lemma"`
	Features map[string]string `json:"features"`
}

type lemmatizeResponse struct {
	Word   string             `json:"word"`
	Lemmas []pali.LemmaResult `json:"lemmas"`
}

type analyzeResponse struct {
	Word     string         `json:"word"`
	Analyses []analysisJSON `json:"analyses"`
}

type generateResponse struct {
	Lemma string         `json:"lemma"`
	Forms []analysisJSON `json:"forms"`
}

type stemResponse struct {
	Word  string   `json:"word"`
	Stems []string `json:"stems"`
}

type mergeResponse struct {
	Words  []string `json:"words"`
	Merged []string `json:"merged"`
}

type splitResponse struct {
	Word   string               `json:"word"`
	Splits []sandhi.SplitResult `json:"splits"`
}

type compoundResponse struct {
	Lemma   string   `json:"lemma"`
	Members []string `json:"members"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toJSON(word, lemma string, fs morph.FeatureSet) analysisJSON {
	return analysisJSON{Word: word, Lemma: lemma, Features: fs.Map()}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("encode error")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}

// getQuery answers false after writing the error response when the
// request is not a GET or lacks the q parameter.
func getQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "GET required")
		return "", false
	}
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, r, http.StatusBadRequest, "missing 'q' query parameter")
		return "", false
	}
	return q, true
}

func boolParam(r *http.Request, name string) bool {
	b, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return b
}

// ---- handlers -----------------------------------------------------------

func handleLemmatize(e *pali.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := getQuery(w, r)
		if !ok {
			return
		}
		var lemmas []pali.LemmaResult
		if boolParam(r, "lexicon") {
			lemmas = e.LemmatizeWithLexicon(r.Context(), q)
		} else {
			lemmas = e.Lemmatize(r.Context(), q, r.URL.Query()["pos"]...)
		}
		if lemmas == nil {
			lemmas = []pali.LemmaResult{}
		}
		writeJSON(w, r, http.StatusOK, lemmatizeResponse{Word: pali.Normalize(q), Lemmas: lemmas})
	}
}

func handleAnalyze(e *pali.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := getQuery(w, r)
		if !ok {
			return
		}
		analyses := e.Analyze(r.Context(), q, r.URL.Query()["pos"]...)
		out := make([]analysisJSON, 0, len(analyses))
		for _, a := range analyses {
			out = append(out, toJSON(a.Word, a.Lemma, a.Features))
		}
		writeJSON(w, r, http.StatusOK, analyzeResponse{Word: pali.Normalize(q), Analyses: out})
	}
}

func handleGenerate(e *pali.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := getQuery(w, r)
		if !ok {
			return
		}
		params := r.URL.Query()
		var opts []pali.GenerateOption
		if g := params.Get("gender"); g != "" {
			opts = append(opts, pali.WithGender(g))
		}
		if d := params.Get("declension"); d != "" {
			opts = append(opts, pali.WithDeclension(d))
		}
		if boolParam(r, "affixes") {
			opts = append(opts, pali.WithAffixes())
		}
		forms := e.Generate(r.Context(), q, params.Get("pos"), opts...)
		out := make([]analysisJSON, 0, len(forms))
		for _, f := range forms {
			out = append(out, toJSON(f.Word, f.Lemma, f.Features))
		}
		writeJSON(w, r, http.StatusOK, generateResponse{Lemma: pali.Normalize(q), Forms: out})
	}
}

func handleStem(e *pali.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := getQuery(w, r)
		if !ok {
			return
		}
		writeJSON(w, r, http.StatusOK, stemResponse{
			Word:  pali.Normalize(q),
			Stems: e.Stem(q, r.URL.Query()["pos"]...),
		})
	}
}

func handleMerge(e *pali.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := getQuery(w, r); !ok {
			return
		}
		words := r.URL.Query()["q"]
		merged, err := e.Merge(words...)
		if errors.Is(err, pali.ErrTooFewWords) {
			writeError(w, r, http.StatusBadRequest, "at least two 'q' parameters required")
			return
		}
		writeJSON(w, r, http.StatusOK, mergeResponse{Words: words, Merged: merged})
	}
}

func handleSplit(e *pali.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := getQuery(w, r)
		if !ok {
			return
		}
		depth := 0
		if d := r.URL.Query().Get("depth"); d != "" {
			n, err := strconv.Atoi(d)
			if err != nil || n < 0 {
				writeError(w, r, http.StatusBadRequest, "'depth' must be a non-negative integer")
				return
			}
			depth = n
		}
		splits := e.Split(r.Context(), q, depth)
		if splits == nil {
			splits = []sandhi.SplitResult{}
		}
		writeJSON(w, r, http.StatusOK, splitResponse{Word: pali.Normalize(q), Splits: splits})
	}
}

func handleCompound(e *pali.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := getQuery(w, r)
		if !ok {
			return
		}
		members, err := e.SplitCompound(r.Context(), q, boolParam(r, "force"))
		if err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Str("lemma", q).Msg("compound lookup failed")
			writeError(w, r, http.StatusBadGateway, "dictionary lookup failed")
			return
		}
		if members == nil {
			members = []string{}
		}
		writeJSON(w, r, http.StatusOK, compoundResponse{Lemma: pali.Normalize(q), Members: members})
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
