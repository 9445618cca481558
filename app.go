package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/cwhuang/recite/internal/config"
	"github.com/cwhuang/recite/internal/dict"
	"github.com/cwhuang/recite/internal/narrator"
	"github.com/cwhuang/recite/internal/session"
	"github.com/cwhuang/recite/internal/speech"
	"github.com/cwhuang/recite/internal/vocab"
	"github.com/cwhuang/recite/internal/voice"
)

// sampleVocab keeps the binary usable with no configuration at all.
//
//go:embed data/vocab.csv
var sampleVocab string

// app wires the shared core used by both the terminal and GUI
// frontends.
type app struct {
	cfg        *config.Config
	store      *vocab.Store
	engine     speech.Engine
	catalog    *voice.Catalog
	sess       *session.State
	nar        *narrator.Narrator
	dictionary *dict.Dictionary
}

// newApp loads config, vocabulary, voices, and the dictionary, and
// builds the narrator. vocabPath (from the command line) wins over the
// configured path; empty falls back to the embedded sample list.
func newApp(vocabPath string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.NewLogger(cfg.Log)

	if vocabPath == "" {
		vocabPath = cfg.Vocab.Path
	}
	var records []vocab.Record
	if vocabPath != "" {
		records, err = vocab.LoadFile(vocabPath)
		if err != nil {
			return nil, fmt.Errorf("load vocabulary %s: %w", vocabPath, err)
		}
	} else {
		records = vocab.Parse(sampleVocab, ',')
	}
	store := vocab.NewStore(records)
	slog.Info("vocabulary loaded", "records", store.Len(), "path", vocabPath)

	var engine speech.Engine = speech.NewCommandEngine(cfg.Speech.Command)
	if !engine.Available() {
		slog.Warn("speech synthesizer not found, narration disabled", "command", cfg.Speech.Command)
		engine = speech.NullEngine{}
	}

	catalog := voice.NewCatalog(engine.Voices())
	if v := cfg.Speech.EnglishVoice; v != "" {
		catalog.SelectEnglish(v)
	}
	if v := cfg.Speech.ChineseVoice; v != "" {
		catalog.SelectChinese(v)
	}

	sess := session.New()
	sess.SetRate(cfg.Speech.Rate)
	sess.SetVoices(catalog.English(), catalog.Chinese())

	dictionary := dict.New()
	dictionary.LoadAsync(context.Background(), cfg.Dictionary.Path, cfg.Dictionary.URL, cfg.Dictionary.Timeout)

	return &app{
		cfg:        cfg,
		store:      store,
		engine:     engine,
		catalog:    catalog,
		sess:       sess,
		nar:        narrator.New(engine, store, sess),
		dictionary: dictionary,
	}, nil
}

// current returns the record at the session index, or a zero record
// for an empty store.
func (a *app) current() vocab.Record {
	return a.store.At(a.sess.Index())
}

// next moves to a new random card. A no-op while narration runs (the
// loop owns the index) or with an empty store.
func (a *app) next() {
	if a.nar.Running() || a.store.Len() == 0 {
		return
	}
	a.sess.SetIndex(vocab.PickNext(a.sess.Index(), a.store.Len()))
}

// readEnglish speaks the current English term once.
func (a *app) readEnglish() {
	en, _ := a.sess.Voices()
	a.nar.SpeakOnce(a.current().English, narrator.LangEnglish, en)
}

// readChinese speaks the current Chinese meaning once.
func (a *app) readChinese() {
	_, zh := a.sess.Voices()
	a.nar.SpeakOnce(a.current().Chinese, narrator.LangChinese, zh)
}

// toggleAuto flips the narration loop.
func (a *app) toggleAuto() {
	if a.nar.Running() {
		a.nar.Stop()
	} else {
		a.nar.Start()
	}
}

// syncVoices copies the catalog selection into the session.
func (a *app) syncVoices() {
	a.sess.SetVoices(a.catalog.English(), a.catalog.Chinese())
}

// voiceName renders a voice ID for the status line.
func (a *app) voiceName(id string) string {
	if id == "" {
		return "none"
	}
	if d, ok := a.catalog.Find(id); ok {
		return d.DisplayName
	}
	return id
}

// lookupCurrent resolves the current card's source term against the
// dictionary.
func (a *app) lookupCurrent() string {
	return a.lookup(a.current().LookupKey)
}

// lookup resolves a dictionary query into a user-facing message.
func (a *app) lookup(query string) string {
	entry, status := a.dictionary.Lookup(query)
	switch status {
	case dict.StatusNotReady:
		return "dictionary still loading..."
	case dict.StatusEmptyQuery:
		return "enter a word"
	case dict.StatusNotFound:
		return "no match found"
	default:
		if entry.PartOfSpeech != "" {
			return fmt.Sprintf("%s (%s)", entry.Definition, entry.PartOfSpeech)
		}
		return entry.Definition
	}
}
