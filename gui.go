//go:build gui

package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/cwhuang/recite/internal/session"
	"github.com/cwhuang/recite/internal/voice"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// voiceOption renders a catalog entry for the voice dropdowns.
func voiceOption(d voice.Descriptor) string {
	return fmt.Sprintf("%s (%s)", d.DisplayName, d.LanguageTag)
}

func voiceOptions(voices []voice.Descriptor) ([]string, map[string]string) {
	options := make([]string, 0, len(voices))
	ids := make(map[string]string, len(voices))
	for _, d := range voices {
		opt := voiceOption(d)
		options = append(options, opt)
		ids[opt] = d.ID
	}
	return options, ids
}

func main() {
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Recite - Vocabulary Flashcards (GUI)\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  recite [options] [vocab file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("recite %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	var vocabPath string
	if flag.NArg() > 0 {
		vocabPath = flag.Arg(0)
	}

	a, err := newApp(vocabPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fyneApp := app.New()
	w := fyneApp.NewWindow("Recite - Vocabulary Flashcards")

	englishText := canvas.NewText("", color.White)
	englishText.TextSize = 48
	englishText.TextStyle.Bold = true
	englishText.Alignment = fyne.TextAlignCenter

	chineseText := canvas.NewText("", color.RGBA{R: 0, G: 215, B: 175, A: 255})
	chineseText.TextSize = 32
	chineseText.Alignment = fyne.TextAlignCenter

	statusLabel := widget.NewLabel("")
	statusLabel.Alignment = fyne.TextAlignCenter

	lookupResult := widget.NewLabel("")
	lookupResult.Alignment = fyne.TextAlignCenter

	var autoBtn *widget.Button

	updateDisplay := func() {
		rec := a.current()
		englishText.Text = rec.English
		chineseText.Text = rec.Chinese
		englishText.Refresh()
		chineseText.Refresh()

		en, zh := a.sess.Voices()
		status := fmt.Sprintf("Card %d/%d | %.2fx | EN: %s | ZH: %s",
			a.sess.Index()+1, a.store.Len(), a.sess.Rate(), a.voiceName(en), a.voiceName(zh))
		if a.sess.Auto() {
			status += " [AUTO]"
		}
		if !a.engine.Available() {
			status += " [no speech engine]"
		}
		statusLabel.SetText(status)

		if a.sess.Auto() {
			autoBtn.SetText("Stop")
		} else {
			autoBtn.SetText("Auto")
		}
	}

	nextBtn := widget.NewButton("Next", func() {
		a.next()
		updateDisplay()
	})
	readEnBtn := widget.NewButton("Read English", func() {
		a.readEnglish()
	})
	readZhBtn := widget.NewButton("Read Chinese", func() {
		a.readChinese()
	})
	autoBtn = widget.NewButton("Auto", func() {
		a.toggleAuto()
		updateDisplay()
	})
	defineBtn := widget.NewButton("Define", func() {
		lookupResult.SetText(a.lookupCurrent())
	})

	options, ids := voiceOptions(a.catalog.Voices())

	enSelect := widget.NewSelect(options, func(opt string) {
		if id, ok := ids[opt]; ok {
			a.catalog.SelectEnglish(id)
			a.syncVoices()
			updateDisplay()
		}
	})
	zhSelect := widget.NewSelect(options, func(opt string) {
		if id, ok := ids[opt]; ok {
			a.catalog.SelectChinese(id)
			a.syncVoices()
			updateDisplay()
		}
	})
	if d, ok := a.catalog.Find(a.catalog.English()); ok {
		enSelect.SetSelected(voiceOption(d))
	}
	if d, ok := a.catalog.Find(a.catalog.Chinese()); ok {
		zhSelect.SetSelected(voiceOption(d))
	}

	rateSlider := widget.NewSlider(session.RateMin, session.RateMax)
	rateSlider.Step = session.RateStep
	rateSlider.SetValue(a.sess.Rate())
	rateSlider.OnChanged = func(v float64) {
		a.sess.SetRate(v)
		updateDisplay()
	}

	lookupEntry := widget.NewEntry()
	lookupEntry.SetPlaceHolder("look up a word")
	lookupEntry.OnSubmitted = func(q string) {
		lookupResult.SetText(a.lookup(q))
	}

	if !a.engine.Available() {
		readEnBtn.Disable()
		readZhBtn.Disable()
		autoBtn.Disable()
		enSelect.Disable()
		zhSelect.Disable()
	}
	if a.store.Len() == 0 {
		nextBtn.Disable()
		readEnBtn.Disable()
		readZhBtn.Disable()
		autoBtn.Disable()
		defineBtn.Disable()
		englishText.Text = "No vocabulary entries"
	}

	// Mirror narrator advances onto the display.
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-a.nar.Events():
				fyne.Do(updateDisplay)
			}
		}
	}()

	card := container.NewVBox(
		englishText,
		chineseText,
	)
	buttons := container.NewHBox(nextBtn, readEnBtn, readZhBtn, autoBtn, defineBtn)
	controls := container.NewVBox(
		container.NewCenter(buttons),
		widget.NewForm(
			widget.NewFormItem("English voice", enSelect),
			widget.NewFormItem("Chinese voice", zhSelect),
			widget.NewFormItem("Rate", rateSlider),
			widget.NewFormItem("Dictionary", lookupEntry),
		),
		lookupResult,
	)

	w.SetContent(container.NewBorder(
		statusLabel,
		controls,
		nil, nil,
		container.NewCenter(card),
	))

	w.SetOnClosed(func() {
		a.nar.Stop()
		close(done)
	})

	updateDisplay()
	w.Resize(fyne.NewSize(800, 600))
	w.ShowAndRun()
}
