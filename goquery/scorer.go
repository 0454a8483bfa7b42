package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/markdowned"
)

// Ensure AppSignalScorer implements markdowned.Scorer at compile time.
var _ markdowned.Scorer = (*AppSignalScorer)(nil)

// appHintSelectors match message/conversation structure typical of chat and
// assistant UIs.
var appHintSelectors = []string{
	"[class*='message']",
	"[class*='chat']",
	"[class*='conversation']",
	"[class*='response']",
	"[data-testid*='message']",
	"[data-testid*='conversation']",
	"[data-testid*='response']",
	"[data-message-author-role]",
}

// AppSignalScorer estimates how application-like the main region of a page
// is, from 0 (document) to 4 (application).
type AppSignalScorer struct {
	Thresholds markdowned.AppSignalThresholds
}

// NewAppSignalScorer creates an AppSignalScorer configured from t.
func NewAppSignalScorer(t markdowned.Thresholds) *AppSignalScorer {
	return &AppSignalScorer{Thresholds: t.AppSignal}
}

// Score parses the snapshot and scores its unpruned main region.
// Unparseable snapshots score 0.
func (s *AppSignalScorer) Score(snap *markdowned.Snapshot) int {
	doc, err := parseSnapshot(snap)
	if err != nil {
		return 0
	}
	return s.ScoreSelection(MainRoot(doc))
}

// ScoreSelection scores the descendants of root. One point each for many
// buttons, interactive elements outnumbering paragraphs, an editable field,
// and repeated message structure.
func (s *AppSignalScorer) ScoreSelection(root *goquery.Selection) int {
	if root.Length() == 0 {
		return 0
	}

	score := 0

	if root.Find(buttonSelector).Length() >= s.Thresholds.MinButtons {
		score++
	}

	interactive := root.Find(interactiveSelector).Length()
	paragraphs := root.Find("p").Length()
	if interactive >= s.Thresholds.MinInteractive &&
		float64(interactive) > s.Thresholds.InteractiveParagraphRatio*float64(paragraphs) {
		score++
	}

	if root.Find(editableSelector).Length() > 0 {
		score++
	}

	if root.Find(strings.Join(appHintSelectors, ", ")).Length() >= s.Thresholds.MinAppHints {
		score++
	}

	return score
}
