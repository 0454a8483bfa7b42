package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/markdowned"
)

// Ensure MainContentExtractor implements markdowned.Extractor at compile time.
var _ markdowned.Extractor = (*MainContentExtractor)(nil)

// Noise removed from the cloned main region, applied in order.
var (
	codeSelectors = []string{"script", "style", "noscript"}

	landmarkSelectors = []string{
		"nav", "header", "footer", "aside",
		"[role='navigation']", "[role='banner']", "[role='complementary']",
	}

	hiddenSelectors = []string{"[aria-hidden='true']", "[hidden]"}

	chromeClassSelectors = []string{
		"[class*='sidebar']", "[class*='toolbar']", "[class*='tooltip']",
		"[class*='sr-only']", "[class*='visually-hidden']",
	}

	controlSelectors = []string{
		"button", "input", "textarea", "select", "[role='button']",
		"[aria-haspopup='menu']", "[aria-label*='menu' i]",
	}
)

// hiddenStyles mark an element as invisible when found in its inline style
// with whitespace removed.
var hiddenStyles = []string{"display:none", "visibility:hidden", "opacity:0"}

// MainContentExtractor extracts the page's main landmark region with
// navigation, hidden elements and interactive chrome pruned away.
type MainContentExtractor struct {
	// InteractiveContainerMaxText is the text length below which a container
	// with controls and no block content is pruned.
	InteractiveContainerMaxText int
}

// NewMainContentExtractor creates a MainContentExtractor configured from t.
func NewMainContentExtractor(t markdowned.Thresholds) *MainContentExtractor {
	return &MainContentExtractor{InteractiveContainerMaxText: t.InteractiveContainerMaxText}
}

// Extract returns the pruned main region of the snapshot.
// Returns ENOTFOUND if nothing remains after pruning.
func (e *MainContentExtractor) Extract(snap *markdowned.Snapshot) (*markdowned.ExtractedContent, error) {
	doc, err := parseSnapshot(snap)
	if err != nil {
		return nil, err
	}

	root := MainRoot(doc)
	if root.Length() == 0 {
		return nil, markdowned.Errorf(markdowned.ENOTFOUND, "no main region")
	}

	pruned := root.Clone()
	e.prune(pruned)

	inner, err := pruned.Html()
	if err != nil {
		return nil, markdowned.Errorf(markdowned.EINTERNAL, "failed to render main region: %v", err)
	}

	content := &markdowned.ExtractedContent{
		Title:         snap.Title,
		HTML:          strings.TrimSpace(inner),
		Text:          markdowned.NormalizeText(pruned.Text()),
		DocumentTitle: snap.Title,
	}
	if err := content.Validate(); err != nil {
		return nil, markdowned.Errorf(markdowned.ENOTFOUND, "main region is empty after pruning")
	}
	return content, nil
}

// prune removes noise from root's descendants in place.
func (e *MainContentExtractor) prune(root *goquery.Selection) {
	for _, group := range [][]string{
		codeSelectors,
		landmarkSelectors,
		hiddenSelectors,
		chromeClassSelectors,
		controlSelectors,
	} {
		root.Find(strings.Join(group, ", ")).Remove()
	}

	removeHiddenStyles(root)
	e.removeInteractiveContainers(root)
}

// removeHiddenStyles removes elements hidden through their inline style.
func removeHiddenStyles(root *goquery.Selection) {
	root.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		style = strings.ToLower(strings.Join(strings.Fields(style), ""))
		for _, hidden := range hiddenStyles {
			if strings.Contains(style, hidden) {
				s.Remove()
				return
			}
		}
	})
}

// removeInteractiveContainers removes short elements that hold interactive
// descendants but no block content, such as toolbars and button groups.
// A short caption sitting next to a single control is removed as well.
func (e *MainContentExtractor) removeInteractiveContainers(root *goquery.Selection) {
	root.Find("*").Each(func(_ int, s *goquery.Selection) {
		if !isElement(s.Get(0)) || s.Children().Length() == 0 {
			return
		}
		if textLength(s) >= e.InteractiveContainerMaxText {
			return
		}
		if s.Find(interactiveSelector).Length() == 0 {
			return
		}
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		s.Remove()
	})
}
