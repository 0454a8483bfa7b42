package markdowned

// AppSignalThresholds parameterize the app-signal score.
type AppSignalThresholds struct {
	// MinButtons is the button count at which a region looks app-like.
	MinButtons int `yaml:"minButtons" json:"minButtons"`

	// MinInteractive is the interactive element count at which a region
	// looks app-like, provided it also exceeds InteractiveParagraphRatio
	// times the paragraph count.
	MinInteractive            int     `yaml:"minInteractive" json:"minInteractive"`
	InteractiveParagraphRatio float64 `yaml:"interactiveParagraphRatio" json:"interactiveParagraphRatio"`

	// MinAppHints is the number of chat/message structure hints required.
	MinAppHints int `yaml:"minAppHints" json:"minAppHints"`
}

// ContentQualityThresholds parameterize the choice between the readability
// candidate and the main-content candidate. Lengths are in characters.
type ContentQualityThresholds struct {
	StrongSignalScore     int     `yaml:"strongSignalScore" json:"strongSignalScore"`
	StrongSignalRatio     float64 `yaml:"strongSignalRatio" json:"strongSignalRatio"`
	ThinArticleLength     int     `yaml:"thinArticleLength" json:"thinArticleLength"`
	SubstantialMainLength int     `yaml:"substantialMainLength" json:"substantialMainLength"`
	OverwhelmingRatio     float64 `yaml:"overwhelmingRatio" json:"overwhelmingRatio"`
}

// Thresholds groups all tunable heuristic constants.
type Thresholds struct {
	AppSignal      AppSignalThresholds      `yaml:"appSignal" json:"appSignal"`
	ContentQuality ContentQualityThresholds `yaml:"contentQuality" json:"contentQuality"`

	// InteractiveContainerMaxText is the text length below which a container
	// holding only controls is pruned from the main-content candidate.
	InteractiveContainerMaxText int `yaml:"interactiveContainerMaxText" json:"interactiveContainerMaxText"`
}

// DefaultThresholds returns the built-in heuristic configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		AppSignal: AppSignalThresholds{
			MinButtons:                20,
			MinInteractive:            30,
			InteractiveParagraphRatio: 2,
			MinAppHints:               2,
		},
		ContentQuality: ContentQualityThresholds{
			StrongSignalScore:     2,
			StrongSignalRatio:     1.35,
			ThinArticleLength:     350,
			SubstantialMainLength: 600,
			OverwhelmingRatio:     1.8,
		},
		InteractiveContainerMaxText: 60,
	}
}

// Validate returns an error if any threshold is out of range.
func (t *Thresholds) Validate() error {
	if t.AppSignal.MinButtons < 0 || t.AppSignal.MinInteractive < 0 || t.AppSignal.MinAppHints < 0 {
		return Errorf(EINVALID, "app signal counts must not be negative")
	}
	if t.AppSignal.InteractiveParagraphRatio < 0 {
		return Errorf(EINVALID, "interactive paragraph ratio must not be negative")
	}
	if t.ContentQuality.StrongSignalRatio <= 0 || t.ContentQuality.OverwhelmingRatio <= 0 {
		return Errorf(EINVALID, "content quality ratios must be positive")
	}
	if t.ContentQuality.ThinArticleLength < 0 || t.ContentQuality.SubstantialMainLength < 0 {
		return Errorf(EINVALID, "content quality lengths must not be negative")
	}
	if t.InteractiveContainerMaxText < 0 {
		return Errorf(EINVALID, "interactive container text limit must not be negative")
	}
	return nil
}
