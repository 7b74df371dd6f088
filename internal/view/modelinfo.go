package view

import "github.com/yildizm/NewsLens/internal/classify"

// InfoField is a labelled architecture attribute
type InfoField struct {
	Name  string
	Value string
}

// Step is a numbered preprocessing step
type Step struct {
	Number int
	Text   string
}

// ModelInfoView is the content of the model information overlay
type ModelInfoView struct {
	Architecture []InfoField
	Categories   []string
	Steps        []Step
}

// NewModelInfoView maps model metadata onto its view model, preserving the
// order of categories and steps
func NewModelInfoView(info *classify.ModelInfo) ModelInfoView {
	if info == nil {
		return ModelInfoView{}
	}

	steps := make([]Step, len(info.PreprocessingSteps))
	for i, text := range info.PreprocessingSteps {
		steps[i] = Step{Number: i + 1, Text: text}
	}

	categories := make([]string, len(info.Categories))
	copy(categories, info.Categories)

	return ModelInfoView{
		Architecture: []InfoField{
			{Name: "Type", Value: info.ModelType},
			{Name: "Vectorizer", Value: info.Vectorizer},
			{Name: "Classifier", Value: info.Classifier},
			{Name: "N-gram Range", Value: info.NgramRange},
		},
		Categories: categories,
		Steps:      steps,
	}
}
