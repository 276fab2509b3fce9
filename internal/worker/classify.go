package worker

import "github.com/lgbarn/chess-rules-go/internal/engine"

// Classifier returns a ProcessFunc that loads each FEN under rules and
// classifies it.
func Classifier(rules engine.Rules) ProcessFunc {
	return func(item WorkItem) Result {
		result := Result{Index: item.Index, FEN: item.FEN}
		g, err := rules.NewGameFromFEN(item.FEN)
		if err != nil {
			result.Err = err
			return result
		}
		result.Classification = rules.Classify(g)
		return result
	}
}
