package strength

import "sync"

var (
	defaultOnce sync.Once
	defaultEval *Evaluator
)

// Evaluate scores a password against the embedded dictionaries plus
// optional per-call user inputs. The default snapshot is built once
// on first use and shared; calls with user inputs get a temporary
// evaluator so the shared snapshot stays immutable.
func Evaluate(password string, userInputs ...string) (*Result, error) {
	if len(userInputs) > 0 {
		inputs := make([]any, len(userInputs))
		for i, in := range userInputs {
			inputs[i] = in
		}
		return NewEvaluator(Options{UserInputs: inputs}).Evaluate(password)
	}

	defaultOnce.Do(func() {
		defaultEval = NewEvaluator(Options{})
	})
	return defaultEval.Evaluate(password)
}
