/*
Package server implements msgpack IPC for password strength
evaluation.

The server provides a minimal interface for embedding the estimator in
other processes using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding. Messages are processed
synchronously with timing info included in responses.

# IPC

Clients send structured messages via stdin and receive responses
through stdout. Each message carries an ID field echoed back in the
response.

Evaluation requests use this structure:

	{"id": "req_001", "cmd": "evaluate", "pw": "correcthorse", "ui": ["alice"]}

The server responds with the score, guess total and crack times:

	{"id": "req_001", "score": 2, "g": 52000, "lg": 4.7, ...}

A "health" command answers with a bare status response. Unknown
commands and over-length passwords produce an EvaluateError with a
400-style code.

msgpack encoding keeps messages ~30 to 50% smaller than JSON and
parses faster, which matters when an editor or signup form re-checks
on every keystroke.
*/
package server

// EvaluateRequest - password evaluation request.
type EvaluateRequest struct {
	ID         string   `msgpack:"id"`
	Cmd        string   `msgpack:"cmd"` // "evaluate", "health"
	Password   string   `msgpack:"pw"`
	UserInputs []string `msgpack:"ui,omitempty"`
}

// SequenceEntry - one match in the winning sequence.
type SequenceEntry struct {
	Pattern string  `msgpack:"p"`
	Token   string  `msgpack:"tok"`
	I       int     `msgpack:"i"`
	J       int     `msgpack:"j"`
	Guesses float64 `msgpack:"g"`
}

// EvaluateResponse - evaluation response.
type EvaluateResponse struct {
	ID           string            `msgpack:"id"`
	Score        int               `msgpack:"score"`
	Guesses      float64           `msgpack:"g"`
	GuessesLog10 float64           `msgpack:"lg"`
	Sequence     []SequenceEntry   `msgpack:"seq,omitempty"`
	CrackTimes   map[string]string `msgpack:"ct"`
	Warning      string            `msgpack:"w,omitempty"`
	Suggestions  []string          `msgpack:"s,omitempty"`
	TimeTaken    int64             `msgpack:"t"` // microseconds
}

// StatusResponse - health and readiness responses.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// EvaluateError holds basic error information for failed requests.
type EvaluateError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
