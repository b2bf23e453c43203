/*
Package server implements msgpack IPC for the completion index.

Clients write a stream of msgpack maps to stdin and read one msgpack map per
request from stdout. Requests are handled synchronously in arrival order.

Completion requests look like this:

	{"id": "req_001", "p": "ca"}

and are answered with at most three suggestions, best first:

	{"id": "req_001", "s": [{"w": "cat", "r": 1, "f": 2}, {"w": "cap", "r": 2, "f": 1}], "c": 2, "t": 12}

The action field selects other operations:

	{"id": "fix_001", "action": "correct", "p": "cax"}
	{"id": "ins_001", "action": "insert", "w": "capybara", "n": 3}
	{"id": "st_001", "action": "stats"}
	{"id": "hc_001", "action": "health"}

An empty or blank prefix is answered with an empty completion.

A correct request suggests from the longest known part of the prefix when
the full prefix leaves the index, and sets "x" in the response.

Failures are reported as CompletionError with an HTTP-like code: 400 for
bad input, 403 for inserts the config forbids and 500 for anything else.
*/
package server

// Request actions.
const (
	ActionComplete = "complete"
	ActionCorrect  = "correct"
	ActionInsert   = "insert"
	ActionStats    = "stats"
	ActionHealth   = "health"
)

// Request is any client message. An empty action means complete.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Prefix string `msgpack:"p,omitempty"`
	Word   string `msgpack:"w,omitempty"`
	Count  int    `msgpack:"n,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word      string `msgpack:"w"`
	Rank      uint16 `msgpack:"r"`
	Frequency int    `msgpack:"f"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
	Corrected   bool                   `msgpack:"x,omitempty"`
}

// InsertResponse acknowledges an insert.
type InsertResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Word   string `msgpack:"w"`
	Count  int    `msgpack:"n"`
}

// StatsResponse reports index statistics.
type StatsResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats"`
}

// HealthResponse answers a health check.
type HealthResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// CompletionError holds basic error information for failed requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
