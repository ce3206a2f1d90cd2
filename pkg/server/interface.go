/*
Package server implements msgpack IPC for the keypad queries.

The server reads a stream of msgpack-encoded requests from stdin and writes
one msgpack response per request to stdout. Logs go to stderr so the stream
stays clean.

# IPC

On start the server announces itself:

	{"status": "ready"}

Every request names an operation and its input:

	{"id": "r1", "op": "presses", "in": "bob"}
	{"id": "r2", "op": "number", "in": "bob"}
	{"id": "r3", "op": "combinations", "in": "23"}
	{"id": "r4", "op": "words", "in": "43556"}
	{"id": "r5", "op": "predict", "in": "435", "l": 5}
	{"id": "r6", "op": "health"}

Responses echo the id and op and carry the elapsed time in microseconds:

	{"id": "r1", "op": "presses", "n": 7, "t": 3}
	{"id": "r2", "op": "number", "s": "262", "t": 2}
	{"id": "r4", "op": "words", "w": ["hello"], "c": 1, "t": 145}

Failures are reported per request and do not stop the server:

	{"id": "r3", "e": "invalid digit 'a' at position 1", "c": 400}

Code 400 marks bad input (unknown letter, invalid digit, unknown op, too many
digits); 503 marks an unreadable word list.
*/
package server

// Request is a single query.
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Input string `msgpack:"in"`
	Limit int    `msgpack:"l,omitempty"`
}

// PressesResponse answers a presses request.
type PressesResponse struct {
	ID        string `msgpack:"id"`
	Op        string `msgpack:"op"`
	Presses   int    `msgpack:"n"`
	TimeTaken int64  `msgpack:"t"`
}

// NumberResponse answers a number request.
type NumberResponse struct {
	ID        string `msgpack:"id"`
	Op        string `msgpack:"op"`
	Number    string `msgpack:"s"`
	TimeTaken int64  `msgpack:"t"`
}

// WordsResponse answers combinations, words and predict requests.
type WordsResponse struct {
	ID        string   `msgpack:"id"`
	Op        string   `msgpack:"op"`
	Words     []string `msgpack:"w"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// StatusResponse is sent on start and in answer to health.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// Error codes.
const (
	CodeBadRequest  = 400
	CodeUnavailable = 503
)
