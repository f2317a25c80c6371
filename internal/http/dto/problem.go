package dto

const ValidationProblemType = "https://tools.ietf.org/html/rfc9110#section-15.5.1"

// ProblemResponse follows RFC 9457 problem details.
type ProblemResponse struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type ValidationProblemResponse struct {
	Type   string              `json:"type"`
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors"`
}
