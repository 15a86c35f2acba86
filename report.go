package logslice

import json "github.com/goccy/go-json"

// Report summarises one extraction run: the date queried, the resolved
// byte range, how many lines the range scan examined, how many matched,
// the matched byte volume, and a digest of the matched content.
type Report struct {
	Date    string `json:"date"`
	Start   int64  `json:"start"`
	End     int64  `json:"end"`
	Scanned int    `json:"scanned"`
	Matched int    `json:"matched"`
	Bytes   int64  `json:"bytes"`
	Digest  string `json:"digest"`
}

// JSON returns the report as a single JSON object.
func (r Report) JSON() ([]byte, error) {
	return json.Marshal(r)
}
