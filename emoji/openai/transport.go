package openai

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// samplingTransport adds the sampling fields langchaingo leaves out of chat
// requests: top_p is never forwarded and zero penalties are dropped by
// omitempty. Fields already present in the body are left alone.
type samplingTransport struct {
	next   http.RoundTripper
	fields map[string]any
}

func newSamplingTransport(next http.RoundTripper) *samplingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &samplingTransport{
		next: next,
		fields: map[string]any{
			"top_p":             TopP,
			"frequency_penalty": FrequencyPenalty,
			"presence_penalty":  PresencePenalty,
		},
	}
}

// withSamplingFields returns a copy of hc whose transport fills in the
// sampling fields.
func withSamplingFields(hc *http.Client) *http.Client {
	if hc == nil {
		hc = &http.Client{}
	}
	wrapped := *hc
	wrapped.Transport = newSamplingTransport(hc.Transport)
	return &wrapped
}

func (t *samplingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body == nil || req.Method != http.MethodPost {
		return t.next.RoundTrip(req)
	}

	body, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&payload); err == nil && payload != nil {
		for k, v := range t.fields {
			if _, ok := payload[k]; !ok {
				payload[k] = v
			}
		}
		if patched, err := json.Marshal(payload); err == nil {
			body = patched
		}
	}

	out := req.Clone(req.Context())
	out.Body = io.NopCloser(bytes.NewReader(body))
	out.ContentLength = int64(len(body))
	out.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	return t.next.RoundTrip(out)
}
