package model

// Transport types for the HTTP surface. They mirror the in-memory annotation
// model field for field; the on-disk annotation container format is owned by
// external tooling and never parsed here.

type EventPayload struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Label      string  `json:"label,omitempty"`
	Role       string  `json:"role"`
	Source     string  `json:"source,omitempty"`
	SourceTime float64 `json:"source_time,omitempty"`
	SNR        float64 `json:"snr,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

type PolyphonyRequestBody struct {
	Duration float64        `json:"duration"`
	Events   []EventPayload `json:"events"`
}

type PolyphonyResponse struct {
	Polyphony int `json:"polyphony"`
}

type CropRequestBody struct {
	// Namespace defaults to sound_event when empty.
	Namespace string         `json:"namespace,omitempty"`
	Duration  float64        `json:"duration"`
	Crop      float64        `json:"crop"`
	Events    []EventPayload `json:"events"`
}

type CropResponse struct {
	Duration float64        `json:"duration"`
	Events   []EventPayload `json:"events"`
}

type LabelsResponse struct {
	Labels []string `json:"labels"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
