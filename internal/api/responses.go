package api

// DatasetResponse summarizes the shape of the served dataset.
type DatasetResponse struct {
	ID         string `json:"id"`
	Object     string `json:"object"`
	ImageCount int    `json:"image_count"`
	ImageSize  int    `json:"image_size"`
	LabelCount int    `json:"label_count"`
	LabelWidth int    `json:"label_width"`
}

// InstanceResponse is one image/label pair. Pixels is the raw flattened
// record, base64 encoded.
type InstanceResponse struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Index  int    `json:"index"`
	Label  uint8  `json:"label"`
	Pixels string `json:"pixels"`
}

// ResponseError is the error body for non-2xx responses.
type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Param   string `json:"param,omitempty"`
}
