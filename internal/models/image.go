package models

// Image holds an uploaded binary payload, optionally linked to a product.
// Data marshals as base64 in JSON responses.
type Image struct {
	ID          string `json:"id"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data,omitempty"`
	ProductID   string `json:"productId,omitempty"`
}

func (i Image) Key() string { return i.ID }
