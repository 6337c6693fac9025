package response

import (
	"library-service/internal/domain/checkable"
)

type CheckableResponse struct {
	ISBN      string `json:"isbn"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Author    string `json:"author,omitempty"`
	MediaType string `json:"media_type,omitempty"`
}

func FromCheckable(c checkable.Checkable) CheckableResponse {
	return CheckableResponse{
		ISBN:      c.ISBN(),
		Kind:      c.Kind().String(),
		Title:     c.Title(),
		Author:    c.Author(),
		MediaType: c.MediaType().String(),
	}
}

func FromCheckables(cs []checkable.Checkable) []CheckableResponse {
	res := make([]CheckableResponse, len(cs))
	for i, c := range cs {
		res[i] = FromCheckable(c)
	}
	return res
}
