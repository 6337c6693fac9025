package request

import (
	"library-service/internal/domain/checkable"
)

type CreateCheckableRequest struct {
	Kind      string `yaml:"kind" json:"kind" binding:"required,checkable_kind"`
	ISBN      string `yaml:"isbn" json:"isbn" binding:"required,max=64"`
	Title     string `yaml:"title" json:"title" binding:"required,max=255"`
	Author    string `yaml:"author,omitempty" json:"author,omitempty" binding:"omitempty,max=255"`
	MediaType string `yaml:"media_type,omitempty" json:"media_type,omitempty" binding:"omitempty,media_type"`
}

func (r *CreateCheckableRequest) ToDomain() (checkable.Checkable, error) {
	kind, err := checkable.ParseKind(r.Kind)
	if err != nil {
		return checkable.Checkable{}, err
	}

	var mediaType checkable.MediaType
	if r.MediaType != "" {
		if mediaType, err = checkable.ParseMediaType(r.MediaType); err != nil {
			return checkable.Checkable{}, err
		}
	}

	return checkable.New(kind, r.ISBN, r.Title, r.Author, mediaType)
}
