package checkable

import "strings"

type Kind string

const (
	KindMedia      Kind = "media"
	KindScienceKit Kind = "science_kit"
	KindTicket     Kind = "ticket"
)

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrUnknownKind
	}
	return k, nil
}

func (k Kind) IsValid() bool {
	switch k {
	case KindMedia, KindScienceKit, KindTicket:
		return true
	default:
		return false
	}
}

func (k Kind) String() string { return string(k) }

type MediaType string

const (
	MediaTypeBook  MediaType = "BOOK"
	MediaTypeMusic MediaType = "MUSIC"
	MediaTypeVideo MediaType = "VIDEO"
)

func ParseMediaType(s string) (MediaType, error) {
	mt := MediaType(strings.ToUpper(strings.TrimSpace(s)))
	if !mt.IsValid() {
		return "", ErrUnknownMediaType
	}
	return mt, nil
}

func (m MediaType) IsValid() bool {
	switch m {
	case MediaTypeBook, MediaTypeMusic, MediaTypeVideo:
		return true
	default:
		return false
	}
}

func (m MediaType) String() string { return string(m) }
