package checkable

import (
	"strings"

	"library-service/internal/pkg/errs"
)

const (
	MaxISBNLength  = 64
	MaxTitleLength = 255
)

var (
	ErrEmptyISBN        = errs.Mark(errs.New("isbn cannot be empty"), errs.ErrDomainValidation)
	ErrISBNTooLong      = errs.Mark(errs.New("isbn is too long (max 64 characters)"), errs.ErrDomainValidation)
	ErrEmptyTitle       = errs.Mark(errs.New("title cannot be empty"), errs.ErrDomainValidation)
	ErrTitleTooLong     = errs.Mark(errs.New("title is too long (max 255 characters)"), errs.ErrDomainValidation)
	ErrUnknownKind      = errs.Mark(errs.New("unknown checkable kind"), errs.ErrDomainValidation)
	ErrUnknownMediaType = errs.Mark(errs.New("unknown media type"), errs.ErrDomainValidation)
	ErrMediaDetailsOnly = errs.Mark(errs.New("author and media type are only allowed on media"), errs.ErrDomainValidation)
	ErrMissingMediaType = errs.Mark(errs.New("media requires a media type"), errs.ErrDomainValidation)
)

// Checkable is an item a library can lend. Kind selects which of the
// descriptive fields are meaningful: author and media type exist only on media.
type Checkable struct {
	isbn      string
	kind      Kind
	title     string
	author    string
	mediaType MediaType
}

func NewMedia(isbn, title, author string, mediaType MediaType) (Checkable, error) {
	return New(KindMedia, isbn, title, author, mediaType)
}

func NewScienceKit(isbn, title string) (Checkable, error) {
	return New(KindScienceKit, isbn, title, "", "")
}

func NewTicket(isbn, title string) (Checkable, error) {
	return New(KindTicket, isbn, title, "", "")
}

func New(kind Kind, isbn, title, author string, mediaType MediaType) (Checkable, error) {
	if !kind.IsValid() {
		return Checkable{}, ErrUnknownKind
	}

	isbn = strings.TrimSpace(isbn)
	if err := validateISBN(isbn); err != nil {
		return Checkable{}, err
	}

	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return Checkable{}, err
	}

	author = strings.TrimSpace(author)
	if kind == KindMedia {
		if mediaType == "" {
			return Checkable{}, ErrMissingMediaType
		}
		if !mediaType.IsValid() {
			return Checkable{}, ErrUnknownMediaType
		}
	} else if author != "" || mediaType != "" {
		return Checkable{}, ErrMediaDetailsOnly
	}

	return Checkable{
		isbn:      isbn,
		kind:      kind,
		title:     title,
		author:    author,
		mediaType: mediaType,
	}, nil
}

func validateISBN(isbn string) error {
	if isbn == "" {
		return ErrEmptyISBN
	}
	if len(isbn) > MaxISBNLength {
		return ErrISBNTooLong
	}
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func (c Checkable) ISBN() string         { return c.isbn }
func (c Checkable) Kind() Kind           { return c.kind }
func (c Checkable) Title() string        { return c.title }
func (c Checkable) Author() string       { return c.author }
func (c Checkable) MediaType() MediaType { return c.mediaType }
func (c Checkable) IsZero() bool         { return c == Checkable{} }

// Equal lets go-cmp compare checkables without exporting fields.
func (c Checkable) Equal(other Checkable) bool { return c == other }
