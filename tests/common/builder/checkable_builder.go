//go:build unit || e2e

package builder

import (
	"testing"

	"library-service/internal/domain/checkable"
	reqdto "library-service/internal/handler/dto/request"

	"github.com/stretchr/testify/require"
)

type CheckableBuilder struct {
	Kind      checkable.Kind
	ISBN      string
	Title     string
	Author    string
	MediaType checkable.MediaType
}

func NewCheckableBuilder() *CheckableBuilder {
	return &CheckableBuilder{
		Kind:      checkable.KindMedia,
		ISBN:      "1-0",
		Title:     "The White Whale",
		Author:    "Melvin H",
		MediaType: checkable.MediaTypeBook,
	}
}

func (b *CheckableBuilder) WithISBN(isbn string) *CheckableBuilder {
	b.ISBN = isbn
	return b
}

func (b *CheckableBuilder) WithTitle(title string) *CheckableBuilder {
	b.Title = title
	return b
}

func (b *CheckableBuilder) AsScienceKit() *CheckableBuilder {
	b.Kind = checkable.KindScienceKit
	b.Author = ""
	b.MediaType = ""
	return b
}

func (b *CheckableBuilder) AsTicket() *CheckableBuilder {
	b.Kind = checkable.KindTicket
	b.Author = ""
	b.MediaType = ""
	return b
}

func (b *CheckableBuilder) Build(t *testing.T) checkable.Checkable {
	t.Helper()
	c, err := checkable.New(b.Kind, b.ISBN, b.Title, b.Author, b.MediaType)
	require.NoError(t, err)
	return c
}

func (b *CheckableBuilder) BuildDTO() reqdto.CreateCheckableRequest {
	return reqdto.CreateCheckableRequest{
		Kind:      b.Kind.String(),
		ISBN:      b.ISBN,
		Title:     b.Title,
		Author:    b.Author,
		MediaType: b.MediaType.String(),
	}
}

// Catalogue is the eight-item fixture used across service and handler tests:
// four media, two science kits and two tickets, in that order.
func Catalogue(t *testing.T) []checkable.Checkable {
	t.Helper()
	return []checkable.Checkable{
		NewCheckableBuilder().Build(t),
		NewCheckableBuilder().WithISBN("1-1").WithTitle("The Sorcerer's Quest").withMedia("Ana T", checkable.MediaTypeBook).Build(t),
		NewCheckableBuilder().WithISBN("1-2").WithTitle("When You're Gone").withMedia("Complaining at the Disco", checkable.MediaTypeMusic).Build(t),
		NewCheckableBuilder().WithISBN("1-3").WithTitle("Nature Around the World").withMedia("DocuSpecialists", checkable.MediaTypeVideo).Build(t),
		NewCheckableBuilder().AsScienceKit().WithISBN("2-0").WithTitle("Anatomy Model").Build(t),
		NewCheckableBuilder().AsScienceKit().WithISBN("2-1").WithTitle("Robotics Kit").Build(t),
		NewCheckableBuilder().AsTicket().WithISBN("3-0").WithTitle("Science Museum Tickets").Build(t),
		NewCheckableBuilder().AsTicket().WithISBN("3-1").WithTitle("National Park Day Pass").Build(t),
	}
}

func (b *CheckableBuilder) withMedia(author string, mt checkable.MediaType) *CheckableBuilder {
	b.Author = author
	b.MediaType = mt
	return b
}
