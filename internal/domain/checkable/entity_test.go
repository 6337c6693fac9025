//go:build unit

package checkable_test

import (
	"strings"
	"testing"

	"library-service/internal/domain/checkable"
	"library-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		kind      checkable.Kind
		isbn      string
		title     string
		author    string
		mediaType checkable.MediaType
		errIs     error
	}{
		{name: "media OK", kind: checkable.KindMedia, isbn: "1-0", title: "The White Whale", author: "Melvin H", mediaType: checkable.MediaTypeBook},
		{name: "media without author OK", kind: checkable.KindMedia, isbn: "1-2", title: "When You're Gone", mediaType: checkable.MediaTypeMusic},
		{name: "science kit OK", kind: checkable.KindScienceKit, isbn: "2-0", title: "Anatomy Model"},
		{name: "ticket OK", kind: checkable.KindTicket, isbn: "3-0", title: "Science Museum Tickets"},
		{name: "unknown kind", kind: "vinyl", isbn: "9-0", title: "x", errIs: checkable.ErrUnknownKind},
		{name: "empty isbn", kind: checkable.KindTicket, isbn: "  ", title: "x", errIs: checkable.ErrEmptyISBN},
		{name: "isbn at limit OK", kind: checkable.KindTicket, isbn: strings.Repeat("1", checkable.MaxISBNLength), title: "x"},
		{name: "isbn too long", kind: checkable.KindTicket, isbn: strings.Repeat("1", checkable.MaxISBNLength+1), title: "x", errIs: checkable.ErrISBNTooLong},
		{name: "empty title", kind: checkable.KindTicket, isbn: "3-0", title: "", errIs: checkable.ErrEmptyTitle},
		{name: "title too long", kind: checkable.KindTicket, isbn: "3-0", title: strings.Repeat("t", checkable.MaxTitleLength+1), errIs: checkable.ErrTitleTooLong},
		{name: "media without media type", kind: checkable.KindMedia, isbn: "1-0", title: "x", errIs: checkable.ErrMissingMediaType},
		{name: "media with unknown media type", kind: checkable.KindMedia, isbn: "1-0", title: "x", mediaType: "VINYL", errIs: checkable.ErrUnknownMediaType},
		{name: "ticket with author", kind: checkable.KindTicket, isbn: "3-0", title: "x", author: "someone", errIs: checkable.ErrMediaDetailsOnly},
		{name: "kit with media type", kind: checkable.KindScienceKit, isbn: "2-0", title: "x", mediaType: checkable.MediaTypeBook, errIs: checkable.ErrMediaDetailsOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := checkable.New(tt.kind, tt.isbn, tt.title, tt.author, tt.mediaType)
			if tt.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.errIs))
				assert.True(t, errs.Is(err, errs.ErrDomainValidation))
				assert.True(t, c.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, c.Kind())
			assert.Equal(t, strings.TrimSpace(tt.isbn), c.ISBN())
			assert.Equal(t, tt.mediaType, c.MediaType())
		})
	}
}

func TestConstructorsTrimInput(t *testing.T) {
	c, err := checkable.NewMedia(" 1-1 ", "  The Sorcerer's Quest ", " Ana T ", checkable.MediaTypeBook)
	require.NoError(t, err)
	assert.Equal(t, "1-1", c.ISBN())
	assert.Equal(t, "The Sorcerer's Quest", c.Title())
	assert.Equal(t, "Ana T", c.Author())

	kit, err := checkable.NewScienceKit("2-1", "Robotics Kit")
	require.NoError(t, err)
	assert.Equal(t, checkable.KindScienceKit, kit.Kind())
	assert.Empty(t, kit.Author())

	ticket, err := checkable.NewTicket("3-1", "National Park Day Pass")
	require.NoError(t, err)
	assert.True(t, ticket.Equal(ticket))
	assert.False(t, ticket.Equal(kit))
}

func TestParse(t *testing.T) {
	k, err := checkable.ParseKind(" Science_Kit ")
	require.NoError(t, err)
	assert.Equal(t, checkable.KindScienceKit, k)

	_, err = checkable.ParseKind("book")
	assert.True(t, errs.Is(err, checkable.ErrUnknownKind))

	mt, err := checkable.ParseMediaType("video")
	require.NoError(t, err)
	assert.Equal(t, checkable.MediaTypeVideo, mt)

	_, err = checkable.ParseMediaType("")
	assert.True(t, errs.Is(err, checkable.ErrUnknownMediaType))
}
