//go:build e2e

package checkable_test

import (
	"net/http"
	"testing"

	"library-service/internal/domain/staff"
	"library-service/internal/handler/dto/response"
	"library-service/tests/common/authtest"
	"library-service/tests/common/builder"
	"library-service/tests/common/httptest"
	"library-service/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const checkablesURL = "/api/checkables"

type checkableSuite struct {
	e2e.SharedSuite
}

func TestCheckableSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkableSuite))
}

func (s *checkableSuite) login() string {
	return authtest.CreateAndLogin(s.T(), s.DB, s.Router, "librarian1", string(staff.RoleLibrarian))
}

func (s *checkableSuite) TestList() {
	s.Run("returns the seeded catalogue in insertion order", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, checkablesURL, nil, "")
		var got []response.CheckableResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		want := response.FromCheckables(builder.Catalogue(t))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("catalogue mismatch (-want +got):\n%s", diff)
		}
	})
}

func (s *checkableSuite) TestGet() {
	tests := []struct {
		name           string
		isbn           string
		expectedStatus int
		expectedTitle  string
		expectedMsg    string
	}{
		{name: "media", isbn: "1-2", expectedStatus: http.StatusOK, expectedTitle: "When You're Gone"},
		{name: "ticket", isbn: "3-1", expectedStatus: http.StatusOK, expectedTitle: "National Park Day Pass"},
		{name: "unknown isbn", isbn: "9-9", expectedStatus: http.StatusNotFound, expectedMsg: "Checkable with isbn: 9-9 was not found"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, checkablesURL+"/"+tt.isbn, nil, "")
			if tt.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedMsg)
				return
			}
			var got response.CheckableResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
			require.Equal(t, tt.isbn, got.ISBN)
			require.Equal(t, tt.expectedTitle, got.Title)
		})
	}
}

func (s *checkableSuite) TestGetByKind() {
	tests := []struct {
		name           string
		kind           string
		expectedStatus int
		expectedISBN   string
	}{
		{name: "first media", kind: "media", expectedStatus: http.StatusOK, expectedISBN: "1-0"},
		{name: "first science kit", kind: "science_kit", expectedStatus: http.StatusOK, expectedISBN: "2-0"},
		{name: "first ticket", kind: "ticket", expectedStatus: http.StatusOK, expectedISBN: "3-0"},
		{name: "unknown kind", kind: "vinyl", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/kinds/"+tt.kind+"/checkable", nil, "")
			if tt.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, "Invalid kind")
				return
			}
			var got response.CheckableResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
			require.Equal(t, tt.expectedISBN, got.ISBN)
		})
	}

	s.Run("kind with nothing in the catalogue", func() {
		t := s.T()

		_, err := s.DB.Exec(t.Context(), "DELETE FROM checkables WHERE kind = 'ticket'")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/kinds/ticket/checkable", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "ticket")
	})
}

func (s *checkableSuite) TestCreate() {
	s.Run("new checkable is listed after the seeded ones", func() {
		t := s.T()
		token := s.login()

		body := builder.NewCheckableBuilder().AsScienceKit().WithISBN("2-2").WithTitle("Telescope").BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkablesURL, body, token)
		var created response.CheckableResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "2-2", created.ISBN)
		require.Empty(t, created.Author)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, checkablesURL, nil, "")
		var all []response.CheckableResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &all)
		require.Len(t, all, 9)
		require.Equal(t, "2-2", all[8].ISBN)
	})

	s.Run("duplicate isbn is rejected and the original is kept", func() {
		t := s.T()
		token := s.login()

		body := builder.NewCheckableBuilder().WithTitle("A Different Whale").BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkablesURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Checkable with isbn: 1-0 already exists!")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, checkablesURL+"/1-0", nil, "")
		var got response.CheckableResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "The White Whale", got.Title)
	})

	s.Run("invalid payload", func() {
		t := s.T()
		token := s.login()

		body := builder.NewCheckableBuilder().WithISBN("").BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkablesURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})
}
