package chi

import (
	"net/http"
	"testing"
	"time"

	"github.com/marcelsud/locallibrary/author"
	authormocks "github.com/marcelsud/locallibrary/author/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := author.ParseDate(s)
	require.NoError(t, err)
	return &d
}

func TestGetAuthors(t *testing.T) {
	s := authormocks.NewUseCase(t)
	authors := []author.Author{
		{ID: 1, FirstName: "Jane", LastName: "Austen", DateOfBirth: mustDate(t, "1775-12-16"), DateOfDeath: mustDate(t, "1817-07-18")},
		{ID: 2, FirstName: "Chimamanda", LastName: "Adichie", DateOfBirth: mustDate(t, "1977-09-15")},
	}
	s.On("List", mock.Anything).Return(authors, nil)
	h := Handlers(zerolog.Nop(), Services{Authors: s})

	w := serve(t, h, http.MethodGet, "/authors/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":1,"first_name":"Jane","last_name":"Austen","date_of_birth":"1775-12-16","date_of_death":"1817-07-18"},
		{"id":2,"first_name":"Chimamanda","last_name":"Adichie","date_of_birth":"1977-09-15","date_of_death":null}
	]`, w.Body.String())
}

func TestPostAuthor(t *testing.T) {
	s := authormocks.NewUseCase(t)
	s.On("Create", mock.Anything, mock.MatchedBy(func(a author.Author) bool {
		return a.ID == 0 &&
			a.FirstName == "Jane" &&
			a.LastName == "Austen" &&
			a.DateOfBirth != nil && a.DateOfBirth.Equal(time.Date(1775, 12, 16, 0, 0, 0, 0, time.UTC)) &&
			a.DateOfDeath == nil
	})).Return(author.Author{ID: 5, FirstName: "Jane", LastName: "Austen", DateOfBirth: mustDate(t, "1775-12-16")}, nil)
	h := Handlers(zerolog.Nop(), Services{Authors: s})

	w := serve(t, h, http.MethodPost, "/authors/", `{"id": 99, "first_name": "Jane", "last_name": "Austen", "date_of_birth": "1775-12-16", "date_of_death": null}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":5,"first_name":"Jane","last_name":"Austen","date_of_birth":"1775-12-16","date_of_death":null}`, w.Body.String())
}

func TestPostAuthor_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want validationErrors
	}{
		{
			name: "missing names",
			body: `{"date_of_birth": "1775-12-16"}`,
			want: validationErrors{
				{Field: "first_name", Message: "is required"},
				{Field: "last_name", Message: "is required"},
			},
		},
		{
			name: "malformed date",
			body: `{"first_name": "Jane", "last_name": "Austen", "date_of_birth": "16/12/1775"}`,
			want: validationErrors{{Field: "date_of_birth", Message: "must be a date in YYYY-MM-DD format"}},
		},
		{
			name: "impossible date",
			body: `{"first_name": "Jane", "last_name": "Austen", "date_of_death": "1817-02-30"}`,
			want: validationErrors{{Field: "date_of_death", Message: "must be a date in YYYY-MM-DD format"}},
		},
		{
			name: "wrong type",
			body: `{"first_name": "Jane", "last_name": ["Austen"]}`,
			want: validationErrors{{Field: "last_name", Message: "must be of type string"}},
		},
		{
			name: "every wrong type is reported",
			body: `{"first_name": 1, "last_name": true, "date_of_birth": {"year": 1775}}`,
			want: validationErrors{
				{Field: "first_name", Message: "must be of type string"},
				{Field: "last_name", Message: "must be of type string"},
				{Field: "date_of_birth", Message: "must be of type string"},
			},
		},
		{
			name: "empty body",
			body: ``,
			want: validationErrors{{Field: "body", Message: "is required"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := authormocks.NewUseCase(t)
			h := Handlers(zerolog.Nop(), Services{Authors: s})

			w := serve(t, h, http.MethodPost, "/authors/", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Equal(t, tt.want, decodeDetail(t, w))
		})
	}
}

func TestPutAuthor_Partial(t *testing.T) {
	s := authormocks.NewUseCase(t)
	s.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(p author.Patch) bool {
		return p.FirstName != nil && *p.FirstName == "Janet" &&
			p.LastName == nil && p.DateOfBirth == nil && p.DateOfDeath == nil
	})).Return(author.Author{ID: 5, FirstName: "Janet", LastName: "Austen"}, nil)
	h := Handlers(zerolog.Nop(), Services{Authors: s})

	w := serve(t, h, http.MethodPut, "/authors/5/", `{"first_name": "Janet", "last_name": null}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":5,"first_name":"Janet","last_name":"Austen","date_of_birth":null,"date_of_death":null}`, w.Body.String())
}

func TestPutAuthor_Date(t *testing.T) {
	s := authormocks.NewUseCase(t)
	s.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(p author.Patch) bool {
		return p.FirstName == nil && p.DateOfDeath != nil && p.DateOfDeath.Format(author.DateLayout) == "1817-07-18"
	})).Return(author.Author{ID: 5, FirstName: "Jane", LastName: "Austen", DateOfDeath: mustDate(t, "1817-07-18")}, nil)
	h := Handlers(zerolog.Nop(), Services{Authors: s})

	w := serve(t, h, http.MethodPut, "/authors/5/", `{"date_of_death": "1817-07-18"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPutAuthor_InvalidDate(t *testing.T) {
	s := authormocks.NewUseCase(t)
	h := Handlers(zerolog.Nop(), Services{Authors: s})

	w := serve(t, h, http.MethodPut, "/authors/5/", `{"date_of_birth": "yesterday"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, validationErrors{{Field: "date_of_birth", Message: "must be a date in YYYY-MM-DD format"}}, decodeDetail(t, w))
}

func TestPutAuthor_NotFound(t *testing.T) {
	s := authormocks.NewUseCase(t)
	s.On("Update", mock.Anything, int64(5), mock.Anything).Return(author.Author{}, author.ErrNotFound)
	h := Handlers(zerolog.Nop(), Services{Authors: s})

	w := serve(t, h, http.MethodPut, "/authors/5/", `{"first_name": "X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, w.Body.String())
}

func TestDeleteAuthor(t *testing.T) {
	s := authormocks.NewUseCase(t)
	s.On("Delete", mock.Anything, int64(5)).Return(nil)
	h := Handlers(zerolog.Nop(), Services{Authors: s})

	w := serve(t, h, http.MethodDelete, "/authors/5/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}
