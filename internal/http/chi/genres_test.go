package chi

import (
	"net/http"
	"testing"

	"github.com/marcelsud/locallibrary/genre"
	genremocks "github.com/marcelsud/locallibrary/genre/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPutGenre(t *testing.T) {
	s := genremocks.NewUseCase(t)
	s.On("Update", mock.Anything, int64(2), "Horror").Return(genre.Genre{ID: 2, Name: "Horror"}, nil)
	h := Handlers(zerolog.Nop(), Services{Genres: s})

	w := serve(t, h, http.MethodPut, "/genres/2/", `{"name": "Horror"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":2,"name":"Horror"}`, w.Body.String())
}

func TestPutGenre_NotFound(t *testing.T) {
	s := genremocks.NewUseCase(t)
	s.On("Update", mock.Anything, int64(999), "Horror").Return(genre.Genre{}, genre.ErrNotFound)
	h := Handlers(zerolog.Nop(), Services{Genres: s})

	w := serve(t, h, http.MethodPut, "/genres/999/", `{"name": "Horror"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, w.Body.String())
}

func TestPutGenre_RequiresName(t *testing.T) {
	s := genremocks.NewUseCase(t)
	h := Handlers(zerolog.Nop(), Services{Genres: s})

	w := serve(t, h, http.MethodPut, "/genres/2/", `{"name": null}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, validationErrors{{Field: "name", Message: "is required"}}, decodeDetail(t, w))
}

func TestGenreRoutes(t *testing.T) {
	s := genremocks.NewUseCase(t)
	s.On("List", mock.Anything).Return([]genre.Genre{}, nil)
	s.On("Delete", mock.Anything, int64(4)).Return(genre.ErrNotFound)
	h := Handlers(zerolog.Nop(), Services{Genres: s})

	w := serve(t, h, http.MethodGet, "/genres/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = serve(t, h, http.MethodDelete, "/genres/4/", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
