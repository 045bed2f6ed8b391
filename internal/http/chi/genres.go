package chi

import (
	"net/http"

	"github.com/marcelsud/locallibrary/genre"
)

/*
* Representa o gênero literário na camada web, por isso ele tem as tags json e validate
 */
type genreRequest struct {
	Name *string `json:"name" validate:"required,max=200"`
}

type genreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toGenreResponse(g genre.Genre) genreResponse {
	return genreResponse{ID: g.ID, Name: g.Name}
}

func getGenres(genreService genre.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := genreService.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, genre.ErrNotFound)
			return
		}
		result := make([]genreResponse, 0, len(all))
		for _, g := range all {
			result = append(result, toGenreResponse(g))
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func getGenre(genreService genre.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}
		g, err := genreService.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, genre.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toGenreResponse(g))
	})
}

func postGenre(genreService genre.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var gr genreRequest
		if err := decode(w, r, &gr); err != nil {
			writeRequestError(w, err)
			return
		}
		g, err := genreService.Create(r.Context(), *gr.Name)
		if err != nil {
			writeServiceError(w, r, err, genre.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toGenreResponse(g))
	})
}

func putGenre(genreService genre.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}
		var gr genreRequest
		if err := decode(w, r, &gr); err != nil {
			writeRequestError(w, err)
			return
		}
		g, err := genreService.Update(r.Context(), id, *gr.Name)
		if err != nil {
			writeServiceError(w, r, err, genre.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toGenreResponse(g))
	})
}

func deleteGenre(genreService genre.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}
		if err := genreService.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err, genre.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, deleteResponse{Success: true})
	})
}
