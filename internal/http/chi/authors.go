package chi

import (
	"net/http"
	"time"

	"github.com/marcelsud/locallibrary/author"
)

type authorRequest struct {
	FirstName   *string `json:"first_name" validate:"required,max=100"`
	LastName    *string `json:"last_name" validate:"required,max=100"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	DateOfDeath *string `json:"date_of_death" validate:"omitempty,datetime=2006-01-02"`
}

// authorPatchRequest: null or missing fields are left untouched
type authorPatchRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,max=100"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	DateOfDeath *string `json:"date_of_death" validate:"omitempty,datetime=2006-01-02"`
}

type authorResponse struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth"`
	DateOfDeath *string `json:"date_of_death"`
}

func toAuthorResponse(a author.Author) authorResponse {
	return authorResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		DateOfBirth: author.FormatDate(a.DateOfBirth),
		DateOfDeath: author.FormatDate(a.DateOfDeath),
	}
}

// parseOptionalDate expects s to have passed the datetime validation
func parseOptionalDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	d, err := author.ParseDate(*s)
	if err != nil {
		return nil
	}
	return &d
}

func (ar authorRequest) toAuthor() author.Author {
	return author.Author{
		FirstName:   *ar.FirstName,
		LastName:    *ar.LastName,
		DateOfBirth: parseOptionalDate(ar.DateOfBirth),
		DateOfDeath: parseOptionalDate(ar.DateOfDeath),
	}
}

func (pr authorPatchRequest) toPatch() author.Patch {
	return author.Patch{
		FirstName:   pr.FirstName,
		LastName:    pr.LastName,
		DateOfBirth: parseOptionalDate(pr.DateOfBirth),
		DateOfDeath: parseOptionalDate(pr.DateOfDeath),
	}
}

func getAuthors(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := authorService.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, author.ErrNotFound)
			return
		}
		result := make([]authorResponse, 0, len(all))
		for _, a := range all {
			result = append(result, toAuthorResponse(a))
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func getAuthor(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}
		a, err := authorService.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, author.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toAuthorResponse(a))
	})
}

func postAuthor(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ar authorRequest
		if err := decode(w, r, &ar); err != nil {
			writeRequestError(w, err)
			return
		}
		a, err := authorService.Create(r.Context(), ar.toAuthor())
		if err != nil {
			writeServiceError(w, r, err, author.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toAuthorResponse(a))
	})
}

func putAuthor(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}
		var pr authorPatchRequest
		if err := decode(w, r, &pr); err != nil {
			writeRequestError(w, err)
			return
		}
		a, err := authorService.Update(r.Context(), id, pr.toPatch())
		if err != nil {
			writeServiceError(w, r, err, author.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toAuthorResponse(a))
	})
}

func deleteAuthor(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}
		if err := authorService.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err, author.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, deleteResponse{Success: true})
	})
}
