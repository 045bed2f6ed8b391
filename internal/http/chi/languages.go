package chi

import (
	"net/http"

	"github.com/marcelsud/locallibrary/language"
)

/*
* Representa o idioma na camada web, por isso ele tem as tags json e validate
 */
type languageRequest struct {
	Name *string `json:"name" validate:"required,max=200"`
}

type languageResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toLanguageResponse(l language.Language) languageResponse {
	return languageResponse{ID: l.ID, Name: l.Name}
}

func getLanguages(languageService language.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := languageService.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, language.ErrNotFound)
			return
		}
		result := make([]languageResponse, 0, len(all))
		for _, l := range all {
			result = append(result, toLanguageResponse(l))
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func getLanguage(languageService language.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}
		l, err := languageService.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, language.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toLanguageResponse(l))
	})
}

func postLanguage(languageService language.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var lr languageRequest
		if err := decode(w, r, &lr); err != nil {
			writeRequestError(w, err)
			return
		}
		l, err := languageService.Create(r.Context(), *lr.Name)
		if err != nil {
			writeServiceError(w, r, err, language.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toLanguageResponse(l))
	})
}

func putLanguage(languageService language.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}
		var lr languageRequest
		if err := decode(w, r, &lr); err != nil {
			writeRequestError(w, err)
			return
		}
		l, err := languageService.Update(r.Context(), id, *lr.Name)
		if err != nil {
			writeServiceError(w, r, err, language.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toLanguageResponse(l))
	})
}

func deleteLanguage(languageService language.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}
		if err := languageService.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err, language.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, deleteResponse{Success: true})
	})
}
