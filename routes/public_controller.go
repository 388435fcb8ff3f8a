package routes

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/stirwin/form-builder/app"
	"github.com/stirwin/form-builder/form"
	"github.com/stirwin/form-builder/httpx"
	"github.com/stirwin/form-builder/log"
)

// PublicGetForm resolves a share token to a published form for filling in,
// counting the visit in the same statement. Unknown tokens and unpublished
// forms are indistinguishable: both are a 404.
func PublicGetForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shareURL := chi.URLParam(r, "shareURL")

		var name, description, content string
		err := app.QueryRowContext(r.Context(), `
			UPDATE form
			SET visits = visits + 1
			WHERE share_url = ?
				AND published = 1
			RETURNING name, description, content`,
			shareURL,
		).Scan(&name, &description, &content)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httpx.LogNotFound(w, "public.get_form", shareURL)
			} else {
				httpx.LogInternalError(w, "db.get_form", err)
			}
			return
		}

		render.JSON(w, r, map[string]any{
			"name":        name,
			"description": description,
			"fields":      form.DeserializeContent(content),
		})
	}
}

// PublicSubmitForm validates a visitor's values against the whole field list
// and, if every field passes, records the submission and bumps the counter
// in one transaction. Validation failures come back as the set of failing
// field ids so the client can flag each field.
func PublicSubmitForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shareURL := chi.URLParam(r, "shareURL")

		body := struct {
			Values form.Values `json:"values"`
		}{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if body.Values == nil {
			body.Values = form.Values{}
		}

		tx, err := app.BeginTx(r.Context(), nil)
		if err != nil {
			httpx.LogInternalError(w, "db.begin_tx", err)
			return
		}
		defer tx.Rollback()

		var formId int
		var content string
		err = tx.QueryRowContext(r.Context(), `
			SELECT id, content
			FROM form
			WHERE share_url = ?
				AND published = 1`,
			shareURL,
		).Scan(&formId, &content)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httpx.LogNotFound(w, "public.submit_form", shareURL)
			} else {
				httpx.LogInternalError(w, "db.get_form", err)
			}
			return
		}

		fields := form.DeserializeContent(content)
		invalid := form.ValidateAll(fields, body.Values)
		if len(invalid) > 0 {
			log.Debugf("public.submit_form.validate: %d invalid fields", len(invalid))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, map[string]any{
				"invalidFields": invalid,
			})
			return
		}

		valuesContent, err := body.Values.Serialize()
		if err != nil {
			httpx.LogInternalError(w, "submit_form.serialize_values", err)
			return
		}

		_, err = tx.ExecContext(r.Context(), `
			UPDATE form
			SET submissions = submissions + 1
			WHERE id = ?`,
			formId,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.submit_form.count", err)
			return
		}

		var submissionId int
		err = tx.QueryRowContext(r.Context(), `
			INSERT INTO form_submission (form_id, content, created_at)
			VALUES (?, ?, ?)
			RETURNING id`,
			formId,
			valuesContent,
			time.Now(),
		).Scan(&submissionId)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_submission", err)
			return
		}

		err = tx.Commit()
		if err != nil {
			httpx.LogInternalError(w, "db.insert_submission.commit", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": submissionId,
		})
	}
}
