package routes

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/stirwin/form-builder/app"
	"github.com/stirwin/form-builder/form"
	"github.com/stirwin/form-builder/httpx"
	"github.com/stirwin/form-builder/log"
	"github.com/stirwin/form-builder/model"
)

// GetFormSubmissions lists a form's submissions with their values decoded
// per record: a corrupt record renders empty, its siblings untouched.
func GetFormSubmissions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		var owned bool
		err = app.QueryRowContext(r.Context(), `
			SELECT 1 FROM form
			WHERE id = ?
				AND user_id = ?`,
			formId,
			ownerID(r),
		).Scan(&owned)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httpx.LogNotFound(w, "get_submissions", formId)
			} else {
				httpx.LogInternalError(w, "db.get_form", err)
			}
			return
		}

		rows, err := app.QueryContext(r.Context(), `
			SELECT id, content, created_at
			FROM form_submission
			WHERE form_id = ?
			ORDER BY created_at`,
			formId,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.get_submissions", err)
			return
		}
		defer rows.Close()

		submissions := []model.Submission{}
		for rows.Next() {
			s := model.Submission{}
			var content string
			err = rows.Scan(&s.ID, &content, &s.CreatedAt)
			if err != nil {
				httpx.LogInternalError(w, "db.get_submissions.scan", err)
				return
			}

			s.Values = form.ParseValues(content)
			submissions = append(submissions, s)
		}

		render.JSON(w, r, map[string]any{
			"submissions": submissions,
		})
	}
}

// UpdateSubmission merges the caller's values over the stored record. The
// merge drops bookkeeping sub-keys from the old storage format and is
// idempotent, so a retried save is harmless.
func UpdateSubmission(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}
		submissionId, err := strconv.Atoi(chi.URLParam(r, "submissionId"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.submission_id")
			return
		}

		body := struct {
			Values form.Values `json:"values"`
		}{}
		err = render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		tx, err := app.BeginTx(r.Context(), nil)
		if err != nil {
			httpx.LogInternalError(w, "db.begin_tx", err)
			return
		}
		defer tx.Rollback()

		var content string
		err = tx.QueryRowContext(r.Context(), `
			SELECT s.content
			FROM form_submission s
			INNER JOIN form f ON (f.id = s.form_id)
			WHERE s.id = ?
				AND s.form_id = ?
				AND f.user_id = ?`,
			submissionId,
			formId,
			ownerID(r),
		).Scan(&content)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httpx.LogNotFound(w, "update_submission", submissionId)
			} else {
				httpx.LogInternalError(w, "db.get_submission", err)
			}
			return
		}

		merged := form.MergeValues(form.ParseValues(content), body.Values)
		mergedContent, err := merged.Serialize()
		if err != nil {
			httpx.LogInternalError(w, "update_submission.serialize_values", err)
			return
		}

		_, err = tx.ExecContext(r.Context(), `
			UPDATE form_submission
			SET content = ?
			WHERE id = ?`,
			mergedContent,
			submissionId,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.update_submission", err)
			return
		}

		err = tx.Commit()
		if err != nil {
			httpx.LogInternalError(w, "db.update_submission.commit", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteSubmission removes one submission and decrements the parent form's
// counter in the same transaction. The decrement only happens when a row was
// actually deleted, and never drives the counter below zero.
func DeleteSubmission(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}
		submissionId, err := strconv.Atoi(chi.URLParam(r, "submissionId"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.submission_id")
			return
		}

		tx, err := app.BeginTx(r.Context(), nil)
		if err != nil {
			httpx.LogInternalError(w, "db.begin_tx", err)
			return
		}
		defer tx.Rollback()

		res, err := tx.ExecContext(r.Context(), `
			DELETE FROM form_submission
			WHERE id = ?
				AND form_id IN (
					SELECT id FROM form
					WHERE id = ?
						AND user_id = ?
				)`,
			submissionId,
			formId,
			ownerID(r),
		)
		if err != nil {
			httpx.LogInternalError(w, "db.delete_submission", err)
			return
		}
		n, err := res.RowsAffected()
		if err != nil {
			httpx.LogInternalError(w, "db.delete_submission.verify", err)
			return
		}
		if n < 1 {
			httpx.LogNotFound(w, "delete_submission", submissionId)
			return
		}

		_, err = tx.ExecContext(r.Context(), `
			UPDATE form
			SET submissions = submissions - 1
			WHERE id = ?
				AND submissions > 0`,
			formId,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.delete_submission.count", err)
			return
		}

		err = tx.Commit()
		if err != nil {
			httpx.LogInternalError(w, "db.delete_submission.commit", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
