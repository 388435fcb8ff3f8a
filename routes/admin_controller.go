package routes

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/oauth"
	"github.com/go-chi/render"

	"github.com/stirwin/form-builder/app"
	"github.com/stirwin/form-builder/form"
	"github.com/stirwin/form-builder/httpx"
	"github.com/stirwin/form-builder/log"
	"github.com/stirwin/form-builder/model"
	"github.com/stirwin/form-builder/token"
)

// ownerID is the authenticated credential the oauth middleware stored in the
// request context. Every owner-scoped query filters on it, so one owner can
// never see or touch another owner's forms.
func ownerID(r *http.Request) string {
	owner, _ := r.Context().Value(oauth.CredentialContext).(string)
	return owner
}

type formDetails struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func CreateForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		details := formDetails{}
		err := render.DecodeJSON(r.Body, &details)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		details.Name = strings.TrimSpace(details.Name)
		if utf8.RuneCountInString(details.Name) < 4 {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "create_form.name", "name must be at least 4 characters")
			return
		}

		shareURL, err := token.NewShare()
		if err != nil {
			httpx.LogInternalError(w, "create_form.share_token", err)
			return
		}

		var formId int
		err = app.QueryRowContext(r.Context(), `
			INSERT INTO form (user_id, name, description, share_url)
			VALUES (?, ?, ?, ?)
			RETURNING id`,
			ownerID(r),
			details.Name,
			details.Description,
			shareURL,
		).Scan(&formId)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_form", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id":       formId,
			"shareURL": shareURL,
		})
	}
}

func ListForms(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), `
			SELECT id, name, description, published, share_url, visits, submissions, created_at
			FROM form
			WHERE user_id = ?
			ORDER BY created_at DESC`,
			ownerID(r),
		)
		if err != nil {
			httpx.LogInternalError(w, "db.get_forms", err)
			return
		}
		defer rows.Close()

		forms := []model.Form{}
		for rows.Next() {
			f := model.Form{}
			err = rows.Scan(&f.ID, &f.Name, &f.Description, &f.Published, &f.ShareURL, &f.Visits, &f.Submissions, &f.CreatedAt)
			if err != nil {
				httpx.LogInternalError(w, "db.get_forms.scan", err)
				return
			}

			forms = append(forms, f)
		}

		render.JSON(w, r, map[string]any{
			"forms": forms,
		})
	}
}

func GetFormById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		f := model.Form{}
		var content string
		err = app.QueryRowContext(r.Context(), `
			SELECT id, name, description, content, published, share_url, visits, submissions, created_at
			FROM form
			WHERE id = ?
				AND user_id = ?`,
			formId,
			ownerID(r),
		).Scan(&f.ID, &f.Name, &f.Description, &content, &f.Published, &f.ShareURL, &f.Visits, &f.Submissions, &f.CreatedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httpx.LogNotFound(w, "get_form", formId)
			} else {
				httpx.LogInternalError(w, "db.get_form", err)
			}
			return
		}

		f.Fields = form.DeserializeContent(content)
		render.JSON(w, r, f)
	}
}

func UpdateFormDetails(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		details := formDetails{}
		err = render.DecodeJSON(r.Body, &details)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		details.Name = strings.TrimSpace(details.Name)
		if utf8.RuneCountInString(details.Name) < 4 {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "update_form.name", "name must be at least 4 characters")
			return
		}

		tx, err := app.BeginTx(r.Context(), nil)
		if err != nil {
			httpx.LogInternalError(w, "db.begin_tx", err)
			return
		}
		defer tx.Rollback()

		// published forms are frozen
		res, err := tx.ExecContext(r.Context(), `
			UPDATE form
			SET
				name = ?,
				description = ?
			WHERE id = ?
				AND user_id = ?
				AND published = 0`,
			details.Name,
			details.Description,
			formId,
			ownerID(r),
		)
		if err != nil {
			httpx.LogInternalError(w, "db.update_form", err)
			return
		}

		writeFormUpdateResult(w, r, tx, res, formId)
	}
}

func UpdateFormContent(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		body := struct {
			Fields form.Fields `json:"fields"`
		}{}
		// decoding resolves every field's type tag: unknown tags fail here
		err = render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		content, err := form.Serialize(body.Fields)
		if err != nil {
			httpx.LogInternalError(w, "update_form.serialize_fields", err)
			return
		}

		tx, err := app.BeginTx(r.Context(), nil)
		if err != nil {
			httpx.LogInternalError(w, "db.begin_tx", err)
			return
		}
		defer tx.Rollback()

		res, err := tx.ExecContext(r.Context(), `
			UPDATE form
			SET content = ?
			WHERE id = ?
				AND user_id = ?
				AND published = 0`,
			content,
			formId,
			ownerID(r),
		)
		if err != nil {
			httpx.LogInternalError(w, "db.update_form.content", err)
			return
		}

		writeFormUpdateResult(w, r, tx, res, formId)
	}
}

// writeFormUpdateResult commits a gated update that touched a row, and
// otherwise distinguishes a missing form from a published one. The check
// runs inside the update's transaction, so the status reflects the same
// snapshot the gate saw.
func writeFormUpdateResult(w http.ResponseWriter, r *http.Request, tx *sql.Tx, res sql.Result, formId int) {
	n, err := res.RowsAffected()
	if err != nil {
		httpx.LogInternalError(w, "db.update_form.verify", err)
		return
	}
	if n >= 1 {
		err = tx.Commit()
		if err != nil {
			httpx.LogInternalError(w, "db.update_form.commit", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var published bool
	err = tx.QueryRowContext(r.Context(), `
		SELECT published FROM form
		WHERE id = ?
			AND user_id = ?`,
		formId,
		ownerID(r),
	).Scan(&published)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		httpx.LogNotFound(w, "update_form", formId)
	case err != nil:
		httpx.LogInternalError(w, "db.update_form.verify", err)
	case published:
		httpx.LogStatus(w, http.StatusConflict, log.DebugLevel, "update_form.published")
	default:
		httpx.LogNotFound(w, "update_form", formId)
	}
}

// PublishForm flips the one-way publish switch. Re-publishing is a no-op
// success; published never transitions back.
func PublishForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		res, err := app.ExecContext(r.Context(), `
			UPDATE form
			SET published = 1
			WHERE id = ?
				AND user_id = ?`,
			formId,
			ownerID(r),
		)
		if err != nil {
			httpx.LogInternalError(w, "db.publish_form", err)
			return
		}
		n, err := res.RowsAffected()
		if err != nil {
			httpx.LogInternalError(w, "db.publish_form.verify", err)
			return
		}
		if n < 1 {
			httpx.LogNotFound(w, "publish_form", formId)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DuplicateForm copies name, description and content into a fresh draft:
// unpublished, zeroed counters, new share token.
func DuplicateForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		tx, err := app.BeginTx(r.Context(), nil)
		if err != nil {
			httpx.LogInternalError(w, "db.begin_tx", err)
			return
		}
		defer tx.Rollback()

		details := formDetails{}
		var content string
		err = tx.QueryRowContext(r.Context(), `
			SELECT name, description, content
			FROM form
			WHERE id = ?
				AND user_id = ?`,
			formId,
			ownerID(r),
		).Scan(&details.Name, &details.Description, &content)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httpx.LogNotFound(w, "duplicate_form", formId)
			} else {
				httpx.LogInternalError(w, "db.duplicate_form.get", err)
			}
			return
		}

		shareURL, err := token.NewShare()
		if err != nil {
			httpx.LogInternalError(w, "duplicate_form.share_token", err)
			return
		}

		var copyId int
		err = tx.QueryRowContext(r.Context(), `
			INSERT INTO form (user_id, name, description, content, share_url)
			VALUES (?, ?, ?, ?, ?)
			RETURNING id`,
			ownerID(r),
			details.Name,
			details.Description,
			content,
			shareURL,
		).Scan(&copyId)
		if err != nil {
			httpx.LogInternalError(w, "db.duplicate_form.insert", err)
			return
		}

		err = tx.Commit()
		if err != nil {
			httpx.LogInternalError(w, "db.duplicate_form.commit", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id":       copyId,
			"shareURL": shareURL,
		})
	}
}

// DeleteForm removes a form and its submissions as an explicit two-step
// cascade inside one transaction.
func DeleteForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		tx, err := app.BeginTx(r.Context(), nil)
		if err != nil {
			httpx.LogInternalError(w, "db.begin_tx", err)
			return
		}
		defer tx.Rollback()

		// children first: the rollback undoes this when the form turns out
		// missing or not owned
		_, err = tx.ExecContext(r.Context(), `
			DELETE FROM form_submission
			WHERE form_id IN (
				SELECT id FROM form
				WHERE id = ?
					AND user_id = ?
			)`,
			formId,
			ownerID(r),
		)
		if err != nil {
			httpx.LogInternalError(w, "db.delete_form.submissions", err)
			return
		}

		res, err := tx.ExecContext(r.Context(), `
			DELETE FROM form
			WHERE id = ?
				AND user_id = ?`,
			formId,
			ownerID(r),
		)
		if err != nil {
			httpx.LogInternalError(w, "db.delete_form", err)
			return
		}
		n, err := res.RowsAffected()
		if err != nil {
			httpx.LogInternalError(w, "db.delete_form.verify", err)
			return
		}
		if n < 1 {
			httpx.LogNotFound(w, "delete_form", formId)
			return
		}

		err = tx.Commit()
		if err != nil {
			httpx.LogInternalError(w, "db.delete_form.commit", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetDashboardStats sums counters across all the owner's forms and derives
// the display rates.
func GetDashboardStats(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var visits, submissions int
		err := app.QueryRowContext(r.Context(), `
			SELECT COALESCE(SUM(visits), 0), COALESCE(SUM(submissions), 0)
			FROM form
			WHERE user_id = ?`,
			ownerID(r),
		).Scan(&visits, &submissions)
		if err != nil {
			httpx.LogInternalError(w, "db.get_stats", err)
			return
		}

		rates := form.DeriveRates(visits, submissions)
		render.JSON(w, r, map[string]any{
			"visits":         visits,
			"submissions":    submissions,
			"submissionRate": rates.SubmissionRate,
			"bounceRate":     rates.BounceRate,
		})
	}
}

// GetFormStats reports one form's counters, derived rates and per-question
// averages over its submissions.
func GetFormStats(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		var visits, submissions int
		var content string
		err = app.QueryRowContext(r.Context(), `
			SELECT visits, submissions, content
			FROM form
			WHERE id = ?
				AND user_id = ?`,
			formId,
			ownerID(r),
		).Scan(&visits, &submissions, &content)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httpx.LogNotFound(w, "get_form_stats", formId)
			} else {
				httpx.LogInternalError(w, "db.get_form_stats", err)
			}
			return
		}

		rows, err := app.QueryContext(r.Context(), `
			SELECT content
			FROM form_submission
			WHERE form_id = ?`,
			formId,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.get_form_stats.submissions", err)
			return
		}
		defer rows.Close()

		values := []form.Values{}
		for rows.Next() {
			var submissionContent string
			err = rows.Scan(&submissionContent)
			if err != nil {
				httpx.LogInternalError(w, "db.get_form_stats.scan", err)
				return
			}
			values = append(values, form.ParseValues(submissionContent))
		}

		fields := form.DeserializeContent(content)
		rates := form.DeriveRates(visits, submissions)
		render.JSON(w, r, map[string]any{
			"visits":         visits,
			"submissions":    submissions,
			"submissionRate": rates.SubmissionRate,
			"bounceRate":     rates.BounceRate,
			"averages":       form.QuestionAverages(fields, values),
		})
	}
}
