package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateFormDetailsSuccess(t *testing.T) {
	a, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE form`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/admin/forms/7",
		strings.NewReader(`{"name":"My form","description":"renamed"}`))
	adminRouter(a).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// three runes is still too short, even when it is more than three bytes
func TestUpdateFormDetailsShortMultibyteNameIs400(t *testing.T) {
	a, mock := newTestApp(t)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/admin/forms/7",
		strings.NewReader(`{"name":"абв"}`))
	adminRouter(a).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFormContentPublishedIs409(t *testing.T) {
	a, mock := newTestApp(t)

	mock.ExpectBegin()
	// the gated update skips published forms
	mock.ExpectExec(`UPDATE form`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT published`).
		WillReturnRows(sqlmock.NewRows([]string{"published"}).AddRow(true))
	mock.ExpectRollback()

	resp := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/admin/forms/7/content",
		strings.NewReader(`{"fields":[]}`))
	adminRouter(a).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFormContentMissingFormIs404(t *testing.T) {
	a, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE form`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT published`).
		WillReturnRows(sqlmock.NewRows([]string{"published"}))
	mock.ExpectRollback()

	resp := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/admin/forms/7/content",
		strings.NewReader(`{"fields":[]}`))
	adminRouter(a).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFormContentSuccess(t *testing.T) {
	a, mock := newTestApp(t)
	content, _, _ := testFormContent(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE form`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/admin/forms/7/content",
		strings.NewReader(`{"fields":`+content+`}`))
	adminRouter(a).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// publishing an already published form reports success again
func TestRepublishIsNoOp(t *testing.T) {
	a, mock := newTestApp(t)

	mock.ExpectExec(`UPDATE form`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE form`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	router := adminRouter(a)
	for i := 0; i < 2; i++ {
		resp := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/admin/forms/7/publish", nil)
		router.ServeHTTP(resp, req)
		require.Equal(t, http.StatusNoContent, resp.Code)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublishMissingFormIs404(t *testing.T) {
	a, mock := newTestApp(t)

	mock.ExpectExec(`UPDATE form`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	resp := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/admin/forms/7/publish", nil)
	adminRouter(a).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
