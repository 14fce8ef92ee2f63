package save

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vue-workorders/internal/storage"
	"vue-workorders/internal/workorder"
)

type MockPrefsSaver struct {
	mock.Mock
}

func (m *MockPrefsSaver) SavePrefs(ctx context.Context, key string, prefs storage.Prefs) error {
	args := m.Called(ctx, key, prefs)
	return args.Error(0)
}

func TestSavePrefs(t *testing.T) {
	store := new(MockPrefsSaver)
	store.On("SavePrefs", mock.Anything, storage.PrefsKey, mock.Anything).Return(nil)

	handler := SavePrefs(slog.Default(), store)
	body := `{"date_field":"orig_due","column_order":["work_order","assigned_to"]}`
	req := httptest.NewRequest(http.MethodPut, "/api/prefs/update", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, workorder.FieldOrigDue, resp.Prefs.DateField)

	store.AssertExpectations(t)
}

func TestSavePrefs_SanitizesUnknownFields(t *testing.T) {
	store := new(MockPrefsSaver)
	store.On("SavePrefs", mock.Anything, storage.PrefsKey, mock.MatchedBy(func(p storage.Prefs) bool {
		return p.DateField == workorder.FieldSchedStart && len(p.ColumnOrder) == 1
	})).Return(nil)

	handler := SavePrefs(slog.Default(), store)
	body := `{"date_field":"status","column_order":["ghost","work_order"]}`
	req := httptest.NewRequest(http.MethodPut, "/api/prefs/update", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	store.AssertExpectations(t)
}

func TestSavePrefs_BadPayload(t *testing.T) {
	store := new(MockPrefsSaver)

	handler := SavePrefs(slog.Default(), store)
	req := httptest.NewRequest(http.MethodPut, "/api/prefs/update", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	store.AssertNotCalled(t, "SavePrefs")
}
