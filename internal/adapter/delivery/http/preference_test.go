package http

import (
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/vadimbarashkov/utmka/internal/entity"
)

func (suite *HandlersTestSuite) TestPreferences() {
	const path = "/api/v1/preferences"

	suite.Run("get server error", func() {
		suite.preferenceUseCaseMock.
			On("Preferences", mock.Anything).
			Once().
			Return(nil, suite.errUnknown)

		suite.e.GET(path).
			Expect().
			Status(http.StatusInternalServerError)
	})

	suite.Run("get", func() {
		prefs := entity.DefaultPreferences()
		suite.preferenceUseCaseMock.
			On("Preferences", mock.Anything).
			Once().
			Return(&prefs, nil)

		suite.e.GET(path).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			HasValue("history_view_mode", "list").
			HasValue("history_sort_order", "newest").
			HasValue("templates_view_mode", "list").
			HasValue("logged_in", false)
	})

	suite.Run("update validation error", func() {
		resp := suite.e.PUT(path).
			WithJSON(map[string]any{"history_view_mode": "cards"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.Value("errors").Array().Value(0).Object().
			HasValue("field", "history_view_mode").
			HasValue("message", "unsupported value")
	})

	suite.Run("update", func() {
		order := entity.SortOldest
		prefs := entity.DefaultPreferences()
		prefs.HistorySortOrder = entity.SortOldest

		suite.preferenceUseCaseMock.
			On("UpdatePreferences", mock.Anything, entity.PreferencesPatch{HistorySortOrder: &order}).
			Once().
			Return(&prefs, nil)

		suite.e.PUT(path).
			WithJSON(map[string]any{"history_sort_order": "oldest"}).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			HasValue("history_sort_order", "oldest")
	})
}
