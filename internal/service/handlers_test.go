package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rewear/internal/app"
	"rewear/internal/config"
	"rewear/internal/models"
	"rewear/internal/pkg/auth"
	"rewear/internal/pkg/logger"
	"rewear/internal/pkg/security"
	"rewear/internal/storage/mocks"
)

func newTestService(t *testing.T) (*httptest.Server, *mocks.MockStorage, *auth.TokenManager) {
	t.Helper()

	l, err := logger.CreateLogger("info")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDB := mocks.NewMockStorage(ctrl)
	cfg := &config.Config{
		ListingBonus:   10,
		SwapBonus:      5,
		RedemptionCost: 15,
	}
	tokens := auth.NewTokenManager("testsecret", 3*time.Hour)

	appInstance := app.NewApp(mockDB, tokens, cfg, l)
	service := NewService(appInstance, tokens, "localhost:8080", l)

	testServer := httptest.NewServer(service.NewRouter())
	t.Cleanup(testServer.Close)

	return testServer, mockDB, tokens
}

func testRequest(t *testing.T, ts *httptest.Server, method, path string, requestBody []byte, token string) (*http.Response, string) {
	req, err := http.NewRequest(method, ts.URL+path, bytes.NewBuffer(requestBody))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

// expectInTx makes the mocked transaction boundary run the callback directly.
func expectInTx(mockDB *mocks.MockStorage) {
	mockDB.EXPECT().InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(tx *sql.Tx) error) error {
			return fn(nil)
		}).AnyTimes()
}

func TestRegisterHandler_Gomock(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        []byte
		setupMock          func(mockDB *mocks.MockStorage)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "invalid JSON",
			requestBody:        []byte("some body"),
			setupMock:          func(mockDB *mocks.MockStorage) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "{\"errors\":\"invalid character 's' looking for beginning of value\"}\n",
		},
		{
			name:               "missing fields",
			requestBody:        []byte(`{"email": "u@example.com", "password": "", "name": "U"}`),
			setupMock:          func(mockDB *mocks.MockStorage) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "{\"errors\":\"app: invalid request\"}\n",
		},
		{
			name:        "duplicate email",
			requestBody: []byte(`{"email": "u@example.com", "password": "pass", "name": "U"}`),
			setupMock: func(mockDB *mocks.MockStorage) {
				mockDB.EXPECT().CreateUser(gomock.Any(), gomock.AssignableToTypeOf(&models.User{})).
					Return(nil, &pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectedStatusCode: http.StatusConflict,
			expectedBody:       "{\"errors\":\"app: email already registered\"}\n",
		},
		{
			name:        "successful registration",
			requestBody: []byte(`{"email": "u@example.com", "password": "pass", "name": "U"}`),
			setupMock: func(mockDB *mocks.MockStorage) {
				mockDB.EXPECT().CreateUser(gomock.Any(), gomock.AssignableToTypeOf(&models.User{})).
					DoAndReturn(func(ctx context.Context, user *models.User) (*models.User, error) {
						user.ID = 1
						return user, nil
					})
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testServer, mockDB, _ := newTestService(t)
			tc.setupMock(mockDB)

			resp, body := testRequest(t, testServer, http.MethodPost, "/api/auth/register", tc.requestBody, "")
			assert.Equal(t, tc.expectedStatusCode, resp.StatusCode)
			assert.Equal(t, tc.expectedBody, body)
		})
	}
}

func TestLoginHandler_Gomock(t *testing.T) {
	passwordHash, err := security.HashPassword("pass")
	require.NoError(t, err)

	testCases := []struct {
		name               string
		requestBody        []byte
		setupMock          func(mockDB *mocks.MockStorage)
		expectedStatusCode int
	}{
		{
			name:        "unknown user",
			requestBody: []byte(`{"email": "nobody@example.com", "password": "pass"}`),
			setupMock: func(mockDB *mocks.MockStorage) {
				mockDB.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").
					Return(&models.User{}, sql.ErrNoRows)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:        "incorrect password",
			requestBody: []byte(`{"email": "u@example.com", "password": "wrongpass"}`),
			setupMock: func(mockDB *mocks.MockStorage) {
				mockDB.EXPECT().UserByEmail(gomock.Any(), "u@example.com").
					Return(&models.User{ID: 1, Email: "u@example.com", Password: passwordHash, Role: models.RoleUser}, nil)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:        "successful login",
			requestBody: []byte(`{"email": "u@example.com", "password": "pass"}`),
			setupMock: func(mockDB *mocks.MockStorage) {
				mockDB.EXPECT().UserByEmail(gomock.Any(), "u@example.com").
					Return(&models.User{ID: 1, Name: "U", Email: "u@example.com", Password: passwordHash, Points: 10, Role: models.RoleUser}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testServer, mockDB, _ := newTestService(t)
			tc.setupMock(mockDB)

			resp, body := testRequest(t, testServer, http.MethodPost, "/api/auth/login", tc.requestBody, "")
			assert.Equal(t, tc.expectedStatusCode, resp.StatusCode)

			if tc.expectedStatusCode == http.StatusOK {
				var loginResp models.LoginResponse
				require.NoError(t, json.Unmarshal([]byte(body), &loginResp))
				assert.NotEmpty(t, loginResp.Token, "token should not be empty")
				assert.Equal(t, 10, loginResp.User.Points)
			}
		})
	}
}

func TestSwapRequestHandler_Gomock(t *testing.T) {
	availableItem := &models.Item{ID: 7, OwnerID: 1, Status: models.StatusAvailable, Approved: true}

	testCases := []struct {
		name               string
		userID             int32
		noToken            bool
		setupMock          func(mockDB *mocks.MockStorage)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "no token",
			noToken:            true,
			setupMock:          func(mockDB *mocks.MockStorage) {},
			expectedStatusCode: http.StatusUnauthorized,
			expectedBody:       "{\"errors\":\"missing auth header\"}\n",
		},
		{
			name:   "item not available",
			userID: 2,
			setupMock: func(mockDB *mocks.MockStorage) {
				mockDB.EXPECT().ItemForUpdate(gomock.Any(), gomock.Nil(), int32(7)).
					Return(&models.Item{ID: 7, OwnerID: 1, Status: models.StatusSwapped, Approved: true}, nil)
			},
			expectedStatusCode: http.StatusConflict,
			expectedBody:       "{\"errors\":\"app: item is not available\"}\n",
		},
		{
			name:   "own item",
			userID: 1,
			setupMock: func(mockDB *mocks.MockStorage) {
				mockDB.EXPECT().ItemForUpdate(gomock.Any(), gomock.Nil(), int32(7)).
					Return(availableItem, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "{\"errors\":\"app: cannot act on own item\"}\n",
		},
		{
			name:   "duplicate request",
			userID: 2,
			setupMock: func(mockDB *mocks.MockStorage) {
				mockDB.EXPECT().ItemForUpdate(gomock.Any(), gomock.Nil(), int32(7)).
					Return(availableItem, nil)
				mockDB.EXPECT().HasPendingRequest(gomock.Any(), gomock.Nil(), int32(7), int32(2)).
					Return(true, nil)
			},
			expectedStatusCode: http.StatusConflict,
			expectedBody:       "{\"errors\":\"app: swap request already pending\"}\n",
		},
		{
			name:   "successful request",
			userID: 2,
			setupMock: func(mockDB *mocks.MockStorage) {
				mockDB.EXPECT().ItemForUpdate(gomock.Any(), gomock.Nil(), int32(7)).
					Return(availableItem, nil)
				mockDB.EXPECT().HasPendingRequest(gomock.Any(), gomock.Nil(), int32(7), int32(2)).
					Return(false, nil)
				mockDB.EXPECT().InsertSwapRequest(gomock.Any(), gomock.Nil(), int32(7), int32(2)).
					Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testServer, mockDB, tokens := newTestService(t)
			expectInTx(mockDB)
			tc.setupMock(mockDB)

			token := ""
			if !tc.noToken {
				var err error
				token, err = tokens.GenerateToken(tc.userID, models.RoleUser)
				require.NoError(t, err)
			}

			resp, body := testRequest(t, testServer, http.MethodPost, "/api/items/7/swap-request", nil, token)
			assert.Equal(t, tc.expectedStatusCode, resp.StatusCode)
			assert.Equal(t, tc.expectedBody, body)
		})
	}
}

func TestRedeemHandler_Gomock(t *testing.T) {
	availableItem := &models.Item{ID: 7, OwnerID: 1, Status: models.StatusAvailable, Approved: true}

	testCases := []struct {
		name               string
		setupMock          func(mockDB *mocks.MockStorage)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name: "insufficient points",
			setupMock: func(mockDB *mocks.MockStorage) {
				mockDB.EXPECT().ItemForUpdate(gomock.Any(), gomock.Nil(), int32(7)).
					Return(availableItem, nil)
				mockDB.EXPECT().UserPoints(gomock.Any(), gomock.Nil(), int32(2)).
					Return(5, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "{\"errors\":\"app: not enough points\"}\n",
		},
		{
			name: "successful redemption",
			setupMock: func(mockDB *mocks.MockStorage) {
				mockDB.EXPECT().ItemForUpdate(gomock.Any(), gomock.Nil(), int32(7)).
					Return(availableItem, nil)
				mockDB.EXPECT().UserPoints(gomock.Any(), gomock.Nil(), int32(2)).
					Return(20, nil)
				mockDB.EXPECT().AdjustPoints(gomock.Any(), gomock.Nil(), int32(2), -15).
					Return(nil)
				mockDB.EXPECT().AdjustPoints(gomock.Any(), gomock.Nil(), int32(1), 15).
					Return(nil)
				mockDB.EXPECT().SetItemStatus(gomock.Any(), gomock.Nil(), int32(7), models.StatusAvailable, models.StatusRedeemed, int32(2)).
					Return(true, nil)
				mockDB.EXPECT().AppendHistory(gomock.Any(), gomock.Nil(), int32(7), int32(2), models.ActionRedeemed).
					Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testServer, mockDB, tokens := newTestService(t)
			expectInTx(mockDB)
			tc.setupMock(mockDB)

			token, err := tokens.GenerateToken(2, models.RoleUser)
			require.NoError(t, err)

			resp, body := testRequest(t, testServer, http.MethodPost, "/api/items/7/redeem", nil, token)
			assert.Equal(t, tc.expectedStatusCode, resp.StatusCode)
			assert.Equal(t, tc.expectedBody, body)
		})
	}
}

func TestApproveItemHandler_Gomock(t *testing.T) {
	t.Run("regular user is forbidden", func(t *testing.T) {
		testServer, _, tokens := newTestService(t)

		token, err := tokens.GenerateToken(2, models.RoleUser)
		require.NoError(t, err)

		resp, body := testRequest(t, testServer, http.MethodPost, "/api/admin/items/7/approve", nil, token)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "{\"errors\":\"app: forbidden\"}\n", body)
	})

	t.Run("admin approves and the uploader is credited", func(t *testing.T) {
		testServer, mockDB, tokens := newTestService(t)
		expectInTx(mockDB)

		mockDB.EXPECT().ItemForUpdate(gomock.Any(), gomock.Nil(), int32(7)).
			Return(&models.Item{ID: 7, OwnerID: 1, Status: models.StatusAvailable, Approved: false}, nil)
		mockDB.EXPECT().MarkItemApproved(gomock.Any(), gomock.Nil(), int32(7)).
			Return(true, nil)
		mockDB.EXPECT().AdjustPoints(gomock.Any(), gomock.Nil(), int32(1), 10).
			Return(nil)

		token, err := tokens.GenerateToken(9, models.RoleAdmin)
		require.NoError(t, err)

		resp, body := testRequest(t, testServer, http.MethodPost, "/api/admin/items/7/approve", nil, token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "", body)
	})
}
