package app

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"rewear/internal/models"
	"rewear/internal/storage/mocks"
)

func TestProcessApproveItem(t *testing.T) {
	admin := models.Claim{UserID: 9, Role: models.RoleAdmin}

	testCases := []struct {
		name        string
		claim       models.Claim
		setupMock   func(mockDB *mocks.MockStorage)
		expectedErr error
	}{
		{
			name:        "regular user is forbidden",
			claim:       models.Claim{UserID: 2, Role: models.RoleUser},
			setupMock:   func(mockDB *mocks.MockStorage) {},
			expectedErr: ErrForbidden,
		},
		{
			name:  "item not found",
			claim: admin,
			setupMock: func(mockDB *mocks.MockStorage) {
				mockDB.EXPECT().ItemForUpdate(gomock.Any(), gomock.Nil(), int32(7)).
					Return(nil, sql.ErrNoRows)
			},
			expectedErr: ErrNotFound,
		},
		{
			name:  "already approved pays no second bonus",
			claim: admin,
			setupMock: func(mockDB *mocks.MockStorage) {
				mockDB.EXPECT().ItemForUpdate(gomock.Any(), gomock.Nil(), int32(7)).
					Return(&models.Item{ID: 7, OwnerID: 1, Status: models.StatusAvailable, Approved: true}, nil)
				mockDB.EXPECT().MarkItemApproved(gomock.Any(), gomock.Nil(), int32(7)).
					Return(false, nil)
			},
			expectedErr: ErrInvalidState,
		},
		{
			name:  "success credits the listing bonus",
			claim: admin,
			setupMock: func(mockDB *mocks.MockStorage) {
				mockDB.EXPECT().ItemForUpdate(gomock.Any(), gomock.Nil(), int32(7)).
					Return(&models.Item{ID: 7, OwnerID: 1, Status: models.StatusAvailable, Approved: false}, nil)
				mockDB.EXPECT().MarkItemApproved(gomock.Any(), gomock.Nil(), int32(7)).
					Return(true, nil)
				mockDB.EXPECT().AdjustPoints(gomock.Any(), gomock.Nil(), int32(1), 10).
					Return(nil)
			},
			expectedErr: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			appInstance, mockDB := newTestApp(t)
			expectInTx(mockDB)
			tc.setupMock(mockDB)

			err := appInstance.ProcessApproveItem(context.Background(), tc.claim, 7)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessRejectItem(t *testing.T) {
	admin := models.Claim{UserID: 9, Role: models.RoleAdmin}

	t.Run("regular user is forbidden", func(t *testing.T) {
		appInstance, _ := newTestApp(t)
		err := appInstance.ProcessRejectItem(context.Background(), models.Claim{UserID: 2, Role: models.RoleUser}, 7)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("item not found", func(t *testing.T) {
		appInstance, mockDB := newTestApp(t)
		mockDB.EXPECT().DeleteItem(gomock.Any(), int32(7)).Return(false, nil)
		err := appInstance.ProcessRejectItem(context.Background(), admin, 7)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("success removes the item", func(t *testing.T) {
		appInstance, mockDB := newTestApp(t)
		mockDB.EXPECT().DeleteItem(gomock.Any(), int32(7)).Return(true, nil)
		err := appInstance.ProcessRejectItem(context.Background(), admin, 7)
		assert.NoError(t, err)
	})
}
