package shop

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"
)

func TestRequireAdmin(t *testing.T) {
	testCases := []struct {
		name         string
		id           string
		mockIsAdmin  bool
		mockError    error
		expectLookup bool
		expectedCode errs.ErrCode
	}{
		{
			name:         "admin_allowed",
			id:           "u1",
			mockIsAdmin:  true,
			expectLookup: true,
			expectedCode: errs.OK,
		},
		{
			name:         "missing_id",
			id:           "",
			expectedCode: errs.Unauthenticated,
		},
		{
			name:         "regular_user_denied",
			id:           "u2",
			mockIsAdmin:  false,
			expectLookup: true,
			expectedCode: errs.PermissionDenied,
		},
		{
			name:         "unknown_user",
			id:           "ghost",
			mockError:    &errs.Error{Code: errs.NotFound, Message: "user not found"},
			expectLookup: true,
			expectedCode: errs.Unauthenticated,
		},
		{
			name:         "lookup_failure",
			id:           "u3",
			mockError:    errors.New("connection reset"),
			expectLookup: true,
			expectedCode: errs.Unknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, m := newTestService(t)

			if tc.expectLookup {
				m.users.EXPECT().IsAdmin(gomock.Any(), tc.id).Return(tc.mockIsAdmin, tc.mockError)
			}

			err := service.requireAdmin(context.Background(), tc.id)
			if tc.expectedCode == errs.OK {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tc.expectedCode, errs.Code(err))
		})
	}
}
