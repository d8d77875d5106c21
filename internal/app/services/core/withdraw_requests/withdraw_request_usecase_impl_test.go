package withdrawRequests

import (
	"context"
	"halo-optom-service/internal/app/config"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/constvars"
	"halo-optom-service/internal/pkg/dto/requests"
	"halo-optom-service/internal/pkg/exceptions"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testWithdrawRequestID = "3c9a7e52-64b1-4f0e-9d1a-2b8c7d6e5f40"
	testOptometristID     = "optometrist-1"
	testAdminID           = "A1"
)

var testNow = time.Date(2024, 10, 2, 10, 30, 0, 0, time.UTC)

func newWithdrawRequestUsecaseFixture() (*withdrawRequestUsecase, *MockWithdrawRequestRepository, *MockTransitionRecorder) {
	repo := new(MockWithdrawRequestRepository)
	recorder := new(MockTransitionRecorder)
	uc := newWithdrawRequestUsecase(repo, recorder, &config.InternalConfig{}, zap.NewNop())
	uc.now = func() time.Time { return testNow }
	return uc, repo, recorder
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "HALO_SVC_test")
}

func testWithdrawRequest(status models.WithdrawStatus) *models.WithdrawRequest {
	return &models.WithdrawRequest{
		ID:                testWithdrawRequestID,
		OptometristID:     testOptometristID,
		Amount:            decimal.NewFromInt(500000),
		BankName:          "BCA",
		BankAccountNumber: "1234567890",
		BankAccountName:   "Dewi Lestari",
		Status:            status,
		RequestedAt:       testNow.Add(-24 * time.Hour),
		UpdatedAt:         testNow.Add(-24 * time.Hour),
	}
}

func expectUpdate(repo *MockWithdrawRequestRepository, request *models.WithdrawRequest, to models.WithdrawStatus) *mock.Call {
	call := repo.On("UpdateTransition", mock.Anything, mock.MatchedBy(func(t *models.WithdrawTransition) bool {
		return t.WithdrawRequestID == request.ID && t.From == request.Status && t.To == to
	})).Once()
	call.RunFn = func(args mock.Arguments) {
		t := args.Get(1).(*models.WithdrawTransition)
		updated := *request
		updated.Status = t.To
		updated.ReviewedBy = &t.ReviewedBy
		updated.ReviewedAt = &t.ReviewedAt
		if t.Note != nil {
			updated.Note = t.Note
		}
		updated.UpdatedAt = t.UpdatedAt
		call.ReturnArguments = mock.Arguments{&updated, nil}
	}
	return call
}

func assertStatusCode(t *testing.T, err error, statusCode int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, statusCode, customErr.StatusCode)
}

func TestWithdrawRequestUsecase_Approve(t *testing.T) {
	t.Run("Approve Pending Request", func(t *testing.T) {
		uc, repo, recorder := newWithdrawRequestUsecaseFixture()
		request := testWithdrawRequest(models.WithdrawStatusPending)
		repo.On("FindByID", mock.Anything, testWithdrawRequestID).Return(request, nil)
		expectUpdate(repo, request, models.WithdrawStatusApproved)
		recorder.On("Record", mock.Anything, mock.MatchedBy(func(entry *models.AuditLog) bool {
			return entry.EntityType == constvars.EntityTypeWithdrawRequest &&
				entry.FromStatus == "PENDING" && entry.ToStatus == "APPROVED" && entry.ActorID == testAdminID
		})).Return()

		result, err := uc.Approve(testContext(), testWithdrawRequestID, testAdminID)

		require.NoError(t, err)
		assert.Equal(t, models.WithdrawStatusApproved, result.Status)
		assert.True(t, decimal.NewFromInt(500000).Equal(result.Amount))
		require.NotNil(t, result.ReviewedBy)
		assert.Equal(t, testAdminID, *result.ReviewedBy)
		require.NotNil(t, result.ReviewedAt)
		assert.Equal(t, testNow, *result.ReviewedAt)
		recorder.AssertExpectations(t)
	})

	t.Run("Approve Approved Request Is Refused", func(t *testing.T) {
		uc, repo, recorder := newWithdrawRequestUsecaseFixture()
		repo.On("FindByID", mock.Anything, testWithdrawRequestID).Return(testWithdrawRequest(models.WithdrawStatusApproved), nil)

		_, err := uc.Approve(testContext(), testWithdrawRequestID, testAdminID)

		assert.ErrorIs(t, err, exceptions.ErrInvalidState)
		assertStatusCode(t, err, http.StatusConflict)
		repo.AssertNotCalled(t, "UpdateTransition", mock.Anything, mock.Anything)
		recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Request", func(t *testing.T) {
		uc, repo, _ := newWithdrawRequestUsecaseFixture()
		repo.On("FindByID", mock.Anything, testWithdrawRequestID).Return(nil, nil)

		_, err := uc.Approve(testContext(), testWithdrawRequestID, testAdminID)

		assertStatusCode(t, err, http.StatusNotFound)
	})

	t.Run("Concurrent Approval", func(t *testing.T) {
		uc, repo, recorder := newWithdrawRequestUsecaseFixture()
		repo.On("FindByID", mock.Anything, testWithdrawRequestID).Return(testWithdrawRequest(models.WithdrawStatusPending), nil).Once()
		repo.On("FindByID", mock.Anything, testWithdrawRequestID).Return(testWithdrawRequest(models.WithdrawStatusRejected), nil).Once()
		repo.On("UpdateTransition", mock.Anything, mock.Anything).Return(nil, nil).Once()

		_, err := uc.Approve(testContext(), testWithdrawRequestID, testAdminID)

		assert.ErrorIs(t, err, exceptions.ErrInvalidState)
		assertStatusCode(t, err, http.StatusConflict)
		recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})
}

func TestWithdrawRequestUsecase_Reject(t *testing.T) {
	t.Run("Reject Pending Request Stores Note", func(t *testing.T) {
		uc, repo, recorder := newWithdrawRequestUsecaseFixture()
		request := testWithdrawRequest(models.WithdrawStatusPending)
		repo.On("FindByID", mock.Anything, testWithdrawRequestID).Return(request, nil)
		expectUpdate(repo, request, models.WithdrawStatusRejected)
		recorder.On("Record", mock.Anything, mock.MatchedBy(func(entry *models.AuditLog) bool {
			return entry.Reason == "bank account name mismatch"
		})).Return()

		result, err := uc.Reject(testContext(), testWithdrawRequestID, testAdminID, " bank account name mismatch ")

		require.NoError(t, err)
		assert.Equal(t, models.WithdrawStatusRejected, result.Status)
		require.NotNil(t, result.Note)
		assert.Equal(t, "bank account name mismatch", *result.Note)
	})

	t.Run("Reject Approved Request Fails And Stays Approved", func(t *testing.T) {
		uc, repo, _ := newWithdrawRequestUsecaseFixture()
		request := testWithdrawRequest(models.WithdrawStatusApproved)
		repo.On("FindByID", mock.Anything, testWithdrawRequestID).Return(request, nil)

		result, err := uc.Reject(testContext(), testWithdrawRequestID, testAdminID, "changed my mind")

		assert.Nil(t, result)
		assertStatusCode(t, err, http.StatusConflict)
		assert.Equal(t, models.WithdrawStatusApproved, request.Status)
		repo.AssertNotCalled(t, "UpdateTransition", mock.Anything, mock.Anything)
	})

	t.Run("Blank Reason", func(t *testing.T) {
		uc, repo, _ := newWithdrawRequestUsecaseFixture()

		_, err := uc.Reject(testContext(), testWithdrawRequestID, testAdminID, "  \t ")

		assert.ErrorIs(t, err, exceptions.ErrBlankReason)
		assertStatusCode(t, err, http.StatusBadRequest)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestWithdrawRequestUsecase_MarkPaid(t *testing.T) {
	t.Run("Approved Request Becomes Paid", func(t *testing.T) {
		uc, repo, recorder := newWithdrawRequestUsecaseFixture()
		request := testWithdrawRequest(models.WithdrawStatusApproved)
		repo.On("FindByID", mock.Anything, testWithdrawRequestID).Return(request, nil)
		expectUpdate(repo, request, models.WithdrawStatusPaid)
		recorder.On("Record", mock.Anything, mock.Anything).Return()

		result, err := uc.MarkPaid(testContext(), testWithdrawRequestID, "finance-admin")

		require.NoError(t, err)
		assert.Equal(t, models.WithdrawStatusPaid, result.Status)
		require.NotNil(t, result.ReviewedBy)
		assert.Equal(t, "finance-admin", *result.ReviewedBy)
	})

	refused := []models.WithdrawStatus{models.WithdrawStatusPending, models.WithdrawStatusRejected, models.WithdrawStatusPaid}
	for _, status := range refused {
		t.Run("Refused From "+string(status), func(t *testing.T) {
			uc, repo, _ := newWithdrawRequestUsecaseFixture()
			repo.On("FindByID", mock.Anything, testWithdrawRequestID).Return(testWithdrawRequest(status), nil)

			_, err := uc.MarkPaid(testContext(), testWithdrawRequestID, testAdminID)

			assertStatusCode(t, err, http.StatusConflict)
			repo.AssertNotCalled(t, "UpdateTransition", mock.Anything, mock.Anything)
		})
	}
}

func TestWithdrawRequestUsecase_CreateWithdrawRequest(t *testing.T) {
	validRequest := func() *requests.CreateWithdrawRequest {
		return &requests.CreateWithdrawRequest{
			Amount:            decimal.NewFromInt(500000),
			BankName:          " BCA ",
			BankAccountNumber: "1234567890",
			BankAccountName:   "Dewi Lestari",
			OptometristID:     testOptometristID,
		}
	}

	t.Run("Valid Request Is Pending", func(t *testing.T) {
		uc, repo, recorder := newWithdrawRequestUsecaseFixture()
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.WithdrawRequest")).Return(nil)
		recorder.On("Record", mock.Anything, mock.MatchedBy(func(entry *models.AuditLog) bool {
			return entry.FromStatus == "" && entry.ToStatus == "PENDING" && entry.ActorID == testOptometristID
		})).Return()

		result, err := uc.CreateWithdrawRequest(testContext(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, models.WithdrawStatusPending, result.Status)
		assert.Equal(t, "BCA", result.BankName)
		assert.Equal(t, testNow, result.RequestedAt)
		assert.Nil(t, result.ReviewedBy)
		recorder.AssertExpectations(t)
	})

	t.Run("Non Positive Amount", func(t *testing.T) {
		uc, repo, _ := newWithdrawRequestUsecaseFixture()
		request := validRequest()
		request.Amount = decimal.NewFromInt(-10)

		_, err := uc.CreateWithdrawRequest(testContext(), request)

		assertStatusCode(t, err, http.StatusBadRequest)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Missing Bank Account", func(t *testing.T) {
		uc, repo, _ := newWithdrawRequestUsecaseFixture()
		request := validRequest()
		request.BankAccountNumber = ""

		_, err := uc.CreateWithdrawRequest(testContext(), request)

		assertStatusCode(t, err, http.StatusBadRequest)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestWithdrawRequestUsecase_ListWithdrawRequests(t *testing.T) {
	t.Run("Filter By Status", func(t *testing.T) {
		uc, repo, _ := newWithdrawRequestUsecaseFixture()
		items := []models.WithdrawRequest{*testWithdrawRequest(models.WithdrawStatusApproved)}
		repo.On("FindAll", mock.Anything, models.WithdrawStatusApproved, 10, 10).Return(items, nil)
		repo.On("Count", mock.Anything, models.WithdrawStatusApproved).Return(11, nil)

		result, total, err := uc.ListWithdrawRequests(testContext(), &requests.WithdrawRequestFilter{
			Status:     "APPROVED",
			Pagination: requests.Pagination{Page: 2, PageSize: 10},
		})

		require.NoError(t, err)
		assert.Equal(t, items, result)
		assert.Equal(t, 11, total)
	})

	t.Run("Empty Status Lists Everything", func(t *testing.T) {
		uc, repo, _ := newWithdrawRequestUsecaseFixture()
		repo.On("FindAll", mock.Anything, models.WithdrawStatus(""), 20, 0).Return([]models.WithdrawRequest{}, nil)
		repo.On("Count", mock.Anything, models.WithdrawStatus("")).Return(0, nil)

		result, total, err := uc.ListWithdrawRequests(testContext(), &requests.WithdrawRequestFilter{
			Pagination: requests.Pagination{Page: 1, PageSize: 20},
		})

		require.NoError(t, err)
		assert.Empty(t, result)
		assert.Zero(t, total)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		uc, repo, _ := newWithdrawRequestUsecaseFixture()

		_, _, err := uc.ListWithdrawRequests(testContext(), &requests.WithdrawRequestFilter{
			Status:     "CANCELLED",
			Pagination: requests.Pagination{Page: 1, PageSize: 20},
		})

		assertStatusCode(t, err, http.StatusBadRequest)
		repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
