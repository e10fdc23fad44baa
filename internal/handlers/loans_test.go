package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-library-catalog/internal/models"
	"github.com/sbilibin2017/gw-library-catalog/internal/services"
)

func TestListLoansHandler(t *testing.T) {
	actor := models.Actor{UserID: uuid.New(), Role: models.RoleUser}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoanLister(ctrl)
	mockSvc.EXPECT().
		ListLoans(gomock.Any(), actor).
		Return([]models.LoanDB{{Status: models.LoanActive}, {Status: models.LoanOverdue}}, nil)

	r := chi.NewRouter()
	r.Use(actorInjector(actor))
	r.Get("/loans", NewListLoansHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/loans", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp LoanListResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Loans, 2)
}

func TestListLoansHandler_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoanLister(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/loans", nil)
	rec := httptest.NewRecorder()
	NewListLoansHandler(mockSvc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReturnLoanHandler(t *testing.T) {
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	loanID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockLoanReturner)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			mockSetup: func(m *MockLoanReturner) {
				m.EXPECT().
					ReturnLoan(gomock.Any(), admin, loanID).
					Return(&models.LoanDB{LoanID: loanID, Status: models.LoanReturned}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "forbidden",
			mockSetup: func(m *MockLoanReturner) {
				m.EXPECT().
					ReturnLoan(gomock.Any(), admin, loanID).
					Return(nil, services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
			expectedErr:  "Admin role required",
		},
		{
			name: "not found",
			mockSetup: func(m *MockLoanReturner) {
				m.EXPECT().
					ReturnLoan(gomock.Any(), admin, loanID).
					Return(nil, services.ErrLoanNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "Loan not found",
		},
		{
			name: "already returned",
			mockSetup: func(m *MockLoanReturner) {
				m.EXPECT().
					ReturnLoan(gomock.Any(), admin, loanID).
					Return(nil, services.ErrLoanAlreadyReturned)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "Loan is already returned",
		},
		{
			name: "internal error",
			mockSetup: func(m *MockLoanReturner) {
				m.EXPECT().
					ReturnLoan(gomock.Any(), admin, loanID).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockLoanReturner(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Use(actorInjector(admin))
			r.Post("/loans/{loanID}/return", NewReturnLoanHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, "/loans/"+loanID.String()+"/return", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				var resp LoanErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			}
		})
	}
}

func TestReturnLoanHandler_InvalidID(t *testing.T) {
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoanReturner(ctrl)

	r := chi.NewRouter()
	r.Use(actorInjector(admin))
	r.Post("/loans/{loanID}/return", NewReturnLoanHandler(mockSvc))

	req := httptest.NewRequest(http.MethodPost, "/loans/not-a-uuid/return", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
