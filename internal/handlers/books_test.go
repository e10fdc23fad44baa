package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-library-catalog/internal/middlewares"
	"github.com/sbilibin2017/gw-library-catalog/internal/models"
	"github.com/sbilibin2017/gw-library-catalog/internal/services"
)

// actorInjector fakes the auth middleware for handler tests.
func actorInjector(actor models.Actor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middlewares.SetActorToContext(r.Context(), actor)))
		})
	}
}

func TestListBooksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookLister(ctrl)
	mockSvc.EXPECT().
		ListBooks(gomock.Any(), "tolkien", 10, 20).
		Return([]models.BookDB{{Title: "The Hobbit"}}, int64(1), nil)

	req := httptest.NewRequest(http.MethodGet, "/books?search=tolkien&limit=10&offset=20", nil)
	rec := httptest.NewRecorder()

	NewListBooksHandler(mockSvc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp BookListResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.Total)
	assert.Len(t, resp.Books, 1)
}

func TestListBooksHandler_DefaultsAndCaps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookLister(ctrl)

	// No query params: defaults apply
	mockSvc.EXPECT().
		ListBooks(gomock.Any(), "", defaultBookPageLimit, 0).
		Return([]models.BookDB{}, int64(0), nil)

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	rec := httptest.NewRecorder()
	NewListBooksHandler(mockSvc).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Oversized limit is capped
	mockSvc.EXPECT().
		ListBooks(gomock.Any(), "", maxBookPageLimit, 0).
		Return([]models.BookDB{}, int64(0), nil)

	req = httptest.NewRequest(http.MethodGet, "/books?limit=1000", nil)
	rec = httptest.NewRecorder()
	NewListBooksHandler(mockSvc).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetBookHandler(t *testing.T) {
	bookID := uuid.New()
	actor := models.Actor{UserID: uuid.New(), Role: models.RoleUser}

	tests := []struct {
		name         string
		url          string
		withActor    bool
		mockSetup    func(m *MockBookGetter)
		expectedCode int
	}{
		{
			name: "anonymous",
			url:  "/books/" + bookID.String(),
			mockSetup: func(m *MockBookGetter) {
				m.EXPECT().
					GetBook(gomock.Any(), nil, bookID).
					Return(&models.BookDB{BookID: bookID}, false, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "authenticated with pending reservation",
			url:       "/books/" + bookID.String(),
			withActor: true,
			mockSetup: func(m *MockBookGetter) {
				m.EXPECT().
					GetBook(gomock.Any(), &actor, bookID).
					Return(&models.BookDB{BookID: bookID}, true, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			url:  "/books/" + bookID.String(),
			mockSetup: func(m *MockBookGetter) {
				m.EXPECT().
					GetBook(gomock.Any(), nil, bookID).
					Return(nil, false, services.ErrBookNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid id",
			url:          "/books/not-a-uuid",
			mockSetup:    func(m *MockBookGetter) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockBookGetter(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			if tt.withActor {
				r.Use(actorInjector(actor))
			}
			r.Get("/books/{bookID}", NewGetBookHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestCreateBookHandler(t *testing.T) {
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	user := models.Actor{UserID: uuid.New(), Role: models.RoleUser}

	validBody := map[string]interface{}{
		"title":        "The Hobbit",
		"author":       "J.R.R. Tolkien",
		"total_copies": 3,
	}

	tests := []struct {
		name         string
		actor        *models.Actor
		mockSetup    func(m *MockBookCreator)
		expectedCode int
	}{
		{
			name:  "success",
			actor: &admin,
			mockSetup: func(m *MockBookCreator) {
				m.EXPECT().
					CreateBook(gomock.Any(), admin, gomock.Any()).
					DoAndReturn(func(_ interface{}, _ models.Actor, input services.BookInput) (*models.BookDB, error) {
						assert.Equal(t, "The Hobbit", input.Title)
						assert.Equal(t, 3, input.TotalCopies)
						return &models.BookDB{BookID: uuid.New(), Title: input.Title, TotalCopies: 3, AvailableCopies: 3}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:  "forbidden for non-admin",
			actor: &user,
			mockSetup: func(m *MockBookCreator) {
				m.EXPECT().
					CreateBook(gomock.Any(), user, gomock.Any()).
					Return(nil, services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:  "invalid input",
			actor: &admin,
			mockSetup: func(m *MockBookCreator) {
				m.EXPECT().
					CreateBook(gomock.Any(), admin, gomock.Any()).
					Return(nil, services.ErrInvalidBookInput)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unauthenticated",
			actor:        nil,
			mockSetup:    func(m *MockBookCreator) {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockBookCreator(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			if tt.actor != nil {
				r.Use(actorInjector(*tt.actor))
			}
			r.Post("/books", NewCreateBookHandler(mockSvc))

			b, err := json.Marshal(validBody)
			assert.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewBuffer(b))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestUpdateBookHandler(t *testing.T) {
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	bookID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockBookUpdater)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(m *MockBookUpdater) {
				m.EXPECT().
					UpdateBook(gomock.Any(), admin, bookID, gomock.Any()).
					Return(&models.BookDB{BookID: bookID, TotalCopies: 5, AvailableCopies: 2}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			mockSetup: func(m *MockBookUpdater) {
				m.EXPECT().
					UpdateBook(gomock.Any(), admin, bookID, gomock.Any()).
					Return(nil, services.ErrBookNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "internal error",
			mockSetup: func(m *MockBookUpdater) {
				m.EXPECT().
					UpdateBook(gomock.Any(), admin, bookID, gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockBookUpdater(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Use(actorInjector(admin))
			r.Put("/books/{bookID}", NewUpdateBookHandler(mockSvc))

			b, err := json.Marshal(map[string]interface{}{
				"title":        "T",
				"author":       "A",
				"total_copies": 5,
			})
			assert.NoError(t, err)

			req := httptest.NewRequest(http.MethodPut, "/books/"+bookID.String(), bytes.NewBuffer(b))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestDeleteBookHandler(t *testing.T) {
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	bookID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookDeleter(ctrl)
	mockSvc.EXPECT().DeleteBook(gomock.Any(), admin, bookID).Return(nil)

	r := chi.NewRouter()
	r.Use(actorInjector(admin))
	r.Delete("/books/{bookID}", NewDeleteBookHandler(mockSvc))

	req := httptest.NewRequest(http.MethodDelete, "/books/"+bookID.String(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)

	mockSvc.EXPECT().DeleteBook(gomock.Any(), admin, bookID).Return(services.ErrBookNotFound)

	req = httptest.NewRequest(http.MethodDelete, "/books/"+bookID.String(), nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
