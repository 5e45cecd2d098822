package adaptor

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"letterhead-service/internal/dto/request"
	"letterhead-service/internal/dto/response"
	"letterhead-service/internal/usecase"
)

type mockAuthService struct {
	registerFunc func(ctx context.Context, req *request.RegisterRequest) (*response.UserSummary, error)
	loginFunc    func(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

func (m *mockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserSummary, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	return &response.UserSummary{Email: req.Email}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return &response.LoginResponse{Token: "token", User: response.UserSummary{Email: req.Email}}, nil
}

type mockLetterheadService struct {
	createFunc      func(ctx context.Context, req *request.CreateLetterheadRequest) (*response.LetterheadResponse, error)
	listByOwnerFunc func(ctx context.Context, ownerEmail string) ([]response.LetterheadResponse, error)
	getByIDFunc     func(ctx context.Context, id int64) (*response.LetterheadResponse, error)
	upsertFunc      func(ctx context.Context, ownerEmail string, req *request.UpsertLetterheadRequest, logo *usecase.LogoUpload) (*response.LetterheadResponse, bool, error)
	deleteFunc      func(ctx context.Context, id int64) error
}

func (m *mockLetterheadService) Create(ctx context.Context, req *request.CreateLetterheadRequest) (*response.LetterheadResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &response.LetterheadResponse{ID: 1}, nil
}

func (m *mockLetterheadService) ListByOwner(ctx context.Context, ownerEmail string) ([]response.LetterheadResponse, error) {
	if m.listByOwnerFunc != nil {
		return m.listByOwnerFunc(ctx, ownerEmail)
	}
	return []response.LetterheadResponse{}, nil
}

func (m *mockLetterheadService) GetByID(ctx context.Context, id int64) (*response.LetterheadResponse, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &response.LetterheadResponse{ID: id}, nil
}

func (m *mockLetterheadService) UpsertByOwner(ctx context.Context, ownerEmail string, req *request.UpsertLetterheadRequest, logo *usecase.LogoUpload) (*response.LetterheadResponse, bool, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, ownerEmail, req, logo)
	}
	return &response.LetterheadResponse{ID: 1}, false, nil
}

func (m *mockLetterheadService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// decodeBody decodes the recorded JSON body into a generic map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}
