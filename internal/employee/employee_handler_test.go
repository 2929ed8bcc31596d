package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-employee-api/internal/employee"
	employeeerrors "go-employee-api/internal/employee/errors"
	"go-employee-api/internal/employee/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeEmployeeService struct {
	GetAllEmployeesFn          func(ctx context.Context) ([]employee.Employee, error)
	GetEmployeeByIDFn          func(ctx context.Context, id uint) (*employee.Employee, error)
	CreateEmployeeFn           func(ctx context.Context, raw map[string]any) (*employee.Employee, error)
	UpdateEmployeeFn           func(ctx context.Context, id uint, raw map[string]any) (*employee.Employee, error)
	DeleteEmployeeFn           func(ctx context.Context, id uint) error
	GetEmployeesByDepartmentFn func(ctx context.Context, department string) ([]employee.Employee, error)
}

func (f *fakeEmployeeService) GetAllEmployees(ctx context.Context) ([]employee.Employee, error) {
	return f.GetAllEmployeesFn(ctx)
}
func (f *fakeEmployeeService) GetEmployeeByID(ctx context.Context, id uint) (*employee.Employee, error) {
	return f.GetEmployeeByIDFn(ctx, id)
}
func (f *fakeEmployeeService) CreateEmployee(ctx context.Context, raw map[string]any) (*employee.Employee, error) {
	return f.CreateEmployeeFn(ctx, raw)
}
func (f *fakeEmployeeService) UpdateEmployee(ctx context.Context, id uint, raw map[string]any) (*employee.Employee, error) {
	return f.UpdateEmployeeFn(ctx, id, raw)
}
func (f *fakeEmployeeService) DeleteEmployee(ctx context.Context, id uint) error {
	return f.DeleteEmployeeFn(ctx, id)
}
func (f *fakeEmployeeService) GetEmployeesByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	return f.GetEmployeesByDepartmentFn(ctx, department)
}

func setupRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	employee.RegisterRoutes(r, employee.NewHandler(svc))
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllEmployeesFn: func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{*sampleEmployee()}, nil
		},
	}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodGet, "/employees", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var items []map[string]any
	assert.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 1)
	assert.Contains(t, items[0], "id")
	assert.NotContains(t, items[0], "salary")
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("success emits detail projection", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetEmployeeByIDFn: func(ctx context.Context, id uint) (*employee.Employee, error) {
				assert.Equal(t, uint(7), id)
				return sampleEmployee(), nil
			},
		}
		r := setupRouter(svc)

		w, env := doRequest(t, r, http.MethodGet, "/employees/7", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var data map[string]any
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "75000.00", data["salary"])
		assert.Contains(t, data, "id")
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetEmployeeByIDFn: func(ctx context.Context, id uint) (*employee.Employee, error) {
				return nil, employeeerrors.ErrEmployeeNotFound
			},
		}
		r := setupRouter(svc)

		w, env := doRequest(t, r, http.MethodGet, "/employees/999", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Employee not found", env.Error)
	})

	t.Run("non-numeric id behaves as absent", func(t *testing.T) {
		svc := &fakeEmployeeService{} // the service must not be reached
		r := setupRouter(svc)

		w, env := doRequest(t, r, http.MethodGet, "/employees/abc", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Employee not found", env.Error)
	})
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success is 201", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateEmployeeFn: func(ctx context.Context, raw map[string]any) (*employee.Employee, error) {
				assert.Equal(t, "John Doe", raw["name"])
				empl := sampleEmployee()
				empl.ID = 1
				return empl, nil
			},
		}
		r := setupRouter(svc)

		w, env := doRequest(t, r, http.MethodPost, "/employees",
			`{"name":"John Doe","email":"john@ex.com","position":"Engineer","department":"Eng","salary":75000,"hireDate":"2024-01-15"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)

		var data map[string]any
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "john@ex.com", data["email"])
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		r := setupRouter(svc)

		w, env := doRequest(t, r, http.MethodPost, "/employees", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", env.Error)
	})

	t.Run("unexpected failure passes the message through as 500", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateEmployeeFn: func(ctx context.Context, raw map[string]any) (*employee.Employee, error) {
				return nil, errors.New("connection refused")
			},
		}
		r := setupRouter(svc)

		w, env := doRequest(t, r, http.MethodPost, "/employees", `{"name":"x"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "connection refused", env.Error)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	svc := &fakeEmployeeService{
		DeleteEmployeeFn: func(ctx context.Context, id uint) error {
			assert.Equal(t, uint(7), id)
			return nil
		},
	}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodDelete, "/employees/7", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Employee deleted successfully", env.Message)
	assert.Empty(t, env.Data)
}

func TestEmployeeHandler_GetByDepartment(t *testing.T) {
	t.Run("success emits list projection", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetEmployeesByDepartmentFn: func(ctx context.Context, department string) ([]employee.Employee, error) {
				assert.Equal(t, "Eng", department)
				return []employee.Employee{*sampleEmployee()}, nil
			},
		}
		r := setupRouter(svc)

		w, env := doRequest(t, r, http.MethodGet, "/employees/department/Eng", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var items []map[string]any
		assert.NoError(t, json.Unmarshal(env.Data, &items))
		assert.Len(t, items, 1)
		assert.NotContains(t, items[0], "salary")
	})

	t.Run("missing segment is 400", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetEmployeesByDepartmentFn: func(ctx context.Context, department string) ([]employee.Employee, error) {
				return nil, employeeerrors.ErrDepartmentRequired
			},
		}
		r := setupRouter(svc)

		w, env := doRequest(t, r, http.MethodGet, "/employees/department", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Department is required", env.Error)
	})
}

// Pipeline tests run the real service behind the handler with a mocked
// repository, covering the documented request scenarios end to end.
func TestEmployeePipeline_Scenarios(t *testing.T) {
	ctx := gomock.Any()

	t.Run("create normalizes email and renders exact salary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		r := setupRouter(employee.NewService(repo))

		repo.EXPECT().
			FindByEmail(ctx, "john@ex.com").
			Return(nil, nil)
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				empl.ID = 1
				return nil
			})

		w, env := doRequest(t, r, http.MethodPost, "/employees",
			`{"name":"John Doe","email":" John@Ex.com ","position":"Engineer","department":"Eng","salary":75000,"hireDate":"2024-01-15"}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var data map[string]any
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "john@ex.com", data["email"])
		assert.Equal(t, "75000.00", data["salary"])
		assert.Equal(t, float64(1), data["id"])
	})

	t.Run("update with empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		r := setupRouter(employee.NewService(repo))

		repo.EXPECT().
			FindByID(ctx, uint(1)).
			Return(sampleEmployee(), nil)

		w, env := doRequest(t, r, http.MethodPut, "/employees/1", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No fields to update", env.Error)
	})

	t.Run("create with missing fields reports them in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		r := setupRouter(employee.NewService(repo))

		w, env := doRequest(t, r, http.MethodPost, "/employees", `{"name":"John Doe"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t,
			"Email is required, Position is required, Department is required, "+
				"Salary is required, Hire date is required",
			env.Error,
		)
	})
}
