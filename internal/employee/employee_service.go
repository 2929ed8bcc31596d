package employee

import (
	"context"
	"strings"

	employeeerrors "go-employee-api/internal/employee/errors"
	"go-employee-api/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAllEmployees(ctx context.Context) ([]Employee, error)
	GetEmployeeByID(ctx context.Context, id uint) (*Employee, error)
	CreateEmployee(ctx context.Context, raw map[string]any) (*Employee, error)
	UpdateEmployee(ctx context.Context, id uint, raw map[string]any) (*Employee, error)
	DeleteEmployee(ctx context.Context, id uint) error
	GetEmployeesByDepartment(ctx context.Context, department string) ([]Employee, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		logger: l,
	}
}

func (s *service) GetAllEmployees(ctx context.Context) ([]Employee, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}
	return empls, nil
}

func (s *service) GetEmployeeByID(ctx context.Context, id uint) (*Employee, error) {
	s.logger.Debug("get employee by id requested", zap.Uint("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return nil, err
	}
	if empl == nil {
		return nil, employeeerrors.ErrEmployeeNotFound
	}
	return empl, nil
}

func (s *service) CreateEmployee(ctx context.Context, raw map[string]any) (*Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	req := NewCreateEmployeeRequest(raw)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	if result := req.Validate(); !result.IsValid {
		s.logger.Warn("create employee validation failed",
			zap.String("request_id", rid),
			zap.Strings("violations", result.Errors),
		)
		return nil, employeeerrors.Validation(result.Errors)
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("create employee email lookup failed", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("create employee email already taken",
			zap.String("request_id", rid),
			zap.String("email", req.Email),
		)
		return nil, employeeerrors.ErrEmployeeEmailExists
	}

	empl := &Employee{
		Name:       req.Name,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		Salary:     *req.Salary,
		HireDate:   *req.HireDate,
	}
	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
	)
	return empl, nil
}

func (s *service) UpdateEmployee(ctx context.Context, id uint, raw map[string]any) (*Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return nil, err
	}
	if current == nil {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	req := NewUpdateEmployeeRequest(raw)
	if result := req.Validate(); !result.IsValid {
		s.logger.Warn("update employee validation failed",
			zap.String("request_id", rid),
			zap.Strings("violations", result.Errors),
		)
		return nil, employeeerrors.Validation(result.Errors)
	}
	if req.IsEmpty() {
		s.logger.Warn("update employee empty payload",
			zap.String("request_id", rid),
			zap.Uint("employee_id", id),
		)
		return nil, employeeerrors.ErrNoFieldsToUpdate
	}

	// Changing the email requires the new address to be free, unless
	// the employee already owns it.
	if req.Email != nil && *req.Email != current.Email {
		owner, err := s.repo.FindByEmail(ctx, *req.Email)
		if err != nil {
			s.logger.Error("update employee email lookup failed", zap.Error(err))
			return nil, err
		}
		if owner != nil && owner.ID != id {
			s.logger.Warn("update employee email already taken",
				zap.String("request_id", rid),
				zap.String("email", *req.Email),
			)
			return nil, employeeerrors.ErrEmployeeEmailExists
		}
	}

	if err := s.repo.Update(ctx, id, req.Fields()); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee reload failed", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)
	return updated, nil
}

func (s *service) DeleteEmployee(ctx context.Context, id uint) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("delete employee fetch existing failed", zap.Error(err))
		return err
	}
	if current == nil {
		return employeeerrors.ErrEmployeeNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)
	return nil
}

func (s *service) GetEmployeesByDepartment(ctx context.Context, department string) ([]Employee, error) {
	department = strings.TrimSpace(department)
	s.logger.Debug("get employees by department requested",
		zap.String("department", department),
	)
	if department == "" {
		return nil, employeeerrors.ErrDepartmentRequired
	}

	empls, err := s.repo.FindByDepartment(ctx, department)
	if err != nil {
		s.logger.Error("get employees by department failed", zap.Error(err))
		return nil, err
	}
	return empls, nil
}
