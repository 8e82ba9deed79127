package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/repository"
	"github.com/Lulu77Donc/reggie-take-out/utils"
)

const defaultEmployeePassword = "123456"

type EmployeeService struct {
	Employees *repository.EmployeeRepository
	Tokens    *TokenIssuer
}

func NewEmployeeService(db *gorm.DB, tokens *TokenIssuer) *EmployeeService {
	return &EmployeeService{Employees: repository.NewEmployeeRepository(db), Tokens: tokens}
}

// Login checks credentials and opens a session. Unknown username and wrong
// password produce the same error.
func (s *EmployeeService) Login(ctx context.Context, username, password string) (*dto.LoginResult, error) {
	emp, err := s.Employees.FindByUsername(ctx, username)
	if err != nil {
		return nil, storeErr(err, "load employee")
	}
	if emp == nil || !utils.CheckPassword(emp.Password, password) {
		return nil, business(ErrLoginFailed)
	}
	if emp.Status == entity.StatusOff {
		return nil, business(ErrAccountDisabled)
	}
	token, err := s.Tokens.Issue(ctx, emp.ID, utils.RoleEmployee)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResult{Token: token, Employee: emp}, nil
}

func (s *EmployeeService) Logout(ctx context.Context) error {
	return s.Tokens.Revoke(ctx)
}

// Create adds an enabled employee with the default password.
func (s *EmployeeService) Create(ctx context.Context, e *entity.Employee) error {
	e.ID = 0
	e.Password = utils.HashPassword(defaultEmployeePassword)
	e.Status = entity.StatusOn
	return storeErr(s.Employees.Create(ctx, e), "create employee")
}

func (s *EmployeeService) Page(ctx context.Context, q dto.PageQuery) (dto.Page[entity.Employee], error) {
	rows, total, err := s.Employees.Page(ctx, q.Page, q.PageSize,
		repository.NameLike("name", q.Name), repository.OrderBy("update_time DESC"), repository.OrderBy("id DESC"))
	if err != nil {
		return dto.Page[entity.Employee]{}, storeErr(err, "page employees")
	}
	return pageOf(rows, total, q), nil
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*entity.Employee, error) {
	e, err := s.Employees.GetByID(ctx, id)
	return e, storeErr(err, "load employee")
}

// Update applies the non-nil fields of in, including enabling or disabling the account.
func (s *EmployeeService) Update(ctx context.Context, in dto.EmployeeUpdate) (*entity.Employee, error) {
	e, err := s.Employees.GetByID(ctx, in.ID)
	if err != nil {
		return nil, storeErr(err, "load employee")
	}
	setIf(&e.Name, in.Name)
	setIf(&e.Username, in.Username)
	setIf(&e.Phone, in.Phone)
	setIf(&e.Sex, in.Sex)
	setIf(&e.IDNumber, in.IDNumber)
	setIf(&e.Status, in.Status)
	if err := s.Employees.Update(ctx, e); err != nil {
		return nil, storeErr(err, "update employee")
	}
	return e, nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
