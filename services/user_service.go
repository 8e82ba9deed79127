package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/pkg/logger"
	"github.com/Lulu77Donc/reggie-take-out/repository"
	"github.com/Lulu77Donc/reggie-take-out/utils"
)

const loginCodeTTL = 5 * time.Minute

// UserService signs customers in by phone and one-time code.
type UserService struct {
	Users   *repository.UserRepository
	Tokens  *TokenIssuer
	NewCode func() string
}

func NewUserService(db *gorm.DB, tokens *TokenIssuer) *UserService {
	return &UserService{Users: repository.NewUserRepository(db), Tokens: tokens, NewCode: randomCode}
}

func randomCode() string {
	return fmt.Sprintf("%04d", rand.Intn(10000))
}

// SendCode stores a fresh code for phone. There is no SMS gateway; the code is logged.
func (s *UserService) SendCode(ctx context.Context, phone string) error {
	code := s.NewCode()
	if err := s.Tokens.Sessions.SaveCode(ctx, phone, code, loginCodeTTL); err != nil {
		return err
	}
	logger.S().Infow("login code issued", "phone", phone, "code", code)
	return nil
}

// Login consumes the code and registers unknown phones on the fly.
func (s *UserService) Login(ctx context.Context, phone, code string) (*dto.LoginResult, error) {
	ok, err := s.Tokens.Sessions.ConsumeCode(ctx, phone, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, business(ErrInvalidCode)
	}
	u, err := s.Users.FindByPhone(ctx, phone)
	if err != nil {
		return nil, storeErr(err, "load user")
	}
	if u == nil {
		u = &entity.User{Phone: phone, Status: entity.StatusOn}
		if err := s.Users.Create(ctx, u); err != nil {
			return nil, storeErr(err, "register user")
		}
	}
	if u.Status == entity.StatusOff {
		return nil, business(ErrAccountDisabled)
	}
	token, err := s.Tokens.Issue(ctx, u.ID, utils.RoleUser)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResult{Token: token, User: u}, nil
}

func (s *UserService) Logout(ctx context.Context) error {
	return s.Tokens.Revoke(ctx)
}
