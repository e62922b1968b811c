package service

import (
	"context"
	"errors"
	"time"

	"DevHub/config"
	"DevHub/dao"
	"DevHub/models"
	"DevHub/pkg/encrypt"
	"DevHub/pkg/jwt"
	"DevHub/pkg/snowflake"
	"DevHub/types"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error)
	Login(ctx context.Context, email, password string) (*types.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error)
	Me(ctx context.Context, uid int64) (*types.SessionInfo, error)
	UpdatePassword(ctx context.Context, uid int64, oldPassword, password string) error
}

type AuthService struct {
	Config    *config.Config
	UsersRepo *dao.Users
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error) {
	if s.UsersRepo.IsEmailExist(ctx, req.Email) {
		return nil, errors.New("email already registered")
	}
	if s.UsersRepo.IsUsernameExist(ctx, req.Username) {
		return nil, errors.New("username already taken")
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = req.Username
	}

	user := &models.Users{
		ID:           snowflake.GenID(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: encrypt.HashPassword(req.Password),
		Nickname:     nickname,
		Role:         models.UserRoleMember,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.UsersRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.buildLoginResponse(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*types.LoginResponse, error) {
	user, err := s.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("account not found")
	}

	if !encrypt.VerifyPassword(user.PasswordHash, password) {
		return nil, errors.New("wrong password")
	}

	if user.IsBanned {
		return nil, errors.New("account suspended")
	}

	return s.buildLoginResponse(user)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), "refresh", refreshToken)
	if err != nil {
		return nil, errors.New("invalid refresh token")
	}

	user, err := s.UsersRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsBanned {
		return nil, errors.New("account unavailable")
	}

	return s.issueTokens(user)
}

// Me returns the signed-in account behind the token.
func (s *AuthService) Me(ctx context.Context, uid int64) (*types.SessionInfo, error) {
	user, err := s.UsersRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsBanned {
		return nil, errors.New("account unavailable")
	}

	return &types.SessionInfo{
		UserID:   user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Email:    user.Email,
		Role:     user.Role,
		IsPro:    user.IsPro,
	}, nil
}

func (s *AuthService) UpdatePassword(ctx context.Context, uid int64, oldPassword, password string) error {
	user, err := s.UsersRepo.FindByID(ctx, uid)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("account not found")
	}

	if !encrypt.VerifyPassword(user.PasswordHash, oldPassword) {
		return errors.New("wrong password")
	}

	return s.UsersRepo.UpdateById(ctx, uid, map[string]any{
		"password_hash": encrypt.HashPassword(password),
	})
}

func (s *AuthService) issueTokens(user *models.Users) (*types.TokenPair, error) {
	secret := []byte(s.Config.Jwt.Secret)

	access, err := jwt.GenerateToken(secret, user.ID, user.Role, "access", s.Config.Jwt.AccessTTL())
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken(secret, user.ID, user.Role, "refresh", s.Config.Jwt.RefreshTTL())
	if err != nil {
		return nil, err
	}

	return &types.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.Config.Jwt.AccessTTL().Seconds()),
	}, nil
}

func (s *AuthService) buildLoginResponse(user *models.Users) (*types.LoginResponse, error) {
	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Nickname:  user.Nickname,
		Role:      user.Role,
		IsPro:     user.IsPro,
		TokenPair: *pair,
	}, nil
}
