package user

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/decomizer/storefront/cmd/config"
	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/model"
	"github.com/decomizer/storefront/repository"
	notificationrepo "github.com/decomizer/storefront/repository/notification"
	redisrepo "github.com/decomizer/storefront/repository/redis"
	txrepo "github.com/decomizer/storefront/repository/tx"
	userrepo "github.com/decomizer/storefront/repository/user"
	"github.com/decomizer/storefront/utils/errors"
	"github.com/decomizer/storefront/utils/logger"
	validatorx "github.com/decomizer/storefront/utils/validator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.PublicUser, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	GetUser(ctx context.Context, userID uint64) (*model.PublicUser, error)
}

type UserAppImpl struct {
	config           *config.Config
	txRepo           txrepo.TxRepository
	userRepo         userrepo.UserRepository
	notificationRepo notificationrepo.NotificationRepository
	redisRepo        redisrepo.RedisRepository
}

func NewUserApp(config *config.Config, txRepo txrepo.TxRepository, userRepo userrepo.UserRepository, notificationRepo notificationrepo.NotificationRepository, redisRepo redisrepo.RedisRepository) UserApp {
	return &UserAppImpl{
		config:           config,
		txRepo:           txRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		redisRepo:        redisRepo,
	}
}

// registerFieldChecks is the order in which registration input is checked,
// the first failing check decides the error.
var registerFieldChecks = []struct {
	field   string
	errType constant.ErrorType
}{
	{"Email", constant.ErrInvalidEmail},
	{"Password", constant.ErrPasswordTooShort},
	{"PhoneNumber", constant.ErrInvalidPhone},
	{"Role", constant.ErrInvalidRequest},
}

func registerValidationError(err error) constant.ErrorType {
	failed := validatorx.FailedTags(err)
	if failed == nil {
		return constant.ErrInvalidRequest
	}
	for _, tag := range failed {
		if tag == "required" {
			return constant.ErrMissingFields
		}
	}
	for _, check := range registerFieldChecks {
		if _, ok := failed[check.field]; ok {
			return check.errType
		}
	}
	return constant.ErrInvalidRequest
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.PublicUser, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(registerValidationError(err))
	}

	role := req.Role
	if role == "" {
		role = constant.RoleClient
	}

	// Fast path, the unique index on users.email is the actual guarantee
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrRegistrationFailed)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	cost := s.config.Auth.BcryptCost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), cost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrRegistrationFailed)
	}

	now := time.Now().UTC()
	userEntity := &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hashedPassword),
		Role:         role,
		CreatedAt:    now,
	}

	err = s.txRepo.RunInTx(ctx, func(tx *sqlx.Tx) error {
		created, err := s.userRepo.CreateTx(ctx, tx, userEntity)
		if err != nil {
			return err
		}
		userEntity = created

		notification := model.NewUserNotification(created)
		notification.CreatedAt = now
		if _, err := s.notificationRepo.CreateTx(ctx, tx, notification); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[Register] err create user", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrRegistrationFailed)
	}

	logger.Info("[Register] user registered", zap.Uint64("user_id", userEntity.ID), zap.String("role", string(role)))
	return userEntity.Public(), nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	// Find user by email or phone
	filter := &model.UserFilter{}
	if strings.Contains(req.Identifier, "@") {
		filter.Email = req.Identifier
	} else {
		filter.PhoneNumber = req.Identifier
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}

	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

func (s *UserAppImpl) GetUser(ctx context.Context, userID uint64) (*model.PublicUser, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[GetUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user.Public(), nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", "", err
	}
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
