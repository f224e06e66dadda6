package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"accounts-be/internal/cache"
	"accounts-be/internal/entities"
	"accounts-be/internal/models"
	"accounts-be/internal/repository"
)

// dobLayout is the accepted date-of-birth format.
const dobLayout = "2006-01-02"

// userCacheTTL bounds how long a cached user entry lives. Records are
// immutable, so a stale entry can never disagree with the store.
const userCacheTTL = time.Hour

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	userCache  cache.Cache
	bcryptCost int
}

// NewAuthService creates a new auth service. userCache may be nil, in which
// case every lookup goes to the repository. A bcryptCost below bcrypt.MinCost
// falls back to bcrypt.DefaultCost.
func NewAuthService(userRepo repository.UserRepository, userCache cache.Cache, bcryptCost int) AuthService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		userRepo:   userRepo,
		userCache:  userCache,
		bcryptCost: bcryptCost,
	}
}

// Signup registers a new user account
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error) {
	if req.FullName == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, &ValidationError{Reason: "missing required field"}
	}
	if req.Password != req.ConfirmPassword {
		return nil, &ValidationError{Reason: "password mismatch"}
	}

	var dob *time.Time
	if req.DOB != "" {
		parsed, err := time.Parse(dobLayout, req.DOB)
		if err != nil {
			return nil, &ValidationError{Reason: "invalid date of birth"}
		}
		dob = &parsed
	}

	var phoneNumber *string
	if req.PhoneNumber != "" {
		phoneNumber = &req.PhoneNumber
	}

	// Check if the email is already taken. The unique constraint remains the
	// final arbiter; this check only gives a friendlier fast path.
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, ErrEmailExists
	case !errors.Is(err, repository.ErrNotFound):
		return nil, &StoreError{Err: err}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.userRepo.Create(ctx, req.FullName, req.Email, phoneNumber, dob, string(hashedPassword))
	if err != nil {
		// A concurrent signup can win between the check above and this insert.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, &StoreError{Err: err}
	}

	s.cacheUser(ctx, &entities.User{
		ID:           id,
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  phoneNumber,
		DOB:          dob,
		PasswordHash: string(hashedPassword),
	})

	return &models.SignupResponse{
		Status: "created",
		UserID: id,
	}, nil
}

// Login verifies a user's credentials and returns their identity
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, &ValidationError{Reason: "missing required field"}
	}

	user, err := s.lookupUser(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, &StoreError{Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &models.LoginResponse{
		Status: "ok",
		UserID: user.ID,
	}, nil
}

// cachedUser is the cache wire format. It carries the password hash, which
// entities.User deliberately excludes from its JSON form.
type cachedUser struct {
	ID           int64      `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	PhoneNumber  *string    `json:"phone_number,omitempty"`
	DOB          *time.Time `json:"dob,omitempty"`
	PasswordHash string     `json:"password_hash"`
}

// lookupUser fetches a user by email, consulting the cache first when one is
// configured. Only found users are cached; a miss always hits the store.
func (s *authService) lookupUser(ctx context.Context, email string) (*entities.User, error) {
	key := userCacheKey(email)

	if s.userCache != nil {
		var cached cachedUser
		if err := s.userCache.GetJSON(ctx, key, &cached); err == nil {
			return &entities.User{
				ID:           cached.ID,
				FullName:     cached.FullName,
				Email:        cached.Email,
				PhoneNumber:  cached.PhoneNumber,
				DOB:          cached.DOB,
				PasswordHash: cached.PasswordHash,
			}, nil
		}
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	s.cacheUser(ctx, user)
	return user, nil
}

// cacheUser stores a user entry best-effort; cache failures are ignored.
func (s *authService) cacheUser(ctx context.Context, user *entities.User) {
	if s.userCache == nil {
		return
	}
	entry := cachedUser{
		ID:           user.ID,
		FullName:     user.FullName,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		DOB:          user.DOB,
		PasswordHash: user.PasswordHash,
	}
	_ = s.userCache.SetJSON(ctx, userCacheKey(user.Email), entry, userCacheTTL)
}

func userCacheKey(email string) string {
	return "user:email:" + email
}
