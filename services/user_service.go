package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/teamup-app/league-backend/models"
	"github.com/teamup-app/league-backend/repositories"
	"github.com/teamup-app/league-backend/storage"
)

type UserService interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
	ListCaptains(ctx context.Context) ([]models.User, error)
	ListFreeAgents(ctx context.Context, callerEmail string) ([]models.User, error)
	Update(ctx context.Context, callerEmail string, id int, input UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, callerEmail string, id int) error
	UploadAvatar(ctx context.Context, callerEmail string, id int, contentType string, body io.Reader) (*models.User, error)
}

// UpdateUserInput carries a partial profile update. Nil fields keep the
// stored value. Admin and captain flags and the password are not updatable
// through this path.
type UpdateUserInput struct {
	FirstName *string `json:"first"`
	LastName  *string `json:"last"`
	DOB       *string `json:"dob"`
	Email     *string `json:"email"`
	Bio       *string `json:"bio"`
	Available *bool   `json:"available"`
	Phone     *int64  `json:"phone"`
	TeamID    *int    `json:"team_id"`
}

type userService struct {
	userRepo repositories.UserRepository
	guard    *Guard
	uploader storage.FileUploader
}

func NewUserService(userRepo repositories.UserRepository, guard *Guard, uploader storage.FileUploader) UserService {
	return &userService{
		userRepo: userRepo,
		guard:    guard,
		uploader: uploader,
	}
}

func (s *userService) GetByID(ctx context.Context, id int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	s.fillAvatarURL(user)
	return user, nil
}

func (s *userService) ListCaptains(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.ListCaptains(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list captains: %w", err)
	}
	for i := range users {
		s.fillAvatarURL(&users[i])
	}
	return users, nil
}

// ListFreeAgents is gated captain-or-admin: the list exists so captains can
// recruit unassigned players.
func (s *userService) ListFreeAgents(ctx context.Context, callerEmail string) ([]models.User, error) {
	if err := s.guard.RequireCaptainOrAdmin(ctx, callerEmail); err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListFreeAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list free agents: %w", err)
	}
	for i := range users {
		s.fillAvatarURL(&users[i])
	}
	return users, nil
}

func (s *userService) Update(ctx context.Context, callerEmail string, id int, input UpdateUserInput) (*models.User, error) {
	user, err := s.guard.RequireSelf(ctx, callerEmail, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Available != nil {
		user.Available = *input.Available
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.TeamID != nil {
		user.TeamID = *input.TeamID
	}

	// Re-validate the merged row before committing.
	var errs ValidationError
	checkName(&errs, "first", user.FirstName)
	checkName(&errs, "last", user.LastName)
	checkEmail(&errs, user.Email)
	if dob := parseDate(&errs, "dob", input.DOB); dob != nil {
		user.DOB = dob
	}
	if err := errs.orNil(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrUserEmailConflict):
			return nil, ErrUserEmailConflict
		case errors.Is(err, repositories.ErrUserTeamInvalid):
			return nil, ErrTeamNotFound
		default:
			return nil, fmt.Errorf("failed to update user %d: %w", id, err)
		}
	}

	s.fillAvatarURL(user)
	return user, nil
}

func (s *userService) Delete(ctx context.Context, callerEmail string, id int) error {
	if err := s.guard.RequireAdmin(ctx, callerEmail); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}

// UploadAvatar stores the image in object storage and records its key on
// the profile. A previous avatar is removed best-effort.
func (s *userService) UploadAvatar(ctx context.Context, callerEmail string, id int, contentType string, body io.Reader) (*models.User, error) {
	user, err := s.guard.RequireSelf(ctx, callerEmail, id)
	if err != nil {
		return nil, err
	}

	ext, ok := imageExtension(contentType)
	if !ok {
		return nil, ErrUnsupportedImageType
	}

	key := fmt.Sprintf("avatars/user_%d%s", id, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	oldKey := user.AvatarKey
	user.AvatarKey = &result.Key
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to record avatar key: %w", err)
	}
	if oldKey != nil && *oldKey != result.Key {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	s.fillAvatarURL(user)
	return user, nil
}

func (s *userService) fillAvatarURL(user *models.User) {
	if user.AvatarKey == nil || s.uploader == nil {
		return
	}
	url := s.uploader.GetPublicURL(*user.AvatarKey)
	if url != "" {
		user.AvatarURL = &url
	}
}

func imageExtension(contentType string) (string, bool) {
	switch contentType {
	case "image/png":
		return ".png", true
	case "image/jpeg":
		return ".jpg", true
	case "image/webp":
		return ".webp", true
	default:
		return "", false
	}
}
