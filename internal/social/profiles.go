package social

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/auth"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/validation"
)

const (
	minSearchLen = 2
	searchLimit  = 10
)

// ProfileView is a profile as seen by the viewer.
type ProfileView struct {
	Profile     *data.Profile
	IsFollowing bool
	IsSelf      bool
}

func (s *Service) GetProfile(ctx context.Context, sess *auth.Session, userID bson.ObjectID) (*ProfileView, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	prof, err := s.st.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	v := &ProfileView{
		Profile: prof,
		IsSelf:  userID == sess.UserID,
	}
	if !v.IsSelf {
		if v.IsFollowing, err = s.st.Follows.IsFollowing(ctx, sess.UserID, userID); err != nil {
			return nil, fmt.Errorf("check follow: %w", err)
		}
	}
	return v, nil
}

// profileForm is the shape a profile must have after an update.
type profileForm struct {
	FullName   string `json:"full_name" validate:"notblank,max=100"`
	AvatarURL  string `json:"avatar_url" validate:"omitempty,url,max=500"`
	Bio        string `json:"bio" validate:"max=500"`
	Department string `json:"department" validate:"omitempty,oneof=civil comp mech entc mba"`
	Year       string `json:"year" validate:"omitempty,oneof=FE SE TE BE"`
	Subject    string `json:"subject" validate:"max=100"`
}

func pick(upd *string, cur string) string {
	if upd != nil {
		return strings.TrimSpace(*upd)
	}
	return cur
}

// UpdateProfile applies upd to userID's profile. Only the owner and admins
// may edit a profile.
func (s *Service) UpdateProfile(ctx context.Context, sess *auth.Session, userID bson.ObjectID, upd data.ProfileUpdate) (*data.Profile, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if userID != sess.UserID && !sess.IsAdmin {
		return nil, apperr.Forbidden("cannot edit another user's profile")
	}
	cur, err := s.st.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	form := profileForm{
		FullName:   pick(upd.FullName, cur.FullName),
		AvatarURL:  pick(upd.AvatarURL, cur.AvatarURL),
		Bio:        pick(upd.Bio, cur.Bio),
		Department: pick(upd.Department, cur.Department),
		Year:       pick(upd.Year, cur.Year),
		Subject:    pick(upd.Subject, cur.Subject),
	}
	if err := validation.Struct(form); err != nil {
		return nil, err
	}
	if err := auth.CheckRoleFields(cur.Role, form.Year, form.Subject); err != nil {
		return nil, err
	}

	trimmed := data.ProfileUpdate{}
	set := func(dst **string, src *string, v string) {
		if src != nil {
			*dst = &v
		}
	}
	set(&trimmed.FullName, upd.FullName, form.FullName)
	set(&trimmed.AvatarURL, upd.AvatarURL, form.AvatarURL)
	set(&trimmed.Bio, upd.Bio, form.Bio)
	set(&trimmed.Department, upd.Department, form.Department)
	set(&trimmed.Year, upd.Year, form.Year)
	set(&trimmed.Subject, upd.Subject, form.Subject)
	return s.st.Profiles.UpdateProfile(ctx, userID, trimmed)
}

// Follow makes the viewer follow userID. Following twice is a conflict.
func (s *Service) Follow(ctx context.Context, sess *auth.Session, userID bson.ObjectID) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if userID == sess.UserID {
		return apperr.NewValidationError("cannot follow yourself", apperr.FieldError{Field: "user_id", Error: "must be another user"})
	}
	if _, err := s.st.Profiles.GetProfile(ctx, userID); err != nil {
		return err
	}
	return s.st.Follows.Follow(ctx, sess.UserID, userID)
}

// Unfollow is a no-op when the viewer does not follow userID.
func (s *Service) Unfollow(ctx context.Context, sess *auth.Session, userID bson.ObjectID) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	_, err := s.st.Follows.Unfollow(ctx, sess.UserID, userID)
	return err
}

func (s *Service) ListFollowers(ctx context.Context, sess *auth.Session, userID bson.ObjectID) ([]*data.Profile, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	ids, err := s.st.Follows.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list followers: %w", err)
	}
	return s.orderedProfiles(ctx, ids)
}

func (s *Service) ListFollowing(ctx context.Context, sess *auth.Session, userID bson.ObjectID) ([]*data.Profile, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	ids, err := s.st.Follows.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}
	return s.orderedProfiles(ctx, ids)
}

// SearchUsers matches query against full names. Queries shorter than two
// characters return nothing.
func (s *Service) SearchUsers(ctx context.Context, sess *auth.Session, query string) ([]*data.Profile, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minSearchLen {
		return nil, nil
	}
	return s.st.Profiles.SearchProfiles(ctx, query, searchLimit)
}
