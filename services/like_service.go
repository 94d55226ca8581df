package services

import (
	"strings"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"
	"github.com/fatouibra/Projet-Fatou-sub001/repository"

	"gorm.io/gorm"
)

type LikeService struct {
	DB   *gorm.DB
	Repo *repository.LikeRepository
}

func NewLikeService(db *gorm.DB, repo *repository.LikeRepository) *LikeService {
	return &LikeService{DB: db, Repo: repo}
}

type ToggleLikeIn struct {
	TargetType string `json:"targetType" binding:"required"`
	TargetID   uint   `json:"targetId" binding:"required"`

	// exactly one identity channel; precedence phone > email > fingerprint
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Fingerprint string `json:"fingerprint"`
}

type ToggleLikeOut struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likesCount"`
}

// identityKey prefixes the channel so a phone value can never collide with
// an email or fingerprint value.
func identityKey(in *ToggleLikeIn) string {
	switch {
	case strings.TrimSpace(in.Phone) != "":
		return "phone:" + strings.TrimSpace(in.Phone)
	case strings.TrimSpace(in.Email) != "":
		return "email:" + strings.ToLower(strings.TrimSpace(in.Email))
	case strings.TrimSpace(in.Fingerprint) != "":
		return "fp:" + strings.TrimSpace(in.Fingerprint)
	default:
		return ""
	}
}

// Toggle likes or unlikes the target for one identity. The counter moves in
// the same transaction as the like row, with the decrement clamped at 0.
func (s *LikeService) Toggle(in *ToggleLikeIn) (*ToggleLikeOut, error) {
	if in.TargetType != entity.LikeTargetRestaurant && in.TargetType != entity.LikeTargetProduct {
		return nil, apperr.Validation("unknown target type %q", in.TargetType)
	}
	identity := identityKey(in)
	if identity == "" {
		return nil, apperr.Validation("a phone, email or fingerprint is required")
	}

	exists, err := s.Repo.TargetExists(in.TargetType, in.TargetID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !exists {
		return nil, apperr.NotFound("%s not found", in.TargetType)
	}

	existing, err := s.Repo.Find(in.TargetType, in.TargetID, identity)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	liked := existing == nil
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if existing != nil {
			affected, err := s.Repo.Delete(tx, existing.ID)
			if err != nil {
				return err
			}
			if affected == 0 {
				// already removed by a concurrent toggle; leave the counter alone
				return nil
			}
			return s.Repo.DecrementLikes(tx, in.TargetType, in.TargetID)
		}
		l := &entity.Like{TargetType: in.TargetType, TargetID: in.TargetID, Identity: identity}
		if err := s.Repo.Create(tx, l); err != nil {
			return err
		}
		return s.Repo.IncrementLikes(tx, in.TargetType, in.TargetID)
	})
	if err != nil {
		return nil, apperr.Storage(err)
	}

	count, err := s.Repo.LikesCount(in.TargetType, in.TargetID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &ToggleLikeOut{Liked: liked, LikesCount: count}, nil
}

// ListByFingerprint lets a guest client rehydrate its liked set.
func (s *LikeService) ListByFingerprint(fingerprint string) ([]entity.Like, error) {
	fingerprint = strings.TrimSpace(fingerprint)
	if fingerprint == "" {
		return nil, apperr.Validation("fingerprint is required")
	}
	out, err := s.Repo.ListByIdentity("fp:" + fingerprint)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}
