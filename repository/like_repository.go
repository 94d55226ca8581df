package repository

import (
	"errors"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"

	"gorm.io/gorm"
)

type LikeRepository struct{ DB *gorm.DB }

func NewLikeRepository(db *gorm.DB) *LikeRepository { return &LikeRepository{DB: db} }

func (r *LikeRepository) Find(targetType string, targetID uint, identity string) (*entity.Like, error) {
	var l entity.Like
	err := r.DB.
		Where("target_type = ? AND target_id = ? AND identity = ?", targetType, targetID, identity).
		First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LikeRepository) Create(tx *gorm.DB, l *entity.Like) error {
	return tx.Create(l).Error
}

func (r *LikeRepository) Delete(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Unscoped().Delete(&entity.Like{}, id)
	return res.RowsAffected, res.Error
}

func (r *LikeRepository) ListByIdentity(identity string) ([]entity.Like, error) {
	var out []entity.Like
	err := r.DB.Where("identity = ?", identity).Order("id DESC").Find(&out).Error
	return out, err
}

// IncrementLikes bumps the denormalized counter in one statement; no
// read-modify-write at the application layer.
func (r *LikeRepository) IncrementLikes(tx *gorm.DB, targetType string, targetID uint) error {
	return tx.Model(targetModel(targetType)).Where("id = ?", targetID).
		Update("likes_count", gorm.Expr("likes_count + 1")).Error
}

// DecrementLikes is clamped at 0 by the WHERE condition.
func (r *LikeRepository) DecrementLikes(tx *gorm.DB, targetType string, targetID uint) error {
	return tx.Model(targetModel(targetType)).
		Where("id = ? AND likes_count > 0", targetID).
		Update("likes_count", gorm.Expr("likes_count - 1")).Error
}

func (r *LikeRepository) TargetExists(targetType string, targetID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(targetModel(targetType)).Where("id = ?", targetID).Count(&cnt).Error
	return cnt > 0, err
}

func (r *LikeRepository) LikesCount(targetType string, targetID uint) (int64, error) {
	var row struct{ LikesCount int64 }
	err := r.DB.Model(targetModel(targetType)).
		Select("likes_count").Where("id = ?", targetID).
		Scan(&row).Error
	return row.LikesCount, err
}

func targetModel(targetType string) any {
	if targetType == entity.LikeTargetProduct {
		return &entity.Product{}
	}
	return &entity.Restaurant{}
}
