package repository

import (
	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	GetByID(id uint) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	List(search, role string, limit, offset int) ([]model.User, int64, error)
	Update(user *model.User) error
	Delete(id uint) error
	CountByRole() (map[string]int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) List(search, role string, limit, offset int) ([]model.User, int64, error) {
	query := r.db.Model(&model.User{})

	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR role LIKE ?", like, like, like)
	}
	if role != "" && role != "all" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(id uint) error {
	return r.db.Delete(&model.User{}, id).Error
}

func (r *userRepository) CountByRole() (map[string]int64, error) {
	var rows []struct {
		Role  string
		Count int64
	}
	err := r.db.Model(&model.User{}).
		Select("role, count(*) as count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{model.RoleAdmin: 0, model.RoleGuru: 0, model.RoleSiswa: 0}
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}
