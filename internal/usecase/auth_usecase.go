package usecase

import (
	"time"

	"simagang-backend/config"
	"simagang-backend/internal/apperror"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	userRepo  repository.UserRepository
	guruRepo  repository.GuruRepository
	siswaRepo repository.SiswaRepository
}

func NewAuthUsecase(userRepo repository.UserRepository, guruRepo repository.GuruRepository, siswaRepo repository.SiswaRepository) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, guruRepo: guruRepo, siswaRepo: siswaRepo}
}

func (u *AuthUsecase) Login(email, password string) (string, *model.User, error) {
	// 1. Cari user berdasarkan email
	user, err := u.userRepo.GetByEmail(email)
	if err != nil {
		return "", nil, apperror.New(apperror.NotFound, "Email atau password salah")
	}

	// 2. Bandingkan password input dengan hash di database
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperror.New(apperror.NotFound, "Email atau password salah")
	}

	// 3. Buat token JWT
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return "", nil, err
	}

	return t, user, nil
}

func (u *AuthUsecase) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ResolveScope memetakan principal ke scope domain. Guru/siswa tanpa profil
// mendapat scope dengan ID 0, sehingga semua query ter-scope fail-closed.
func (u *AuthUsecase) ResolveScope(userID uint, role string) repository.Scope {
	scope := repository.Scope{Role: role, UserID: userID}

	switch role {
	case model.RoleGuru:
		if guru, err := u.guruRepo.GetByUserID(userID); err == nil {
			scope.GuruID = guru.ID
		}
	case model.RoleSiswa:
		if siswa, err := u.siswaRepo.GetByUserID(userID); err == nil {
			scope.SiswaID = siswa.ID
		}
	}
	return scope
}
