package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword băm mật khẩu quản trị bằng bcrypt (dùng để sinh
// ADMIN_PASSWORD_HASH khi triển khai).
func HashPassword(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
