package utils

import "testing"

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("mat-khau-quan-tri")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, "mat-khau-quan-tri") {
		t.Error("mật khẩu đúng phải khớp hash")
	}
	if CheckPassword(hash, "mat-khau-sai") {
		t.Error("mật khẩu sai không được khớp hash")
	}
}

func TestAdminToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAdminToken()
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("role phải là admin, có %q", claims.Role)
	}
	if claims.Subject != "admin" {
		t.Errorf("subject phải là admin, có %q", claims.Subject)
	}

	// token ký bằng secret khác phải bị từ chối
	t.Setenv("JWT_SECRET", "secret-khac")
	if _, err := VerifyToken(token); err == nil {
		t.Error("token ký bằng secret cũ phải bị từ chối")
	}
}

func TestAdminTokenThieuSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateAdminToken(); err == nil {
		t.Error("thiếu JWT_SECRET phải trả lỗi")
	}
}
