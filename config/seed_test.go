package config

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ntgiang/attt-survey-server/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("mở SQLite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedCauHoi(t *testing.T) {
	db := newTestDB(t)
	if err := SeedCauHoi(db); err != nil {
		t.Fatalf("SeedCauHoi: %v", err)
	}

	var qs []models.CauHoi
	if err := db.Preload("LuaChons").Order("thu_tu ASC").Find(&qs).Error; err != nil {
		t.Fatalf("đọc bộ câu hỏi: %v", err)
	}
	if len(qs) != 40 {
		t.Fatalf("bộ câu hỏi phải có 40 mục, có %d", len(qs))
	}

	cuoi := qs[len(qs)-1]
	if !cuoi.LaKetThuc {
		t.Error("mục cuối phải là mục kết thúc")
	}
	if cuoi.PhanLoai != "" || len(cuoi.LuaChons) != 0 {
		t.Error("mục kết thúc không có phân loại và lựa chọn")
	}

	demPhanLoai := map[models.PhanLoai]int{}
	for i, q := range qs {
		if q.ThuTu != i {
			t.Errorf("mục %d sai thứ tự: %d", i, q.ThuTu)
		}
		if q.LaKetThuc {
			continue
		}
		if !q.PhanLoai.Valid() {
			t.Errorf("câu %d có phân loại lạ: %q", q.ThuTu, q.PhanLoai)
		}
		demPhanLoai[q.PhanLoai]++
		if len(q.LuaChons) != 5 {
			t.Errorf("câu %d phải có 5 lựa chọn, có %d", q.ThuTu, len(q.LuaChons))
			continue
		}
		for j, lc := range q.LuaChons {
			if lc.Diem != j {
				t.Errorf("câu %d lựa chọn %d: điểm phải bằng thứ tự, có %d", q.ThuTu, j, lc.Diem)
			}
		}
	}
	// đủ 5 phân loại, không phân loại nào trống
	for _, p := range models.PhanLoais {
		if demPhanLoai[p] == 0 {
			t.Errorf("phân loại %s không có câu hỏi nào", p)
		}
	}
}

func TestSeedCauHoiIdempotent(t *testing.T) {
	db := newTestDB(t)
	if err := SeedCauHoi(db); err != nil {
		t.Fatalf("SeedCauHoi: %v", err)
	}
	if err := SeedCauHoi(db); err != nil {
		t.Fatalf("SeedCauHoi lần hai: %v", err)
	}

	var n int64
	db.Model(&models.CauHoi{}).Count(&n)
	if n != 40 {
		t.Errorf("seed lần hai không được nhân đôi: có %d mục", n)
	}
}
