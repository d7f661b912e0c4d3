package store

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ntgiang/attt-survey-server/config"
	"github.com/ntgiang/attt-survey-server/models"
)

// newTestDB mở SQLite in-memory riêng cho mỗi test, migrate và seed bộ
// câu hỏi như lúc server khởi động.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("mở SQLite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := config.SeedCauHoi(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func taoKhaoSat(t *testing.T, db *gorm.DB) models.NguoiKhaoSat {
	t.Helper()
	catalog, err := ListCauHoi(db)
	if err != nil {
		t.Fatalf("ListCauHoi: %v", err)
	}
	nks := models.NguoiKhaoSat{
		Email:      "chu-doanh-nghiep@example.com",
		Ten:        "Nguyễn Văn A",
		ChucVu:     "Giám đốc",
		TenToChuc:  "Công ty TNHH ABC",
		LinhVuc:    "Công nghệ thông tin",
		SoNhanVien: 25,
	}
	if err := CreateWithPhieu(db, &nks, catalog); err != nil {
		t.Fatalf("CreateWithPhieu: %v", err)
	}
	return nks
}

// cauHoiThuong trả về một câu hỏi chấm điểm được và mục kết thúc.
func cauHoiThuong(t *testing.T, db *gorm.DB) (thuong, ketThuc models.CauHoi) {
	t.Helper()
	qs, err := ListCauHoi(db)
	if err != nil {
		t.Fatalf("ListCauHoi: %v", err)
	}
	for _, q := range qs {
		if q.LaKetThuc {
			ketThuc = q
		} else if thuong.ID == 0 {
			thuong = q
		}
	}
	if thuong.ID == 0 || ketThuc.ID == 0 {
		t.Fatal("bộ câu hỏi seed thiếu câu thường hoặc mục kết thúc")
	}
	return thuong, ketThuc
}

func TestCreateWithPhieu(t *testing.T) {
	db := newTestDB(t)
	nks := taoKhaoSat(t, db)

	if nks.ID == "" {
		t.Fatal("phải sinh UUID cho người khảo sát")
	}

	phieu, err := GetPhieu(db, nks.ID)
	if err != nil {
		t.Fatalf("GetPhieu: %v", err)
	}
	if phieu.IsFinished || phieu.IsBanned {
		t.Error("phiếu mới phải chưa hoàn thành và không bị ẩn")
	}

	catalog, _ := ListCauHoi(db)
	if len(phieu.CauTraLois) != len(catalog) {
		t.Fatalf("phiếu phải có %d mục, có %d", len(catalog), len(phieu.CauTraLois))
	}
	for i, a := range phieu.CauTraLois {
		if a.Diem != 0 {
			t.Errorf("mục %d phải khởi tạo điểm 0, có %d", i, a.Diem)
		}
		if a.ThuTu != i {
			t.Errorf("mục %d sai thứ tự: %d", i, a.ThuTu)
		}
	}
}

func TestUpdateDiem(t *testing.T) {
	db := newTestDB(t)
	nks := taoKhaoSat(t, db)
	thuong, ketThuc := cauHoiThuong(t, db)

	if err := UpdateDiem(db, nks.ID, thuong.ID, 3); err != nil {
		t.Fatalf("UpdateDiem: %v", err)
	}

	// ghi cùng điểm lần hai không đổi gì
	if err := UpdateDiem(db, nks.ID, thuong.ID, 3); err != nil {
		t.Fatalf("UpdateDiem lần hai: %v", err)
	}

	phieu, _ := GetPhieu(db, nks.ID)
	for _, a := range phieu.CauTraLois {
		want := 0
		if a.CauHoiID == thuong.ID {
			want = 3
		}
		if a.Diem != want {
			t.Errorf("câu %d: muốn điểm %d, có %d", a.CauHoiID, want, a.Diem)
		}
	}

	if err := UpdateDiem(db, nks.ID, thuong.ID, 5); !errors.Is(err, ErrDiemKhongHopLe) {
		t.Errorf("điểm ngoài thang phải bị từ chối, có %v", err)
	}
	if err := UpdateDiem(db, nks.ID, ketThuc.ID, 0); !errors.Is(err, ErrMucKetThuc) {
		t.Errorf("mục kết thúc không được chấm điểm, có %v", err)
	}
	if err := UpdateDiem(db, nks.ID, 9999, 1); !errors.Is(err, ErrCauHoiKhongHopLe) {
		t.Errorf("câu hỏi lạ phải bị từ chối, có %v", err)
	}
	if err := UpdateDiem(db, "không-tồn-tại", thuong.ID, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("phiếu không tồn tại phải lỗi not found, có %v", err)
	}
}

func TestDanhDauHoanThanh(t *testing.T) {
	db := newTestDB(t)
	nks := taoKhaoSat(t, db)
	thuong, _ := cauHoiThuong(t, db)

	if err := UpdateDiem(db, nks.ID, thuong.ID, 4); err != nil {
		t.Fatalf("UpdateDiem: %v", err)
	}
	if err := DanhDauHoanThanh(db, nks.ID); err != nil {
		t.Fatalf("DanhDauHoanThanh: %v", err)
	}
	if err := DanhDauHoanThanh(db, nks.ID); !errors.Is(err, ErrDaHoanThanh) {
		t.Errorf("chốt lần hai phải bị từ chối, có %v", err)
	}

	// phiếu đã chốt chỉ còn đọc, điểm giữ nguyên
	if err := UpdateDiem(db, nks.ID, thuong.ID, 1); !errors.Is(err, ErrDaHoanThanh) {
		t.Errorf("sửa điểm sau khi chốt phải bị từ chối, có %v", err)
	}
	phieu, _ := GetPhieu(db, nks.ID)
	if !phieu.IsFinished {
		t.Error("phiếu phải ở trạng thái hoàn thành")
	}
	for _, a := range phieu.CauTraLois {
		if a.CauHoiID == thuong.ID && a.Diem != 4 {
			t.Errorf("điểm sau khi chốt phải giữ nguyên 4, có %d", a.Diem)
		}
	}
}

func TestTraLoiDayDuRoundTrip(t *testing.T) {
	db := newTestDB(t)
	nks := taoKhaoSat(t, db)
	catalog, _ := ListCauHoi(db)

	// trả lời hết 39 câu thường với điểm xoay vòng 0..4 rồi chốt phiếu
	want := map[uint]int{}
	for i, q := range catalog {
		if q.LaKetThuc {
			continue
		}
		diem := i % 5
		if err := UpdateDiem(db, nks.ID, q.ID, diem); err != nil {
			t.Fatalf("UpdateDiem câu %d: %v", q.ID, err)
		}
		want[q.ID] = diem
	}
	if err := DanhDauHoanThanh(db, nks.ID); err != nil {
		t.Fatalf("DanhDauHoanThanh: %v", err)
	}

	phieu, err := GetPhieu(db, nks.ID)
	if err != nil {
		t.Fatalf("GetPhieu: %v", err)
	}
	if len(phieu.CauTraLois) != len(catalog) {
		t.Fatalf("phiếu phải giữ đủ %d mục, có %d", len(catalog), len(phieu.CauTraLois))
	}
	for i, a := range phieu.CauTraLois {
		if a.ThuTu != i {
			t.Errorf("mục %d đọc lại sai thứ tự: %d", i, a.ThuTu)
		}
		if wantDiem, ok := want[a.CauHoiID]; ok && a.Diem != wantDiem {
			t.Errorf("câu %d: muốn điểm %d, có %d", a.CauHoiID, wantDiem, a.Diem)
		}
	}
}

func TestToggleBanned(t *testing.T) {
	db := newTestDB(t)
	nks := taoKhaoSat(t, db)

	on, err := ToggleBanned(db, nks.ID)
	if err != nil || !on {
		t.Fatalf("bật cờ ẩn: state=%v err=%v", on, err)
	}
	off, err := ToggleBanned(db, nks.ID)
	if err != nil || off {
		t.Fatalf("đảo lần hai phải về false: state=%v err=%v", off, err)
	}

	if _, err := ToggleBanned(db, "không-tồn-tại"); !errors.Is(err, ErrNotFound) {
		t.Errorf("phiếu không tồn tại phải lỗi not found, có %v", err)
	}
}

func TestUpdateNguoiKhaoSat(t *testing.T) {
	db := newTestDB(t)
	nks := taoKhaoSat(t, db)

	err := UpdateNguoiKhaoSat(db, nks.ID, map[string]interface{}{
		"ten": "Trần Thị B",
		"id":  "không-được-đổi",
	})
	if err != nil {
		t.Fatalf("UpdateNguoiKhaoSat: %v", err)
	}

	got, err := GetNguoiKhaoSat(db, nks.ID)
	if err != nil {
		t.Fatalf("ID không được phép đổi: %v", err)
	}
	if got.Ten != "Trần Thị B" {
		t.Errorf("tên chưa được cập nhật: %q", got.Ten)
	}

	// sau khi chốt phiếu thì hồ sơ khoá lại
	if err := DanhDauHoanThanh(db, nks.ID); err != nil {
		t.Fatalf("DanhDauHoanThanh: %v", err)
	}
	err = UpdateNguoiKhaoSat(db, nks.ID, map[string]interface{}{"ten": "C"})
	if !errors.Is(err, ErrDaHoanThanh) {
		t.Errorf("sửa hồ sơ sau khi hoàn thành phải bị từ chối, có %v", err)
	}
}

func TestDeleteNguoiKhaoSat(t *testing.T) {
	db := newTestDB(t)
	nks := taoKhaoSat(t, db)

	if err := DeleteNguoiKhaoSat(db, nks.ID); err != nil {
		t.Fatalf("DeleteNguoiKhaoSat: %v", err)
	}
	if _, err := GetNguoiKhaoSat(db, nks.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("hồ sơ phải biến mất, có %v", err)
	}
	if _, err := GetPhieu(db, nks.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("phiếu phải bị xoá theo, có %v", err)
	}

	var n int64
	db.Model(&models.CauTraLoi{}).Count(&n)
	if n != 0 {
		t.Errorf("các câu trả lời phải bị xoá theo, còn %d", n)
	}
}

func TestListByEmail(t *testing.T) {
	db := newTestDB(t)
	a := taoKhaoSat(t, db)
	b := taoKhaoSat(t, db)
	if a.ID == b.ID {
		t.Fatal("hai lần tạo phải có mã khác nhau")
	}

	out, err := ListByEmail(db, a.Email)
	if err != nil {
		t.Fatalf("ListByEmail: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("muốn 2 lần khảo sát cùng email, có %d", len(out))
	}

	out, err = ListByEmail(db, "khac@example.com")
	if err != nil {
		t.Fatalf("ListByEmail: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("email lạ phải trả danh sách rỗng, có %d", len(out))
	}
}

func TestListEligibleSheets(t *testing.T) {
	db := newTestDB(t)
	catalog, _ := ListCauHoi(db)

	hoanThanh := taoKhaoSat(t, db)
	danDo := taoKhaoSat(t, db)
	biAn := taoKhaoSat(t, db)

	if err := DanhDauHoanThanh(db, hoanThanh.ID); err != nil {
		t.Fatalf("DanhDauHoanThanh: %v", err)
	}
	if err := DanhDauHoanThanh(db, biAn.ID); err != nil {
		t.Fatalf("DanhDauHoanThanh: %v", err)
	}
	if _, err := ToggleBanned(db, biAn.ID); err != nil {
		t.Fatalf("ToggleBanned: %v", err)
	}
	_ = danDo // phiếu đang làm dở, không đủ điều kiện

	sheets, err := ListEligibleSheets(db)
	if err != nil {
		t.Fatalf("ListEligibleSheets: %v", err)
	}
	if len(sheets) != 1 {
		t.Fatalf("chỉ phiếu hoàn thành và không bị ẩn mới được thống kê, có %d", len(sheets))
	}
	if sheets[0].NguoiKhaoSatID != hoanThanh.ID {
		t.Errorf("phiếu thống kê sai: %s", sheets[0].NguoiKhaoSatID)
	}
	// mục kết thúc đã bị bỏ
	if len(sheets[0].Answers) != len(catalog)-1 {
		t.Errorf("phiếu thống kê phải có %d câu, có %d", len(catalog)-1, len(sheets[0].Answers))
	}
	if sheets[0].NgayTao.IsZero() {
		t.Error("phiếu thống kê phải kèm ngày tạo của người khảo sát")
	}

	// phiếu bị ẩn vẫn tra được trực tiếp theo mã
	phieu, err := GetPhieu(db, biAn.ID)
	if err != nil {
		t.Fatalf("GetPhieu phiếu bị ẩn: %v", err)
	}
	if !phieu.IsBanned {
		t.Error("phiếu phải còn cờ ẩn")
	}
}

func TestCounts(t *testing.T) {
	db := newTestDB(t)
	a := taoKhaoSat(t, db)
	taoKhaoSat(t, db)

	if err := DanhDauHoanThanh(db, a.ID); err != nil {
		t.Fatalf("DanhDauHoanThanh: %v", err)
	}
	if _, err := ToggleBanned(db, a.ID); err != nil {
		t.Fatalf("ToggleBanned: %v", err)
	}

	// các bộ đếm độc lập với nhau: phiếu vừa hoàn thành vừa bị ẩn tính cả hai
	if n, _ := CountNguoiKhaoSat(db); n != 2 {
		t.Errorf("CountNguoiKhaoSat: muốn 2, có %d", n)
	}
	if n, _ := CountFinished(db); n != 1 {
		t.Errorf("CountFinished: muốn 1, có %d", n)
	}
	if n, _ := CountBanned(db); n != 1 {
		t.Errorf("CountBanned: muốn 1, có %d", n)
	}
	if n, _ := CountTrongNNgay(db, 7); n != 2 {
		t.Errorf("CountTrongNNgay: muốn 2, có %d", n)
	}
}

func TestGetCauHoi(t *testing.T) {
	db := newTestDB(t)
	thuong, _ := cauHoiThuong(t, db)

	q, err := GetCauHoi(db, thuong.ID)
	if err != nil {
		t.Fatalf("GetCauHoi: %v", err)
	}
	if len(q.LuaChons) != 5 {
		t.Errorf("câu hỏi thường phải có 5 lựa chọn, có %d", len(q.LuaChons))
	}
	for i, lc := range q.LuaChons {
		if lc.Diem != i {
			t.Errorf("lựa chọn %d phải có điểm %d, có %d", i, i, lc.Diem)
		}
	}

	if _, err := GetCauHoi(db, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("câu hỏi lạ phải lỗi not found, có %v", err)
	}
}
