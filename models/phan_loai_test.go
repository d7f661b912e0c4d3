package models

import "testing"

func TestPhanLoaiIndex(t *testing.T) {
	for i, p := range PhanLoais {
		if p.Index() != i {
			t.Errorf("%s: muốn index %d, có %d", p, i, p.Index())
		}
		if !p.Valid() {
			t.Errorf("%s phải hợp lệ", p)
		}
	}
	if PhanLoai("").Index() != -1 {
		t.Error("phân loại rỗng (mục kết thúc) phải có index -1")
	}
	if PhanLoai("Khác").Valid() {
		t.Error("phân loại lạ không được hợp lệ")
	}
}

func TestLinhVucHopLe(t *testing.T) {
	if !LinhVucHopLe("Công nghệ thông tin") {
		t.Error("lĩnh vực trong danh sách phải hợp lệ")
	}
	if LinhVucHopLe("Khai thác vũ trụ") {
		t.Error("lĩnh vực ngoài danh sách phải bị từ chối")
	}
}

func TestCoLuaChonDiem(t *testing.T) {
	q := CauHoi{LuaChons: []LuaChon{{Diem: 0}, {Diem: 1}, {Diem: 2}, {Diem: 3}, {Diem: 4}}}
	for d := 0; d <= 4; d++ {
		if !q.CoLuaChonDiem(d) {
			t.Errorf("điểm %d phải thuộc thang", d)
		}
	}
	if q.CoLuaChonDiem(5) || q.CoLuaChonDiem(-1) {
		t.Error("điểm ngoài thang phải bị từ chối")
	}

	ketThuc := CauHoi{LaKetThuc: true}
	if ketThuc.CoLuaChonDiem(0) {
		t.Error("mục kết thúc không có lựa chọn nào")
	}
}
